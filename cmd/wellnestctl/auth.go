package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	authCmd := &cobra.Command{Use: "auth", Short: "Account operations"}

	// register
	var name, email, password string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its token",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"name": name, "email": email, "password": password}
			data, err := doPostJSON("/api/auth/register", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	registerCmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	registerCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	authCmd.AddCommand(registerCmd)

	// login
	var loginEmail, loginPassword string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"email": loginEmail, "password": loginPassword}
			data, err := doPostJSON("/api/auth/login", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	authCmd.AddCommand(loginCmd)

	// me
	meCmd := &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/auth/me")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	authCmd.AddCommand(meCmd)

	rootCmd.AddCommand(authCmd)
}
