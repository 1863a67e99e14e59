package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	remindersCmd := &cobra.Command{Use: "reminders", Short: "Reminder operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your reminders ordered by time of day",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/reminders")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	remindersCmd.AddCommand(listCmd)

	var title, timeOfDay string
	var days []string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"title": title, "time": timeOfDay, "days": days}
			data, err := doPostJSON("/api/reminders", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&title, "title", "n", "", "Reminder title (required)")
	createCmd.Flags().StringVarP(&timeOfDay, "time", "c", "", "Time of day HH:MM (required)")
	createCmd.Flags().StringSliceVarP(&days, "days", "d", nil, "Weekdays, e.g. mon,fri (empty for a one-time reminder)")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("time")
	remindersCmd.AddCommand(createCmd)

	var updTitle, updTime string
	var updDays []string
	var updActive bool
	updateCmd := &cobra.Command{
		Use:   "update REMINDER_ID",
		Short: "Update the fields you pass, leaving the rest alone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{}
			if cmd.Flags().Changed("title") {
				payload["title"] = updTitle
			}
			if cmd.Flags().Changed("time") {
				payload["time"] = updTime
			}
			if cmd.Flags().Changed("days") {
				payload["days"] = updDays
			}
			if cmd.Flags().Changed("active") {
				payload["isActive"] = updActive
			}
			data, err := doPutJSON("/api/reminders/"+args[0], payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&updTitle, "title", "n", "", "New title")
	updateCmd.Flags().StringVarP(&updTime, "time", "c", "", "New time of day HH:MM")
	updateCmd.Flags().StringSliceVarP(&updDays, "days", "d", nil, "New weekday list")
	updateCmd.Flags().BoolVar(&updActive, "active", true, "Enable or disable the reminder")
	remindersCmd.AddCommand(updateCmd)

	completeCmd := &cobra.Command{
		Use:   "complete REMINDER_ID",
		Short: "Mark a reminder done for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON("/api/reminders/"+args[0]+"/complete", nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	remindersCmd.AddCommand(completeCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete REMINDER_ID",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doDelete("/api/reminders/" + args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	remindersCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(remindersCmd)
}
