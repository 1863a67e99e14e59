package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	moodsCmd := &cobra.Command{Use: "moods", Short: "Daily mood operations"}

	var mood, reason string
	var sleep, physical int
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record today's mood (overwrites an earlier entry for today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"mood": mood, "reason": reason}
			if cmd.Flags().Changed("sleep") {
				payload["sleep"] = sleep
			}
			if cmd.Flags().Changed("physical") {
				payload["physical"] = physical
			}
			data, err := doPostJSON("/api/moods", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	logCmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood label: excited, happy, neutral, sad, angry (required)")
	logCmd.Flags().StringVarP(&reason, "reason", "r", "", "Free-text reason")
	logCmd.Flags().IntVarP(&sleep, "sleep", "s", 5, "Sleep score 1-10")
	logCmd.Flags().IntVarP(&physical, "physical", "p", 5, "Physical score 1-10")
	_ = logCmd.MarkFlagRequired("mood")
	moodsCmd.AddCommand(logCmd)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List mood entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/moods/history")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	moodsCmd.AddCommand(historyCmd)

	rootCmd.AddCommand(moodsCmd)
}
