package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	healthCmd := &cobra.Command{Use: "health", Short: "Daily health metric operations"}

	var fatigue, quality, stress int
	var sleepHours float64
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record today's health metrics (overwrites an earlier entry for today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"fatigueLevel": fatigue,
				"sleepHours":   sleepHours,
				"sleepQuality": quality,
				"stress":       stress,
			}
			data, err := doPostJSON("/api/health", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	logCmd.Flags().IntVarP(&fatigue, "fatigue", "f", 0, "Fatigue level 0-10 (required)")
	logCmd.Flags().Float64VarP(&sleepHours, "sleep-hours", "s", 0, "Hours slept 0-24 (required)")
	logCmd.Flags().IntVarP(&quality, "quality", "q", 0, "Sleep quality 0-10 (required)")
	logCmd.Flags().IntVarP(&stress, "stress", "x", 0, "Stress level 0-10 (required)")
	_ = logCmd.MarkFlagRequired("fatigue")
	_ = logCmd.MarkFlagRequired("sleep-hours")
	_ = logCmd.MarkFlagRequired("quality")
	_ = logCmd.MarkFlagRequired("stress")
	healthCmd.AddCommand(logCmd)

	var year, month int
	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Show the per-day metric grid for one month",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("/api/health/month?year=%d&month=%d", year, month))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	monthCmd.Flags().IntVarP(&year, "year", "y", 0, "Calendar year (required)")
	monthCmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (required)")
	_ = monthCmd.MarkFlagRequired("year")
	_ = monthCmd.MarkFlagRequired("month")
	healthCmd.AddCommand(monthCmd)

	rootCmd.AddCommand(healthCmd)
}
