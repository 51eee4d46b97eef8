package cli

import (
	"context"
	"fmt"

	"github.com/flowtik/flowtik/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Time-utilization reports",
	}

	cmd.AddCommand(
		newSummaryDailyCmd(app),
		newSummaryWeeklyCmd(app),
	)

	return cmd
}

func newSummaryDailyCmd(app *App) *cobra.Command {
	var userID int64
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Daily summary with per-task breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}
			summary, err := app.Summaries.Daily(context.Background(), userID, date)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDailySummary(summary))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Date (YYYY-MM-DD), defaults to today")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newSummaryWeeklyCmd(app *App) *cobra.Command {
	var userID int64
	var weekStartFlag string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Weekly summary, one row per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := parseWeekStartFlag(weekStartFlag)
			if err != nil {
				return err
			}
			summary, err := app.Summaries.Weekly(context.Background(), userID, weekStart)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWeeklySummary(summary))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().StringVar(&weekStartFlag, "week-start", "", "First day of the week (YYYY-MM-DD), defaults to this Monday")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
