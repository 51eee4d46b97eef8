package cli

import (
	"context"
	"fmt"

	"github.com/flowtik/flowtik/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Control your work timer",
	}

	cmd.AddCommand(
		newTimerStartCmd(app),
		newTimerPauseCmd(app),
		newTimerResumeCmd(app),
		newTimerStopCmd(app),
		newTimerActiveCmd(app),
		newTimerWatchCmd(app),
	)

	return cmd
}

func newTimerStartCmd(app *App) *cobra.Command {
	var userID, taskID int64

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the timer on a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Timers.Start(context.Background(), userID, taskID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatControlResult(res))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().Int64Var(&taskID, "task", 0, "Task ID to work on")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

func newTimerPauseCmd(app *App) *cobra.Command {
	var userID int64
	var reason string

	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer and start a break",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Timers.Pause(context.Background(), userID, reason)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatControlResult(res))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	cmd.Flags().StringVar(&reason, "reason", "", "Break reason (lunch, coffee, ...)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newTimerResumeCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "End the break and resume the task",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Timers.Resume(context.Background(), userID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatControlResult(res))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newTimerStopCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Timers.Stop(context.Background(), userID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatControlResult(res))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newTimerActiveCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "active",
		Short: "Show the currently running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Timers.ActiveTimer(context.Background(), userID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatActiveTimer(view))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newTimerWatchCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live view of the running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}
			return runWatch(app, userID)
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
