package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/flowtik/flowtik/internal/cli/formatter"
	"github.com/flowtik/flowtik/internal/contract"
	"github.com/flowtik/flowtik/internal/domain"
	"github.com/flowtik/flowtik/internal/timeutil"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskCompleteCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, description string
	var estimate float64
	var assigneeID, creatorID int64
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &domain.Task{
				Title:          title,
				Description:    description,
				EstimatedHours: estimate,
				AssignedToID:   assigneeID,
				CreatedByID:    creatorID,
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				if err := runTaskForm(task); err != nil {
					return err
				}
			} else if task.Title == "" || task.AssignedToID == 0 {
				return fmt.Errorf("--title and --assignee are required (or use --interactive)")
			}

			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return err
			}
			fmt.Printf("Created task %d: %s (estimate %s)\n",
				task.ID, task.Title, timeutil.FormatHours(task.EstimatedHours))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().Float64Var(&estimate, "estimate", 0, "Estimated hours")
	cmd.Flags().Int64Var(&assigneeID, "assignee", 0, "User ID the task is assigned to")
	cmd.Flags().Int64Var(&creatorID, "created-by", 0, "User ID of the creator, defaults to the assignee")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Prompt for fields in a form")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var assigneeID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with tracked-time stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var err error
			var tasks []contract.TaskOverview
			if assigneeID != 0 {
				tasks, err = app.Tasks.ListByAssignee(ctx, assigneeID)
			} else {
				tasks, err = app.Tasks.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			headers := []string{"ID", "TITLE", "ASSIGNEE", "ESTIMATE", "WORKED", "QUERIES", "STATUS"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				status := formatter.Dim("open")
				if t.Completed {
					status = formatter.StyleGreen.Render("done")
				} else if t.CurrentlyActive {
					status = formatter.StyleGreen.Render("● active")
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", t.TaskID),
					formatter.Bold(formatter.Truncate(t.Title, 40)),
					t.AssignedToName,
					formatter.Dim(timeutil.FormatHours(t.EstimatedHours)),
					timeutil.FormatHours(t.TotalHoursWorked),
					fmt.Sprintf("%d", t.QueryCount),
					status,
				})
			}

			fmt.Print(formatter.RenderBox("Tasks", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&assigneeID, "assignee", 0, "Filter by assigned user ID")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one task with tracked-time stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}
			t, err := app.Tasks.Overview(context.Background(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.Bold(t.Title))
			if t.Description != "" {
				fmt.Printf("%s\n", t.Description)
			}
			fmt.Printf("%s %s\n", formatter.Dim("Assignee:"), t.AssignedToName)
			fmt.Printf("%s %s worked of %s estimated\n",
				formatter.Dim("Time:"),
				timeutil.FormatHours(t.TotalHoursWorked),
				timeutil.FormatHours(t.EstimatedHours))
			if t.CurrentlyActive {
				fmt.Println(formatter.StyleGreen.Render("● Timer currently running on this task"))
			}
			if t.QueryCount > 0 {
				fmt.Printf("%s %d\n", formatter.Dim("Queries:"), t.QueryCount)
			}
			return nil
		},
	}
}

func newTaskCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}
			if err := app.Tasks.Complete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Completed task %d\n", id)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}
			if err := app.Tasks.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed task %d\n", id)
			return nil
		},
	}
}
