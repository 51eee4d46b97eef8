package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/flowtik/flowtik/internal/cli/formatter"
	"github.com/flowtik/flowtik/internal/domain"
	"github.com/spf13/cobra"
)

func newQueryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Raise and resolve task queries",
	}

	cmd.AddCommand(
		newQueryRaiseCmd(app),
		newQueryListCmd(app),
		newQueryResolveCmd(app),
		newQueryRemoveCmd(app),
	)

	return cmd
}

func newQueryRaiseCmd(app *App) *cobra.Command {
	var taskID, userID int64
	var subject, description, attachment string

	cmd := &cobra.Command{
		Use:   "raise",
		Short: "Raise a query against a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := &domain.TaskQuery{
				TaskID:         taskID,
				UserID:         userID,
				Subject:        subject,
				Description:    description,
				AttachmentPath: attachment,
			}
			if err := app.Queries.Raise(context.Background(), q); err != nil {
				return err
			}
			fmt.Printf("Raised query %d on task %d: %s\n", q.ID, q.TaskID, q.Subject)
			return nil
		},
	}

	cmd.Flags().Int64Var(&taskID, "task", 0, "Task ID the query is about")
	cmd.Flags().Int64Var(&userID, "user", 0, "User ID raising the query")
	cmd.Flags().StringVar(&subject, "subject", "", "Short subject line")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&attachment, "attachment", "", "Path to an attached file")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newQueryListCmd(app *App) *cobra.Command {
	var taskID, userID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queries by task or by user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var queries []*domain.TaskQuery
			var err error
			switch {
			case taskID != 0:
				queries, err = app.Queries.ListByTask(ctx, taskID)
			case userID != 0:
				queries, err = app.Queries.ListByUser(ctx, userID)
			default:
				return fmt.Errorf("pass --task or --user to scope the list")
			}
			if err != nil {
				return err
			}

			if len(queries) == 0 {
				fmt.Println("No queries found.")
				return nil
			}

			headers := []string{"ID", "TASK", "SUBJECT", "STATUS", "RAISED"}
			rows := make([][]string, 0, len(queries))
			for _, q := range queries {
				rows = append(rows, []string{
					fmt.Sprintf("%d", q.ID),
					fmt.Sprintf("%d", q.TaskID),
					formatter.Truncate(q.Subject, 40),
					formatter.QueryStatusPill(q.Status),
					formatter.Dim(formatter.HumanTimestamp(q.CreatedAt)),
				})
			}

			fmt.Print(formatter.RenderBox("Queries", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&taskID, "task", 0, "Filter by task ID")
	cmd.Flags().Int64Var(&userID, "user", 0, "Filter by raising user ID")

	return cmd
}

func newQueryResolveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve ID",
		Short: "Mark a query resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid query ID %q", args[0])
			}
			if err := app.Queries.Resolve(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Resolved query %d\n", id)
			return nil
		},
	}
}

func newQueryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid query ID %q", args[0])
			}
			if err := app.Queries.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed query %d\n", id)
			return nil
		},
	}
}
