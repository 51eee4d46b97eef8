package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/flowtik/flowtik/internal/cli/formatter"
	"github.com/flowtik/flowtik/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserListCmd(app),
		newUserRemoveCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := &domain.User{Name: name, Email: email}
			if err := app.Users.Create(context.Background(), user); err != nil {
				return err
			}
			fmt.Printf("Created user %d: %s\n", user.ID, user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			headers := []string{"ID", "NAME", "EMAIL", "JOINED"}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{
					fmt.Sprintf("%d", u.ID),
					formatter.Bold(u.Name),
					u.Email,
					formatter.Dim(formatter.HumanDate(u.CreatedAt)),
				})
			}

			fmt.Print(formatter.RenderBox("Users", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newUserRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user ID %q", args[0])
			}
			if err := app.Users.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed user %d\n", id)
			return nil
		},
	}
}
