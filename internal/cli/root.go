package cli

import (
	"github.com/flowtik/flowtik/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timers    service.TimerService
	Summaries service.SummaryService
	Tasks     service.TaskService
	Users     service.UserService
	Queries   service.QueryService

	// IsInteractive reports whether stdin is attached to a terminal;
	// interactive prompts and the watch view require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "flowtik" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "flowtik",
		Short: "Employee time tracking from the terminal",
	}

	root.AddCommand(
		newTimerCmd(app),
		newSummaryCmd(app),
		newTaskCmd(app),
		newUserCmd(app),
		newQueryCmd(app),
	)

	return root
}
