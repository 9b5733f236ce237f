package cli

import (
	"github.com/pomo-cli/pomo/internal/cli/formatter"
	"github.com/pomo-cli/pomo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Sessions  service.SessionService
	Status    service.StatusService
	Schedules service.ScheduleService

	// Mode selects the status render style. main leaves it full on a
	// terminal and sets ModeCompact when stdout is piped.
	Mode formatter.Mode
}

// NewRootCmd creates the top-level "pomo" command and registers the four
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomodoro timer",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newInitCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
	)

	return root
}
