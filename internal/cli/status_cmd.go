package cli

import (
	"context"
	"fmt"

	"github.com/pomo-cli/pomo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Current pomodoro status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Status.Current(context.Background())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPhase(p, app.Mode))
			return nil
		},
	}
}
