package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Schedules.Init(context.Background(), force)
			if err != nil {
				return err
			}
			if res.Written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote new config to %s\n", res.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Create a new config file with defaults, unconditionally")

	return cmd
}
