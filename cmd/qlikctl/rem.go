package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qlikctl/qlikctl/internal/workspace"
)

func newRemCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rem <app-name> [app-id]",
		Short: "Remove the app's local script directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id := splitAppArgs(args)
			client, cfg, err := newClient(cmd, *cfgPath)
			if err != nil {
				return err
			}
			app, err := client.ResolveApp(cmd.Context(), name, id)
			if err != nil {
				return err
			}
			if err := workspace.Reset(cfg.ScriptsDir, app.SanitizedName, app.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", workspace.Dir(cfg.ScriptsDir, app.SanitizedName, app.ID))
			return nil
		},
	}
}
