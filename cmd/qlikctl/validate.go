package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qlikctl/qlikctl/internal/tabs"
	"github.com/qlikctl/qlikctl/internal/workspace"
)

func newValidateCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <app-name> [app-id]",
		Short: "Run the remote syntax check on the local tab files without publishing",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, id := splitAppArgs(args)
			client, cfg, err := newClient(cmd, *cfgPath)
			if err != nil {
				return err
			}
			app, err := client.ResolveApp(ctx, name, id)
			if err != nil {
				return err
			}
			dir := workspace.Dir(cfg.ScriptsDir, app.SanitizedName, app.ID)
			script, err := tabs.ReadDir(dir, nil)
			if err != nil {
				return err
			}
			combined, err := tabs.Combine(script)
			if err != nil {
				return err
			}
			body, err := client.ValidateScript(ctx, combined)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	}
}
