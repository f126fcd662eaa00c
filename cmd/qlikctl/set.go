package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qlikctl/qlikctl/internal/logx"
	"github.com/qlikctl/qlikctl/internal/tabs"
	"github.com/qlikctl/qlikctl/internal/workspace"
)

func newSetCmd(cfgPath *string) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "set <app-name> [app-id]",
		Short: "Validate the local tab files and publish them as the app script",
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

			out := cmd.OutOrStdout()
			body, err := client.ValidateScript(ctx, combined)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Script syntax validation:")
			fmt.Fprintln(out, body)

			if err := client.PublishScript(ctx, app.ID, combined, message); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s script set successfully\n", app.Name)
			logx.WithApp(ctx, app.Name, app.ID).Info("script published", "tabs", len(script), "version_message", message)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "qlikctl set", "version annotation for the published script")
	return cmd
}
