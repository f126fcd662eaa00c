package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qlikctl/qlikctl/internal/logx"
	"github.com/qlikctl/qlikctl/internal/tabs"
	"github.com/qlikctl/qlikctl/internal/workspace"
)

func newGetCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <app-name> [app-id]",
		Short: "Fetch the app script and split it into local tab files",
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
			if err := workspace.Reset(cfg.ScriptsDir, app.SanitizedName, app.ID); err != nil {
				return err
			}
			script, err := client.FetchScript(ctx, app.ID)
			if err != nil {
				return err
			}
			tabbed := tabs.Split(script)
			dir := workspace.Dir(cfg.ScriptsDir, app.SanitizedName, app.ID)
			paths, err := tabs.WriteDir(dir, tabbed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range paths {
				fmt.Fprintln(out, path)
			}
			logx.WithApp(ctx, app.Name, app.ID).Info("script fetched", "tabs", len(tabbed), "dir", dir)
			return nil
		},
	}
}
