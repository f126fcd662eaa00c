package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qlikctl/qlikctl/internal/logx"
)

func newPubCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "pub <app-name> [app-id]",
		Short: "Republish the app to the managed space it was published to",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, id := splitAppArgs(args)
			client, _, err := newClient(cmd, *cfgPath)
			if err != nil {
				return err
			}
			app, err := client.ResolveApp(ctx, name, id)
			if err != nil {
				return err
			}
			published, err := client.PublishToManagedSpace(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q published successfully\n", published)
			logx.WithApp(ctx, app.Name, app.ID).Info("app published", "published_name", published)
			return nil
		},
	}
}
