package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInfoCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info <app-name> [app-id]",
		Short: "Show app attributes and space details",
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
			record, err := client.GetAppInfo(ctx, app.ID)
			if err != nil {
				return err
			}
			attrs := record.Attributes

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintf(w, "name\t%s\n", attrs.Name)
			fmt.Fprintf(w, "app id\t%s\n", app.ID)
			fmt.Fprintf(w, "item id\t%s\n", app.ItemID)
			if app.SpaceID != "" {
				fmt.Fprintf(w, "space\t%s (%s)\n", app.SpaceName, app.SpaceType)
			} else {
				fmt.Fprintf(w, "space\tpersonal\n")
			}
			if attrs.Description != "" {
				fmt.Fprintf(w, "description\t%s\n", attrs.Description)
			}
			fmt.Fprintf(w, "owner\t%s\n", attrs.Owner)
			fmt.Fprintf(w, "created\t%s\n", attrs.CreatedDate)
			fmt.Fprintf(w, "modified\t%s\n", attrs.ModifiedDate)
			fmt.Fprintf(w, "published\t%t\n", attrs.Published)
			if attrs.Published && attrs.PublishTime != "" {
				fmt.Fprintf(w, "publish time\t%s\n", attrs.PublishTime)
			}
			return w.Flush()
		},
	}
}
