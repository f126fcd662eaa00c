package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/qlikctl/qlikctl/internal/logx"
	"github.com/qlikctl/qlikctl/internal/qlik"
)

func newLoadCmd(cfgPath *string) *cobra.Command {
	var (
		weight   int
		partial  bool
		interval time.Duration
		delta    bool
		statusID string
	)
	cmd := &cobra.Command{
		Use:   "load [app-name] [app-id]",
		Short: "Reload the app and stream the reload log until it finishes",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if statusID == "" && len(args) == 0 {
				return fmt.Errorf("app name required unless --status is given")
			}
			client, cfg, err := newClient(cmd, *cfgPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("weight") {
				weight = cfg.Reload.Weight
			}
			if !cmd.Flags().Changed("partial") {
				partial = cfg.Reload.Partial
			}
			if interval <= 0 {
				interval = time.Duration(cfg.Reload.PollIntervalSeconds) * time.Second
			}

			reloadID := statusID
			if reloadID == "" {
				name, id := splitAppArgs(args)
				app, err := client.ResolveApp(ctx, name, id)
				if err != nil {
					return err
				}
				reloadID, err = client.StartReload(ctx, app.ID, weight, partial)
				if err != nil {
					return err
				}
				logx.WithReload(logx.WithApp(ctx, app.Name, app.ID), reloadID).Info("reload submitted",
					"weight", weight, "partial", partial)
			}

			out := cmd.OutOrStdout()
			fullRedraw := !delta && term.IsTerminal(int(os.Stdout.Fd()))
			opts := qlik.StreamOptions{Interval: interval, Delta: !fullRedraw}

			var last qlik.ReloadUpdate
			for update := range client.StreamReloadLog(ctx, reloadID, opts) {
				if fullRedraw {
					fmt.Fprint(out, "\x1b[2J\x1b[H")
					fmt.Fprintf(out, "reload %s | status: %s\n\n", reloadID, update.Status)
					if update.Log != "" {
						fmt.Fprintln(out, update.Log)
					}
				} else if update.Log != "" {
					fmt.Fprint(out, update.Log)
				}
				last = update
			}
			if ctx.Err() != nil {
				fmt.Fprintf(out, "\nreload monitoring interrupted; resume with: qlikctl load --status %s\n", reloadID)
				return nil
			}
			if last.Status == "SUCCEEDED" {
				fmt.Fprintf(out, "reload %s completed successfully\n", reloadID)
				return nil
			}
			return fmt.Errorf("reload %s ended with status %s", reloadID, last.Status)
		},
	}
	cmd.Flags().IntVar(&weight, "weight", 1, "resource weight hint for the reload")
	cmd.Flags().BoolVar(&partial, "partial", false, "request a partial reload")
	cmd.Flags().DurationVar(&interval, "interval", 0, "poll interval for log streaming (default from config)")
	cmd.Flags().BoolVar(&delta, "delta", false, "append new log lines instead of redrawing the screen")
	cmd.Flags().StringVar(&statusID, "status", "", "stream an existing reload by id instead of submitting a new one")
	return cmd
}
