package main

import (
	"github.com/spf13/cobra"

	"github.com/qlikctl/qlikctl/internal/appconfig"
	"github.com/qlikctl/qlikctl/internal/qlik"
	"pkt.systems/pslog"
)

func splitAppArgs(args []string) (name, id string) {
	name = args[0]
	if len(args) > 1 {
		id = args[1]
	}
	return name, id
}

func newClient(cmd *cobra.Command, cfgPath string) (*qlik.Client, appconfig.Config, error) {
	cfg, err := appconfig.Load(cfgPath)
	if err != nil {
		return nil, appconfig.Config{}, err
	}
	client, err := qlik.New(cfg, pslog.Ctx(cmd.Context()))
	if err != nil {
		return nil, appconfig.Config{}, err
	}
	return client, cfg, nil
}
