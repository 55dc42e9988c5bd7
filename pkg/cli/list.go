// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0


package cli

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/ringmax/ringmax/pkg/config"
	"github.com/ringmax/ringmax/pkg/out"
	"github.com/ringmax/ringmax/pkg/tuners/network"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newListCommand(p *config.Params, h *host) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the network interfaces and whether ringmax can tune them",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			cfg, err := p.Load(h.fs)
			out.MaybeDie(err, "unable to load config: %v", err)
			out.MaybeDieErr(list(h, cfg))
		},
	}
}

func list(h *host, cfg *config.Config) error {
	et, err := h.ethtool()
	if err != nil {
		zap.L().Sugar().Debugf("Driver names unavailable: %v", err)
		et = nil
	} else {
		defer et.Close()
	}
	nics, err := network.ListNics(h.fs, cfg.Sysfs.NetDir, et)
	if err != nil {
		return err
	}

	tw := out.NewTableTo(h.out, "Name", "Type", "Ethernet", "Hardware", "Driver")
	defer tw.Flush()
	green := color.New(color.FgGreen).SprintFunc()
	white := color.New(color.FgHiWhite).SprintFunc()
	for _, nic := range nics {
		typ, err := nic.Type()
		if err != nil {
			typ = "-"
		}
		driver, err := nic.Driver()
		if err != nil || driver == "" {
			driver = "-"
		}
		c := white
		if nic.IsEthernet() {
			c = green
		}
		tw.PrintStrings(colorRow(c, []string{
			nic.Name(),
			typ,
			strconv.FormatBool(nic.IsEthernet()),
			strconv.FormatBool(nic.IsHwInterface()),
			driver,
		})...)
	}
	return nil
}
