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
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/ringmax/ringmax/pkg/config"
	"github.com/ringmax/ringmax/pkg/out"
	"github.com/ringmax/ringmax/pkg/tuners"
	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
	"github.com/ringmax/ringmax/pkg/tuners/network"
	"github.com/ringmax/ringmax/pkg/tuners/ringbuf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCommand(p *config.Params, h *host) *cobra.Command {
	var (
		device      string
		ethtoolPath string
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether the ring buffers of an interface are at their maximum",
		Long: `Check whether the ring buffers of an interface are at their maximum.

This command only reads the ring sizes and does not require root. It exits
with 0 when every ring the driver reports a maximum for is already at that
maximum, and with 1 otherwise.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg, err := loadConfig(h.fs, p, cmd.Flags(), ethtoolPath, timeout)
			out.MaybeDieErr(err)
			if code := check(cmd.Context(), h, cfg, device); code != 0 {
				os.Exit(code)
			}
		},
	}
	f := cmd.Flags()
	f.StringVarP(&device, "device", "d", "", "Network interface to check (e.g. eth0)")
	addEthtoolFlags(f, &ethtoolPath, &timeout)
	cmd.MarkFlagRequired("device")
	return cmd
}

var checkedDirection = map[tuners.CheckerID]string{
	tuners.RxRingAtMaxChecker: "RX",
	tuners.TxRingAtMaxChecker: "TX",
}

func ringCheckers(d *ringbuf.Descriptor) []tuners.Checker {
	sizes := func(dir ethtool.Direction) func() (*uint32, *uint32, error) {
		return func() (*uint32, *uint32, error) {
			return d.Current(dir), d.Max(dir), nil
		}
	}
	return []tuners.Checker{
		tuners.NewRingSizeChecker(tuners.RxRingAtMaxChecker, "RX ring at maximum", tuners.Warning, sizes(ethtool.RX)),
		tuners.NewRingSizeChecker(tuners.TxRingAtMaxChecker, "TX ring at maximum", tuners.Warning, sizes(ethtool.TX)),
	}
}

// check prints whether each ring of device is at its maximum and returns
// the process exit code.
func check(ctx context.Context, h *host, cfg *config.Config, device string) int {
	nic := network.NewNic(h.fs, cfg.Sysfs.NetDir, nil, device)
	if !nic.IsEthernet() {
		fmt.Fprintf(h.errOut, "ERROR: %s is not an Ethernet type device\n", device)
		return exitNotEthernet
	}
	d, err := ringbuf.NewReader(h.proc, cfg.Ethtool.Path, cfg.Ethtool.Timeout).Read(ctx, device)
	if err != nil || d.Empty() {
		zap.L().Sugar().Debugf("Reading ring parameters failed: %v", err)
		fmt.Fprintln(h.errOut, "ERROR: Could not retrieve Ring Buffer values")
		return ringbuf.ExitNoRingValues
	}

	tw := out.NewTableTo(h.out, "Direction", "Current", "Maximum", "OK")
	defer tw.Flush()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	code := 0
	for _, c := range ringCheckers(d) {
		res := c.Check()
		direction := checkedDirection[res.CheckerID]
		current := res.Current
		if current == "" {
			current = "unknown"
		}
		switch {
		case errors.Is(res.Err, tuners.ErrRingUnsupported):
			tw.PrintStrings(colorRow(yellow, []string{direction, current, "-", "unsupported"})...)
		case res.IsOk:
			tw.PrintStrings(colorRow(green, []string{direction, current, res.Required, "true"})...)
		default:
			zap.L().Sugar().Debugf("%s check failed (%s): %s is not %s", direction, res.Severity, res.Current, c.GetRequiredAsString())
			code = 1
			tw.PrintStrings(colorRow(red, []string{direction, current, res.Required, "false"})...)
		}
	}
	return code
}

func colorRow(c func(...interface{}) string, row []string) []string {
	for i, s := range row {
		row[i] = c(s)
	}
	return row
}
