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
	"fmt"

	"github.com/ringmax/ringmax/pkg/config"
	"github.com/ringmax/ringmax/pkg/tuners/executors"
	"github.com/ringmax/ringmax/pkg/tuners/network"
	"github.com/ringmax/ringmax/pkg/tuners/ringbuf"
	"go.uber.org/zap"
)

// maximize raises the RX and TX rings of device to their maximum and
// returns the process exit code. Ring sizes are applied directly unless
// scriptPath is set, in which case the ethtool commands are rendered into
// that script and root is not required.
func maximize(ctx context.Context, h *host, cfg *config.Config, device, scriptPath string) int {
	nic := network.NewNic(h.fs, cfg.Sysfs.NetDir, nil, device)
	if !nic.IsEthernet() {
		fmt.Fprintf(h.errOut, "ERROR: %s is not an Ethernet type device\n", device)
		return exitNotEthernet
	}
	if scriptPath == "" && !h.isRoot() {
		fmt.Fprintln(h.errOut, "Please run this utility under root user permission")
		return exitNotRoot
	}

	d, err := ringbuf.NewReader(h.proc, cfg.Ethtool.Path, cfg.Ethtool.Timeout).Read(ctx, device)
	if err != nil {
		zap.L().Sugar().Debugf("Reading ring parameters failed: %v", err)
	}

	var executor executors.Executor
	if scriptPath == "" {
		executor = executors.NewDirectExecutor()
	} else if !d.Empty() {
		executor, err = executors.NewScriptRenderingExecutor(h.fs, scriptPath)
		if err != nil {
			fmt.Fprintf(h.errOut, "ERROR: %v\n", err)
			return 1
		}
	}

	w := ringbuf.NewWriter(executor, h.proc, cfg.Ethtool.Path, cfg.Ethtool.Timeout, h.out, h.errOut)
	res := w.Write(device, d)
	if res.IsFailed() {
		zap.L().Sugar().Debugf("Tuning '%s' failed: %v", device, res.Error())
	}
	if executor != nil && executor.IsLazy() && res.ExitCode() == 0 {
		fmt.Fprintf(h.out, "Script written to %s\n", scriptPath)
	}
	return res.ExitCode()
}
