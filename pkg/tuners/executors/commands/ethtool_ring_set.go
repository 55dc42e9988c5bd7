// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/ringmax/ringmax/pkg/os"
	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
	"go.uber.org/zap"
)

type ethtoolRingSetCommand struct {
	proc        os.Proc
	ethtoolPath string
	intf        string
	direction   ethtool.Direction
	size        uint32
	timeout     time.Duration
}

// NewEthtoolRingSetCmd returns a command resizing one ring of intf through
// `ethtool -G`. A non-zero exit of ethtool is reported as an *os.ExitError.
func NewEthtoolRingSetCmd(
	proc os.Proc,
	ethtoolPath string,
	intf string,
	direction ethtool.Direction,
	size uint32,
	timeout time.Duration,
) Command {
	return &ethtoolRingSetCommand{
		proc:        proc,
		ethtoolPath: ethtoolPath,
		intf:        intf,
		direction:   direction,
		size:        size,
		timeout:     timeout,
	}
}

func (c *ethtoolRingSetCommand) Execute() error {
	zap.L().Sugar().Debugf("Changing interface '%s' %s ring size to %d", c.intf, c.direction, c.size)
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	cmd, err := ethtool.SetRing(c.ethtoolPath, c.intf).
		Ring(c.direction, c.size).
		Build(ctx)
	if err != nil {
		return err
	}
	_, err = c.proc.Run(cmd)
	return err
}

func (c *ethtoolRingSetCommand) RenderScript(w *bufio.Writer) error {
	path := c.ethtoolPath
	if path == "" {
		path = ethtool.DefaultPath
	}
	fmt.Fprintf(w, "%s -G %s %s %d\n", path, c.intf, c.direction, c.size)
	return w.Flush()
}
