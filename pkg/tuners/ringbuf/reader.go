// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package ringbuf

import (
	"context"
	"fmt"
	"time"

	"github.com/ringmax/ringmax/pkg/os"
	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
	"go.uber.org/zap"
)

type Reader struct {
	proc        os.Proc
	ethtoolPath string
	timeout     time.Duration
}

func NewReader(proc os.Proc, ethtoolPath string, timeout time.Duration) *Reader {
	return &Reader{
		proc:        proc,
		ethtoolPath: ethtoolPath,
		timeout:     timeout,
	}
}

// Read queries the ring sizes of intf. It fails when ethtool cannot be run
// or exits non-zero; a successful run always yields a descriptor, possibly
// empty.
func (r *Reader) Read(ctx context.Context, intf string) (*Descriptor, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	cmd, err := ethtool.ShowRing(r.ethtoolPath, intf).Build(ctx)
	if err != nil {
		return nil, err
	}
	out, err := r.proc.Run(cmd)
	if err != nil {
		return nil, fmt.Errorf("unable to get ring parameters of '%s': %w", intf, err)
	}
	d := Parse(out.Stdout)
	zap.L().Sugar().Debugf("Ring parameters of '%s': rx %s/%s, tx %s/%s",
		intf,
		formatSize(d.RxCurrent), formatSize(d.RxMax),
		formatSize(d.TxCurrent), formatSize(d.TxMax),
	)
	return d, nil
}

func formatSize(size *uint32) string {
	if size == nil {
		return "unknown"
	}
	return fmt.Sprint(*size)
}
