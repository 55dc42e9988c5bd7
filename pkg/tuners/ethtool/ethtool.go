// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

//go:build !windows

// Package ethtool builds invocations of the ethtool(8) binary and wraps the
// ethtool ioctl interface for read-only queries.
package ethtool

import "github.com/safchain/ethtool"

type EthtoolWrapper interface {
	DriverName(string) (string, error)
	Close()
}

func NewEthtoolWrapper() (EthtoolWrapper, error) {
	return ethtool.NewEthtool()
}
