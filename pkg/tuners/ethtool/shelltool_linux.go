// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

//go:build linux

package ethtool

import "golang.org/x/sys/unix"

var defaultSysProcAttr = &unix.SysProcAttr{
	// SIGTERM the child if the spawning thread dies.
	Pdeathsig: unix.SIGTERM,
	Setpgid:   true,
}
