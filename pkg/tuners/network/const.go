// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package network

const (
	// SysClassNetDir is where the kernel exposes one directory per network
	// interface.
	SysClassNetDir = "/sys/class/net"

	// TypeEthernet is ARPHRD_ETHER as found in /sys/class/net/<nic>/type.
	TypeEthernet = "1"
)
