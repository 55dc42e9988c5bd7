// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package os

import "golang.org/x/sys/unix"

// IsRoot reports whether the process runs with superuser privileges.
func IsRoot() bool {
	return unix.Geteuid() == 0
}
