// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package commands

import "bufio"

// Command is a single change to the system. It can either be applied
// directly or rendered as shell script lines.
type Command interface {
	Execute() error
	RenderScript(w *bufio.Writer) error
}
