// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package ethtool

import (
	"context"
	"os/exec"

	"golang.org/x/sys/unix"
)

// DefaultPath is the ethtool binary looked up in $PATH.
const DefaultPath = "ethtool"

type shelltool struct {
	command   string
	options   []string
	arguments []string
	error     error
}

// Build builds the full command and returns an *[exec.Cmd] instance, or an
// [error]. The command is SIGTERMed, not SIGKILLed, when ctx is done.
func (s *shelltool) Build(ctx context.Context) (*exec.Cmd, error) {
	args := append(append([]string{}, s.options...), s.arguments...)
	cmd := exec.CommandContext(ctx, s.command, args...)
	cmd.SysProcAttr = defaultSysProcAttr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(unix.SIGTERM)
	}
	return cmd, s.error
}

func binary(path string) string {
	if path == "" {
		return DefaultPath
	}
	return path
}
