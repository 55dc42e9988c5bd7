// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package executors

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ringmax/ringmax/pkg/tuners/executors/commands"
	"github.com/spf13/afero"
)

const scriptHeader = `#!/bin/sh

# Ring buffer tuning script
# ----------------------------------
# This file was autogenerated by ringmax

`

type scriptRenderingExecutor struct {
	fs   afero.Fs
	path string
}

// NewScriptRenderingExecutor truncates the script at path, writes its
// header, and returns an executor appending every command to it.
func NewScriptRenderingExecutor(fs afero.Fs, path string) (Executor, error) {
	if err := afero.WriteFile(fs, path, []byte(scriptHeader), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create script %s: %w", path, err)
	}
	return &scriptRenderingExecutor{fs: fs, path: path}, nil
}

func (e *scriptRenderingExecutor) Execute(cmd commands.Command) error {
	f, err := e.fs.OpenFile(e.path, os.O_APPEND|os.O_WRONLY, 0o755)
	if err != nil {
		return fmt.Errorf("unable to open script %s: %w", e.path, err)
	}
	defer f.Close()
	return cmd.RenderScript(bufio.NewWriter(f))
}

func (*scriptRenderingExecutor) IsLazy() bool {
	return true
}
