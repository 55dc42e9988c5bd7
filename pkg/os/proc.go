// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package os

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

var ldLibraryPathPattern = regexp.MustCompile("^LD_LIBRARY_PATH=.*$")

// Proc runs external commands to completion.
type Proc interface {
	// Run runs cmd with the system library path and waits for it. A nil
	// error means the command exited 0. A command that started but exited
	// non-zero returns the captured output along with an *ExitError; any
	// other error means the command could not be run at all.
	Run(cmd *exec.Cmd) (*Output, error)
}

// Output is what a command wrote, stdout split into lines.
type Output struct {
	Stdout []string
	Stderr string
}

// ExitError is returned when a command ran but exited with a non-zero
// status.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, e.Stderr)
}

func NewProc() Proc {
	return &proc{}
}

type proc struct{}

func (*proc) Run(cmd *exec.Cmd) (*Output, error) {
	var env []string
	for _, v := range os.Environ() {
		if !ldLibraryPathPattern.MatchString(v) {
			env = append(env, v)
		}
	}
	cmd.Env = env
	return run(cmd)
}

func run(cmd *exec.Cmd) (*Output, error) {
	zap.L().Sugar().Debugf("Running command '%s' with arguments '%s'", cmd.Path, cmd.Args[1:])
	var out, errout bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errout

	// Pdeathsig is delivered when the spawning thread exits, not the
	// process, so the goroutine must stay on it until the child is reaped.
	runtime.LockOSThread()
	err := cmd.Run()
	runtime.UnlockOSThread()

	output := &Output{
		Stdout: strings.Split(out.String(), "\n"),
		Stderr: strings.TrimSpace(errout.String()),
	}
	if err == nil {
		return output, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		zap.L().Sugar().Debugf("Command '%s' exited with status %d", cmd.Path, exitErr.ExitCode())
		return output, &ExitError{
			Command:  cmd.String(),
			ExitCode: exitErr.ExitCode(),
			Stderr:   output.Stderr,
		}
	}
	// Killed by a signal (e.g. timeout) or never started.
	return nil, fmt.Errorf("unable to run %s: %w", cmd.Path, err)
}
