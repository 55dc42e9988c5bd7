// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

// Package proctest provides an in-memory os.Proc recording every command it
// is asked to run.
package proctest

import (
	"os/exec"
	"strings"

	"github.com/ringmax/ringmax/pkg/os"
)

// Response is what a Proc returns for a matched command.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// LaunchErr, when set, simulates a command that could not be started.
	LaunchErr error
}

// Proc answers commands by their arguments (without the binary), e.g.
// "-g eth0". Unmatched commands exit 0 with no output.
type Proc struct {
	Responses map[string]Response
	Calls     [][]string
}

func (p *Proc) Run(cmd *exec.Cmd) (*os.Output, error) {
	p.Calls = append(p.Calls, cmd.Args)
	r := p.Responses[strings.Join(cmd.Args[1:], " ")]
	if r.LaunchErr != nil {
		return nil, r.LaunchErr
	}
	out := &os.Output{
		Stdout: strings.Split(r.Stdout, "\n"),
		Stderr: strings.TrimSpace(r.Stderr),
	}
	if r.ExitCode != 0 {
		return out, &os.ExitError{
			Command:  cmd.String(),
			ExitCode: r.ExitCode,
			Stderr:   out.Stderr,
		}
	}
	return out, nil
}

// CallArgs returns the arguments of every call, binary excluded, joined
// by spaces.
func (p *Proc) CallArgs() []string {
	var calls []string
	for _, c := range p.Calls {
		calls = append(calls, strings.Join(c[1:], " "))
	}
	return calls
}
