// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package executors_test

import (
	"testing"
	"time"

	"github.com/ringmax/ringmax/pkg/os/proctest"
	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
	"github.com/ringmax/ringmax/pkg/tuners/executors"
	"github.com/ringmax/ringmax/pkg/tuners/executors/commands"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestDirectExecutor(t *testing.T) {
	proc := &proctest.Proc{}
	exec := executors.NewDirectExecutor()
	require.False(t, exec.IsLazy())

	err := exec.Execute(commands.NewEthtoolRingSetCmd(proc, "", "eth0", ethtool.RX, 2048, time.Second))
	require.NoError(t, err)
	require.Equal(t, []string{"-G eth0 rx 2048"}, proc.CallArgs())
}

func TestScriptRenderingExecutor(t *testing.T) {
	const scriptPath = "/tune.sh"
	fs := afero.NewMemMapFs()
	proc := &proctest.Proc{}
	exec, err := executors.NewScriptRenderingExecutor(fs, scriptPath)
	require.NoError(t, err)
	require.True(t, exec.IsLazy())

	require.NoError(t, exec.Execute(commands.NewEthtoolRingSetCmd(proc, "", "eth0", ethtool.RX, 4096, time.Second)))
	require.NoError(t, exec.Execute(commands.NewEthtoolRingSetCmd(proc, "/sbin/ethtool", "eth0", ethtool.TX, 4096, time.Second)))
	require.Empty(t, proc.Calls)

	contents, err := afero.ReadFile(fs, scriptPath)
	require.NoError(t, err)
	require.Exactly(t, `#!/bin/sh

# Ring buffer tuning script
# ----------------------------------
# This file was autogenerated by ringmax

ethtool -G eth0 rx 4096
/sbin/ethtool -G eth0 tx 4096
`, string(contents))
}

func TestScriptRenderingExecutorTruncates(t *testing.T) {
	const scriptPath = "/tune.sh"
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, scriptPath, []byte("stale\n"), 0o644))

	_, err := executors.NewScriptRenderingExecutor(fs, scriptPath)
	require.NoError(t, err)

	contents, err := afero.ReadFile(fs, scriptPath)
	require.NoError(t, err)
	require.NotContains(t, string(contents), "stale")
}
