// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package os_test

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/ringmax/ringmax/pkg/os"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		cmd        *exec.Cmd
		expStdout  []string
		expStderr  string
		expExit    int
		expLaunchF bool
	}{
		{
			name:      "it should capture stdout line by line",
			cmd:       exec.Command("sh", "-c", "printf 'RX: 1\\nTX: 2\\n'"),
			expStdout: []string{"RX: 1", "TX: 2", ""},
		},
		{
			name:      "it should return an exit error carrying stderr",
			cmd:       exec.Command("sh", "-c", "echo 'netlink error: Operation not permitted' >&2; exit 80"),
			expStdout: []string{""},
			expStderr: "netlink error: Operation not permitted",
			expExit:   80,
		},
		{
			name:       "it should fail to launch a missing binary",
			cmd:        exec.Command("/nonexistent/ethtool", "-g", "eth0"),
			expLaunchF: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := os.NewProc().Run(tt.cmd)
			if tt.expLaunchF {
				require.Error(t, err)
				require.Nil(t, out)
				var exitErr *os.ExitError
				require.False(t, errors.As(err, &exitErr))
				return
			}
			require.NotNil(t, out)
			require.Equal(t, tt.expStdout, out.Stdout)
			require.Equal(t, tt.expStderr, out.Stderr)
			if tt.expExit == 0 {
				require.NoError(t, err)
				return
			}
			var exitErr *os.ExitError
			require.True(t, errors.As(err, &exitErr))
			require.Equal(t, tt.expExit, exitErr.ExitCode)
			require.Equal(t, tt.expStderr, exitErr.Stderr)
		})
	}
}

func TestRunStripsLdLibraryPath(t *testing.T) {
	t.Setenv("LD_LIBRARY_PATH", "/opt/vendor/lib")
	out, err := os.NewProc().Run(exec.Command("sh", "-c", "echo \"${LD_LIBRARY_PATH:-unset}\""))
	require.NoError(t, err)
	require.Equal(t, "unset", out.Stdout[0])
}

func TestExitErrorMessage(t *testing.T) {
	err := &os.ExitError{Command: "ethtool -G eth0 rx 4096", ExitCode: 1}
	require.EqualError(t, err, "ethtool -G eth0 rx 4096 exited with status 1")
	err.Stderr = "Invalid argument"
	require.EqualError(t, err, "ethtool -G eth0 rx 4096 exited with status 1: Invalid argument")
}
