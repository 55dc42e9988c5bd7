// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0


package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/ringmax/ringmax/pkg/config"
	"github.com/ringmax/ringmax/pkg/os/proctest"
	"github.com/ringmax/ringmax/pkg/testfs"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		name      string
		device    string
		responses map[string]proctest.Response
		expCode   int
		expOut    string
		expErrOut string
	}{
		{
			name:   "it should succeed when every ring is at its maximum",
			device: "eth0",
			responses: map[string]proctest.Response{
				"-g eth0": {Stdout: "RX:\t4096\nTX:\t4096\nRX:\t4096\nTX:\t4096\n"},
			},
			expCode: 0,
			expOut: "DIRECTION  CURRENT  MAXIMUM  OK\n" +
				"RX         4096     4096     true\n" +
				"TX         4096     4096     true\n",
		},
		{
			name:      "it should fail when a ring is below its maximum",
			device:    "eth0",
			responses: map[string]proctest.Response{"-g eth0": {Stdout: ringParams}},
			expCode:   1,
			expOut: "DIRECTION  CURRENT  MAXIMUM  OK\n" +
				"RX         512      4096     false\n" +
				"TX         1024     4096     false\n",
		},
		{
			name:   "it should not fail on a direction without maximum",
			device: "eth0",
			responses: map[string]proctest.Response{
				"-g eth0": {Stdout: "RX:\t2048\nRX:\t2048\n"},
			},
			expCode: 0,
			expOut: "DIRECTION  CURRENT  MAXIMUM  OK\n" +
				"RX         2048     2048     true\n" +
				"TX         unknown  -        unsupported\n",
		},
		{
			name:   "it should fail when the query fails",
			device: "eth0",
			responses: map[string]proctest.Response{
				"-g eth0": {LaunchErr: errors.New("exec: \"ethtool\": executable file not found in $PATH")},
			},
			expCode:   10,
			expErrOut: "ERROR: Could not retrieve Ring Buffer values\n",
		},
		{
			name:      "it should reject a non Ethernet device",
			device:    "wlan0",
			expCode:   exitNotEthernet,
			expErrOut: "ERROR: wlan0 is not an Ethernet type device\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &proctest.Proc{Responses: tt.responses}
			fs := testfs.SysClassNet(map[string]string{"eth0": "1", "wlan0": "801"})
			// Not root: checking never needs privileges.
			h, stdout, stderr := newTestHost(fs, proc, false)

			code := check(context.Background(), h, config.Default(), tt.device)

			require.Equal(t, tt.expCode, code)
			require.Equal(t, tt.expOut, stdout.String())
			require.Equal(t, tt.expErrOut, stderr.String())
			for _, call := range proc.CallArgs() {
				require.Equal(t, "-g "+tt.device, call)
			}
		})
	}
}
