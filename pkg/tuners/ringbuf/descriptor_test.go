// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package ringbuf

import (
	"strings"
	"testing"

	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
	"github.com/stretchr/testify/require"
)

func size(v uint32) *uint32 { return &v }

const ethtoolOutput = `Ring parameters for eth0:
Pre-set maximums:
RX:		4096
RX Mini:	n/a
RX Jumbo:	n/a
TX:		4096
Current hardware settings:
RX:		512
RX Mini:	n/a
RX Jumbo:	n/a
TX:		1024
`

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected Descriptor
		empty    bool
	}{
		{
			name:   "it should read max and current sizes of both rings",
			output: ethtoolOutput,
			expected: Descriptor{
				RxMax:     size(4096),
				TxMax:     size(4096),
				RxCurrent: size(512),
				TxCurrent: size(1024),
			},
		},
		{
			name:   "it should read compact output",
			output: "RX: 4096\nTX: 4096\nRX: 512\nTX: 1024",
			expected: Descriptor{
				RxMax:     size(4096),
				TxMax:     size(4096),
				RxCurrent: size(512),
				TxCurrent: size(1024),
			},
		},
		{
			name: "it should leave TX fields nil when TX lines are missing",
			output: `Pre-set maximums:
RX:		2048
Current hardware settings:
RX:		256
`,
			expected: Descriptor{
				RxMax:     size(2048),
				RxCurrent: size(256),
			},
		},
		{
			name:   "it should record a non numeric line as a nil slot and keep scanning",
			output: "RX:\tn/a\nTX:\t4096\nRX:\t128\nTX:\t4096\n",
			expected: Descriptor{
				TxMax:     size(4096),
				RxCurrent: size(128),
				TxCurrent: size(4096),
			},
		},
		{
			name:   "it should require whitespace after the label",
			output: "RX:4096\nTX: 4096\n",
			expected: Descriptor{
				TxMax: size(4096),
			},
		},
		{
			name:   "it should treat a value overflowing 32 bits as missing",
			output: "RX: 4294967296\nTX: 4294967295\n",
			expected: Descriptor{
				TxMax: size(4294967295),
			},
		},
		{
			name:   "it should ignore indented labels and other ring kinds",
			output: "  RX: 4096\nRX Mini: 200\nRX Jumbo: 8192\nTX Push: off\n",
			empty:  true,
		},
		{
			name:   "it should be empty for output without ring sizes",
			output: "Ring parameters for eth0:\n",
			empty:  true,
		},
		{
			name:   "it should be empty for no output",
			output: "",
			empty:  true,
		},
		{
			// The first occurrence is the maximum whatever the section
			// header says: this pins the positional contract with ethtool.
			name:   "it should assign sizes by position, not by section header",
			output: "Current hardware settings:\nRX: 512\nTX: 1024\nPre-set maximums:\nRX: 4096\nTX: 4096\n",
			expected: Descriptor{
				RxMax:     size(512),
				TxMax:     size(1024),
				RxCurrent: size(4096),
				TxCurrent: size(4096),
			},
		},
		{
			name:   "it should ignore occurrences after the second",
			output: "RX: 4096\nRX: 512\nRX: 1\nTX: 4096\nTX: 1024\nTX: 2\n",
			expected: Descriptor{
				RxMax:     size(4096),
				TxMax:     size(4096),
				RxCurrent: size(512),
				TxCurrent: size(1024),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Parse(strings.Split(tt.output, "\n"))
			require.Equal(t, tt.empty, d.Empty())
			if tt.empty {
				return
			}
			require.Equal(t, tt.expected.RxMax, d.RxMax)
			require.Equal(t, tt.expected.TxMax, d.TxMax)
			require.Equal(t, tt.expected.RxCurrent, d.RxCurrent)
			require.Equal(t, tt.expected.TxCurrent, d.TxCurrent)
		})
	}
}

func TestDescriptorByDirection(t *testing.T) {
	d := Parse(strings.Split(ethtoolOutput, "\n"))
	require.Equal(t, size(4096), d.Max(ethtool.RX))
	require.Equal(t, size(512), d.Current(ethtool.RX))
	require.Equal(t, size(4096), d.Max(ethtool.TX))
	require.Equal(t, size(1024), d.Current(ethtool.TX))
}

func TestNilDescriptorIsEmpty(t *testing.T) {
	var d *Descriptor
	require.True(t, d.Empty())
}

func TestDescriptorWithOnlyInvalidLinesIsNotEmpty(t *testing.T) {
	d := Parse([]string{"RX: n/a", "TX: n/a"})
	require.False(t, d.Empty())
	require.Nil(t, d.RxMax)
	require.Nil(t, d.TxMax)
}
