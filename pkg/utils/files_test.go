// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package utils_test

import (
	"testing"

	"github.com/ringmax/ringmax/pkg/testfs"
	"github.com/ringmax/ringmax/pkg/utils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestReadEnsureSingleLine(t *testing.T) {
	fs := testfs.FromMap(map[string]testfs.Fmode{
		"/sys/class/net/eth0/type":  {Mode: 0o444, Contents: "1\n"},
		"/sys/class/net/eth1/type":  {Mode: 0o444, Contents: ""},
		"/sys/class/net/eth2/type":  {Mode: 0o444, Contents: "1\n1\n"},
		"/sys/class/net/wlan0/type": {Mode: 0o444, Contents: "  801 \n"},
	})
	tests := []struct {
		name   string
		path   string
		exp    string
		expErr string
	}{
		{name: "single line", path: "/sys/class/net/eth0/type", exp: "1"},
		{name: "trimmed", path: "/sys/class/net/wlan0/type", exp: "801"},
		{name: "empty", path: "/sys/class/net/eth1/type", expErr: "/sys/class/net/eth1/type is empty"},
		{name: "multiple lines", path: "/sys/class/net/eth2/type", expErr: "/sys/class/net/eth2/type contains multiple lines"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ReadEnsureSingleLine(fs, tt.path)
			if tt.expErr != "" {
				require.EqualError(t, err, tt.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.exp, got)
		})
	}
}

func TestReadFileLinesMissing(t *testing.T) {
	_, err := utils.ReadFileLines(afero.NewMemMapFs(), "/sys/class/net/eth9/type")
	require.Error(t, err)
}
