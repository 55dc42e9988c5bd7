// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

// Package testfs builds in-memory filesystems mimicking sysfs for tests.
package testfs

import (
	"io/fs"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// Fmode is the mode and contents of a file.
type Fmode struct {
	Mode     fs.FileMode
	Contents string
}

// FromMap returns an afero.MemMapFs holding the given files. Parent
// directories are created as needed; paths ending in / are created as
// empty directories.
func FromMap(m map[string]Fmode) afero.Fs {
	mmfs := afero.NewMemMapFs()
	for p, fmode := range m {
		if strings.HasSuffix(p, "/") {
			mmfs.MkdirAll(p, 0o755)
			continue
		}
		mmfs.MkdirAll(path.Dir(p), 0o755)
		afero.WriteFile(mmfs, p, []byte(fmode.Contents), fmode.Mode)
	}
	return mmfs
}

// SysClassNet returns a filesystem with one /sys/class/net/<name>/type
// attribute per entry, holding the given link type code followed by a
// newline, as the kernel writes it.
func SysClassNet(types map[string]string) afero.Fs {
	m := make(map[string]Fmode, len(types))
	for name, typ := range types {
		m[path.Join("/sys/class/net", name, "type")] = Fmode{Mode: 0o444, Contents: typ + "\n"}
	}
	return FromMap(m)
}
