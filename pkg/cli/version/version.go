// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0


package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Default build-time variables, passed via ldflags.
var (
	version   string // Semver of ringmax.
	rev       string // Short git SHA.
	buildTime string // Timestamp of build time, RFC3339.
	hostOs    string // OS that was used to built ringmax (go env GOHOSTOS).
	hostArch  string // Arch that was used to built ringmax (go env GOHOSTARCH).
)

type ringmaxVersion struct {
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	GitRef    string `json:"git_ref,omitempty" yaml:"git_ref,omitempty"`
	BuildTime string `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	GoVersion string `json:"go_version,omitempty" yaml:"go_version,omitempty"`
	OsArch    string `json:"os_arch,omitempty" yaml:"os_arch,omitempty"`
}

func Pretty() string {
	return fmt.Sprintf("%s (rev %s)", version, rev)
}

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the current ringmax version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout(), current())
		},
	}
}

func current() ringmaxVersion {
	return ringmaxVersion{
		Version:   version,
		GitRef:    rev,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		OsArch:    fmt.Sprintf("%s/%s", hostOs, hostArch),
	}
}

func printVersion(w io.Writer, rv ringmaxVersion) {
	fmt.Fprintf(w, `Version:     %s
Git ref:     %s
Build date:  %s
OS/Arch:     %s
Go version:  %s
`, rv.Version, rv.GitRef, rv.BuildTime, rv.OsArch, rv.GoVersion)
}
