// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0


// Package config contains ringmax's configuration: where ethtool lives, how
// long it may run, and where the sysfs network class directory is mounted.
package config

import "time"

const (
	DefaultEthtoolPath    = "ethtool"
	DefaultEthtoolTimeout = 10 * time.Second
	DefaultSysfsNetDir    = "/sys/class/net"
)

type Config struct {
	Ethtool Ethtool `yaml:"ethtool"`
	Sysfs   Sysfs   `yaml:"sysfs"`

	fileLocation string
}

type Ethtool struct {
	Path    string        `yaml:"path,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

type Sysfs struct {
	NetDir string `yaml:"net_dir,omitempty"`
}

// Default returns the configuration used when no file or override is given.
func Default() *Config {
	return &Config{
		Ethtool: Ethtool{
			Path:    DefaultEthtoolPath,
			Timeout: DefaultEthtoolTimeout,
		},
		Sysfs: Sysfs{
			NetDir: DefaultSysfsNetDir,
		},
	}
}

// FileLocation returns the path of the file the config was loaded from, or
// an empty string if no file was found.
func (c *Config) FileLocation() string {
	return c.fileLocation
}

func (c *Config) addUnsetDefaults() {
	if c.Ethtool.Path == "" {
		c.Ethtool.Path = DefaultEthtoolPath
	}
	if c.Ethtool.Timeout <= 0 {
		c.Ethtool.Timeout = DefaultEthtoolTimeout
	}
	if c.Sysfs.NetDir == "" {
		c.Sysfs.NetDir = DefaultSysfsNetDir
	}
}
