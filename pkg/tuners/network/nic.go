// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

//go:build !windows

package network

import (
	"errors"
	"fmt"
	"path"
	"sort"

	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
	"github.com/ringmax/ringmax/pkg/utils"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Nic interface {
	Name() string
	// Type returns the ARPHRD_* link type code of the interface.
	Type() (string, error)
	// IsEthernet reports whether the interface exists and is of Ethernet
	// type. Any read error yields false.
	IsEthernet() bool
	IsHwInterface() bool
	Driver() (string, error)
}

type nic struct {
	fs      afero.Fs
	dir     string
	ethtool ethtool.EthtoolWrapper
	name    string
}

// NewNic returns the interface called name, as exposed under dir
// (usually SysClassNetDir). ethtool may be nil when the driver is not
// needed.
func NewNic(
	fs afero.Fs, dir string, ethtool ethtool.EthtoolWrapper, name string,
) Nic {
	if dir == "" {
		dir = SysClassNetDir
	}
	return &nic{
		fs:      fs,
		dir:     dir,
		ethtool: ethtool,
		name:    name,
	}
}

func (n *nic) Name() string {
	return n.name
}

func (n *nic) Type() (string, error) {
	return utils.ReadEnsureSingleLine(n.fs, path.Join(n.dir, n.name, "type"))
}

func (n *nic) IsEthernet() bool {
	zap.L().Sugar().Debugf("Checking if '%s' is an Ethernet interface", n.name)
	typ, err := n.Type()
	if err != nil {
		zap.L().Sugar().Debugf("Unable to read '%s' type: %v", n.name, err)
		return false
	}
	zap.L().Sugar().Debugf("'%s' has link type '%s'", n.name, typ)
	return typ == TypeEthernet
}

func (n *nic) IsHwInterface() bool {
	exists, _ := afero.Exists(n.fs, path.Join(n.dir, n.name, "device"))
	return exists
}

func (n *nic) Driver() (string, error) {
	if n.ethtool == nil {
		return "", errors.New("ethtool is not available")
	}
	return n.ethtool.DriverName(n.name)
}

// ListNics returns every interface found under dir, sorted by name.
func ListNics(
	fs afero.Fs, dir string, ethtool ethtool.EthtoolWrapper,
) ([]Nic, error) {
	if dir == "" {
		dir = SysClassNetDir
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("unable to list network interfaces: %w", err)
	}
	var names []string
	for _, e := range entries {
		// bonding_masters is a file living next to the interfaces.
		if e.Name() == "bonding_masters" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	nics := make([]Nic, 0, len(names))
	for _, name := range names {
		nics = append(nics, NewNic(fs, dir, ethtool, name))
	}
	return nics, nil
}
