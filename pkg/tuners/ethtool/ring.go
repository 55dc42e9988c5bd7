// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package ethtool

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Direction is a ring keyword accepted by `ethtool -G`.
type Direction string

const (
	RX Direction = "rx"
	TX Direction = "tx"
)

type showRing struct {
	shelltool
}

// ShowRing queries the RX/TX ring parameters of a device (`ethtool -g`).
func ShowRing(path, device string) *showRing {
	s := new(showRing)
	s.command = binary(path)
	s.options = append(s.options, "-g")
	s.arguments = append(s.arguments, device)
	return s
}

type setRing struct {
	shelltool
}

// SetRing changes the ring parameters of a device (`ethtool -G`). At least
// one [setRing.Ring] must be added before building.
func SetRing(path, device string) *setRing {
	s := new(setRing)
	s.command = binary(path)
	s.options = append(s.options, "-G", device)
	return s
}

// Ring sets the ring of the given direction to size entries.
func (s *setRing) Ring(d Direction, size uint32) *setRing {
	if d != RX && d != TX {
		s.error = fmt.Errorf("unknown ring direction %q", d)
		return s
	}
	s.arguments = append(s.arguments, string(d), fmt.Sprint(size))
	return s
}

func (s *setRing) Build(ctx context.Context) (*exec.Cmd, error) {
	if len(s.arguments) == 0 && s.error == nil {
		s.error = errors.New("no ring size to set")
	}
	return s.shelltool.Build(ctx)
}
