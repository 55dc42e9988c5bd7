// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

// Package ringbuf reads the RX/TX descriptor ring sizes of a network
// interface from ethtool(8) and raises them to the hardware maximum.
package ringbuf

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
)

// Descriptor holds the ring sizes reported for an interface. A nil field
// was not reported, or not as a number.
type Descriptor struct {
	RxMax     *uint32
	TxMax     *uint32
	RxCurrent *uint32
	TxCurrent *uint32

	// labeled counts the RX:/TX: lines seen, valid or not.
	labeled int
}

// Empty reports whether no ring size line at all was found.
func (d *Descriptor) Empty() bool {
	return d == nil || d.labeled == 0
}

// Max returns the maximum size of the direction's ring, nil if unknown.
func (d *Descriptor) Max(dir ethtool.Direction) *uint32 {
	if dir == ethtool.TX {
		return d.TxMax
	}
	return d.RxMax
}

// Current returns the current size of the direction's ring, nil if unknown.
func (d *Descriptor) Current(dir ethtool.Direction) *uint32 {
	if dir == ethtool.TX {
		return d.TxCurrent
	}
	return d.RxCurrent
}

var (
	rxPattern = regexp.MustCompile(`^RX:\s+(\d+)`)
	txPattern = regexp.MustCompile(`^TX:\s+(\d+)`)
)

// Parse reads the output of `ethtool -g`:
//
//	Ring parameters for eth0:
//	Pre-set maximums:
//	RX:             4096
//	RX Mini:        n/a
//	RX Jumbo:       n/a
//	TX:             4096
//	Current hardware settings:
//	RX:             512
//	RX Mini:        n/a
//	RX Jumbo:       n/a
//	TX:             1024
//
// ethtool prints no section markers we can rely on across versions, so the
// sections are told apart by position only: the first "RX:" line is the
// maximum and the second the current size, and likewise for "TX:". Further
// occurrences are ignored. A labeled line without a number leaves its slot
// nil. If ethtool ever reorders its output this silently swaps max and
// current.
func Parse(lines []string) *Descriptor {
	d := new(Descriptor)
	var rx, tx int
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "RX:"):
			d.labeled++
			fillSlot(rx, rxPattern, line, &d.RxMax, &d.RxCurrent)
			rx++
		case strings.HasPrefix(line, "TX:"):
			d.labeled++
			fillSlot(tx, txPattern, line, &d.TxMax, &d.TxCurrent)
			tx++
		}
	}
	return d
}

func fillSlot(seen int, pattern *regexp.Regexp, line string, max, current **uint32) {
	var slot **uint32
	switch seen {
	case 0:
		slot = max
	case 1:
		slot = current
	default:
		return
	}
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	v, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return
	}
	size := uint32(v)
	*slot = &size
}
