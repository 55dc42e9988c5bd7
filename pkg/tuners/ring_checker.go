// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package tuners

import (
	"errors"
	"strconv"
)

// ErrRingUnsupported is the check error of a ring whose maximum size the
// driver does not report.
var ErrRingUnsupported = errors.New("maximum ring size not reported by the device")

// NewRingSizeChecker returns a checker passing when a ring's current size
// is its maximum. getSizes returns nil for sizes the device did not report.
func NewRingSizeChecker(
	id CheckerID,
	desc string,
	severity Severity,
	getSizes func() (current, max *uint32, err error),
) Checker {
	return &ringSizeChecker{
		id:       id,
		desc:     desc,
		severity: severity,
		getSizes: getSizes,
	}
}

type ringSizeChecker struct {
	id       CheckerID
	desc     string
	severity Severity
	getSizes func() (current, max *uint32, err error)
}

func (c *ringSizeChecker) ID() CheckerID {
	return c.id
}

func (c *ringSizeChecker) GetDesc() string {
	return c.desc
}

func (c *ringSizeChecker) GetSeverity() Severity {
	return c.severity
}

func (c *ringSizeChecker) GetRequiredAsString() string {
	_, max, err := c.getSizes()
	if err != nil || max == nil {
		return ""
	}
	return formatSize(max)
}

func (c *ringSizeChecker) Check() *CheckResult {
	res := &CheckResult{
		CheckerID: c.ID(),
		Desc:      c.GetDesc(),
		Severity:  c.GetSeverity(),
	}
	current, max, err := c.getSizes()
	if err != nil {
		res.Err = err
		return res
	}
	res.Current = formatSize(current)
	if max == nil {
		res.Err = ErrRingUnsupported
		return res
	}
	res.Required = formatSize(max)
	res.IsOk = current != nil && *current == *max
	return res
}

func formatSize(size *uint32) string {
	if size == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*size), 10)
}
