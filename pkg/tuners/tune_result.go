// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package tuners

// TuneResult is the outcome of a tuning run, convertible into a process
// exit status.
type TuneResult interface {
	IsFailed() bool
	Error() error
	// ExitCode is 0 on success; otherwise either a sentinel code or the
	// number of failed operations.
	ExitCode() int
}

type tuneResult struct {
	err  error
	code int
}

// NewTuneResult returns a successful result.
func NewTuneResult() TuneResult {
	return &tuneResult{}
}

// NewTuneError returns a failed result with the given exit code.
func NewTuneError(err error, code int) TuneResult {
	return &tuneResult{err: err, code: code}
}

// NewPartialTuneResult returns the result of a run in which failures
// independent operations failed, err aggregating their errors.
func NewPartialTuneResult(failures int, err error) TuneResult {
	if failures == 0 {
		return &tuneResult{}
	}
	return &tuneResult{err: err, code: failures}
}

func (result *tuneResult) IsFailed() bool {
	return result.err != nil
}

func (result *tuneResult) Error() error {
	return result.err
}

func (result *tuneResult) ExitCode() int {
	return result.code
}
