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
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/ringmax/ringmax/pkg/os"
	"github.com/ringmax/ringmax/pkg/tuners"
	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
	"github.com/ringmax/ringmax/pkg/tuners/executors"
	"github.com/ringmax/ringmax/pkg/tuners/executors/commands"
)

// ExitNoRingValues is the exit code of a run where the ring sizes could not
// be retrieved at all.
const ExitNoRingValues = 10

// ErrNoRingValues is returned when there is no descriptor to apply.
var ErrNoRingValues = errors.New("could not retrieve ring buffer values")

type Writer struct {
	executor    executors.Executor
	proc        os.Proc
	ethtoolPath string
	timeout     time.Duration
	out         io.Writer
	errOut      io.Writer
}

// NewWriter returns a Writer applying ring sizes through executor.
// Progress goes to out and errors to errOut.
func NewWriter(
	executor executors.Executor,
	proc os.Proc,
	ethtoolPath string,
	timeout time.Duration,
	out, errOut io.Writer,
) *Writer {
	return &Writer{
		executor:    executor,
		proc:        proc,
		ethtoolPath: ethtoolPath,
		timeout:     timeout,
		out:         out,
		errOut:      errOut,
	}
}

// Write sets the RX ring, then the TX ring, of intf to their maximum. The
// two are independent: a failure on one does not prevent the other. The
// result exit code is the number of failed directions, or ExitNoRingValues
// when d is empty, in which case nothing is attempted.
func (w *Writer) Write(intf string, d *Descriptor) tuners.TuneResult {
	if d.Empty() {
		fmt.Fprintln(w.errOut, "ERROR: Could not retrieve Ring Buffer values")
		return tuners.NewTuneError(ErrNoRingValues, ExitNoRingValues)
	}

	var (
		failures int
		errs     *multierror.Error
	)
	for _, dir := range []ethtool.Direction{ethtool.RX, ethtool.TX} {
		if err := w.writeDirection(intf, dir, d); err != nil {
			failures++
			errs = multierror.Append(errs, err)
		}
	}
	return tuners.NewPartialTuneResult(failures, errs.ErrorOrNil())
}

func (w *Writer) writeDirection(intf string, dir ethtool.Direction, d *Descriptor) error {
	label := strings.ToUpper(string(dir))
	max := d.Max(dir)
	if max == nil {
		fmt.Fprintf(w.out, "%s Maximum Ring Buffer is invalid, skipped.\n", label)
		return nil
	}
	fmt.Fprintf(w.out, "Setting %s Ring Buffer from %s to %d\n", label, formatSize(d.Current(dir)), *max)

	cmd := commands.NewEthtoolRingSetCmd(w.proc, w.ethtoolPath, intf, dir, *max, w.timeout)
	err := w.executor.Execute(cmd)
	if err == nil {
		return nil
	}
	var exitErr *os.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(w.errOut, "ERROR: ethtool returns non-0 exit code while setting up %s ring buffer: %s\n", label, exitErr.Stderr)
	} else {
		fmt.Fprintf(w.errOut, "ERROR: Failed to set up %s ring buffer: %v\n", label, err)
	}
	return fmt.Errorf("unable to set %s ring of '%s' to %d: %w", label, intf, *max, err)
}
