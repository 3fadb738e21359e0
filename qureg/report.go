// SPDX-License-Identifier: MIT
// Package qureg - state and parameter reports.
//
// The CSV layout is fixed for downstream tooling: a "real, imag" header, then
// one "<real>, <imag>" line per stored amplitude in index order.

package qureg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

const (
	// StateFileName is where ReportState writes; single process, rank 0.
	StateFileName = "state_rank_0.csv"

	// MaxScreenReportQubits bounds the storage qubits ReportStateToScreen prints.
	MaxScreenReportQubits = 5

	ampFormat = "%.14f, %.14f\n"
)

// ReportState writes the amplitudes to StateFileName in the working directory.
//
// Errors: ErrIO.
func (r *Register) ReportState() error {
	r.mustOpen()
	f, err := os.Create(StateFileName)
	if err != nil {
		return r.fail(opReportState, fmt.Errorf("%w: %w", err, ErrIO))
	}
	werr := r.writeState(f)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return r.fail(opReportState, fmt.Errorf("%s: %w: %w", StateFileName, werr, ErrIO))
	}
	r.done(opReportState)

	return nil
}

// ReportStateTo writes the CSV dump to w.
func (r *Register) ReportStateTo(w io.Writer) error {
	r.mustOpen()
	if err := r.writeState(w); err != nil {
		return r.fail(opReportState, fmt.Errorf("%w: %w", err, ErrIO))
	}

	return nil
}

func (r *Register) writeState(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("real, imag\n"); err != nil {
		return err
	}
	for _, a := range r.amps {
		if _, err := fmt.Fprintf(bw, ampFormat, real(a), imag(a)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReportStateToScreen prints the amplitudes framed by a rank header. Only
// registers of at most MaxScreenReportQubits storage qubits are printed.
//
// Errors: ErrTooManyQubits, ErrIO.
func (r *Register) ReportStateToScreen(w io.Writer, rank int) error {
	r.mustOpen()
	if r.storeQubits > MaxScreenReportQubits {
		return r.fail(opReportStateToScreen,
			fmt.Errorf("%d storage qubits, at most %d are printed: %w", r.storeQubits, MaxScreenReportQubits, ErrTooManyQubits))
	}
	if _, err := fmt.Fprintf(w, "Reporting state from rank %d [\n", rank); err != nil {
		return r.fail(opReportStateToScreen, fmt.Errorf("%w: %w", err, ErrIO))
	}
	if err := r.writeState(w); err != nil {
		return r.fail(opReportStateToScreen, fmt.Errorf("%w: %w", err, ErrIO))
	}
	if _, err := fmt.Fprintln(w, "]"); err != nil {
		return r.fail(opReportStateToScreen, fmt.Errorf("%w: %w", err, ErrIO))
	}
	r.done(opReportStateToScreen)

	return nil
}

// ReportQuregParams writes a table of the register's dimensions to w.
func (r *Register) ReportQuregParams(w io.Writer) error {
	r.mustOpen()
	if _, err := fmt.Fprintln(w, "QUBITS:"); err != nil {
		return r.fail(opReportQuregParams, fmt.Errorf("%w: %w", err, ErrIO))
	}
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Property", "Value"})
	t.SetAutoFormatHeaders(false)
	t.AppendBulk([][]string{
		{"Register", r.id.String()},
		{"Kind", r.kind()},
		{"Number of qubits", strconv.Itoa(r.numQubits)},
		{"Number of amps", strconv.Itoa(len(r.amps))},
		{"Number of amps per rank", strconv.Itoa(len(r.amps))},
		{"QASM recording", strconv.FormatBool(r.qasm.Recording())},
	})
	t.Render()
	r.done(opReportQuregParams)

	return nil
}
