// SPDX-License-Identifier: MIT
// Package qasm - Recorder storage & formatting.
//
// Purpose:
//   - Keep the log in one growable buffer; every record call appends, never rewrites.
//   - Format parameters with %.14g so logs diff cleanly across runs.

package qasm

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// paramFormat renders gate parameters.
const paramFormat = "%.14g"

// Recorder is the QASM log of one register.
type Recorder struct {
	numQubits int
	recording bool
	buf       strings.Builder
}

// New returns a Recorder for an n-qubit register, holding only the header.
func New(numQubits int) *Recorder {
	r := &Recorder{numQubits: numQubits}
	r.writeHeader()

	return r
}

func (r *Recorder) writeHeader() {
	fmt.Fprintf(&r.buf, "OPENQASM 2.0;\nqreg q[%d];\ncreg c[%d];\n", r.numQubits, r.numQubits)
}

// Start turns recording on.
func (r *Recorder) Start() { r.recording = true }

// Stop turns recording off; the log is kept.
func (r *Recorder) Stop() { r.recording = false }

// Recording reports whether record calls are appended.
func (r *Recorder) Recording() bool { return r.recording }

// Clear discards everything after the header. The recording flag is kept.
func (r *Recorder) Clear() {
	r.buf.Reset()
	r.writeHeader()
}

// String returns the full log.
func (r *Recorder) String() string { return r.buf.String() }

// WriteTo writes the full log to w.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.buf.String())

	return int64(n), err
}

// WriteFile writes the log to path, replacing any existing file.
func (r *Recorder) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(r.buf.String()), 0o644); err != nil {
		return fmt.Errorf("qasm: WriteFile: %w", err)
	}

	return nil
}

// Gate records "c…c<gate>(p0,p1,…) q[c0],…,q[t0],…;".
func (r *Recorder) Gate(g Gate, controls, targets []int, params ...float64) {
	if !r.recording {
		return
	}
	r.buf.WriteString(strings.Repeat("c", len(controls)))
	r.buf.WriteString(string(g))
	if len(params) > 0 {
		r.buf.WriteByte('(')
		for i, p := range params {
			if i > 0 {
				r.buf.WriteByte(',')
			}
			fmt.Fprintf(&r.buf, paramFormat, p)
		}
		r.buf.WriteByte(')')
	}
	r.buf.WriteByte(' ')
	first := true
	for _, set := range [2][]int{controls, targets} {
		for _, q := range set {
			if !first {
				r.buf.WriteByte(',')
			}
			first = false
			r.buf.WriteString("q[")
			r.buf.WriteString(strconv.Itoa(q))
			r.buf.WriteByte(']')
		}
	}
	r.buf.WriteString(";\n")
}

// Measure records "measure q[k] -> c[k];".
func (r *Recorder) Measure(qubit int) {
	if !r.recording {
		return
	}
	fmt.Fprintf(&r.buf, "measure q[%d] -> c[%d];\n", qubit, qubit)
}

// Comment records "// <text>".
func (r *Recorder) Comment(format string, args ...any) {
	if !r.recording {
		return
	}
	r.buf.WriteString("// ")
	fmt.Fprintf(&r.buf, format, args...)
	r.buf.WriteByte('\n')
}

// InitZero records a reset of every qubit.
func (r *Recorder) InitZero() {
	if !r.recording {
		return
	}
	r.buf.WriteString("reset q;\n")
}

// InitPlus records a reset followed by Hadamards on every qubit.
func (r *Recorder) InitPlus() {
	if !r.recording {
		return
	}
	r.buf.WriteString("reset q;\nh q;\n")
}

// InitClassical records a reset followed by X on every set bit of index.
func (r *Recorder) InitClassical(index int64) {
	if !r.recording {
		return
	}
	r.buf.WriteString("reset q;\n")
	for q := 0; q < r.numQubits; q++ {
		if index>>q&1 == 1 {
			fmt.Fprintf(&r.buf, "x q[%d];\n", q)
		}
	}
}
