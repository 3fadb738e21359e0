// SPDX-License-Identifier: MIT

package qureg

import (
	"fmt"
	"io"
)

// StartRecordingQASM starts mirroring operations into the QASM log.
func (r *Register) StartRecordingQASM() {
	r.mustOpen()
	r.qasm.Start()
}

// StopRecordingQASM stops mirroring; the log is kept.
func (r *Register) StopRecordingQASM() {
	r.mustOpen()
	r.qasm.Stop()
}

// ClearRecordedQASM drops everything logged after the header.
func (r *Register) ClearRecordedQASM() {
	r.mustOpen()
	r.qasm.Clear()
}

// RecordedQASM returns the current log.
func (r *Register) RecordedQASM() string {
	r.mustOpen()

	return r.qasm.String()
}

// PrintRecordedQASM writes the log to w.
func (r *Register) PrintRecordedQASM(w io.Writer) error {
	r.mustOpen()
	if _, err := r.qasm.WriteTo(w); err != nil {
		return fmt.Errorf("qureg.PrintRecordedQASM: %w: %w", err, ErrIO)
	}

	return nil
}

// WriteRecordedQASMToFile writes the log to path, replacing any existing file.
//
// Errors: ErrIO.
func (r *Register) WriteRecordedQASMToFile(path string) error {
	r.mustOpen()
	if err := r.qasm.WriteFile(path); err != nil {
		return r.fail(opWriteRecordedQASMToFile, fmt.Errorf("%w: %w", err, ErrIO))
	}
	r.done(opWriteRecordedQASMToFile)

	return nil
}
