// SPDX-License-Identifier: MIT

// Package qasm keeps an append-only OPENQASM 2.0 mirror of the operations
// applied to a register.
//
// A Recorder starts with the header
//
//	OPENQASM 2.0;
//	qreg q[N];
//	creg c[N];
//
// and appends one line per recorded gate while recording is on. Operations
// without a QASM equivalent (general matrices, channels, phase functions) are
// recorded as "//" comments so the log still shows where they happened.
//
// Recording is off by default. A Recorder is not safe for concurrent use; it
// follows the single-writer discipline of the register that owns it.
package qasm
