// SPDX-License-Identifier: MIT

// Package qureg simulates N-qubit quantum registers.
//
// A Register holds either a pure state-vector of 2^N amplitudes or a density
// matrix of 2^(2N) amplitudes, stored column-stacked so that one set of
// kernels serves both: a gate U acts on the row qubits as U and on the column
// qubits as conj(U), realising ρ → UρU†.
//
// Operation groups:
//   - construction and initialisation: New, NewDensity, Init*, SetAmps, Clone;
//   - gates: fixed gates, rotations, (multi-)controlled and multi-qubit
//     unitaries, Pauli-tensor rotations;
//   - general matrices: ApplyMatrix*, which left-multiply density matrices;
//   - measurement: CalcProbOfOutcome, CollapseToOutcome, Measure, ApplyProjector;
//   - noise (density matrices only): Mix* channels and Kraus maps;
//   - derived quantities: CalcTotalProb, CalcPurity, CalcFidelity, inner
//     products and Pauli expectation values;
//   - structured transforms: phase functions, QFT, Trotter circuits;
//   - reports and the QASM log.
//
// Error model:
//   - Every fallible operation validates all of its input before touching the
//     amplitudes and returns an error wrapping a reason sentinel
//     (ErrInvalidQubit, ErrNotUnitary, ...) that also matches its kind
//     (ErrInvalidInput, ErrArrayLength, ErrZeroProbability, ErrIO).
//   - Using a Register after Close panics.
//
// Concurrency: a Register is single-writer. Kernels fan out internally over
// the environment's workers and return only when every partition is done.
//
// Example:
//
//	e, _ := env.New(env.WithSeed(42))
//	defer e.Close()
//	q, _ := qureg.New(e, 2)
//	defer q.Close()
//	_ = q.Hadamard(0)
//	_ = q.ControlledNot(0, 1)
//	p, _ := q.GetProbAmp(3) // 0.5
package qureg
