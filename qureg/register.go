// SPDX-License-Identifier: MIT

package qureg

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsim/env"
	"github.com/katalvlaran/qsim/qasm"
)

// Register is an N-qubit state-vector or density matrix.
//
// Storage:
//   - state-vector: 2^N amplitudes, amps[i] = <i|ψ>;
//   - density matrix: 2^(2N) amplitudes, column-stacked: ρ[r,c] = amps[r + c·2^N].
//
// A Register is not safe for concurrent use. Operations are atomic from the
// caller's view: a failed call leaves the amplitudes unchanged.
type Register struct {
	id  uuid.UUID
	env *env.Env
	log *zap.Logger

	numQubits   int // represented qubits N
	storeQubits int // N, or 2N for density matrices
	isDensity   bool
	eps         float64

	amps []complex128
	qasm *qasm.Recorder

	closed bool
}

// New creates an N-qubit state-vector in |0…0>.
//
// Errors: ErrNilArgument, ErrInvalidNumQubits, ErrAllocation.
func New(e *env.Env, numQubits int) (*Register, error) {
	return newRegister(e, numQubits, false)
}

// NewDensity creates an N-qubit density matrix in |0…0><0…0|.
//
// Errors: ErrNilArgument, ErrInvalidNumQubits, ErrAllocation.
func NewDensity(e *env.Env, numQubits int) (*Register, error) {
	return newRegister(e, numQubits, true)
}

func newRegister(e *env.Env, numQubits int, density bool) (*Register, error) {
	op := opNew
	if density {
		op = opNewDensity
	}
	if e == nil {
		return nil, fmt.Errorf("qureg.%s: nil environment: %w", op, ErrNilArgument)
	}
	if numQubits < 1 {
		return nil, fmt.Errorf("qureg.%s(%d): %w", op, numQubits, ErrInvalidNumQubits)
	}
	store := numQubits
	if density {
		store *= 2
	}
	if store > e.MaxQubits() {
		return nil, fmt.Errorf("qureg.%s(%d): %d storage qubits exceed limit %d: %w",
			op, numQubits, store, e.MaxQubits(), ErrAllocation)
	}
	amps, err := allocAmps(1 << store)
	if err != nil {
		return nil, fmt.Errorf("qureg.%s(%d): %w", op, numQubits, err)
	}
	amps[0] = 1

	r := &Register{
		id:          uuid.New(),
		env:         e,
		numQubits:   numQubits,
		storeQubits: store,
		isDensity:   density,
		eps:         e.Epsilon(),
		amps:        amps,
		qasm:        qasm.New(numQubits),
	}
	r.log = e.Logger().With(zap.String("register", r.id.String()))
	e.Acquire(r.kind(), len(amps))
	r.log.Debug("register created",
		zap.Int("qubits", numQubits),
		zap.Bool("density", density),
		zap.Int("amps", len(amps)),
	)

	return r, nil
}

// allocAmps converts an allocation panic into ErrAllocation. Out-of-memory
// aborts of the runtime itself cannot be recovered.
func allocAmps(n int) (amps []complex128, err error) {
	defer func() {
		if p := recover(); p != nil {
			amps, err = nil, fmt.Errorf("%d amplitudes: %v: %w", n, p, ErrAllocation)
		}
	}()

	return make([]complex128, n), nil
}

// Close releases the amplitude store. Calling Close twice is a no-op.
func (r *Register) Close() error {
	if r.closed {
		return nil
	}
	r.env.Release(len(r.amps))
	r.log.Debug("register closed", zap.Int("amps", len(r.amps)))
	r.amps = nil
	r.closed = true

	return nil
}

// mustOpen panics on use after Close.
func (r *Register) mustOpen() {
	if r.closed {
		panic("qureg: use of closed register " + r.id.String())
	}
}

// fail logs a rejected call and wraps err with the operation name.
func (r *Register) fail(op string, err error) error {
	r.log.Debug("operation rejected", zap.String("op", op), zap.Error(err))

	return fmt.Errorf("qureg.%s: %w", op, err)
}

// done counts a successful operation.
func (r *Register) done(op string) {
	r.env.Metrics().Operation(op)
}

func (r *Register) kind() string {
	if r.isDensity {
		return env.KindDensityMatrix
	}

	return env.KindStateVector
}

func (r *Register) shape() string {
	return fmt.Sprintf("%d-qubit %s", r.numQubits, r.kind())
}

// ID returns the register identity used in logs.
func (r *Register) ID() uuid.UUID { return r.id }

// Env returns the environment the register was created against.
func (r *Register) Env() *env.Env { return r.env }

// NumQubits returns N.
func (r *Register) NumQubits() int { return r.numQubits }

// NumAmpsTotal returns 2^N for a state-vector, 2^(2N) for a density matrix.
func (r *Register) NumAmpsTotal() int {
	r.mustOpen()

	return len(r.amps)
}

// IsDensityMatrix reports the register kind.
func (r *Register) IsDensityMatrix() bool { return r.isDensity }

// Amplitudes returns a copy of the raw store in index order.
func (r *Register) Amplitudes() []complex128 {
	r.mustOpen()

	return append([]complex128(nil), r.amps...)
}

// GetAmp returns amplitude index of a state-vector.
//
// Errors: ErrNotStateVector, ErrInvalidIndex.
func (r *Register) GetAmp(index int) (complex128, error) {
	r.mustOpen()
	if err := r.requireStateVector(); err != nil {
		return 0, r.fail(opGetAmp, err)
	}
	if index < 0 || index >= len(r.amps) {
		return 0, r.fail(opGetAmp, fmt.Errorf("index %d: %w", index, ErrInvalidIndex))
	}

	return r.amps[index], nil
}

// GetRealAmp returns Re(amp[index]) of a state-vector.
func (r *Register) GetRealAmp(index int) (float64, error) {
	a, err := r.GetAmp(index)

	return real(a), err
}

// GetImagAmp returns Im(amp[index]) of a state-vector.
func (r *Register) GetImagAmp(index int) (float64, error) {
	a, err := r.GetAmp(index)

	return imag(a), err
}

// GetProbAmp returns |amp[index]|² of a state-vector.
func (r *Register) GetProbAmp(index int) (float64, error) {
	a, err := r.GetAmp(index)

	return real(a)*real(a) + imag(a)*imag(a), err
}

// GetDensityAmp returns ρ[row, col] of a density matrix.
//
// Errors: ErrNotDensityMatrix, ErrInvalidIndex.
func (r *Register) GetDensityAmp(row, col int) (complex128, error) {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return 0, r.fail(opGetDensityAmp, err)
	}
	dim := 1 << r.numQubits
	if row < 0 || row >= dim || col < 0 || col >= dim {
		return 0, r.fail(opGetDensityAmp, fmt.Errorf("(%d,%d): %w", row, col, ErrInvalidIndex))
	}

	return r.amps[row+col*dim], nil
}
