// SPDX-License-Identifier: MIT
// Package qureg - state initialisation and raw amplitude writes.
//
// The Init* operations without caller data always succeed; the rest validate
// fully before writing. No operation here renormalises.

package qureg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// InitZeroState sets |0…0> (or |0…0><0…0|).
func (r *Register) InitZeroState() {
	r.mustOpen()
	clear(r.amps)
	r.amps[0] = 1
	r.qasm.InitZero()
	r.done(opInitZeroState)
}

// InitPlusState sets the uniform superposition: every state-vector amplitude
// 1/√(2^N), every density entry 1/2^N.
func (r *Register) InitPlusState() {
	r.mustOpen()
	dim := float64(int(1) << r.numQubits)
	v := complex(1/math.Sqrt(dim), 0)
	if r.isDensity {
		v = complex(1/dim, 0)
	}
	amps := r.amps
	r.parallelFor(len(amps), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			amps[i] = v
		}
	})
	r.qasm.InitPlus()
	r.done(opInitPlusState)
}

// InitBlankState zeroes every amplitude (an unphysical accumulator).
func (r *Register) InitBlankState() {
	r.mustOpen()
	clear(r.amps)
	r.qasm.Comment("blank state: every amplitude zeroed")
	r.done(opInitBlankState)
}

// InitDebugState sets amps[n] = 2n/10 + i(2n+1)/10 over the raw store.
func (r *Register) InitDebugState() {
	r.mustOpen()
	amps := r.amps
	r.parallelFor(len(amps), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			amps[i] = complex(float64(2*i)/10, float64(2*i+1)/10)
		}
	})
	r.qasm.Comment("debug state")
	r.done(opInitDebugState)
}

// InitClassicalState sets basis state |index> (or |index><index|).
//
// Errors: ErrInvalidIndex when index ∉ [0, 2^N).
func (r *Register) InitClassicalState(index int) error {
	r.mustOpen()
	dim := 1 << r.numQubits
	if index < 0 || index >= dim {
		return r.fail(opInitClassicalState, fmt.Errorf("index %d not in [0,%d): %w", index, dim, ErrInvalidIndex))
	}
	clear(r.amps)
	if r.isDensity {
		r.amps[index*(dim+1)] = 1
	} else {
		r.amps[index] = 1
	}
	r.qasm.InitClassical(int64(index))
	r.done(opInitClassicalState)

	return nil
}

// InitPureState copies the state-vector pure into r, or sets r = |pure><pure|
// when r is a density matrix.
//
// Errors: ErrNilArgument, ErrNotStateVector (pure is a density matrix),
// ErrDimensionMismatch.
func (r *Register) InitPureState(pure *Register) error {
	r.mustOpen()
	if pure == nil {
		return r.fail(opInitPureState, ErrNilArgument)
	}
	pure.mustOpen()
	if pure.isDensity {
		return r.fail(opInitPureState, fmt.Errorf("source: %w", ErrNotStateVector))
	}
	if pure.numQubits != r.numQubits {
		return r.fail(opInitPureState, fmt.Errorf("%s vs %s: %w", r.shape(), pure.shape(), ErrDimensionMismatch))
	}
	if !r.isDensity {
		copy(r.amps, pure.amps)
	} else {
		dim := 1 << r.numQubits
		psi, amps := pure.amps, r.amps
		r.parallelFor(len(amps), func(_, lo, hi int) {
			for i := lo; i < hi; i++ {
				amps[i] = psi[i&(dim-1)] * cmplx.Conj(psi[i>>r.numQubits])
			}
		})
	}
	r.qasm.Comment("state set from caller data")
	r.done(opInitPureState)

	return nil
}

// InitStateFromAmps overwrites every state-vector amplitude. Entries beyond
// 2^N are ignored.
//
// Errors: ErrNotStateVector, ErrArrayLength (either slice shorter than 2^N).
func (r *Register) InitStateFromAmps(reals, imags []float64) error {
	r.mustOpen()
	if err := r.requireStateVector(); err != nil {
		return r.fail(opInitStateFromAmps, err)
	}
	n := len(r.amps)
	if len(reals) < n || len(imags) < n {
		return r.fail(opInitStateFromAmps,
			fmt.Errorf("%d reals, %d imags for %d amplitudes: %w", len(reals), len(imags), n, ErrArrayLength))
	}
	for i := range r.amps {
		r.amps[i] = complex(reals[i], imags[i])
	}
	r.qasm.Comment("state set from caller data")
	r.done(opInitStateFromAmps)

	return nil
}

// SetAmps overwrites len(reals) state-vector amplitudes from start.
//
// Errors: ErrArrayLength (len(reals) != len(imags)), ErrNotStateVector,
// ErrInvalidIndex (start out of range), ErrArrayLength (range overruns the store).
func (r *Register) SetAmps(start int, reals, imags []float64) error {
	r.mustOpen()
	if len(reals) != len(imags) {
		return r.fail(opSetAmps, fmt.Errorf("%d reals vs %d imags: %w", len(reals), len(imags), ErrArrayLength))
	}
	if err := r.requireStateVector(); err != nil {
		return r.fail(opSetAmps, err)
	}
	if err := r.validateRange(start, len(reals)); err != nil {
		return r.fail(opSetAmps, err)
	}
	for i := range reals {
		r.amps[start+i] = complex(reals[i], imags[i])
	}
	r.qasm.Comment("amplitudes overwritten by caller")
	r.done(opSetAmps)

	return nil
}

// SetDensityAmps overwrites len(reals) density entries starting at
// (startRow, startCol) and proceeding down the column, wrapping to the top of
// the next column.
//
// Errors: ErrArrayLength, ErrNotDensityMatrix, ErrInvalidIndex.
func (r *Register) SetDensityAmps(startRow, startCol int, reals, imags []float64) error {
	r.mustOpen()
	if len(reals) != len(imags) {
		return r.fail(opSetDensityAmps, fmt.Errorf("%d reals vs %d imags: %w", len(reals), len(imags), ErrArrayLength))
	}
	if err := r.requireDensity(); err != nil {
		return r.fail(opSetDensityAmps, err)
	}
	dim := 1 << r.numQubits
	if startRow < 0 || startRow >= dim || startCol < 0 || startCol >= dim {
		return r.fail(opSetDensityAmps, fmt.Errorf("(%d,%d): %w", startRow, startCol, ErrInvalidIndex))
	}
	start := startRow + startCol*dim
	if err := r.validateRange(start, len(reals)); err != nil {
		return r.fail(opSetDensityAmps, err)
	}
	for i := range reals {
		r.amps[start+i] = complex(reals[i], imags[i])
	}
	r.qasm.Comment("amplitudes overwritten by caller")
	r.done(opSetDensityAmps)

	return nil
}

// validateRange checks [start, start+n) lies inside the store.
func (r *Register) validateRange(start, n int) error {
	if start < 0 || start >= len(r.amps) {
		return fmt.Errorf("start %d not in [0,%d): %w", start, len(r.amps), ErrInvalidIndex)
	}
	if n > len(r.amps)-start {
		return fmt.Errorf("%d amplitudes from %d overrun %d: %w", n, start, len(r.amps), ErrArrayLength)
	}

	return nil
}

// Clone overwrites dst with the state of src. Both must have the same size
// and kind.
func Clone(dst, src *Register) error {
	if err := validateMatching(dst, src); err != nil {
		return failOn(dst, opClone, err)
	}
	copy(dst.amps, src.amps)
	dst.qasm.Comment("state copied from register %s", src.id)
	dst.done(opClone)

	return nil
}

// failOn wraps err through r when r is usable, else without logging.
func failOn(r *Register, op string, err error) error {
	if r == nil || r.closed {
		return fmt.Errorf("qureg.%s: %w", op, err)
	}

	return r.fail(op, err)
}

// SetWeighted sets out = fOut·out + f1·q1 + f2·q2. All three registers must
// have the same size and kind; out may alias q1 or q2.
func SetWeighted(f1 complex128, q1 *Register, f2 complex128, q2 *Register, fOut complex128, out *Register) error {
	for _, q := range []*Register{q1, q2} {
		if err := validateMatching(out, q); err != nil {
			return failOn(out, opSetWeighted, err)
		}
	}
	a, b, o := q1.amps, q2.amps, out.amps
	out.parallelFor(len(o), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			o[i] = fOut*o[i] + f1*a[i] + f2*b[i]
		}
	})
	out.qasm.Comment("state overwritten by a weighted sum of registers")
	out.done(opSetWeighted)

	return nil
}
