// SPDX-License-Identifier: MIT
// Package qureg - phase functions.
//
// A phase function multiplies every basis state by exp(i·f(r₁,…,r_k)), where
// r_j is the integer held by sub-register j. Sub-register qubits are listed
// least significant first; under TwosComplement the last qubit is the sign.
//
// Overrides replace f at chosen sub-register values. They are looked up before
// f is evaluated, which is how callers avoid divergences (r^-1 at r = 0) and
// complex values (r^0.5 at r < 0).
//
// On a density matrix the phase applied to ρ[r,c] is f(row) - f(col).

package qureg

import (
	"fmt"
	"math"
	"strings"
)

// BitEncoding says how sub-register bits map to an integer.
type BitEncoding int

const (
	// Unsigned reads m bits as 0 … 2^m-1.
	Unsigned BitEncoding = iota
	// TwosComplement reads m bits as -2^(m-1) … 2^(m-1)-1.
	TwosComplement
)

func (e BitEncoding) String() string {
	switch e {
	case Unsigned:
		return "unsigned"
	case TwosComplement:
		return "twos-complement"
	}

	return fmt.Sprintf("BitEncoding(%d)", int(e))
}

func (e BitEncoding) valid() bool { return e == Unsigned || e == TwosComplement }

// PhaseFunc names a built-in multi-variable phase function.
type PhaseFunc int

// Named phase functions. The NORM family uses √Σ r_j², the PRODUCT family
// Π r_j and the DISTANCE family √Σ (r_{j+1}-r_j)² over consecutive pairs.
// Parameter layouts:
//   - Scaled*: params[0] is the scale;
//   - ScaledInverse*: params[1] is the phase at the divergence;
//   - ScaledInverseShiftedNorm: params[2+j] shifts r_j;
//   - ScaledInverseShiftedDistance: params[2+j/2] shifts pair j;
//   - ScaledInverseShiftedWeightedDistance: params[2+j] weights and
//     params[3+j] shifts pair j.
const (
	Norm PhaseFunc = iota
	ScaledNorm
	InverseNorm
	ScaledInverseNorm
	ScaledInverseShiftedNorm
	Product
	ScaledProduct
	InverseProduct
	ScaledInverseProduct
	Distance
	ScaledDistance
	InverseDistance
	ScaledInverseDistance
	ScaledInverseShiftedDistance
	ScaledInverseShiftedWeightedDistance
)

var phaseFuncNames = [...]string{
	"Norm", "ScaledNorm", "InverseNorm", "ScaledInverseNorm", "ScaledInverseShiftedNorm",
	"Product", "ScaledProduct", "InverseProduct", "ScaledInverseProduct",
	"Distance", "ScaledDistance", "InverseDistance", "ScaledInverseDistance",
	"ScaledInverseShiftedDistance", "ScaledInverseShiftedWeightedDistance",
}

func (f PhaseFunc) String() string {
	if f.valid() {
		return phaseFuncNames[f]
	}

	return fmt.Sprintf("PhaseFunc(%d)", int(f))
}

func (f PhaseFunc) valid() bool { return f >= Norm && f <= ScaledInverseShiftedWeightedDistance }

func (f PhaseFunc) isDistance() bool { return f >= Distance }

// numParams returns how many parameters f takes on numRegs sub-registers.
func (f PhaseFunc) numParams(numRegs int) int {
	switch f {
	case ScaledNorm, ScaledProduct, ScaledDistance:
		return 1
	case ScaledInverseNorm, ScaledInverseProduct, ScaledInverseDistance:
		return 2
	case ScaledInverseShiftedNorm, ScaledInverseShiftedWeightedDistance:
		return 2 + numRegs
	case ScaledInverseShiftedDistance:
		return 2 + numRegs/2
	}

	return 0
}

const (
	// MaxPhaseFuncRegs bounds the number of sub-registers.
	MaxPhaseFuncRegs = 100

	// fractional-exponent override coverage is only checked up to this size
	maxFractionalCheckQubits = 16
)

// phaseSpec is a validated phase function ready to apply.
type phaseSpec struct {
	regs [][]int
	enc  BitEncoding
	// override key (packed sub-register bits) → phase; first listed wins
	over map[int]float64
	eval func(vals []int64) float64
	desc string
}

// apply multiplies every amplitude by exp(i·f).
func (r *Register) applyPhaseSpec(s *phaseSpec) {
	r.applyPhaseDiagWith(func() func(i int) float64 {
		vals := make([]int64, len(s.regs))
		return func(i int) float64 {
			key, off := 0, 0
			for j, reg := range s.regs {
				var v int64
				for b, q := range reg {
					v |= int64(i>>q&1) << b
				}
				key |= int(v) << off
				off += len(reg)
				if s.enc == TwosComplement && v>>(len(reg)-1)&1 == 1 {
					v -= 1 << len(reg)
				}
				vals[j] = v
			}
			if ph, ok := s.over[key]; ok {
				return ph
			}
			return s.eval(vals)
		}
	})
	r.qasm.Comment("phase function %s (%s) on sub-registers %v", s.desc, s.enc, s.regs)
}

// packOverride encodes one override tuple the way applyPhaseSpec keys it.
func packOverride(regs [][]int, vals []int64) int {
	key, off := 0, 0
	for j, reg := range regs {
		key |= int(vals[j]&(1<<len(reg)-1)) << off
		off += len(reg)
	}

	return key
}

// splitRegs validates the flat qubit list and cuts it into sub-registers.
func (r *Register) splitRegs(qubits, sizes []int, enc BitEncoding) ([][]int, error) {
	if !enc.valid() {
		return nil, fmt.Errorf("%v: %w", enc, ErrPhaseFuncName)
	}
	if len(sizes) < 1 || len(sizes) > MaxPhaseFuncRegs {
		return nil, fmt.Errorf("%d sub-registers, want 1..%d: %w", len(sizes), MaxPhaseFuncRegs, ErrPhaseFuncNumRegs)
	}
	total := 0
	for j, m := range sizes {
		minSize := 1
		if enc == TwosComplement {
			minSize = 2
		}
		if m < minSize {
			return nil, fmt.Errorf("sub-register %d has %d qubits under %s: %w", j, m, enc, ErrPhaseFuncRegisterSize)
		}
		total += m
	}
	if total != len(qubits) {
		return nil, fmt.Errorf("%d qubits for sub-registers totalling %d: %w", len(qubits), total, ErrArrayLength)
	}
	if err := r.validateQubits("phase", qubits); err != nil {
		return nil, err
	}
	regs := make([][]int, len(sizes))
	at := 0
	for j, m := range sizes {
		regs[j] = append([]int(nil), qubits[at:at+m]...)
		at += m
	}

	return regs, nil
}

// indexRange returns the representable values of an m-bit sub-register.
func indexRange(m int, enc BitEncoding) (lo, hi int64) {
	if enc == TwosComplement {
		return -(1 << (m - 1)), 1<<(m-1) - 1
	}

	return 0, 1<<m - 1
}

// buildOverrides validates inds (numRegs per phase) and returns the lookup.
func buildOverrides(regs [][]int, enc BitEncoding, inds []int64, phases []float64) (map[int]float64, error) {
	k := len(regs)
	if len(inds) != k*len(phases) {
		return nil, fmt.Errorf("%d indices for %d phases on %d sub-registers: %w",
			len(inds), len(phases), k, ErrPhaseFuncOverrideCount)
	}
	if err := validateFinite(phases...); err != nil {
		return nil, err
	}
	over := make(map[int]float64, len(phases))
	for v, ph := range phases {
		tuple := inds[v*k : (v+1)*k]
		for j, x := range tuple {
			lo, hi := indexRange(len(regs[j]), enc)
			if x < lo || x > hi {
				return nil, fmt.Errorf("override %d index %d not in [%d,%d]: %w", v, x, lo, hi, ErrPhaseFuncOverrideIndex)
			}
		}
		key := packOverride(regs, tuple)
		if _, dup := over[key]; !dup {
			over[key] = ph
		}
	}

	return over, nil
}

func validateTerms(coeffs, exponents []float64) error {
	if len(coeffs) == 0 || len(coeffs) != len(exponents) {
		return fmt.Errorf("%d coefficients, %d exponents: %w", len(coeffs), len(exponents), ErrPhaseFuncTerms)
	}
	if err := validateFinite(coeffs...); err != nil {
		return err
	}

	return validateFinite(exponents...)
}

func isFractional(x float64) bool { return x != math.Trunc(x) }

// polyDesc renders Σ c·r^e for the QASM comment.
func polyDesc(coeffs, exponents []float64) string {
	var b strings.Builder
	for t := range coeffs {
		if t > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%.14g r^%.14g", coeffs[t], exponents[t])
	}

	return b.String()
}

// ApplyPhaseFunc multiplies each basis state by exp(i·Σ_t coeffs[t]·r^exponents[t]),
// r being the value of qubits under enc.
//
// Errors (ErrPhaseFunc family): term mismatch, a negative exponent (needs
// ApplyPhaseFuncOverrides with index 0), a fractional exponent under
// TwosComplement (needs every negative index overridden).
func (r *Register) ApplyPhaseFunc(qubits []int, enc BitEncoding, coeffs, exponents []float64) error {
	return r.applyPhaseFunc(opApplyPhaseFunc, qubits, enc, coeffs, exponents, nil, nil)
}

// ApplyPhaseFuncOverrides is ApplyPhaseFunc where r == overrideInds[v] takes
// phase overridePhases[v] instead.
func (r *Register) ApplyPhaseFuncOverrides(qubits []int, enc BitEncoding, coeffs, exponents []float64,
	overrideInds []int64, overridePhases []float64) error {
	return r.applyPhaseFunc(opApplyPhaseFuncOverrides, qubits, enc, coeffs, exponents, overrideInds, overridePhases)
}

func (r *Register) applyPhaseFunc(op string, qubits []int, enc BitEncoding, coeffs, exponents []float64,
	inds []int64, phases []float64) error {
	r.mustOpen()
	regs, err := r.splitRegs(qubits, []int{len(qubits)}, enc)
	if err != nil {
		return r.fail(op, err)
	}
	if err := validateTerms(coeffs, exponents); err != nil {
		return r.fail(op, err)
	}
	over, err := buildOverrides(regs, enc, inds, phases)
	if err != nil {
		return r.fail(op, err)
	}
	if err := checkSingleVarDomain(regs[0], enc, exponents, over); err != nil {
		return r.fail(op, err)
	}
	cs, es := append([]float64(nil), coeffs...), append([]float64(nil), exponents...)
	r.applyPhaseSpec(&phaseSpec{
		regs: regs,
		enc:  enc,
		over: over,
		eval: func(vals []int64) float64 {
			x := float64(vals[0])
			var ph float64
			for t, c := range cs {
				ph += c * math.Pow(x, es[t])
			}
			return ph
		},
		desc: polyDesc(cs, es),
	})
	r.done(op)

	return nil
}

// checkSingleVarDomain rejects exponents that are undefined somewhere in the
// sub-register's range without a covering override.
//
// Implementation:
//   - Stage 1: any negative exponent requires an override at r = 0.
//   - Stage 2: under TwosComplement, a fractional exponent requires every
//     negative r overridden; checked exhaustively up to 16 qubits only.
func checkSingleVarDomain(reg []int, enc BitEncoding, exponents []float64, over map[int]float64) error {
	regs := [][]int{reg}
	var negative, fractional bool
	for _, e := range exponents {
		negative = negative || e < 0
		fractional = fractional || isFractional(e)
	}
	if negative {
		if _, ok := over[packOverride(regs, []int64{0})]; !ok {
			return ErrPhaseFuncNegativeExp
		}
	}
	if fractional && enc == TwosComplement && len(reg) <= maxFractionalCheckQubits {
		lo, _ := indexRange(len(reg), enc)
		for v := lo; v < 0; v++ {
			if _, ok := over[packOverride(regs, []int64{v})]; !ok {
				return fmt.Errorf("index %d not overridden: %w", v, ErrPhaseFuncFractionalExp)
			}
		}
	}

	return nil
}

// ApplyMultiVarPhaseFunc multiplies each basis state by
// exp(i·Σ_j Σ_t c_{j,t}·r_j^{e_{j,t}}). qubits is cut into sub-registers of
// numQubitsPerReg qubits; coeffs and exponents are cut into groups of
// numTermsPerReg terms.
//
// Exponents must be non-negative, and integral under TwosComplement.
func (r *Register) ApplyMultiVarPhaseFunc(qubits, numQubitsPerReg []int, enc BitEncoding,
	coeffs, exponents []float64, numTermsPerReg []int) error {
	return r.applyMultiVar(opApplyMultiVarPhaseFunc, qubits, numQubitsPerReg, enc,
		coeffs, exponents, numTermsPerReg, nil, nil)
}

// ApplyMultiVarPhaseFuncOverrides is ApplyMultiVarPhaseFunc with overrides:
// override v matches when r_j == overrideInds[v·numRegs+j] for every j.
func (r *Register) ApplyMultiVarPhaseFuncOverrides(qubits, numQubitsPerReg []int, enc BitEncoding,
	coeffs, exponents []float64, numTermsPerReg []int, overrideInds []int64, overridePhases []float64) error {
	return r.applyMultiVar(opApplyMultiVarPhaseFuncOverrides, qubits, numQubitsPerReg, enc,
		coeffs, exponents, numTermsPerReg, overrideInds, overridePhases)
}

func (r *Register) applyMultiVar(op string, qubits, sizes []int, enc BitEncoding,
	coeffs, exponents []float64, termsPerReg []int, inds []int64, phases []float64) error {
	r.mustOpen()
	regs, err := r.splitRegs(qubits, sizes, enc)
	if err != nil {
		return r.fail(op, err)
	}
	if err := validateMultiTerms(len(regs), enc, coeffs, exponents, termsPerReg); err != nil {
		return r.fail(op, err)
	}
	over, err := buildOverrides(regs, enc, inds, phases)
	if err != nil {
		return r.fail(op, err)
	}
	cs, es := append([]float64(nil), coeffs...), append([]float64(nil), exponents...)
	starts := make([]int, len(termsPerReg)+1)
	for j, n := range termsPerReg {
		starts[j+1] = starts[j] + n
	}
	r.applyPhaseSpec(&phaseSpec{
		regs: regs,
		enc:  enc,
		over: over,
		eval: func(vals []int64) float64 {
			var ph float64
			for j, v := range vals {
				x := float64(v)
				for t := starts[j]; t < starts[j+1]; t++ {
					ph += cs[t] * math.Pow(x, es[t])
				}
			}
			return ph
		},
		desc: "multi-variable " + polyDesc(cs, es),
	})
	r.done(op)

	return nil
}

func validateMultiTerms(numRegs int, enc BitEncoding, coeffs, exponents []float64, termsPerReg []int) error {
	if len(termsPerReg) != numRegs {
		return fmt.Errorf("%d term counts for %d sub-registers: %w", len(termsPerReg), numRegs, ErrPhaseFuncTerms)
	}
	total := 0
	for j, n := range termsPerReg {
		if n < 1 {
			return fmt.Errorf("sub-register %d has %d terms: %w", j, n, ErrPhaseFuncTerms)
		}
		total += n
	}
	if err := validateTerms(coeffs, exponents); err != nil {
		return err
	}
	if total != len(coeffs) {
		return fmt.Errorf("%d terms declared, %d given: %w", total, len(coeffs), ErrPhaseFuncTerms)
	}
	for _, e := range exponents {
		if e < 0 {
			return fmt.Errorf("exponent %g: %w", e, ErrPhaseFuncNegativeExp)
		}
		if enc == TwosComplement && isFractional(e) {
			return fmt.Errorf("exponent %g: %w", e, ErrPhaseFuncFractionalExp)
		}
	}

	return nil
}

// ApplyNamedPhaseFunc applies a parameterless named function.
func (r *Register) ApplyNamedPhaseFunc(qubits, numQubitsPerReg []int, enc BitEncoding, fn PhaseFunc) error {
	return r.applyNamed(opApplyNamedPhaseFunc, qubits, numQubitsPerReg, enc, fn, nil, nil, nil)
}

// ApplyNamedPhaseFuncOverrides is ApplyNamedPhaseFunc with overrides laid out
// as in ApplyMultiVarPhaseFuncOverrides.
func (r *Register) ApplyNamedPhaseFuncOverrides(qubits, numQubitsPerReg []int, enc BitEncoding, fn PhaseFunc,
	overrideInds []int64, overridePhases []float64) error {
	return r.applyNamed(opApplyNamedPhaseFuncOverrides, qubits, numQubitsPerReg, enc, fn, nil,
		overrideInds, overridePhases)
}

// ApplyParamNamedPhaseFunc applies a named function that takes parameters.
func (r *Register) ApplyParamNamedPhaseFunc(qubits, numQubitsPerReg []int, enc BitEncoding, fn PhaseFunc,
	params []float64) error {
	return r.applyNamed(opApplyParamNamedPhaseFunc, qubits, numQubitsPerReg, enc, fn, params, nil, nil)
}

// ApplyParamNamedPhaseFuncOverrides is ApplyParamNamedPhaseFunc with overrides.
func (r *Register) ApplyParamNamedPhaseFuncOverrides(qubits, numQubitsPerReg []int, enc BitEncoding, fn PhaseFunc,
	params []float64, overrideInds []int64, overridePhases []float64) error {
	return r.applyNamed(opApplyParamNamedPhaseFuncOverrides, qubits, numQubitsPerReg, enc, fn, params,
		overrideInds, overridePhases)
}

func (r *Register) applyNamed(op string, qubits, sizes []int, enc BitEncoding, fn PhaseFunc,
	params []float64, inds []int64, phases []float64) error {
	r.mustOpen()
	regs, err := r.splitRegs(qubits, sizes, enc)
	if err != nil {
		return r.fail(op, err)
	}
	if err := validateNamed(fn, len(regs), params); err != nil {
		return r.fail(op, err)
	}
	over, err := buildOverrides(regs, enc, inds, phases)
	if err != nil {
		return r.fail(op, err)
	}
	r.applyPhaseSpec(namedSpec(regs, enc, fn, params, over))
	r.done(op)

	return nil
}

func validateNamed(fn PhaseFunc, numRegs int, params []float64) error {
	if !fn.valid() {
		return fmt.Errorf("%v: %w", fn, ErrPhaseFuncName)
	}
	if fn.isDistance() && numRegs%2 != 0 {
		return fmt.Errorf("%v on %d sub-registers: %w", fn, numRegs, ErrPhaseFuncOddRegs)
	}
	if want := fn.numParams(numRegs); len(params) != want {
		return fmt.Errorf("%v takes %d parameters, got %d: %w", fn, want, len(params), ErrPhaseFuncParams)
	}

	return validateFinite(params...)
}

// namedSpec builds the evaluator of a validated named function.
func namedSpec(regs [][]int, enc BitEncoding, fn PhaseFunc, params []float64, over map[int]float64) *phaseSpec {
	ps := append([]float64(nil), params...)

	return &phaseSpec{
		regs: regs,
		enc:  enc,
		over: over,
		eval: func(vals []int64) float64 { return evalNamed(fn, ps, vals) },
		desc: fmt.Sprintf("%v%v", fn, ps),
	}
}

// evalNamed computes a named function; callers have validated fn and params.
func evalNamed(fn PhaseFunc, ps []float64, vals []int64) float64 {
	var x float64
	switch {
	case fn <= ScaledInverseShiftedNorm:
		for j, v := range vals {
			d := float64(v)
			if fn == ScaledInverseShiftedNorm {
				d -= ps[2+j]
			}
			x += d * d
		}
		x = math.Sqrt(x)
	case fn <= ScaledInverseProduct:
		x = 1
		for _, v := range vals {
			x *= float64(v)
		}
	default:
		for j := 0; j+1 < len(vals); j += 2 {
			a, b := float64(vals[j]), float64(vals[j+1])
			switch fn {
			case ScaledInverseShiftedDistance:
				d := a - b - ps[2+j/2]
				x += d * d
			case ScaledInverseShiftedWeightedDistance:
				d := a - b - ps[2+j+1]
				x += ps[2+j] * d * d
			default:
				x += (b - a) * (b - a)
			}
		}
		x = math.Sqrt(x)
	}

	switch fn {
	case Norm, Product, Distance:
		return x
	case ScaledNorm, ScaledProduct, ScaledDistance:
		return ps[0] * x
	case InverseNorm, InverseProduct, InverseDistance:
		if x == 0 {
			return 0
		}
		return 1 / x
	}
	// scaled inverse family
	if x == 0 {
		return ps[1]
	}

	return ps[0] / x
}
