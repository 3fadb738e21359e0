// Package matrix offers the complex operator descriptors consumed by the
// register engine.
//
// The matrix package provides:
//
//   - ComplexMatrix2 and ComplexMatrix4, fixed-size value types for one- and
//     two-qubit operators (real and imaginary parts kept apart, as callers
//     usually build them from two literal grids).
//   - ComplexMatrixN, a flat row-major buffer with a stored qubit count for
//     operators on any number of qubits.
//   - Vector, a real rotation axis.
//   - Pure validators (unitarity, completely-positive trace preservation,
//     shape agreement) decoupled from any register.
//   - A handful of dense kernels (Mul, Adjoint, Conj, Kron, AllClose) used to
//     build superoperators and to check operator identities.
//
// Row/column ordering follows the least-significant-target-first convention:
// bit j of a row index addresses the j-th target qubit the operator is applied to.
//
// See the examples in this package and in qureg for usage patterns.
package matrix
