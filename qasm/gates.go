// SPDX-License-Identifier: MIT

package qasm

// Gate is an OPENQASM gate label.
type Gate string

// Gate labels. Controlled forms prefix one "c" per control qubit.
const (
	GateX        Gate = "x"
	GateY        Gate = "y"
	GateZ        Gate = "z"
	GateH        Gate = "h"
	GateS        Gate = "s"
	GateT        Gate = "t"
	GateRx       Gate = "Rx"
	GateRy       Gate = "Ry"
	GateRz       Gate = "Rz"
	GateU        Gate = "U"
	GatePhase    Gate = "u1"
	GateSwap     Gate = "swap"
	GateSqrtSwap Gate = "sqrtswap"
)
