// SPDX-License-Identifier: MIT
package env

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveSeedAvalanche(t *testing.T) {
	a := deriveSeed(1, 0)
	b := deriveSeed(1, 1)
	flipped := bits.OnesCount64(a ^ b)
	require.Greater(t, flipped, 8)
	require.Less(t, flipped, 56)
	require.Equal(t, a, deriveSeed(1, 0))
}

func TestRngFromEmptySeedsIsStable(t *testing.T) {
	require.Equal(t, rngFromSeeds(nil).Uint64(), rngFromSeeds([]uint64{}).Uint64())
}
