// SPDX-License-Identifier: MIT
// Package env - measurement RNG.
//
// Goals:
//   - Determinism: the same seed sequence yields the same Float64 stream.
//   - Seed sequences of any length fold into one PCG state via a
//     SplitMix64 avalanche, so nearby seeds give unrelated streams.
//   - Default seeding mixes wall-clock time and the process id.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe; Env serializes access with a mutex.

package env

import (
	"math/rand/v2"
	"os"
	"time"
)

// defaultRNGSeed is the parent used when the seed list is empty.
const defaultRNGSeed uint64 = 1

// golden is the SplitMix64 increment.
const golden = 0x9e3779b97f4a7c15

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// SplitMix64 finalizer; small input changes flip about half the output bits.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + golden)
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// rngFromSeeds folds seeds into a PCG generator. Empty seeds ⇒ defaultRNGSeed.
//
// Complexity: O(len(seeds)).
func rngFromSeeds(seeds []uint64) *rand.Rand {
	hi, lo := defaultRNGSeed, deriveSeed(defaultRNGSeed, 0)
	for i, s := range seeds {
		hi = deriveSeed(hi^s, uint64(2*i+1))
		lo = deriveSeed(lo^s, uint64(2*i+2))
	}

	return rand.New(rand.NewPCG(hi, lo))
}

// defaultSeeds returns the time/pid pair used by SeedDefault.
func defaultSeeds() []uint64 {
	return []uint64{uint64(time.Now().UnixNano()), uint64(os.Getpid())}
}
