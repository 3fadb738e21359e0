// SPDX-License-Identifier: MIT
// Package qureg_test benchmarks the gate kernels serially and on the errgroup
// path.
package qureg_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qsim/env"
	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/qureg"
)

var benchSizes = []int{10, 16, 20}

// sinks to defeat dead-code elimination
var (
	sinkP float64
	sinkQ *qureg.Register
)

func benchEnvs(b *testing.B) map[string]*env.Env {
	return map[string]*env.Env{
		"serial":   newEnv(b, env.WithWorkers(1)),
		"parallel": newEnv(b, env.WithWorkers(4), env.WithParallelThreshold(1<<12)),
	}
}

func BenchmarkHadamard(b *testing.B) {
	for name, e := range benchEnvs(b) {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				q := newSV(b, e, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := q.Hadamard(i % n); err != nil {
						b.Fatal(err)
					}
				}
				sinkQ = q
			})
		}
	}
}

func BenchmarkMultiQubitUnitary(b *testing.B) {
	u, err := matrix.Identity(3)
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			q := newSV(b, newEnv(b), n)
			targets := []int{0, n / 2, n - 1}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := q.MultiQubitUnitary(targets, u); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMixDepolarising(b *testing.B) {
	for _, n := range []int{5, 8, 10} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			q := newDM(b, newEnv(b), n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := q.MixDepolarising(i%n, 0.1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCalcProbOfOutcome(b *testing.B) {
	for name, e := range benchEnvs(b) {
		b.Run(name, func(b *testing.B) {
			q := newSV(b, e, 20)
			q.InitPlusState()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := q.CalcProbOfOutcome(i%20, 0)
				if err != nil {
					b.Fatal(err)
				}
				sinkP = p
			}
		})
	}
}
