// SPDX-License-Identifier: MIT
// Package qureg - data-parallel loops.
//
// Amplitude loops split [0, n) into at most Workers() contiguous partitions
// and run them on an errgroup. Loops shorter than ParallelThreshold() run
// inline on the calling goroutine. Partitions never overlap, so kernels may
// write their own index range without synchronization.
//
// Reductions collect one partial per partition and add the partials in
// partition order, so results do not depend on goroutine scheduling.

package qureg

import "golang.org/x/sync/errgroup"

// partitions returns the chunk size and count for a loop of length n.
func (r *Register) partitions(n int) (chunk, count int) {
	w := r.env.Workers()
	if n < r.env.ParallelThreshold() || w <= 1 || n < 2 {
		return n, 1
	}
	if w > n {
		w = n
	}
	chunk = (n + w - 1) / w

	return chunk, (n + chunk - 1) / chunk
}

// parallelFor runs fn over contiguous sub-ranges covering [0, n).
// fn(p, lo, hi) receives its partition number p for per-partition scratch.
func (r *Register) parallelFor(n int, fn func(p, lo, hi int)) {
	chunk, count := r.partitions(n)
	if count == 1 {
		fn(0, 0, n)
		return
	}
	var g errgroup.Group
	for p := 0; p < count; p++ {
		lo := p * chunk
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(p, lo, hi)
			return nil
		})
	}
	// partitions never fail
	_ = g.Wait()
}

// parallelSum adds fn's partial results over [0, n) in partition order.
func (r *Register) parallelSum(n int, fn func(lo, hi int) complex128) complex128 {
	_, count := r.partitions(n)
	partial := make([]complex128, count)
	r.parallelFor(n, func(p, lo, hi int) {
		partial[p] = fn(lo, hi)
	})
	var s complex128
	for _, v := range partial {
		s += v
	}

	return s
}
