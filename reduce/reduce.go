// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reduce provides the public API for parallel reductions over views and
// index domains.
//
// A reduction is described by an Accumulator factory. The domain is split into
// contiguous partitions, each partition is consumed by its own accumulator on a
// worker goroutine, and the partition results are merged left to right:
//
//	v, _ := tensor.Of([]float64{1, 2, 3, 4}, 2, 2)
//	acc, _ := reduce.View[float64](ctx, v, reduce.NewSum, reduce.DefaultConfig())
//	fmt.Println(acc.Value()) // 10
//
// Combine must be associative. It need not be commutative.
package reduce

import (
	"context"

	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/parallel"
	"github.com/born-ml/ndbuf/internal/reduce"
	"github.com/born-ml/ndbuf/internal/view"
)

// Accumulator is a per-partition staged consumer of T.
type Accumulator[T, A any] = reduce.Accumulator[T, A]

// Reducer is implemented by accumulators that can finish early.
type Reducer = reduce.Reducer

// Protocol pairs an accumulator factory with a finalizer.
type Protocol[T any, A reduce.Accumulator[T, A], R any] = reduce.Protocol[T, A, R]

// Config controls partitioning and worker count.
type Config = parallel.Config

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// EnvConfig returns the process configuration, read once from the NDBUF_* environment.
func EnvConfig() Config { return parallel.Default() }

// Serial returns a configuration that runs every reduction on the calling goroutine.
func Serial() Config { return parallel.Serial() }

// Domain reduces read(i) over i in [0, n).
func Domain[T any, A reduce.Accumulator[T, A]](ctx context.Context, n int, read func(i int) (T, error), newAcc func() A, cfg Config) (A, error) {
	return reduce.Reduce(ctx, n, read, newAcc, cfg)
}

// View reduces the elements of v in row-major order, read as T.
func View[T dtype.Primitive, A reduce.Accumulator[T, A]](ctx context.Context, v *view.View, newAcc func() A, cfg Config) (A, error) {
	return reduce.ReduceView[T](ctx, v, newAcc, cfg)
}

// Run reduces read(i) over [0, n) with p and returns the finalized result.
func Run[T any, A reduce.Accumulator[T, A], R any](ctx context.Context, n int, read func(i int) (T, error), p Protocol[T, A, R], cfg Config) (R, error) {
	return reduce.Run(ctx, n, read, p, cfg)
}

// RunView reduces the elements of v with p and returns the finalized result.
func RunView[T dtype.Primitive, A reduce.Accumulator[T, A], R any](ctx context.Context, v *view.View, p Protocol[T, A, R], cfg Config) (R, error) {
	return reduce.RunView(ctx, v, p, cfg)
}

// Blocks folds the elements of v at row-major positions [start, end) into init.
// step returns false to stop early.
func Blocks[T dtype.Primitive, A any](v *view.View, start, end int, init A, step func(acc A, x T) (A, bool)) (A, error) {
	return reduce.Blocks(v, start, end, init, step)
}
