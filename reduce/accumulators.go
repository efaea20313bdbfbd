// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reduce

import (
	"github.com/born-ml/ndbuf/internal/reduce"
)

// Sum accumulates a float64 sum and count.
type Sum = reduce.Sum

// IntSum accumulates an int64 sum.
type IntSum = reduce.IntSum

// MappedSum sums fn(x).
type MappedSum = reduce.MappedSum

// MinMaxSum tracks minimum, maximum, sum and count.
type MinMaxSum = reduce.MinMaxSum

// Moments accumulates central moments about a fixed mean.
type Moments = reduce.Moments

// Fold folds elements with an associative operator.
type Fold[T any] = reduce.Fold[T]

// Composite runs several accumulators in one pass.
type Composite[T any] = reduce.Composite[T]

// Stage is a type-erased accumulator inside a Composite.
type Stage[T any] = reduce.Stage[T]

// NewSum returns an empty Sum.
func NewSum() *Sum { return reduce.NewSum() }

// NewIntSum returns an empty IntSum.
func NewIntSum() *IntSum { return reduce.NewIntSum() }

// NewMinMaxSum returns an empty MinMaxSum.
func NewMinMaxSum() *MinMaxSum { return reduce.NewMinMaxSum() }

// MaxAbs tracks the largest absolute value.
type MaxAbs = reduce.MaxAbs

// NewMaxAbs returns an empty MaxAbs.
func NewMaxAbs() *MaxAbs { return reduce.NewMaxAbs() }

// MappedSumOf returns a factory of sums of fn(x).
func MappedSumOf(fn func(float64) float64) func() *MappedSum { return reduce.MappedSumOf(fn) }

// MomentsAbout returns a factory of moment accumulators about mean.
func MomentsAbout(mean float64) func() *Moments { return reduce.MomentsAbout(mean) }

// FoldOf returns a factory of folds of op starting from seed.
func FoldOf[T any](seed T, op func(a, b T) T) func() *Fold[T] { return reduce.FoldOf(seed, op) }

// FoldUntil is FoldOf that finishes once stop reports true.
func FoldUntil[T any](seed T, op func(a, b T) T, stop func(T) bool) func() *Fold[T] {
	return reduce.FoldUntil(seed, op, stop)
}

// Part wraps an accumulator factory for use in a Composite.
func Part[T any, A reduce.Accumulator[T, A]](newAcc func() A) func() Stage[T] {
	return reduce.Part[T](newAcc)
}

// CompositeOf returns a factory of Composite accumulators.
func CompositeOf[T any](parts ...func() Stage[T]) func() *Composite[T] {
	return reduce.CompositeOf(parts...)
}

// PartValue returns part i of c as A.
func PartValue[A, T any](c *Composite[T], i int) (A, bool) { return reduce.PartValue[A](c, i) }
