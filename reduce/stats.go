// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reduce

import (
	"context"

	"github.com/born-ml/ndbuf/internal/fastpath"
	"github.com/born-ml/ndbuf/internal/reduce"
	"github.com/born-ml/ndbuf/internal/view"
)

// SumFloat64 returns the sum of v's elements read as float64.
func SumFloat64(ctx context.Context, v *view.View, cfg Config) (float64, error) {
	return reduce.SumFloat64(ctx, v, cfg)
}

// SumInt64 returns the sum of v's elements read as int64.
func SumInt64(ctx context.Context, v *view.View, cfg Config) (int64, error) {
	return reduce.SumInt64(ctx, v, cfg)
}

// MinMax returns the extrema, sum and count of v.
func MinMax(ctx context.Context, v *view.View, cfg Config) (*MinMaxSum, error) {
	return reduce.MinMax(ctx, v, cfg)
}

// MaxAbsFloat64 returns the largest absolute value of v, 0 when v is empty.
func MaxAbsFloat64(ctx context.Context, v *view.View, cfg Config) (float64, error) {
	return reduce.MaxAbsFloat64(ctx, v, cfg)
}

// Dot returns the inner product of two views of equal shape.
func Dot(ctx context.Context, a, b *view.View, cfg Config) (float64, error) {
	return reduce.Dot(ctx, a, b, cfg)
}

// CumSum returns the running sums of v in row-major order as a new float64 view.
func CumSum(v *view.View) (*view.View, error) { return reduce.CumSum(v) }

// SetVectorized enables or disables the vectorized kernels for dense float64 views.
func SetVectorized(on bool) { fastpath.SetEnabled(on) }
