// Package fastpath provides vectorized kernels over contiguous float64 slices.
//
// The kernels dispatch to the best implementation for the running CPU through
// algo-vecmath. Callers only use them for dense float64 storage and fall back to
// the generic block reducer for everything else; results agree with the generic
// path up to floating-point reassociation.
package fastpath

import (
	"sync/atomic"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/born-ml/ndbuf/internal/errs"
)

var disabled atomic.Bool

// SetEnabled turns the fast path on or off process-wide. It is on by default.
func SetEnabled(on bool) { disabled.Store(!on) }

// Enabled reports whether callers should use the fast path.
func Enabled() bool { return !disabled.Load() }

// Sum returns the sum of x.
func Sum(x []float64) float64 {
	return vecmath.Sum(x)
}

// Dot returns Σ a[i]·b[i].
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errs.Shape("dot", "lengths %d and %d differ", len(a), len(b))
	}
	return vecmath.DotProduct(a, b), nil
}

// MaxAbs returns the largest absolute value in x, or 0 when x is empty.
func MaxAbs(x []float64) float64 {
	return vecmath.MaxAbs(x)
}

// MinMax returns the smallest and largest values of x. ok is false for an empty
// slice. A NaN anywhere makes both results NaN.
func MinMax(x []float64) (lo, hi float64, ok bool) {
	if len(x) == 0 {
		return 0, 0, false
	}
	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, true
}

// CumSum writes the running sums of src into dst and returns the total. dst and
// src may be the same slice.
func CumSum(dst, src []float64) (float64, error) {
	if len(dst) != len(src) {
		return 0, errs.Shape("cumsum", "lengths %d and %d differ", len(dst), len(src))
	}
	acc := 0.0
	for i, v := range src {
		acc += v
		dst[i] = acc
	}
	return acc, nil
}
