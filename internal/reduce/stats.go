package reduce

import (
	"context"

	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
	"github.com/born-ml/ndbuf/internal/fastpath"
	"github.com/born-ml/ndbuf/internal/index"
	"github.com/born-ml/ndbuf/internal/parallel"
	"github.com/born-ml/ndbuf/internal/view"
)

// float64Slice returns the dense float64 storage behind v when the fast path
// applies to it.
func float64Slice(v *view.View) ([]float64, bool) {
	if !fastpath.Enabled() || v.NumElements() == 0 || !v.IsContiguous() {
		return nil, false
	}
	t, ok := v.Linear().(*buffer.Typed[float64])
	if !ok || t.Kind() != dtype.Float64 || !t.CanRead() {
		return nil, false
	}
	return t.Slice(), true
}

// SumFloat64 returns the sum of v's elements read as float64.
func SumFloat64(ctx context.Context, v *view.View, cfg parallel.Config) (float64, error) {
	if x, ok := float64Slice(v); ok {
		return fastpath.Sum(x), nil
	}
	acc, err := ReduceView[float64](ctx, v, NewSum, cfg)
	if err != nil {
		return 0, err
	}
	return acc.Value(), nil
}

// SumInt64 returns the exact, wrapping int64 sum of v's elements.
func SumInt64(ctx context.Context, v *view.View, cfg parallel.Config) (int64, error) {
	acc, err := ReduceView[int64](ctx, v, NewIntSum, cfg)
	if err != nil {
		return 0, err
	}
	return acc.Value(), nil
}

// MinMax returns the minimum, maximum and sum of v's elements read as float64.
func MinMax(ctx context.Context, v *view.View, cfg parallel.Config) (*MinMaxSum, error) {
	if x, ok := float64Slice(v); ok {
		lo, hi, _ := fastpath.MinMax(x)
		return &MinMaxSum{lo: lo, hi: hi, sum: fastpath.Sum(x), count: len(x)}, nil
	}
	return ReduceView[float64](ctx, v, NewMinMaxSum, cfg)
}

// MaxAbsFloat64 returns the largest absolute value of v's elements read as
// float64, 0 for an empty view.
func MaxAbsFloat64(ctx context.Context, v *view.View, cfg parallel.Config) (float64, error) {
	if x, ok := float64Slice(v); ok {
		return fastpath.MaxAbs(x), nil
	}
	acc, err := ReduceView[float64](ctx, v, NewMaxAbs, cfg)
	if err != nil {
		return 0, err
	}
	return acc.Value(), nil
}

// Dot returns Σ a·b over two views of equal shape.
func Dot(ctx context.Context, a, b *view.View, cfg parallel.Config) (float64, error) {
	if !a.Shape().Equal(b.Shape()) {
		return 0, errs.Shape("dot", "%v vs %v", a.Shape(), b.Shape())
	}
	if x, ok := float64Slice(a); ok {
		if y, ok := float64Slice(b); ok {
			return fastpath.Dot(x, y)
		}
	}

	la, lb := a.Linear(), b.Linear()
	acc, err := Reduce(ctx, a.NumElements(), func(i int) (float64, error) {
		x, err := la.ReadFloat64(i)
		if err != nil {
			return 0, err
		}
		y, err := lb.ReadFloat64(i)
		if err != nil {
			return 0, err
		}
		return x * y, nil
	}, NewSum, cfg)
	if err != nil {
		return 0, err
	}
	return acc.Value(), nil
}

// CumSum returns a new float64 view of v's shape holding the running sums of
// v's elements in row-major order.
func CumSum(v *view.View) (*view.View, error) {
	space, err := index.New(v.Shape())
	if err != nil {
		return nil, err
	}
	dst := make([]float64, v.NumElements())
	out, err := view.New(buffer.Wrap(dst), space)
	if err != nil {
		return nil, err
	}

	if src, ok := float64Slice(v); ok {
		if _, err := fastpath.CumSum(dst, src); err != nil {
			return nil, err
		}
		return out, nil
	}

	i := 0
	_, err = Blocks(v, 0, len(dst), 0.0, func(acc, x float64) (float64, bool) {
		acc += x
		dst[i] = acc
		i++
		return acc, false
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
