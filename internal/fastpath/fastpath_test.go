package fastpath

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndbuf/internal/errs"
)

func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%17) - 8
	}
	return x
}

func TestSumMatchesLoop(t *testing.T) {
	for _, n := range []int{0, 1, 3, 8, 33, 1000} {
		x := ramp(n)
		want := 0.0
		for _, v := range x {
			want += v
		}
		assert.InDelta(t, want, Sum(x), 1e-9, "n=%d", n)
	}
}

func TestDot(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}
	got, err := Dot(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 35.0, got, 1e-12)

	_, err = Dot(a, b[:4])
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestMaxAbs(t *testing.T) {
	assert.Equal(t, 9.0, MaxAbs([]float64{1, -9, 4}))
	assert.Equal(t, 0.0, MaxAbs(nil))
}

func TestMinMax(t *testing.T) {
	lo, hi, ok := MinMax([]float64{3, -1, 4, 1, 5, -9, 2, 6})
	require.True(t, ok)
	assert.Equal(t, -9.0, lo)
	assert.Equal(t, 6.0, hi)

	_, _, ok = MinMax(nil)
	assert.False(t, ok)

	lo, hi, _ = MinMax([]float64{1, math.NaN(), 2})
	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))
}

func TestCumSum(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	total, err := CumSum(x, x)
	require.NoError(t, err)
	assert.Equal(t, 10.0, total)
	assert.Equal(t, []float64{1, 3, 6, 10}, x)

	_, err = CumSum(make([]float64, 2), x)
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestSetEnabled(t *testing.T) {
	assert.True(t, Enabled())
	SetEnabled(false)
	assert.False(t, Enabled())
	SetEnabled(true)
	assert.True(t, Enabled())
}

func BenchmarkSum(b *testing.B) {
	x := ramp(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sum(x)
	}
}
