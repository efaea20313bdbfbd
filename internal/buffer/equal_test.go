package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualAcrossKinds(t *testing.T) {
	ints := Wrap([]int32{1, 5, 0})
	floats := Wrap([]float64{1, 5, math.Copysign(0, -1)})
	bools := Wrap([]bool{true, false, false})
	objs := WrapObjects([]any{int64(1), 5.0, uint8(0)})

	assert.True(t, Equal(ints, floats))
	assert.True(t, Equal(ints, objs))
	assert.False(t, Equal(ints, bools))
	assert.False(t, Equal(ints, Wrap([]int32{1, 5})))

	h1, err := Hash(ints)
	require.NoError(t, err)
	h2, err := Hash(floats)
	require.NoError(t, err)
	h3, err := Hash(objs)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Equal(t, h1, h3)
}

func TestEqualNaNAndFractions(t *testing.T) {
	a := Wrap([]float64{math.NaN(), 0.5})
	b := Wrap([]float32{float32(math.NaN()), 0.5})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, Wrap([]float64{math.NaN(), 0.25})))

	ha, _ := Hash(a)
	hb, _ := Hash(b)
	assert.Equal(t, ha, hb)
}

func TestEqualUnsigned(t *testing.T) {
	u, err := Wrap([]int64{-1}).AsUnsigned()
	require.NoError(t, err)
	assert.False(t, Equal(u, Wrap([]int64{-1})))
	assert.False(t, Equal(u, Wrap([]float64{18446744073709551615.0})))

	small, err := Wrap([]int8{-56}).AsUnsigned()
	require.NoError(t, err)
	assert.True(t, Equal(small, Wrap([]int16{200})))
}

func TestEqualObjects(t *testing.T) {
	a := WrapObjects([]any{"x", []int{1, 2}})
	b := WrapObjects([]any{"x", []int{1, 2}})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, WrapObjects([]any{"y", []int{1, 2}})))

	ha, err := Hash(a)
	require.NoError(t, err)
	hb, err := Hash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

func TestEqualUnreadable(t *testing.T) {
	b := Wrap([]int8{1})
	assert.False(t, Equal(WriteOnly(b), b))
	_, err := Hash(WriteOnly(b))
	assert.Error(t, err)
}
