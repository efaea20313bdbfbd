package index

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndbuf/internal/errs"
)

// flatOffsets lists the storage offset of every element in row-major order.
func flatOffsets(t *testing.T, s Space) []int {
	t.Helper()
	out := make([]int, s.NumElements())
	for i := range out {
		off, err := s.FlatOffset(i)
		require.NoError(t, err)
		out[i] = off
	}
	return out
}

func TestShapeBasics(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, []int{12, 4, 1}, s.ComputeStrides())
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 0, Shape{3, 0}.NumElements())
	assert.Equal(t, "(2, 3, 4)", s.String())
	assert.True(t, s.Equal(s.Clone()))
	assert.Error(t, Shape{2, -1}.Validate())
}

func TestShapeResolve(t *testing.T) {
	got, err := Shape{-1, 4}.Resolve(12)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4}, got)

	_, err = Shape{-1, 5}.Resolve(12)
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
	_, err = Shape{-1, -1}.Resolve(12)
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
	_, err = Shape{5}.Resolve(12)
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b    Shape
		want    Shape
		wantErr bool
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{}, Shape{2, 2}, Shape{2, 2}, false},
		{Shape{3, 4}, Shape{3, 5}, nil, true},
	}
	for _, tt := range tests {
		got, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			assert.True(t, errors.Is(err, errs.ErrShapeMismatch), "%v %v", tt.a, tt.b)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestOffsetFormula(t *testing.T) {
	s, err := Strided(Shape{3, 4, 2}, []int{1, 6, 24}, 5)
	require.NoError(t, err)

	coords := make([]int, 3)
	for i := 0; i < s.NumElements(); i++ {
		require.NoError(t, s.Unravel(i, coords))
		want := 5 + coords[0]*1 + coords[1]*6 + coords[2]*24

		got, err := s.OffsetOf(coords...)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		fast, err := s.Offset3(coords[0], coords[1], coords[2])
		require.NoError(t, err)
		assert.Equal(t, want, fast)

		flat, err := s.FlatOffset(i)
		require.NoError(t, err)
		assert.Equal(t, want, flat)
	}
}

func TestFixedRankOffsets(t *testing.T) {
	s1, _ := New(Shape{4})
	off, err := s1.Offset1(3)
	require.NoError(t, err)
	assert.Equal(t, 3, off)

	s2, _ := New(Shape{2, 3})
	off, err = s2.Offset2(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, off)

	_, err = s2.Offset1(0)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
	_, err = s2.Offset2(2, 0)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
	_, err = s2.Offset2(0, -1)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
	_, err = s2.OffsetOf(0, 0, 0)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))

	scalar, _ := New(Shape{})
	off, err = scalar.OffsetOf()
	require.NoError(t, err)
	assert.Equal(t, 0, off)
}

func TestContiguity(t *testing.T) {
	s, _ := New(Shape{2, 1, 3})
	assert.True(t, s.IsContiguous())

	tr, err := s.Transpose()
	require.NoError(t, err)
	assert.False(t, tr.IsContiguous())

	row, err := s.Select(At(1))
	require.NoError(t, err)
	assert.True(t, row.IsContiguous())
	assert.Equal(t, 3, row.Offset())

	picked, err := s.Select(List(1, 0))
	require.NoError(t, err)
	assert.False(t, picked.IsContiguous())

	rev, err := s.Select(All(), All(), Range(2, -1, -1))
	require.NoError(t, err)
	assert.False(t, rev.IsContiguous())
	assert.Equal(t, []int{2, 1, 0, 5, 4, 3}, flatOffsets(t, rev))
}

func TestReshapeRoundTrip(t *testing.T) {
	s, _ := New(Shape{2, 3, 4})
	r, err := s.Reshape(Shape{4, -1})
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 6}, r.Shape())

	back, err := r.Reshape(Shape{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, flatOffsets(t, s), flatOffsets(t, back))

	_, err = s.Reshape(Shape{5, 5})
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))

	tr, _ := s.Transpose()
	_, err = tr.Reshape(Shape{24})
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestBroadcastModProperty(t *testing.T) {
	tests := []struct {
		name string
		src  Shape
		dst  Shape
	}{
		{"unit extents", Shape{2, 1, 3}, Shape{4, 2, 5, 3}},
		{"multiples", Shape{2, 3}, Shape{4, 6}},
		{"mixed", Shape{2, 1, 3}, Shape{3, 6, 2, 9}},
		{"identity", Shape{2, 3}, Shape{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(tt.src)
			require.NoError(t, err)
			b, err := src.Broadcast(tt.dst)
			require.NoError(t, err)
			assert.Equal(t, !tt.src.Equal(tt.dst), b.Broadcasted())

			pad := len(tt.dst) - len(tt.src)
			coords := make([]int, len(tt.dst))
			want := make([]int, len(tt.src))
			for i := 0; i < b.NumElements(); i++ {
				require.NoError(t, b.Unravel(i, coords))
				got, err := b.OffsetN(coords)
				require.NoError(t, err)
				for d := range want {
					want[d] = coords[d+pad] % tt.src[d]
				}
				off, err := src.OffsetN(want)
				require.NoError(t, err)
				assert.Equal(t, off, got, "coords %v", coords)
			}
		})
	}

	src, _ := New(Shape{2, 1, 3})
	assert.False(t, src.Broadcasted())
	_, err := src.Broadcast(Shape{2, 2, 4})
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
	_, err = src.Broadcast(Shape{3})
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
	_, err = src.Broadcast(Shape{3, 1, 3})
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestBroadcastRepeatsSelection(t *testing.T) {
	s, _ := New(Shape{4, 3})
	picked, err := s.Select(List(3, 1), Range(2, -1, -2))
	require.NoError(t, err)
	b, err := picked.Broadcast(Shape{4, 4})
	require.NoError(t, err)
	assert.True(t, b.Broadcasted())
	assert.Equal(t, []int{
		11, 9, 11, 9,
		5, 3, 5, 3,
		11, 9, 11, 9,
		5, 3, 5, 3,
	}, flatOffsets(t, b))

	lo, hi, ok := b.Bounds()
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 11}, [2]int{lo, hi})

	_, err = b.Reshape(Shape{16})
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestRepeatedListAliases(t *testing.T) {
	s, _ := New(Shape{4, 3})
	distinct, err := s.Select(List(3, 0, 1))
	require.NoError(t, err)
	assert.False(t, distinct.Broadcasted())

	repeated, err := s.Select(List(2, 2))
	require.NoError(t, err)
	assert.True(t, repeated.Broadcasted())

	one, err := repeated.Select(At(0))
	require.NoError(t, err)
	assert.False(t, one.Broadcasted())
}

func TestBroadcastKeepsSelection(t *testing.T) {
	s, _ := New(Shape{4, 3})
	picked, err := s.Select(List(3, 1), At(2))
	require.NoError(t, err)
	b, err := picked.Broadcast(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{11, 5, 11, 5}, flatOffsets(t, b))

	one, err := s.Select(List(2))
	require.NoError(t, err)
	wide, err := one.Broadcast(Shape{3, 3})
	require.NoError(t, err)
	assert.False(t, wide.HasLists())
	assert.Equal(t, []int{6, 7, 8, 6, 7, 8, 6, 7, 8}, flatOffsets(t, wide))
}

func TestTransposeInverse(t *testing.T) {
	s, _ := Strided(Shape{2, 3, 4}, []int{12, 4, 1}, 7)
	perm := []int{2, 0, 1}
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	tr, err := s.Transpose(perm...)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 2, 3}, tr.Shape())

	back, err := tr.Transpose(inv...)
	require.NoError(t, err)
	assert.True(t, back.Equal(s))
	assert.Equal(t, flatOffsets(t, s), flatOffsets(t, back))

	for _, bad := range [][]int{{0, 1}, {0, 1, 1}, {0, 1, 3}} {
		_, err := s.Transpose(bad...)
		assert.True(t, errors.Is(err, errs.ErrShapeMismatch), "%v", bad)
	}
}

func TestSelectionComposes(t *testing.T) {
	s, _ := New(Shape{4, 3})

	first, err := s.Select(List(2, 1))
	require.NoError(t, err)
	composed, err := first.Select(List(0))
	require.NoError(t, err)
	direct, err := s.Select(List(2))
	require.NoError(t, err)
	assert.True(t, composed.Equal(direct))

	at, err := first.Select(At(0))
	require.NoError(t, err)
	atDirect, err := s.Select(At(2))
	require.NoError(t, err)
	assert.True(t, at.Equal(atDirect))
	assert.Equal(t, []int{6, 7, 8}, flatOffsets(t, at))

	stepped, err := s.Select(Range(0, 4, 2))
	require.NoError(t, err)
	again, err := stepped.Select(Range(1, 2, 1))
	require.NoError(t, err)
	direct, err = s.Select(Range(2, 3, 1))
	require.NoError(t, err)
	assert.True(t, again.Equal(direct))
}

func TestSelectErrors(t *testing.T) {
	s, _ := New(Shape{4, 3})
	_, err := s.Select(At(4))
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
	_, err = s.Select(All(), List(0, 3))
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
	_, err = s.Select(All(), All(), All())
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
	_, err = s.Select(Range(0, 2, 0))
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
	_, err = s.Select(Range(0, 5, 1))
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))

	empty, err := s.Select(Range(2, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumElements())
}

func TestSlice(t *testing.T) {
	s, _ := New(Shape{2, 3})

	rows, err := s.Slice(1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []int{3, 4, 5}, flatOffsets(t, rows[1]))

	cols, err := s.SliceRight(1)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, []int{2, 5}, flatOffsets(t, cols[2]))

	elems, err := s.Slice(2)
	require.NoError(t, err)
	require.Len(t, elems, 6)
	for i, e := range elems {
		assert.Equal(t, 0, e.Rank())
		off, err := e.OffsetOf()
		require.NoError(t, err)
		assert.Equal(t, i, off)
	}

	tr, _ := s.Transpose()
	linear, err := tr.Slice(2)
	require.NoError(t, err)
	got := make([]int, len(linear))
	for i, e := range linear {
		got[i], _ = e.OffsetOf()
	}
	assert.Equal(t, flatOffsets(t, tr), got)

	_, err = s.Slice(3)
	assert.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestBounds(t *testing.T) {
	s, _ := New(Shape{2, 3})
	lo, hi, ok := s.Bounds()
	assert.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 5, hi)

	rev, _ := s.Select(Range(1, -1, -1), List(2, 0))
	lo, hi, ok = rev.Bounds()
	assert.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 5, hi)

	empty, _ := New(Shape{0, 3})
	_, _, ok = empty.Bounds()
	assert.False(t, ok)
}

func BenchmarkOffset3(b *testing.B) {
	s, _ := New(Shape{16, 16, 16})
	for i := 0; i < b.N; i++ {
		_, _ = s.Offset3(i&15, (i>>4)&15, (i>>8)&15)
	}
}

func BenchmarkOffsetN(b *testing.B) {
	s, _ := New(Shape{16, 16, 16})
	coords := make([]int, 3)
	for i := 0; i < b.N; i++ {
		coords[0], coords[1], coords[2] = i&15, (i>>4)&15, (i>>8)&15
		_, _ = s.OffsetN(coords)
	}
}
