package index

import (
	"fmt"

	"github.com/born-ml/ndbuf/internal/errs"
)

// Space describes how coordinates address a linear buffer.
//
// The offset of coordinate c is offset + Σ m_i(c[i])·strides[i], where m_i is the
// identity unless dimension i carries an index list from a List selection, in
// which case m_i(c) = list_i[c]. A Space is immutable; transforms return new ones.
type Space struct {
	shape   Shape
	strides []int
	offset  int
	lists   [][]int // nil, or one entry per dimension (nil entry = identity)
}

// New returns a row-major space over shape with offset 0.
func New(shape Shape) (Space, error) {
	if err := shape.Validate(); err != nil {
		return Space{}, err
	}
	return Space{shape: shape.Clone(), strides: shape.ComputeStrides()}, nil
}

// Strided returns a space with explicit strides and base offset.
func Strided(shape Shape, strides []int, offset int) (Space, error) {
	if err := shape.Validate(); err != nil {
		return Space{}, err
	}
	if len(strides) != len(shape) {
		return Space{}, errs.Shape("strided", "%d strides for rank %d", len(strides), len(shape))
	}
	return Space{shape: shape.Clone(), strides: append([]int(nil), strides...), offset: offset}, nil
}

// Rank returns the number of dimensions.
func (s Space) Rank() int { return len(s.shape) }

// Shape returns a copy of the extents.
func (s Space) Shape() Shape { return s.shape.Clone() }

// Dim returns the extent of dimension i.
func (s Space) Dim(i int) int { return s.shape[i] }

// Strides returns a copy of the per-dimension element steps.
func (s Space) Strides() []int { return append([]int(nil), s.strides...) }

// Offset returns the base offset.
func (s Space) Offset() int { return s.offset }

// NumElements returns the number of addressable coordinates.
func (s Space) NumElements() int { return s.shape.NumElements() }

// HasLists reports whether any dimension is addressed through an index list.
func (s Space) HasLists() bool { return s.lists != nil }

func (s Space) list(d int) []int {
	if s.lists == nil {
		return nil
	}
	return s.lists[d]
}

// DimOffset returns the offset contribution of coordinate c along dimension d,
// without bounds checks.
func (s Space) DimOffset(d, c int) int {
	if l := s.list(d); l != nil {
		return l[c] * s.strides[d]
	}
	return c * s.strides[d]
}

// IsContiguous reports whether the space addresses offset, offset+1, ... in
// row-major order. Dimensions of extent 1 are ignored.
func (s Space) IsContiguous() bool {
	if s.lists != nil {
		return false
	}
	want := 1
	for i := len(s.shape) - 1; i >= 0; i-- {
		if s.shape[i] == 1 {
			continue
		}
		if s.strides[i] != want {
			return false
		}
		want *= s.shape[i]
	}
	return true
}

// Broadcasted reports whether distinct coordinates alias one element: some
// dimension of extent > 1 has stride 0, or an index list repeats an entry.
func (s Space) Broadcasted() bool {
	for i, st := range s.strides {
		if st == 0 && s.shape[i] > 1 {
			return true
		}
		if l := s.list(i); l != nil && repeats(l) {
			return true
		}
	}
	return false
}

func repeats(l []int) bool {
	seen := make(map[int]struct{}, len(l))
	for _, x := range l {
		if _, ok := seen[x]; ok {
			return true
		}
		seen[x] = struct{}{}
	}
	return false
}

// OffsetOf returns the linear offset of coords.
func (s Space) OffsetOf(coords ...int) (int, error) {
	return s.OffsetN(coords)
}

// OffsetN is the generic N-D offset computation.
func (s Space) OffsetN(coords []int) (int, error) {
	if len(coords) != len(s.shape) {
		return 0, errs.Arity(len(coords), len(s.shape))
	}
	off := s.offset
	for d, c := range coords {
		if uint(c) >= uint(s.shape[d]) {
			return 0, errs.Coord(d, c, s.shape[d])
		}
		off += s.DimOffset(d, c)
	}
	return off, nil
}

// Offset1 is OffsetN for rank-1 spaces.
func (s Space) Offset1(i int) (int, error) {
	if len(s.shape) != 1 {
		return 0, errs.Arity(1, len(s.shape))
	}
	if uint(i) >= uint(s.shape[0]) {
		return 0, errs.Coord(0, i, s.shape[0])
	}
	return s.offset + s.DimOffset(0, i), nil
}

// Offset2 is OffsetN for rank-2 spaces.
func (s Space) Offset2(i, j int) (int, error) {
	if len(s.shape) != 2 {
		return 0, errs.Arity(2, len(s.shape))
	}
	if uint(i) >= uint(s.shape[0]) {
		return 0, errs.Coord(0, i, s.shape[0])
	}
	if uint(j) >= uint(s.shape[1]) {
		return 0, errs.Coord(1, j, s.shape[1])
	}
	return s.offset + s.DimOffset(0, i) + s.DimOffset(1, j), nil
}

// Offset3 is OffsetN for rank-3 spaces.
func (s Space) Offset3(i, j, k int) (int, error) {
	if len(s.shape) != 3 {
		return 0, errs.Arity(3, len(s.shape))
	}
	if uint(i) >= uint(s.shape[0]) {
		return 0, errs.Coord(0, i, s.shape[0])
	}
	if uint(j) >= uint(s.shape[1]) {
		return 0, errs.Coord(1, j, s.shape[1])
	}
	if uint(k) >= uint(s.shape[2]) {
		return 0, errs.Coord(2, k, s.shape[2])
	}
	return s.offset + s.DimOffset(0, i) + s.DimOffset(1, j) + s.DimOffset(2, k), nil
}

// Unravel writes the row-major coordinates of flat index i into coords, which
// must have length Rank.
func (s Space) Unravel(i int, coords []int) error {
	if uint(i) >= uint(s.NumElements()) {
		return errs.Index(i, s.NumElements())
	}
	for d := len(s.shape) - 1; d >= 0; d-- {
		coords[d] = i % s.shape[d]
		i /= s.shape[d]
	}
	return nil
}

// FlatOffset returns the storage offset of the i-th element in row-major order.
func (s Space) FlatOffset(i int) (int, error) {
	if uint(i) >= uint(s.NumElements()) {
		return 0, errs.Index(i, s.NumElements())
	}
	off := s.offset
	for d := len(s.shape) - 1; d >= 0; d-- {
		off += s.DimOffset(d, i%s.shape[d])
		i /= s.shape[d]
	}
	return off, nil
}

// Bounds returns the lowest and highest offsets the space can address. ok is
// false for empty spaces.
func (s Space) Bounds() (lo, hi int, ok bool) {
	if s.NumElements() == 0 {
		return 0, 0, false
	}
	lo, hi = s.offset, s.offset
	for d, n := range s.shape {
		dmin, dmax := s.DimOffset(d, 0), s.DimOffset(d, 0)
		if l := s.list(d); l != nil {
			for c := range l {
				v := s.DimOffset(d, c)
				dmin, dmax = min(dmin, v), max(dmax, v)
			}
		} else {
			last := s.DimOffset(d, n-1)
			dmin, dmax = min(dmin, last), max(dmax, last)
		}
		lo += dmin
		hi += dmax
	}
	return lo, hi, true
}

// Equal reports whether both spaces have the same shape and address the same
// offset at every coordinate.
func (s Space) Equal(o Space) bool {
	if !s.shape.Equal(o.shape) {
		return false
	}
	if s.NumElements() == 0 {
		return true
	}
	base, obase := s.offset, o.offset
	for d := range s.shape {
		base += s.DimOffset(d, 0)
		obase += o.DimOffset(d, 0)
	}
	if base != obase {
		return false
	}
	for d, n := range s.shape {
		if s.list(d) == nil && o.list(d) == nil {
			if n > 1 && s.strides[d] != o.strides[d] {
				return false
			}
			continue
		}
		for c := 1; c < n; c++ {
			if s.DimOffset(d, c)-s.DimOffset(d, 0) != o.DimOffset(d, c)-o.DimOffset(d, 0) {
				return false
			}
		}
	}
	return true
}

// String returns a short description of the space.
func (s Space) String() string {
	if s.lists != nil {
		return fmt.Sprintf("Space%v strides=%v offset=%d lists=%v", s.shape, s.strides, s.offset, s.lists)
	}
	return fmt.Sprintf("Space%v strides=%v offset=%d", s.shape, s.strides, s.offset)
}
