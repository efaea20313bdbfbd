package index

import (
	"github.com/born-ml/ndbuf/internal/errs"
)

// Reshape returns a row-major space of newShape over the same storage. One extent
// may be -1 and is inferred. Only contiguous spaces can be reshaped; others must
// be materialized first.
func (s Space) Reshape(newShape Shape) (Space, error) {
	shape, err := newShape.Resolve(s.NumElements())
	if err != nil {
		return Space{}, err
	}
	if s.NumElements() > 0 && !s.IsContiguous() {
		return Space{}, errs.Shape("reshape", "%v is not contiguous; materialize it first", s.shape)
	}
	return Space{shape: shape, strides: shape.ComputeStrides(), offset: s.offset}, nil
}

// Broadcast expands the space to newShape. The source is left-padded with size-1
// dimensions and each target extent must be a multiple of the source extent.
// Coordinate c of a widened dimension reads source coordinate c mod extent:
// extent-1 sources get stride 0, larger ones repeat through an index list.
func (s Space) Broadcast(newShape Shape) (Space, error) {
	if err := newShape.Validate(); err != nil {
		return Space{}, err
	}
	pad := len(newShape) - len(s.shape)
	if pad < 0 {
		return Space{}, errs.Shape("broadcast", "cannot broadcast %v to lower rank %v", s.shape, newShape)
	}

	out := Space{shape: newShape.Clone(), strides: make([]int, len(newShape)), offset: s.offset}
	var lists [][]int
	if s.lists != nil {
		lists = make([][]int, len(newShape))
	}
	for d := pad; d < len(newShape); d++ {
		src := d - pad
		switch {
		case s.shape[src] == newShape[d]:
			out.strides[d] = s.strides[src]
			if lists != nil {
				lists[d] = s.list(src)
			}
		case s.shape[src] == 1:
			out.offset += s.DimOffset(src, 0)
		case s.shape[src] > 1 && newShape[d]%s.shape[src] == 0:
			out.strides[d] = s.strides[src]
			if lists == nil {
				lists = make([][]int, len(newShape))
			}
			lists[d] = repeatList(s, src, newShape[d])
		default:
			return Space{}, errs.Shape("broadcast", "%v to %v (dimension %d: %d vs %d)", s.shape, newShape, d, s.shape[src], newShape[d])
		}
	}
	out.lists = compactLists(lists)
	return out, nil
}

// Transpose permutes the dimensions: dimension i of the result is dimension
// perm[i] of s. With no arguments the dimensions are reversed.
func (s Space) Transpose(perm ...int) (Space, error) {
	rank := len(s.shape)
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	if len(perm) != rank {
		return Space{}, errs.Shape("transpose", "permutation length %d != rank %d", len(perm), rank)
	}

	seen := make([]bool, rank)
	for _, ax := range perm {
		if ax < 0 || ax >= rank {
			return Space{}, errs.Shape("transpose", "invalid axis %d for rank %d", ax, rank)
		}
		if seen[ax] {
			return Space{}, errs.Shape("transpose", "duplicate axis %d", ax)
		}
		seen[ax] = true
	}

	out := Space{shape: make(Shape, rank), strides: make([]int, rank), offset: s.offset}
	if s.lists != nil {
		out.lists = make([][]int, rank)
	}
	for i, ax := range perm {
		out.shape[i] = s.shape[ax]
		out.strides[i] = s.strides[ax]
		if out.lists != nil {
			out.lists[i] = s.lists[ax]
		}
	}
	return out, nil
}

// Slice peels the k leading dimensions off s and returns one space of rank
// Rank()-k per leading coordinate, in row-major order. Slicing every dimension
// yields rank-0 spaces, one per element.
func (s Space) Slice(k int) ([]Space, error) {
	if k < 0 || k > len(s.shape) {
		return nil, errs.Shape("slice", "cannot peel %d dimensions from rank %d", k, len(s.shape))
	}
	return s.peel(0, k), nil
}

// SliceRight peels the k trailing dimensions off s and returns one space of rank
// Rank()-k per trailing coordinate, in row-major order.
func (s Space) SliceRight(k int) ([]Space, error) {
	if k < 0 || k > len(s.shape) {
		return nil, errs.Shape("slice", "cannot peel %d dimensions from rank %d", k, len(s.shape))
	}
	return s.peel(len(s.shape)-k, len(s.shape)), nil
}

// peel enumerates the coordinates of dimensions [from, to) and returns the
// spaces formed by the remaining dimensions at each of them.
func (s Space) peel(from, to int) []Space {
	peeled := s.shape[from:to]
	rest := Space{
		shape:   append(s.shape[:from:from], s.shape[to:]...),
		strides: append(s.strides[:from:from], s.strides[to:]...),
	}
	if s.lists != nil {
		rest.lists = compactLists(append(s.lists[:from:from], s.lists[to:]...))
	}

	n := peeled.NumElements()
	out := make([]Space, n)
	for i := 0; i < n; i++ {
		off := s.offset
		rem := i
		for d := to - 1; d >= from; d-- {
			ext := s.shape[d]
			off += s.DimOffset(d, rem%ext)
			rem /= ext
		}
		sub := rest
		sub.offset = off
		out[i] = sub
	}
	return out
}

// repeatList returns the index list that walks dimension d of s over and over
// for n coordinates.
func repeatList(s Space, d, n int) []int {
	ext := s.shape[d]
	src := s.list(d)
	out := make([]int, n)
	for c := range out {
		if src != nil {
			out[c] = src[c%ext]
		} else {
			out[c] = c % ext
		}
	}
	return out
}

// compactLists returns nil when no dimension carries a list.
func compactLists(lists [][]int) [][]int {
	for _, l := range lists {
		if l != nil {
			return lists
		}
	}
	return nil
}
