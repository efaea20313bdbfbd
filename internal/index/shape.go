// Package index maps multi-dimensional coordinates to linear storage offsets.
//
// A Space is a shape, per-dimension strides and a base offset, optionally with an
// explicit index list per dimension. Every view transform (reshape, broadcast,
// select, transpose, slice) produces a new Space over the same storage.
package index

import (
	"fmt"
	"strings"

	"github.com/born-ml/ndbuf/internal/errs"
)

// Shape represents the extents of a space, outermost first.
type Shape []int

// NumElements returns the number of addressable elements.
func (s Shape) NumElements() int {
	n := 1 // a rank-0 space holds one element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no extent is negative. Zero extents are allowed and
// describe empty spaces.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errs.Shape("shape", "invalid extent %d at dimension %d", dim, i)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as (d0, d1, ...).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprint(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all extents after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Resolve replaces a single -1 extent with the value that makes the element count
// equal to n.
func (s Shape) Resolve(n int) (Shape, error) {
	out := s.Clone()
	infer := -1
	known := 1
	for i, d := range out {
		switch {
		case d == -1 && infer < 0:
			infer = i
		case d < 0:
			return nil, errs.Shape("reshape", "invalid extent %d at dimension %d", d, i)
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 || n%known != 0 {
			return nil, errs.Shape("reshape", "cannot infer extent of %v for %d elements", s, n)
		}
		out[infer] = n / known
	}
	if out.NumElements() != n {
		return nil, errs.Shape("reshape", "cannot reshape %d elements to %v (%d elements)", n, out, out.NumElements())
	}
	return out, nil
}

// BroadcastShapes returns the shape both a and b broadcast to.
//
// Shapes are compared right to left; missing dimensions count as 1 and two
// extents are compatible when they are equal or one of them is 1.
//
//	(3, 1) + (3, 5) → (3, 5)
//	(5)    + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → error
func BroadcastShapes(a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)

	for i := 0; i < n; i++ {
		aDim, bDim := 1, 1
		if j := len(a) - 1 - i; j >= 0 {
			aDim = a[j]
		}
		if j := len(b) - 1 - i; j >= 0 {
			bDim = b[j]
		}

		switch {
		case aDim == bDim, bDim == 1:
			result[n-1-i] = aDim
		case aDim == 1:
			result[n-1-i] = bDim
		default:
			return nil, errs.Shape("broadcast", "%v vs %v (dimension %d: %d vs %d)", a, b, n-1-i, aDim, bDim)
		}
	}
	return result, nil
}
