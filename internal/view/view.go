// Package view pairs a buffer with an index space for coordinate-addressed
// multi-dimensional access.
//
// Views never copy: every transform returns a new view over the same buffer, so a
// write through one view is visible through every view that aliases the element.
package view

import (
	"fmt"

	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
	"github.com/born-ml/ndbuf/internal/index"
)

// View is a buffer addressed through an index space.
type View struct {
	buf       buffer.Buffer
	space     index.Space
	broadcast bool
}

// New pairs buf with space. Every offset the space can address must lie inside
// the buffer.
func New(buf buffer.Buffer, space index.Space) (*View, error) {
	if lo, hi, ok := space.Bounds(); ok && (lo < 0 || hi >= buf.Len()) {
		return nil, errs.Shape("view", "%v addresses offsets [%d, %d] outside buffer of length %d", space, lo, hi, buf.Len())
	}
	return &View{buf: buf, space: space, broadcast: space.Broadcasted()}, nil
}

// FromBuffer returns a row-major view of buf. Without a shape the view is rank-1
// over the whole buffer; otherwise the shape must hold exactly buf.Len() elements,
// and one extent may be -1 to have it inferred.
func FromBuffer(buf buffer.Buffer, shape ...int) (*View, error) {
	if len(shape) == 0 {
		shape = []int{buf.Len()}
	}
	resolved, err := index.Shape(shape).Resolve(buf.Len())
	if err != nil {
		return nil, err
	}
	s, err := index.New(resolved)
	if err != nil {
		return nil, err
	}
	return New(buf, s)
}

// Of wraps data, without copying, in a row-major view.
func Of[T dtype.Native](data []T, shape ...int) (*View, error) {
	return FromBuffer(buffer.Wrap(data), shape...)
}

// Zeros allocates a zeroed row-major view of kind k.
func Zeros(k dtype.Kind, shape ...int) (*View, error) {
	s, err := index.New(shape)
	if err != nil {
		return nil, err
	}
	buf, err := buffer.MakeKind(k, s.NumElements())
	if err != nil {
		return nil, err
	}
	return New(buf, s)
}

// Buffer returns the underlying buffer.
func (v *View) Buffer() buffer.Buffer { return v.buf }

// Space returns the index space.
func (v *View) Space() index.Space { return v.space }

// Kind returns the element kind of the buffer.
func (v *View) Kind() dtype.Kind { return v.buf.Kind() }

// Shape returns a copy of the view's extents.
func (v *View) Shape() index.Shape { return v.space.Shape() }

// Rank returns the number of dimensions.
func (v *View) Rank() int { return v.space.Rank() }

// Dim returns the extent of dimension i.
func (v *View) Dim(i int) int { return v.space.Dim(i) }

// NumElements returns the number of addressable elements.
func (v *View) NumElements() int { return v.space.NumElements() }

// IsContiguous reports whether the view covers a dense row-major run of the buffer.
func (v *View) IsContiguous() bool { return v.space.IsContiguous() }

// Broadcasted reports whether distinct coordinates alias one element.
func (v *View) Broadcasted() bool { return v.broadcast }

// String returns a short description of the view.
func (v *View) String() string {
	return fmt.Sprintf("View[%s]%v", v.buf.Kind(), v.space.Shape())
}

func (v *View) derive(s index.Space) *View {
	return &View{buf: v.buf, space: s, broadcast: s.Broadcasted()}
}
