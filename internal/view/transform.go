package view

import (
	"github.com/born-ml/ndbuf/internal/index"
)

// Reshape returns a view of shape over the same buffer. One extent may be -1.
// Non-contiguous views must be materialized first.
func (v *View) Reshape(shape ...int) (*View, error) {
	s, err := v.space.Reshape(shape)
	if err != nil {
		return nil, err
	}
	return v.derive(s), nil
}

// Broadcast returns a read-only-per-element view expanded to shape.
func (v *View) Broadcast(shape ...int) (*View, error) {
	s, err := v.space.Broadcast(shape)
	if err != nil {
		return nil, err
	}
	return v.derive(s), nil
}

// Select applies one selector per leading dimension.
func (v *View) Select(sels ...index.Selector) (*View, error) {
	s, err := v.space.Select(sels...)
	if err != nil {
		return nil, err
	}
	return v.derive(s), nil
}

// Transpose permutes the dimensions; with no arguments they are reversed.
func (v *View) Transpose(perm ...int) (*View, error) {
	s, err := v.space.Transpose(perm...)
	if err != nil {
		return nil, err
	}
	return v.derive(s), nil
}

// Slice peels the k leading dimensions into sub-views in row-major order.
func (v *View) Slice(k int) ([]*View, error) {
	spaces, err := v.space.Slice(k)
	if err != nil {
		return nil, err
	}
	return v.deriveAll(spaces), nil
}

// SliceRight peels the k trailing dimensions into sub-views in row-major order.
func (v *View) SliceRight(k int) ([]*View, error) {
	spaces, err := v.space.SliceRight(k)
	if err != nil {
		return nil, err
	}
	return v.deriveAll(spaces), nil
}

func (v *View) deriveAll(spaces []index.Space) []*View {
	out := make([]*View, len(spaces))
	for i, s := range spaces {
		out[i] = v.derive(s)
	}
	return out
}
