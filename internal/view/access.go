package view

import (
	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
)

func (v *View) offset(coords []int) (int, error) {
	switch len(coords) {
	case 1:
		return v.space.Offset1(coords[0])
	case 2:
		return v.space.Offset2(coords[0], coords[1])
	case 3:
		return v.space.Offset3(coords[0], coords[1], coords[2])
	default:
		return v.space.OffsetN(coords)
	}
}

func (v *View) writable() error {
	if v.broadcast {
		return errs.Unsupported("write through broadcast view %v", v.space.Shape())
	}
	return nil
}

// Float64 reads the element at coords as float64.
func (v *View) Float64(coords ...int) (float64, error) {
	off, err := v.offset(coords)
	if err != nil {
		return 0, err
	}
	return v.buf.ReadFloat64(off)
}

// Int64 reads the element at coords as int64.
func (v *View) Int64(coords ...int) (int64, error) {
	off, err := v.offset(coords)
	if err != nil {
		return 0, err
	}
	return v.buf.ReadInt64(off)
}

// Uint64 reads the element at coords as uint64.
func (v *View) Uint64(coords ...int) (uint64, error) {
	off, err := v.offset(coords)
	if err != nil {
		return 0, err
	}
	return v.buf.ReadUint64(off)
}

// Bool reads the element at coords as bool.
func (v *View) Bool(coords ...int) (bool, error) {
	off, err := v.offset(coords)
	if err != nil {
		return false, err
	}
	return v.buf.ReadBool(off)
}

// Object reads the element at coords boxed in the Go type of its kind.
func (v *View) Object(coords ...int) (any, error) {
	off, err := v.offset(coords)
	if err != nil {
		return nil, err
	}
	return v.buf.ReadObject(off)
}

// SetFloat64 writes x at coords, coerced to the view's kind.
func (v *View) SetFloat64(x float64, coords ...int) error {
	off, err := v.writeOffset(coords)
	if err != nil {
		return err
	}
	return v.buf.WriteFloat64(off, x)
}

// SetInt64 writes x at coords, coerced to the view's kind.
func (v *View) SetInt64(x int64, coords ...int) error {
	off, err := v.writeOffset(coords)
	if err != nil {
		return err
	}
	return v.buf.WriteInt64(off, x)
}

// SetUint64 writes x at coords, coerced to the view's kind.
func (v *View) SetUint64(x uint64, coords ...int) error {
	off, err := v.writeOffset(coords)
	if err != nil {
		return err
	}
	return v.buf.WriteUint64(off, x)
}

// SetBool writes x at coords, coerced to the view's kind.
func (v *View) SetBool(x bool, coords ...int) error {
	off, err := v.writeOffset(coords)
	if err != nil {
		return err
	}
	return v.buf.WriteBool(off, x)
}

// SetObject writes x at coords.
func (v *View) SetObject(x any, coords ...int) error {
	off, err := v.writeOffset(coords)
	if err != nil {
		return err
	}
	return v.buf.WriteObject(off, x)
}

func (v *View) writeOffset(coords []int) (int, error) {
	if err := v.writable(); err != nil {
		return 0, err
	}
	return v.offset(coords)
}

// Get reads the element at coords coerced to T.
func Get[T dtype.Primitive](v *View, coords ...int) (T, error) {
	off, err := v.offset(coords)
	if err != nil {
		var zero T
		return zero, err
	}
	return buffer.Read[T](v.buf, off)
}

// Get1 is Get for rank-1 views.
func Get1[T dtype.Primitive](v *View, i int) (T, error) {
	off, err := v.space.Offset1(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return buffer.Read[T](v.buf, off)
}

// Get2 is Get for rank-2 views.
func Get2[T dtype.Primitive](v *View, i, j int) (T, error) {
	off, err := v.space.Offset2(i, j)
	if err != nil {
		var zero T
		return zero, err
	}
	return buffer.Read[T](v.buf, off)
}

// Get3 is Get for rank-3 views.
func Get3[T dtype.Primitive](v *View, i, j, k int) (T, error) {
	off, err := v.space.Offset3(i, j, k)
	if err != nil {
		var zero T
		return zero, err
	}
	return buffer.Read[T](v.buf, off)
}

// Set writes x at coords coerced to the view's kind.
func Set[T dtype.Primitive](v *View, x T, coords ...int) error {
	off, err := v.writeOffset(coords)
	if err != nil {
		return err
	}
	return buffer.Write(v.buf, off, x)
}
