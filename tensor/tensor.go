// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
	"github.com/born-ml/ndbuf/internal/index"
	"github.com/born-ml/ndbuf/internal/view"
)

// Type aliases for public API

// Kind identifies the element type of a buffer.
type Kind = dtype.Kind

// Element kinds.
const (
	Bool    Kind = dtype.Bool
	Int8    Kind = dtype.Int8
	Int16   Kind = dtype.Int16
	Int32   Kind = dtype.Int32
	Int64   Kind = dtype.Int64
	Float32 Kind = dtype.Float32
	Float64 Kind = dtype.Float64
	Object  Kind = dtype.Object
	Uint8   Kind = dtype.Uint8
	Uint16  Kind = dtype.Uint16
	Uint32  Kind = dtype.Uint32
	Uint64  Kind = dtype.Uint64
)

// Native is the set of Go types a typed buffer stores directly.
type Native = dtype.Native

// Primitive is the set of Go types values can be coerced to or from.
type Primitive = dtype.Primitive

// Buffer is the kind-erased buffer contract.
type Buffer = buffer.Buffer

// Typed is a buffer over a Go slice.
type Typed[T dtype.Native] = buffer.Typed[T]

// Arange is a read-only arithmetic progression buffer.
type Arange = buffer.Arange

// Objects is a buffer of arbitrary Go values.
type Objects = buffer.Objects

// List is a growable buffer that freezes into a Typed buffer.
type List[T dtype.Native] = buffer.List[T]

// Appender is the kind-erased contract of List.
type Appender = buffer.Appender

// Access is a read/write permission set.
type Access = buffer.Access

// Access flags.
const (
	AccessRead  Access = buffer.AccessRead
	AccessWrite Access = buffer.AccessWrite
	ReadWrite   Access = buffer.ReadWrite
)

// Shape represents the extents of a view.
// Example: Shape{2, 3, 4} is a rank 3 shape with 24 elements.
type Shape = index.Shape

// Space maps coordinates to buffer offsets.
type Space = index.Space

// Selector picks coordinates along one dimension.
type Selector = index.Selector

// View is a strided multi-dimensional window on a Buffer.
type View = view.View

// Errors reported by every package. Compare with errors.Is.
var (
	ErrIndexOutOfRange = errs.ErrIndexOutOfRange
	ErrShapeMismatch   = errs.ErrShapeMismatch
	ErrUnsupported     = errs.ErrUnsupported
	ErrRange           = errs.ErrRange
	ErrNumericOverflow = errs.ErrNumericOverflow
)

// ParseKind returns the kind with the given name, such as "float32".
func ParseKind(name string) (Kind, error) { return dtype.Parse(name) }

// KindOf returns the kind of the Go type T.
func KindOf[T any]() Kind { return dtype.KindOf[T]() }

// Convert coerces v to To.
func Convert[To, From dtype.Primitive](v From) To { return dtype.Convert[To](v) }

// ConvertExact coerces v to To and fails when the value does not survive.
func ConvertExact[To, From dtype.Primitive](v From) (To, error) { return dtype.ConvertExact[To](v) }

// NewSpace returns a row-major space over shape.
func NewSpace(shape Shape) (Space, error) { return index.New(shape) }

// StridedSpace returns a space with explicit strides and base offset.
func StridedSpace(shape Shape, strides []int, offset int) (Space, error) {
	return index.Strided(shape, strides, offset)
}

// BroadcastShapes returns the shape two operands broadcast to.
func BroadcastShapes(a, b Shape) (Shape, error) { return index.BroadcastShapes(a, b) }

// All keeps every coordinate of a dimension.
func All() Selector { return index.All() }

// At fixes a dimension to coordinate i.
func At(i int) Selector { return index.At(i) }

// Indices keeps the given coordinates in the given order.
func Indices(indices ...int) Selector { return index.List(indices...) }

// Range keeps start, start+step, ... up to but excluding stop.
func Range(start, stop, step int) Selector { return index.Range(start, stop, step) }
