// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/dtype"
)

// Make allocates a zeroed buffer of n elements.
func Make[T dtype.Native](n int) *Typed[T] { return buffer.Make[T](n) }

// MakeKind allocates a zeroed buffer of kind k.
func MakeKind(k Kind, n int) (Buffer, error) { return buffer.MakeKind(k, n) }

// Wrap returns a buffer aliasing data.
func Wrap[T dtype.Native](data []T) *Typed[T] { return buffer.Wrap(data) }

// FromSlice returns a buffer holding a copy of data.
func FromSlice[T dtype.Native](data []T) *Typed[T] { return buffer.FromSlice(data) }

// WrapObjects returns an object buffer aliasing data.
func WrapObjects(data []any) *Objects { return buffer.WrapObjects(data) }

// NewArange returns the progression start, start+step, ... with n elements.
func NewArange(start, step int64, n int) *Arange { return buffer.NewArange(start, step, n) }

// NewList returns an empty growable buffer.
func NewList[T dtype.Native](capacity int) *List[T] { return buffer.NewList[T](capacity) }

// ReadOnly returns b with writes disabled.
func ReadOnly(b Buffer) Buffer { return buffer.ReadOnly(b) }

// WriteOnly returns b with reads disabled.
func WriteOnly(b Buffer) Buffer { return buffer.WriteOnly(b) }

// Read returns element i of b coerced to T.
func Read[T dtype.Primitive](b Buffer, i int) (T, error) { return buffer.Read[T](b, i) }

// Write stores v at index i of b.
func Write[T dtype.Primitive](b Buffer, i int, v T) error { return buffer.Write(b, i, v) }

// ToSlice reads every element of b into a new slice.
func ToSlice[T dtype.Primitive](b Buffer) ([]T, error) { return buffer.ToSlice[T](b) }

// Copy copies src into dst element by element.
func Copy(dst, src Buffer) error { return buffer.Copy(dst, src) }

// BufferEqual reports whether a and b hold logically equal elements.
func BufferEqual(a, b Buffer) bool { return buffer.Equal(a, b) }

// Hash returns a content hash of b consistent with BufferEqual.
func Hash(b Buffer) (uint64, error) { return buffer.Hash(b) }
