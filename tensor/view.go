// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/view"
)

// NewView returns a view of buf through space.
func NewView(buf Buffer, space Space) (*View, error) { return view.New(buf, space) }

// FromBuffer returns a row-major view of buf.
func FromBuffer(buf Buffer, shape ...int) (*View, error) { return view.FromBuffer(buf, shape...) }

// Of returns a row-major view aliasing data.
func Of[T dtype.Native](data []T, shape ...int) (*View, error) { return view.Of(data, shape...) }

// Zeros returns a view over a fresh zeroed buffer.
func Zeros(k Kind, shape ...int) (*View, error) { return view.Zeros(k, shape...) }

// Get returns the element at coords coerced to T.
func Get[T dtype.Primitive](v *View, coords ...int) (T, error) { return view.Get[T](v, coords...) }

// Set stores x at coords.
func Set[T dtype.Primitive](v *View, x T, coords ...int) error { return view.Set(v, x, coords...) }

// Equal reports whether two views have the same shape and equal elements.
func Equal(a, b *View) bool { return view.Equal(a, b) }
