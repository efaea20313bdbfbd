// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for typed buffers and the strided views over them.
//
// # Overview
//
// A Buffer is a fixed-length array of one element Kind. Every read and write is
// bounds-checked and coerces between the declared kind and the requested one, so a
// float64 consumer can read an int8 buffer and a bool producer can fill a float32
// one. A View addresses a Buffer through a Space: shape, strides, base offset and
// optional per-dimension index lists. Views are cheap; Reshape, Broadcast, Select,
// Transpose and Slice never copy elements.
//
// # Basic Usage
//
//	import "github.com/born-ml/ndbuf/tensor"
//
//	func main() {
//	    v, _ := tensor.Of([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
//
//	    // Coercing access
//	    x, _ := v.Int64(1, 2) // 6
//
//	    // Zero-copy transforms
//	    t, _ := v.Transpose()
//	    col, _ := v.Select(tensor.All(), tensor.At(1))
//
//	    // Copy into a fresh contiguous buffer
//	    m, _ := t.Materialize()
//	}
//
// # Storage
//
// Typed buffers wrap Go slices. NewHeapRegion, AnonymousRegion and MapFile provide
// reference-counted byte regions, and RegionBuffer reinterprets a region as a typed
// buffer without copying.
//
// # Coercion
//
// Conversions follow fixed rules: bool is 0 or 1 and any nonzero value is true,
// float to integer truncates toward zero, and integer narrowing wraps. Convert applies
// them to single values; ConvertExact additionally rejects lossy conversions.
package tensor
