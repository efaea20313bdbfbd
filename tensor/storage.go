// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/storage"
)

// Region is a reference-counted byte region.
type Region = storage.Region

// Backing identifies where a region's bytes live.
type Backing = storage.Backing

// Region backings.
const (
	Heap         Backing = storage.Heap
	AnonymousMap Backing = storage.AnonymousMap
	FileMap      Backing = storage.FileMap
)

// NewHeapRegion allocates a zeroed heap region.
func NewHeapRegion(size int) (*Region, error) { return storage.NewHeap(size) }

// AnonymousRegion maps a zeroed private region.
func AnonymousRegion(size int) (*Region, error) { return storage.Anonymous(size) }

// MapFile maps the file at path. The region is writable only when writable is true.
func MapFile(path string, writable bool) (*Region, error) { return storage.MapFile(path, writable) }

// RegionBuffer returns a typed buffer of n elements starting at byteOffset in r.
func RegionBuffer[T dtype.Native](r *Region, byteOffset, n int) (*Typed[T], error) {
	return storage.Typed[T](r, byteOffset, n)
}
