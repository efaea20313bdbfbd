// Package storage provides reference-counted memory regions that typed buffers can
// alias: heap allocations, anonymous mappings and memory-mapped files.
package storage

import (
	"os"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/born-ml/ndbuf/internal/errs"
)

// Backing identifies where the bytes of a region live.
type Backing uint8

// Supported backings.
const (
	Heap Backing = iota
	AnonymousMap
	FileMap
)

// String returns a human-readable backing name.
func (b Backing) String() string {
	switch b {
	case Heap:
		return "heap"
	case AnonymousMap:
		return "anonymous"
	case FileMap:
		return "file"
	default:
		return "unknown"
	}
}

// Region is a reference-counted block of bytes.
//
// A region starts with one reference. Buffers obtained from Typed alias the region
// directly and must not be used after the last Release.
type Region struct {
	data     []byte
	backing  Backing
	writable bool
	file     *os.File
	refCount atomic.Int32
	mu       sync.Mutex // guards unmapping
}

// NewHeap allocates a zeroed, writable heap region of size bytes.
// The allocation is 8-byte aligned so any native element type can be laid over it.
func NewHeap(size int) (*Region, error) {
	if size < 0 {
		return nil, errors.Wrapf(errs.ErrRange, "storage: negative region size %d", size)
	}
	words := make([]uint64, (size+7)/8)
	var data []byte
	if len(words) > 0 {
		data = unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	}
	return newRegion(data, Heap, true, nil), nil
}

func newRegion(data []byte, backing Backing, writable bool, f *os.File) *Region {
	r := &Region{data: data, backing: backing, writable: writable, file: f}
	r.refCount.Store(1)
	return r
}

// Bytes returns the region's bytes.
// WARNING: Direct access to underlying memory.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the region size in bytes.
func (r *Region) Len() int { return len(r.data) }

// Backing returns where the region's bytes live.
func (r *Region) Backing() Backing { return r.backing }

// Writable reports whether the region may be written.
func (r *Region) Writable() bool { return r.writable }

// Refs returns the current reference count.
func (r *Region) Refs() int { return int(r.refCount.Load()) }

// Retain adds a reference.
func (r *Region) Retain() { r.refCount.Add(1) }

// Release drops a reference. The last release unmaps mapped regions and closes the
// backing file; the first error met while doing so is returned.
func (r *Region) Release() error {
	n := r.refCount.Add(-1)
	if n > 0 {
		return nil
	}
	if n < 0 {
		return errs.Unsupported("storage: region released more often than retained")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	if r.backing != Heap && r.data != nil {
		if err := unmap(r.data); err != nil {
			firstErr = errors.Wrap(err, "storage: munmap")
		}
	}
	r.data = nil
	if r.file != nil {
		if err := r.file.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "storage: close")
		}
		r.file = nil
	}
	return firstErr
}
