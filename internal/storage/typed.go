package storage

import (
	"unsafe"

	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
)

// Typed lays n elements of T over the region starting at byteOffset and returns a
// buffer aliasing those bytes. Buffers over a read-only region are read-only.
//
// The buffer does not hold a reference: callers Retain the region for as long as
// the buffer is in use.
func Typed[T dtype.Native](r *Region, byteOffset, n int) (*buffer.Typed[T], error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if byteOffset < 0 || n < 0 || byteOffset > r.Len() || n > (r.Len()-byteOffset)/size {
		return nil, errs.Range(byteOffset, byteOffset+n*size, r.Len())
	}
	if n == 0 {
		return restrict(buffer.Wrap([]T{}), r), nil
	}

	p := unsafe.Pointer(&r.data[byteOffset])
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, errs.Unsupported("offset %d is not aligned for %s", byteOffset, dtype.KindOf[T]())
	}
	return restrict(buffer.Wrap(unsafe.Slice((*T)(p), n)), r), nil
}

// Unsigned is Typed with the unsigned kind of the same width as T.
func Unsigned[T int8 | int16 | int32 | int64](r *Region, byteOffset, n int) (*buffer.Typed[T], error) {
	b, err := Typed[T](r, byteOffset, n)
	if err != nil {
		return nil, err
	}
	return b.AsUnsigned()
}

func restrict[T dtype.Native](b *buffer.Typed[T], r *Region) *buffer.Typed[T] {
	if r.writable {
		return b
	}
	return b.Restrict(buffer.AccessRead)
}
