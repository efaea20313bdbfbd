// Package buffer provides fixed-length, index-addressable typed buffers with coercing
// cross-kind access.
//
// A Buffer declares one element kind and a fixed length. Every read and write is
// bounds-checked and converts between the declared kind and the requested one with
// the rules of package dtype, so callers can consume any buffer without kind-specific
// code. Typed[T] is the generic implementation over Go slices; the storage behind the
// slice (heap, anonymous mapping, mapped file) is opaque to it.
package buffer

import (
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
)

// Buffer is the kind-erased buffer contract.
//
// Read methods coerce from the declared kind, write methods coerce to it. Reads fail
// on buffers that do not allow reading and writes on buffers that do not allow writing.
type Buffer interface {
	Kind() dtype.Kind
	Len() int
	CanRead() bool
	CanWrite() bool

	ReadBool(i int) (bool, error)
	ReadInt64(i int) (int64, error)
	ReadUint64(i int) (uint64, error)
	ReadFloat64(i int) (float64, error)
	ReadObject(i int) (any, error)

	WriteBool(i int, v bool) error
	WriteInt64(i int, v int64) error
	WriteUint64(i int, v uint64) error
	WriteFloat64(i int, v float64) error
	WriteObject(i int, v any) error

	// SubBuffer returns a buffer aliasing elements [start, end).
	SubBuffer(start, end int) (Buffer, error)
}

// Access is a read/write permission set.
type Access uint8

// Access flags.
const (
	AccessRead Access = 1 << iota
	AccessWrite

	ReadWrite = AccessRead | AccessWrite
)

// MakeKind allocates a zeroed heap buffer of kind k and length n.
func MakeKind(k dtype.Kind, n int) (Buffer, error) {
	if n < 0 {
		return nil, errs.Range(0, n, 0)
	}
	switch k {
	case dtype.Bool:
		return Make[bool](n), nil
	case dtype.Int8:
		return Make[int8](n), nil
	case dtype.Int16:
		return Make[int16](n), nil
	case dtype.Int32:
		return Make[int32](n), nil
	case dtype.Int64:
		return Make[int64](n), nil
	case dtype.Float32:
		return Make[float32](n), nil
	case dtype.Float64:
		return Make[float64](n), nil
	case dtype.Uint8:
		return makeUnsigned[int8](n)
	case dtype.Uint16:
		return makeUnsigned[int16](n)
	case dtype.Uint32:
		return makeUnsigned[int32](n)
	case dtype.Uint64:
		return makeUnsigned[int64](n)
	case dtype.Object:
		return MakeObjects(n), nil
	}
	return nil, errs.Unsupported("allocate buffer of %s", k)
}

// Copy copies src into dst element by element, coercing to dst's kind.
// Both buffers must have the same length.
func Copy(dst, src Buffer) error {
	if dst.Len() != src.Len() {
		return errs.Range(0, src.Len(), dst.Len())
	}
	for i := 0; i < src.Len(); i++ {
		if err := CopyElem(dst, i, src, i); err != nil {
			return err
		}
	}
	return nil
}

// CopyElem copies src[si] to dst[di] through the canonical read of src's kind, so
// values survive unchanged whenever dst can represent them.
func CopyElem(dst Buffer, di int, src Buffer, si int) error {
	k := src.Kind()
	switch {
	case k == dtype.Object:
		v, err := src.ReadObject(si)
		if err != nil {
			return err
		}
		return dst.WriteObject(di, v)
	case k == dtype.Bool:
		v, err := src.ReadBool(si)
		if err != nil {
			return err
		}
		return dst.WriteBool(di, v)
	case k.IsUnsigned():
		v, err := src.ReadUint64(si)
		if err != nil {
			return err
		}
		return dst.WriteUint64(di, v)
	case k.IsFloat():
		v, err := src.ReadFloat64(si)
		if err != nil {
			return err
		}
		return dst.WriteFloat64(di, v)
	default:
		v, err := src.ReadInt64(si)
		if err != nil {
			return err
		}
		return dst.WriteInt64(di, v)
	}
}

func makeUnsigned[T dtype.Native](n int) (Buffer, error) {
	u, err := Make[T](n).AsUnsigned()
	if err != nil {
		return nil, err
	}
	return u, nil
}

func checkRange(start, end, length int) error {
	if start < 0 || end > length || start > end {
		return errs.Range(start, end, length)
	}
	return nil
}
