package buffer

import (
	"fmt"

	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
)

// Objects is a buffer of arbitrary values, the fallback for data without a primitive kind.
// Numeric reads succeed only for elements that hold Go numbers or bools.
type Objects struct {
	data   []any
	access Access
}

// MakeObjects allocates an object buffer of length n holding nil elements.
func MakeObjects(n int) *Objects {
	return WrapObjects(make([]any, n))
}

// WrapObjects returns a read-write object buffer aliasing data.
func WrapObjects(data []any) *Objects {
	return &Objects{data: data, access: ReadWrite}
}

// Kind implements Buffer.
func (o *Objects) Kind() dtype.Kind { return dtype.Object }

// Len implements Buffer.
func (o *Objects) Len() int { return len(o.data) }

// CanRead implements Buffer.
func (o *Objects) CanRead() bool { return o.access&AccessRead != 0 }

// CanWrite implements Buffer.
func (o *Objects) CanWrite() bool { return o.access&AccessWrite != 0 }

// Get returns element i.
func (o *Objects) Get(i int) (any, error) { return o.ReadObject(i) }

// Set stores v at index i.
func (o *Objects) Set(i int, v any) error { return o.WriteObject(i, v) }

// ReadObject implements Buffer.
func (o *Objects) ReadObject(i int) (any, error) {
	if o.access&AccessRead == 0 {
		return nil, errs.Unsupported("read from write-only object buffer")
	}
	if uint(i) >= uint(len(o.data)) {
		return nil, errs.Index(i, len(o.data))
	}
	return o.data[i], nil
}

// ReadBool implements Buffer.
func (o *Objects) ReadBool(i int) (bool, error) { return loadObject[bool](o, i) }

// ReadInt64 implements Buffer.
func (o *Objects) ReadInt64(i int) (int64, error) { return loadObject[int64](o, i) }

// ReadUint64 implements Buffer.
func (o *Objects) ReadUint64(i int) (uint64, error) { return loadObject[uint64](o, i) }

// ReadFloat64 implements Buffer.
func (o *Objects) ReadFloat64(i int) (float64, error) { return loadObject[float64](o, i) }

// WriteObject implements Buffer.
func (o *Objects) WriteObject(i int, v any) error {
	if o.access&AccessWrite == 0 {
		return errs.Unsupported("write to read-only object buffer")
	}
	if uint(i) >= uint(len(o.data)) {
		return errs.Index(i, len(o.data))
	}
	o.data[i] = v
	return nil
}

// WriteBool implements Buffer.
func (o *Objects) WriteBool(i int, v bool) error { return o.WriteObject(i, v) }

// WriteInt64 implements Buffer.
func (o *Objects) WriteInt64(i int, v int64) error { return o.WriteObject(i, v) }

// WriteUint64 implements Buffer.
func (o *Objects) WriteUint64(i int, v uint64) error { return o.WriteObject(i, v) }

// WriteFloat64 implements Buffer.
func (o *Objects) WriteFloat64(i int, v float64) error { return o.WriteObject(i, v) }

// SubBuffer implements Buffer.
func (o *Objects) SubBuffer(start, end int) (Buffer, error) {
	if err := checkRange(start, end, len(o.data)); err != nil {
		return nil, err
	}
	return &Objects{data: o.data[start:end:end], access: o.access}, nil
}

func (o *Objects) withAccess(a Access) Buffer {
	return &Objects{data: o.data, access: a}
}

// String returns a short description of the buffer.
func (o *Objects) String() string {
	return fmt.Sprintf("Buffer[object](%d)", len(o.data))
}

func loadObject[X dtype.Primitive](o *Objects, i int) (X, error) {
	v, err := o.ReadObject(i)
	if err != nil {
		var zero X
		return zero, err
	}
	return dtype.FromObject[X](v)
}
