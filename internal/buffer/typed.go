package buffer

import (
	"fmt"

	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
)

// Typed is a buffer over a Go slice of one native element type.
//
// The slice is shared, never copied: sub-buffers and every view built on a Typed
// alias the same elements. Signed integer storage may carry an unsigned kind, in
// which case reads interpret the bits as unsigned.
type Typed[T dtype.Native] struct {
	data   []T
	kind   dtype.Kind
	access Access
}

// Make allocates a zeroed heap buffer of length n.
func Make[T dtype.Native](n int) *Typed[T] {
	return Wrap(make([]T, n))
}

// Wrap returns a read-write buffer aliasing data.
func Wrap[T dtype.Native](data []T) *Typed[T] {
	return &Typed[T]{
		data:   data,
		kind:   dtype.KindOf[T](),
		access: ReadWrite,
	}
}

// FromSlice returns a read-write buffer holding a copy of data.
func FromSlice[T dtype.Native](data []T) *Typed[T] {
	return Wrap(append([]T(nil), data...))
}

// AsUnsigned returns a buffer aliasing the same storage whose kind is the unsigned
// variant of T. It fails for bool and float storage.
func (t *Typed[T]) AsUnsigned() (*Typed[T], error) {
	u, ok := t.kind.Unsigned()
	if !ok {
		return nil, errs.Unsupported("%s storage has no unsigned variant", t.kind)
	}
	return &Typed[T]{data: t.data, kind: u, access: t.access}, nil
}

// Kind returns the declared element kind.
func (t *Typed[T]) Kind() dtype.Kind { return t.kind }

// Len returns the number of elements.
func (t *Typed[T]) Len() int { return len(t.data) }

// CanRead reports whether reads are allowed.
func (t *Typed[T]) CanRead() bool { return t.access&AccessRead != 0 }

// CanWrite reports whether writes are allowed.
func (t *Typed[T]) CanWrite() bool { return t.access&AccessWrite != 0 }

// Slice returns the backing slice.
// WARNING: Direct access to underlying memory. Callers must honour CanWrite.
func (t *Typed[T]) Slice() []T { return t.data }

// Get returns element i in its storage type.
func (t *Typed[T]) Get(i int) (T, error) {
	if err := t.checkRead(i); err != nil {
		var zero T
		return zero, err
	}
	return t.data[i], nil
}

// Set stores v at index i without conversion.
func (t *Typed[T]) Set(i int, v T) error {
	if err := t.checkWrite(i); err != nil {
		return err
	}
	t.data[i] = v
	return nil
}

// Sub returns a buffer aliasing elements [start, end).
func (t *Typed[T]) Sub(start, end int) (*Typed[T], error) {
	if err := checkRange(start, end, len(t.data)); err != nil {
		return nil, err
	}
	return &Typed[T]{data: t.data[start:end:end], kind: t.kind, access: t.access}, nil
}

// SubBuffer implements Buffer.
func (t *Typed[T]) SubBuffer(start, end int) (Buffer, error) {
	sub, err := t.Sub(start, end)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Restrict returns a buffer aliasing t whose permissions are the intersection of t's and a.
func (t *Typed[T]) Restrict(a Access) *Typed[T] {
	return &Typed[T]{data: t.data, kind: t.kind, access: t.access & a}
}

func (t *Typed[T]) withAccess(a Access) Buffer {
	return t.Restrict(a)
}

// ReadBool implements Buffer.
func (t *Typed[T]) ReadBool(i int) (bool, error) { return load[bool](t, i) }

// ReadInt64 implements Buffer.
func (t *Typed[T]) ReadInt64(i int) (int64, error) { return load[int64](t, i) }

// ReadUint64 implements Buffer.
func (t *Typed[T]) ReadUint64(i int) (uint64, error) { return load[uint64](t, i) }

// ReadFloat64 implements Buffer.
func (t *Typed[T]) ReadFloat64(i int) (float64, error) { return load[float64](t, i) }

// ReadObject returns element i boxed in the Go type of the declared kind.
func (t *Typed[T]) ReadObject(i int) (any, error) {
	if err := t.checkRead(i); err != nil {
		return nil, err
	}
	v := t.data[i]
	if !t.kind.IsUnsigned() {
		return v, nil
	}
	u := toUnsigned(v)
	switch t.kind {
	case dtype.Uint8:
		return uint8(u), nil //nolint:gosec // G115: width matches storage
	case dtype.Uint16:
		return uint16(u), nil //nolint:gosec // G115
	case dtype.Uint32:
		return uint32(u), nil //nolint:gosec // G115
	default:
		return u, nil
	}
}

// WriteBool implements Buffer.
func (t *Typed[T]) WriteBool(i int, v bool) error { return store(t, i, v) }

// WriteInt64 implements Buffer.
func (t *Typed[T]) WriteInt64(i int, v int64) error { return store(t, i, v) }

// WriteUint64 implements Buffer.
func (t *Typed[T]) WriteUint64(i int, v uint64) error { return store(t, i, v) }

// WriteFloat64 implements Buffer.
func (t *Typed[T]) WriteFloat64(i int, v float64) error { return store(t, i, v) }

// WriteObject coerces a numeric or bool object to the declared kind.
func (t *Typed[T]) WriteObject(i int, v any) error {
	if err := t.checkWrite(i); err != nil {
		return err
	}
	if t.kind.IsUnsigned() {
		u, err := dtype.FromObject[uint64](v)
		if err != nil {
			return err
		}
		t.data[i] = dtype.FromUint64[T](u)
		return nil
	}
	x, err := dtype.FromObject[T](v)
	if err != nil {
		return err
	}
	t.data[i] = x
	return nil
}

// String returns a short description of the buffer.
func (t *Typed[T]) String() string {
	return fmt.Sprintf("Buffer[%s](%d)", t.kind, len(t.data))
}

func (t *Typed[T]) checkRead(i int) error {
	if t.access&AccessRead == 0 {
		return errs.Unsupported("read from write-only %s buffer", t.kind)
	}
	if uint(i) >= uint(len(t.data)) {
		return errs.Index(i, len(t.data))
	}
	return nil
}

func (t *Typed[T]) checkWrite(i int) error {
	if t.access&AccessWrite == 0 {
		return errs.Unsupported("write to read-only %s buffer", t.kind)
	}
	if uint(i) >= uint(len(t.data)) {
		return errs.Index(i, len(t.data))
	}
	return nil
}

// load reads element i of t coerced to X. Unsigned kinds go through their uint64 value.
func load[X dtype.Primitive, T dtype.Native](t *Typed[T], i int) (X, error) {
	if err := t.checkRead(i); err != nil {
		var zero X
		return zero, err
	}
	v := t.data[i]
	if t.kind.IsUnsigned() {
		return dtype.FromUint64[X](toUnsigned(v)), nil
	}
	return dtype.Convert[X](v), nil
}

// store coerces v to the declared kind of t and writes it at index i.
func store[T dtype.Native, X dtype.Primitive](t *Typed[T], i int, v X) error {
	if err := t.checkWrite(i); err != nil {
		return err
	}
	if t.kind.IsUnsigned() {
		t.data[i] = dtype.FromUint64[T](dtype.Convert[uint64](v))
		return nil
	}
	t.data[i] = dtype.Convert[T](v)
	return nil
}

// toUnsigned returns the unsigned value of signed integer storage of the same width.
func toUnsigned[T dtype.Native](v T) uint64 {
	switch x := any(v).(type) {
	case int8:
		return uint64(uint8(x)) //nolint:gosec // G115: reinterpretation of same-width storage
	case int16:
		return uint64(uint16(x)) //nolint:gosec // G115
	case int32:
		return uint64(uint32(x)) //nolint:gosec // G115
	case int64:
		return uint64(x) //nolint:gosec // G115
	}
	return dtype.Convert[uint64](v)
}
