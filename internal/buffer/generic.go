package buffer

import (
	"github.com/born-ml/ndbuf/internal/dtype"
)

// Read returns element i of b coerced to T.
//
// Buffers whose storage type is T are read directly; any other buffer is read in
// the canonical form of its kind and converted, so the result is the same as
// dtype.Convert applied to the logical element value.
func Read[T dtype.Primitive](b Buffer, i int) (T, error) {
	k := b.Kind()
	if g, ok := b.(interface{ Get(int) (T, error) }); ok && k == dtype.KindOf[T]() {
		return g.Get(i)
	}
	switch {
	case k == dtype.Object:
		o, err := b.ReadObject(i)
		if err != nil {
			var zero T
			return zero, err
		}
		return dtype.FromObject[T](o)
	case k == dtype.Bool:
		v, err := b.ReadBool(i)
		return dtype.FromBool[T](v), err
	case k.IsUnsigned():
		v, err := b.ReadUint64(i)
		return dtype.FromUint64[T](v), err
	case k.IsFloat():
		v, err := b.ReadFloat64(i)
		return dtype.FromFloat64[T](v), err
	default:
		v, err := b.ReadInt64(i)
		return dtype.FromInt64[T](v), err
	}
}

// Write stores v at index i of b, coerced to b's kind.
func Write[T dtype.Primitive](b Buffer, i int, v T) error {
	if s, ok := b.(interface{ Set(int, T) error }); ok && b.Kind() == dtype.KindOf[T]() {
		return s.Set(i, v)
	}
	switch x := any(v).(type) {
	case bool:
		return b.WriteBool(i, x)
	case int8:
		return b.WriteInt64(i, int64(x))
	case int16:
		return b.WriteInt64(i, int64(x))
	case int32:
		return b.WriteInt64(i, int64(x))
	case int64:
		return b.WriteInt64(i, x)
	case uint8:
		return b.WriteUint64(i, uint64(x))
	case uint16:
		return b.WriteUint64(i, uint64(x))
	case uint32:
		return b.WriteUint64(i, uint64(x))
	case uint64:
		return b.WriteUint64(i, x)
	case float32:
		return b.WriteFloat64(i, float64(x))
	default:
		return b.WriteFloat64(i, any(v).(float64))
	}
}

// ToSlice reads every element of b into a new slice of T.
func ToSlice[T dtype.Primitive](b Buffer) ([]T, error) {
	out := make([]T, b.Len())
	for i := range out {
		v, err := Read[T](b, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
