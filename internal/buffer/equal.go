package buffer

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"reflect"

	"github.com/born-ml/ndbuf/internal/dtype"
)

// Content equality and hashing compare logical element values, independent of the
// storage backing and of the declared kind: int32 5, float64 5.0 and true/1 compare
// equal and hash alike; +0 equals -0 and NaN equals NaN.

const (
	classInt   uint8 = iota // integral value in int64 range
	classUint               // integral value above math.MaxInt64
	classFloat              // non-integral, infinite or NaN
	classOther              // non-numeric object
)

type elemKey struct {
	class uint8
	bits  uint64
	obj   any
}

func intKey(v int64) elemKey {
	return elemKey{class: classInt, bits: uint64(v)} //nolint:gosec // G115: bit pattern only
}

func uintKey(u uint64) elemKey {
	if u <= math.MaxInt64 {
		return intKey(int64(u))
	}
	return elemKey{class: classUint, bits: u}
}

func floatKey(f float64) elemKey {
	switch {
	case math.IsNaN(f):
		return elemKey{class: classFloat, bits: 0x7FF8000000000001}
	case math.IsInf(f, 0) || f != math.Trunc(f):
		return elemKey{class: classFloat, bits: math.Float64bits(f)}
	case f >= -9223372036854775808.0 && f < 9223372036854775808.0:
		return intKey(int64(f))
	case f >= 0 && f < 18446744073709551616.0:
		return elemKey{class: classUint, bits: uint64(f)}
	}
	return elemKey{class: classFloat, bits: math.Float64bits(f)}
}

func keyAt(b Buffer, i int) (elemKey, error) {
	k := b.Kind()
	switch {
	case k == dtype.Object:
		o, err := b.ReadObject(i)
		if err != nil {
			return elemKey{}, err
		}
		return objectKey(o), nil
	case k.IsUnsigned():
		u, err := b.ReadUint64(i)
		return uintKey(u), err
	case k.IsFloat():
		f, err := b.ReadFloat64(i)
		return floatKey(f), err
	default:
		v, err := b.ReadInt64(i)
		return intKey(v), err
	}
}

func objectKey(o any) elemKey {
	switch x := o.(type) {
	case float32:
		return floatKey(float64(x))
	case float64:
		return floatKey(x)
	case uint8, uint16, uint32, uint64, uint:
		u, _ := dtype.FromObject[uint64](x)
		return uintKey(u)
	}
	if dtype.IsNumericObject(o) {
		v, _ := dtype.FromObject[int64](o)
		return intKey(v)
	}
	return elemKey{class: classOther, obj: o}
}

// Equal reports whether a and b have the same length and logically equal elements.
// Unreadable buffers are never equal.
func Equal(a, b Buffer) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ka, err := keyAt(a, i)
		if err != nil {
			return false
		}
		kb, err := keyAt(b, i)
		if err != nil {
			return false
		}
		if ka.class != kb.class || ka.bits != kb.bits {
			return false
		}
		if ka.class == classOther && !reflect.DeepEqual(ka.obj, kb.obj) {
			return false
		}
	}
	return true
}

// Hash returns a content hash of b consistent with Equal.
func Hash(b Buffer) (uint64, error) {
	h := fnv.New64a()
	var scratch [9]byte
	binary.LittleEndian.PutUint64(scratch[:8], uint64(b.Len())) //nolint:gosec // G115
	_, _ = h.Write(scratch[:8])
	for i := 0; i < b.Len(); i++ {
		k, err := keyAt(b, i)
		if err != nil {
			return 0, err
		}
		if k.class == classOther {
			_, _ = fmt.Fprintf(h, "%c%#v", classOther, k.obj)
			continue
		}
		scratch[0] = k.class
		binary.LittleEndian.PutUint64(scratch[1:], k.bits)
		_, _ = h.Write(scratch[:])
	}
	return h.Sum64(), nil
}
