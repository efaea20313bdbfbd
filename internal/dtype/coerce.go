package dtype

import (
	"math"

	"github.com/born-ml/ndbuf/internal/errs"
)

// Convert coerces v to the type To.
//
// Rules:
//   - bool to number: false is 0, true is 1
//   - number to bool: true when nonzero and not NaN
//   - integer narrowing wraps (two's complement)
//   - float64 to float32 rounds to nearest
//   - float to integer truncates toward zero; NaN becomes 0 and values beyond the
//     64-bit range saturate before any narrowing
//   - integer to float is exact where representable
//
// Convert never reinterprets bits; see Float64Bits for that.
func Convert[To, From Primitive](v From) To {
	switch x := any(v).(type) {
	case bool:
		return FromBool[To](x)
	case int8:
		return FromInt64[To](int64(x))
	case int16:
		return FromInt64[To](int64(x))
	case int32:
		return FromInt64[To](int64(x))
	case int64:
		return FromInt64[To](x)
	case uint8:
		return FromUint64[To](uint64(x))
	case uint16:
		return FromUint64[To](uint64(x))
	case uint32:
		return FromUint64[To](uint64(x))
	case uint64:
		return FromUint64[To](x)
	case float32:
		return FromFloat64[To](float64(x))
	case float64:
		return FromFloat64[To](x)
	}
	panic("unreachable")
}

// ConvertExact is Convert that fails with a numeric overflow error when the result
// does not convert back to v.
func ConvertExact[To, From Primitive](v From) (To, error) {
	out := Convert[To](v)
	back := Convert[From](out)
	//nolint:gocritic // v != v is the NaN test for a type parameter.
	if back != v && !(v != v && back != back) {
		return out, errs.Overflow(v, KindOf[To]().String())
	}
	return out, nil
}

// FromBool converts a bool to To.
func FromBool[To Primitive](b bool) To {
	var i int64
	if b {
		i = 1
	}
	return FromInt64[To](i)
}

// FromInt64 converts a signed integer to To.
func FromInt64[To Primitive](v int64) To {
	var out To
	switch p := any(&out).(type) {
	case *bool:
		*p = v != 0
	case *int8:
		*p = int8(v) //nolint:gosec // G115: wrapping is the narrowing rule
	case *int16:
		*p = int16(v) //nolint:gosec // G115
	case *int32:
		*p = int32(v) //nolint:gosec // G115
	case *int64:
		*p = v
	case *uint8:
		*p = uint8(v) //nolint:gosec // G115
	case *uint16:
		*p = uint16(v) //nolint:gosec // G115
	case *uint32:
		*p = uint32(v) //nolint:gosec // G115
	case *uint64:
		*p = uint64(v) //nolint:gosec // G115
	case *float32:
		*p = float32(v)
	case *float64:
		*p = float64(v)
	}
	return out
}

// FromUint64 converts an unsigned integer to To.
func FromUint64[To Primitive](v uint64) To {
	var out To
	switch p := any(&out).(type) {
	case *bool:
		*p = v != 0
	case *int8:
		*p = int8(v) //nolint:gosec // G115
	case *int16:
		*p = int16(v) //nolint:gosec // G115
	case *int32:
		*p = int32(v) //nolint:gosec // G115
	case *int64:
		*p = int64(v) //nolint:gosec // G115
	case *uint8:
		*p = uint8(v) //nolint:gosec // G115
	case *uint16:
		*p = uint16(v) //nolint:gosec // G115
	case *uint32:
		*p = uint32(v) //nolint:gosec // G115
	case *uint64:
		*p = v
	case *float32:
		*p = float32(v)
	case *float64:
		*p = float64(v)
	}
	return out
}

// FromFloat64 converts a float to To.
func FromFloat64[To Primitive](v float64) To {
	var out To
	switch p := any(&out).(type) {
	case *bool:
		*p = v != 0 && !math.IsNaN(v)
	case *int8:
		*p = int8(truncInt64(v)) //nolint:gosec // G115
	case *int16:
		*p = int16(truncInt64(v)) //nolint:gosec // G115
	case *int32:
		*p = int32(truncInt64(v)) //nolint:gosec // G115
	case *int64:
		*p = truncInt64(v)
	case *uint8:
		*p = uint8(truncUint64(v)) //nolint:gosec // G115
	case *uint16:
		*p = uint16(truncUint64(v)) //nolint:gosec // G115
	case *uint32:
		*p = uint32(truncUint64(v)) //nolint:gosec // G115
	case *uint64:
		*p = truncUint64(v)
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	}
	return out
}

const (
	twoTo63 = 9223372036854775808.0
	twoTo64 = 18446744073709551616.0
)

func truncInt64(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= twoTo63:
		return math.MaxInt64
	case v <= -twoTo63:
		return math.MinInt64
	}
	return int64(v)
}

// truncUint64 truncates toward zero; negative values wrap like their int64 truncation.
func truncUint64(v float64) uint64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= twoTo64:
		return math.MaxUint64
	case v >= twoTo63:
		return uint64(v)
	}
	return uint64(truncInt64(v)) //nolint:gosec // G115
}
