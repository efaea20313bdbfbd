package dtype

import (
	"github.com/born-ml/ndbuf/internal/errs"
)

// FromObject coerces an object-kind value to T. Go numeric values and bools are
// converted with Convert; anything else fails with an unsupported operation error.
func FromObject[T Primitive](o any) (T, error) {
	switch x := o.(type) {
	case bool:
		return Convert[T](x), nil
	case int8:
		return Convert[T](x), nil
	case int16:
		return Convert[T](x), nil
	case int32:
		return Convert[T](x), nil
	case int64:
		return Convert[T](x), nil
	case int:
		return Convert[T](int64(x)), nil
	case uint8:
		return Convert[T](x), nil
	case uint16:
		return Convert[T](x), nil
	case uint32:
		return Convert[T](x), nil
	case uint64:
		return Convert[T](x), nil
	case uint:
		return Convert[T](uint64(x)), nil
	case float32:
		return Convert[T](x), nil
	case float64:
		return Convert[T](x), nil
	}
	var zero T
	return zero, errs.Unsupported("cannot coerce %T to %s", o, KindOf[T]())
}

// IsNumericObject reports whether FromObject accepts o.
func IsNumericObject(o any) bool {
	switch o.(type) {
	case bool, int8, int16, int32, int64, int, uint8, uint16, uint32, uint64, uint, float32, float64:
		return true
	}
	return false
}
