// Package dtype defines element kinds and the value coercion rules between them.
package dtype

import (
	"fmt"
	"strings"

	"github.com/born-ml/ndbuf/internal/errs"
)

// Native is a constraint for the Go types a typed buffer stores directly.
// Unsigned kinds reuse the signed type of the same width.
type Native interface {
	bool | int8 | int16 | int32 | int64 | float32 | float64
}

// Primitive is a constraint for every Go type that values can be coerced to or from.
type Primitive interface {
	Native | uint8 | uint16 | uint32 | uint64
}

// Kind represents runtime element type information for buffers.
type Kind uint8

// Supported element kinds.
const (
	Bool Kind = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Object
	Uint8
	Uint16
	Uint32
	Uint64
)

var kindNames = [...]string{
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
	Object:  "object",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
}

// Size returns the byte size of one element. Object elements have no fixed width and report 0.
func (k Kind) Size() int {
	switch k {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Object:
		return 0
	default:
		panic(fmt.Sprintf("unknown kind %d", k))
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsFloat returns true for floating point kinds.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsUnsigned returns true for the unsigned integer kinds.
func (k Kind) IsUnsigned() bool {
	return k >= Uint8 && k <= Uint64
}

// IsInteger returns true for signed and unsigned integer kinds.
func (k Kind) IsInteger() bool {
	return (k >= Int8 && k <= Int64) || k.IsUnsigned()
}

// IsNumeric returns true for every kind except Object.
func (k Kind) IsNumeric() bool {
	return k != Object && k <= Uint64
}

// Storage returns the kind whose storage holds elements of k.
// Unsigned kinds are stored in the signed kind of the same width.
func (k Kind) Storage() Kind {
	switch k {
	case Uint8:
		return Int8
	case Uint16:
		return Int16
	case Uint32:
		return Int32
	case Uint64:
		return Int64
	default:
		return k
	}
}

// Unsigned returns the unsigned variant of a signed integer kind.
func (k Kind) Unsigned() (Kind, bool) {
	switch k {
	case Int8:
		return Uint8, true
	case Int16:
		return Uint16, true
	case Int32:
		return Uint32, true
	case Int64:
		return Uint64, true
	default:
		return k, k.IsUnsigned()
	}
}

// Parse returns the kind with the given name.
func Parse(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, errs.Unsupported("unknown kind %q", name)
}

// KindOf returns the kind of the Go type T. Types outside Primitive map to Object.
func KindOf[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	default:
		return Object
	}
}
