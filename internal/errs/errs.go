// Package errs defines the error kinds shared by the buffer, index, view and reduction packages.
//
// Every error returned by ndbuf wraps exactly one of the sentinel errors below, so callers
// classify failures with errors.Is regardless of the added context.
package errs

import (
	"github.com/pkg/errors"
)

// Error kinds.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrUnsupported     = errors.New("unsupported operation")
	ErrRange           = errors.New("invalid range")
	ErrNumericOverflow = errors.New("numeric overflow")
)

// Index reports an element index outside [0, length).
func Index(i, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d for length %d", i, length)
}

// Coord reports a coordinate outside its dimension extent.
func Coord(dim, c, extent int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "coordinate %d out of bounds for dimension %d (size %d)", c, dim, extent)
}

// Arity reports a coordinate tuple whose length differs from the rank.
func Arity(got, rank int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "expected %d coordinates, got %d", rank, got)
}

// Shape reports an invalid view transform.
func Shape(op, format string, args ...any) error {
	return errors.Wrapf(ErrShapeMismatch, op+": "+format, args...)
}

// Unsupported reports an operation the target does not allow.
func Unsupported(format string, args ...any) error {
	return errors.Wrapf(ErrUnsupported, format, args...)
}

// Range reports malformed [start, end) bounds.
func Range(start, end, length int) error {
	return errors.Wrapf(ErrRange, "range [%d, %d) for length %d", start, end, length)
}

// Overflow reports a conversion that loses information.
func Overflow(value any, target string) error {
	return errors.Wrapf(ErrNumericOverflow, "%v does not fit %s", value, target)
}
