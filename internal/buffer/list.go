package buffer

import (
	"github.com/born-ml/ndbuf/internal/dtype"
)

// Appender is the append contract used by text and format readers to populate buffers
// whose final length is unknown while parsing. Values are coerced to the list's kind.
type Appender interface {
	Kind() dtype.Kind
	Len() int
	AppendBool(v bool)
	AppendInt64(v int64)
	AppendFloat64(v float64)
	AppendObject(v any) error
}

// List is a growable sequence that freezes into a fixed-length Typed buffer.
type List[T dtype.Native] struct {
	data []T
}

// NewList returns an empty list with room for capacity elements.
func NewList[T dtype.Native](capacity int) *List[T] {
	return &List[T]{data: make([]T, 0, max(capacity, 0))}
}

// Kind implements Appender.
func (l *List[T]) Kind() dtype.Kind { return dtype.KindOf[T]() }

// Len implements Appender.
func (l *List[T]) Len() int { return len(l.data) }

// Append adds v without conversion.
func (l *List[T]) Append(v ...T) { l.data = append(l.data, v...) }

// AppendBool implements Appender.
func (l *List[T]) AppendBool(v bool) { l.data = append(l.data, dtype.Convert[T](v)) }

// AppendInt64 implements Appender.
func (l *List[T]) AppendInt64(v int64) { l.data = append(l.data, dtype.Convert[T](v)) }

// AppendFloat64 implements Appender.
func (l *List[T]) AppendFloat64(v float64) { l.data = append(l.data, dtype.Convert[T](v)) }

// AppendObject implements Appender.
func (l *List[T]) AppendObject(v any) error {
	x, err := dtype.FromObject[T](v)
	if err != nil {
		return err
	}
	l.data = append(l.data, x)
	return nil
}

// Values returns the elements appended so far. The slice is only valid until the next append.
func (l *List[T]) Values() []T { return l.data }

// Freeze returns a buffer over the appended elements and resets the list.
// The buffer owns the elements; later appends never alias it.
func (l *List[T]) Freeze() *Typed[T] {
	data := l.data[:len(l.data):len(l.data)]
	l.data = nil
	return Wrap(data)
}
