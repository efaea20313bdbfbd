package view

import (
	"fmt"

	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
)

// Linear returns the view's elements as a flat buffer in row-major order.
//
// Contiguous views return a sub-buffer of the underlying storage; any other view
// returns an adapter that translates each flat index through the index space.
// Either way the result aliases the view's storage.
func (v *View) Linear() buffer.Buffer {
	n := v.NumElements()
	if n > 0 && v.IsContiguous() {
		off, err := v.space.FlatOffset(0)
		if err == nil {
			if sub, err := v.buf.SubBuffer(off, off+n); err == nil {
				return sub
			}
		}
	}
	return &linear{v: v, n: n}
}

type linear struct {
	v     *View
	start int
	n     int
}

func (l *linear) Kind() dtype.Kind { return l.v.buf.Kind() }
func (l *linear) Len() int         { return l.n }
func (l *linear) CanRead() bool    { return l.v.buf.CanRead() }
func (l *linear) CanWrite() bool   { return l.v.buf.CanWrite() && !l.v.broadcast }

func (l *linear) String() string {
	return fmt.Sprintf("Linear[%s](%d)", l.v.buf.Kind(), l.n)
}

func (l *linear) offset(i int) (int, error) {
	if uint(i) >= uint(l.n) {
		return 0, errs.Index(i, l.n)
	}
	return l.v.space.FlatOffset(l.start + i)
}

func (l *linear) writeOffset(i int) (int, error) {
	if err := l.v.writable(); err != nil {
		return 0, err
	}
	return l.offset(i)
}

func (l *linear) ReadBool(i int) (bool, error) {
	off, err := l.offset(i)
	if err != nil {
		return false, err
	}
	return l.v.buf.ReadBool(off)
}

func (l *linear) ReadInt64(i int) (int64, error) {
	off, err := l.offset(i)
	if err != nil {
		return 0, err
	}
	return l.v.buf.ReadInt64(off)
}

func (l *linear) ReadUint64(i int) (uint64, error) {
	off, err := l.offset(i)
	if err != nil {
		return 0, err
	}
	return l.v.buf.ReadUint64(off)
}

func (l *linear) ReadFloat64(i int) (float64, error) {
	off, err := l.offset(i)
	if err != nil {
		return 0, err
	}
	return l.v.buf.ReadFloat64(off)
}

func (l *linear) ReadObject(i int) (any, error) {
	off, err := l.offset(i)
	if err != nil {
		return nil, err
	}
	return l.v.buf.ReadObject(off)
}

func (l *linear) WriteBool(i int, x bool) error {
	off, err := l.writeOffset(i)
	if err != nil {
		return err
	}
	return l.v.buf.WriteBool(off, x)
}

func (l *linear) WriteInt64(i int, x int64) error {
	off, err := l.writeOffset(i)
	if err != nil {
		return err
	}
	return l.v.buf.WriteInt64(off, x)
}

func (l *linear) WriteUint64(i int, x uint64) error {
	off, err := l.writeOffset(i)
	if err != nil {
		return err
	}
	return l.v.buf.WriteUint64(off, x)
}

func (l *linear) WriteFloat64(i int, x float64) error {
	off, err := l.writeOffset(i)
	if err != nil {
		return err
	}
	return l.v.buf.WriteFloat64(off, x)
}

func (l *linear) WriteObject(i int, x any) error {
	off, err := l.writeOffset(i)
	if err != nil {
		return err
	}
	return l.v.buf.WriteObject(off, x)
}

func (l *linear) SubBuffer(start, end int) (buffer.Buffer, error) {
	if start < 0 || end > l.n || start > end {
		return nil, errs.Range(start, end, l.n)
	}
	return &linear{v: l.v, start: l.start + start, n: end - start}, nil
}
