package buffer

import (
	"github.com/born-ml/ndbuf/internal/errs"
)

type accessor interface {
	withAccess(a Access) Buffer
}

// ReadOnly returns a buffer aliasing b that rejects writes.
func ReadOnly(b Buffer) Buffer { return restrict(b, AccessRead) }

// WriteOnly returns a buffer aliasing b that rejects reads.
func WriteOnly(b Buffer) Buffer { return restrict(b, AccessWrite) }

func restrict(b Buffer, a Access) Buffer {
	if b.CanRead() && b.CanWrite() {
		if acc, ok := b.(accessor); ok {
			return acc.withAccess(a)
		}
	}
	if !b.CanRead() {
		a &^= AccessRead
	}
	if !b.CanWrite() {
		a &^= AccessWrite
	}
	return &restricted{Buffer: b, access: a}
}

// restricted narrows the permissions of a buffer it does not own.
type restricted struct {
	Buffer
	access Access
}

func (r *restricted) CanRead() bool  { return r.access&AccessRead != 0 }
func (r *restricted) CanWrite() bool { return r.access&AccessWrite != 0 }

func (r *restricted) read() error {
	if r.access&AccessRead == 0 {
		return errs.Unsupported("read from write-only %s buffer", r.Kind())
	}
	return nil
}

func (r *restricted) write() error {
	if r.access&AccessWrite == 0 {
		return errs.Unsupported("write to read-only %s buffer", r.Kind())
	}
	return nil
}

func (r *restricted) ReadBool(i int) (bool, error) {
	if err := r.read(); err != nil {
		return false, err
	}
	return r.Buffer.ReadBool(i)
}

func (r *restricted) ReadInt64(i int) (int64, error) {
	if err := r.read(); err != nil {
		return 0, err
	}
	return r.Buffer.ReadInt64(i)
}

func (r *restricted) ReadUint64(i int) (uint64, error) {
	if err := r.read(); err != nil {
		return 0, err
	}
	return r.Buffer.ReadUint64(i)
}

func (r *restricted) ReadFloat64(i int) (float64, error) {
	if err := r.read(); err != nil {
		return 0, err
	}
	return r.Buffer.ReadFloat64(i)
}

func (r *restricted) ReadObject(i int) (any, error) {
	if err := r.read(); err != nil {
		return nil, err
	}
	return r.Buffer.ReadObject(i)
}

func (r *restricted) WriteBool(i int, v bool) error {
	if err := r.write(); err != nil {
		return err
	}
	return r.Buffer.WriteBool(i, v)
}

func (r *restricted) WriteInt64(i int, v int64) error {
	if err := r.write(); err != nil {
		return err
	}
	return r.Buffer.WriteInt64(i, v)
}

func (r *restricted) WriteUint64(i int, v uint64) error {
	if err := r.write(); err != nil {
		return err
	}
	return r.Buffer.WriteUint64(i, v)
}

func (r *restricted) WriteFloat64(i int, v float64) error {
	if err := r.write(); err != nil {
		return err
	}
	return r.Buffer.WriteFloat64(i, v)
}

func (r *restricted) WriteObject(i int, v any) error {
	if err := r.write(); err != nil {
		return err
	}
	return r.Buffer.WriteObject(i, v)
}

func (r *restricted) SubBuffer(start, end int) (Buffer, error) {
	sub, err := r.Buffer.SubBuffer(start, end)
	if err != nil {
		return nil, err
	}
	return &restricted{Buffer: sub, access: r.access}, nil
}
