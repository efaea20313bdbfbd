package buffer

import (
	"fmt"

	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
)

// Arange is a read-only int64 buffer whose element i is start + i*step.
// It stores no elements, so an arithmetic progression of any length costs three words.
type Arange struct {
	start int64
	step  int64
	n     int
}

// NewArange returns the progression start, start+step, ... with n elements.
func NewArange(start, step int64, n int) *Arange {
	if n < 0 {
		n = 0
	}
	return &Arange{start: start, step: step, n: n}
}

// Start returns the first element.
func (a *Arange) Start() int64 { return a.start }

// Step returns the increment between elements.
func (a *Arange) Step() int64 { return a.step }

// Kind implements Buffer.
func (a *Arange) Kind() dtype.Kind { return dtype.Int64 }

// Len implements Buffer.
func (a *Arange) Len() int { return a.n }

// CanRead implements Buffer.
func (a *Arange) CanRead() bool { return true }

// CanWrite implements Buffer.
func (a *Arange) CanWrite() bool { return false }

// Get returns element i.
func (a *Arange) Get(i int) (int64, error) {
	if uint(i) >= uint(a.n) {
		return 0, errs.Index(i, a.n)
	}
	return a.start + int64(i)*a.step, nil
}

// ReadBool implements Buffer.
func (a *Arange) ReadBool(i int) (bool, error) { return loadArange[bool](a, i) }

// ReadInt64 implements Buffer.
func (a *Arange) ReadInt64(i int) (int64, error) { return a.Get(i) }

// ReadUint64 implements Buffer.
func (a *Arange) ReadUint64(i int) (uint64, error) { return loadArange[uint64](a, i) }

// ReadFloat64 implements Buffer.
func (a *Arange) ReadFloat64(i int) (float64, error) { return loadArange[float64](a, i) }

// ReadObject implements Buffer.
func (a *Arange) ReadObject(i int) (any, error) {
	v, err := a.Get(i)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// WriteBool implements Buffer.
func (a *Arange) WriteBool(int, bool) error { return a.readOnly() }

// WriteInt64 implements Buffer.
func (a *Arange) WriteInt64(int, int64) error { return a.readOnly() }

// WriteUint64 implements Buffer.
func (a *Arange) WriteUint64(int, uint64) error { return a.readOnly() }

// WriteFloat64 implements Buffer.
func (a *Arange) WriteFloat64(int, float64) error { return a.readOnly() }

// WriteObject implements Buffer.
func (a *Arange) WriteObject(int, any) error { return a.readOnly() }

// SubBuffer implements Buffer.
func (a *Arange) SubBuffer(start, end int) (Buffer, error) {
	if err := checkRange(start, end, a.n); err != nil {
		return nil, err
	}
	return &Arange{start: a.start + int64(start)*a.step, step: a.step, n: end - start}, nil
}

// String returns a short description of the progression.
func (a *Arange) String() string {
	return fmt.Sprintf("Arange(%d, %d, %d)", a.start, a.step, a.n)
}

func (a *Arange) readOnly() error {
	return errs.Unsupported("write to read-only range buffer")
}

func loadArange[X dtype.Primitive](a *Arange, i int) (X, error) {
	v, err := a.Get(i)
	if err != nil {
		var zero X
		return zero, err
	}
	return dtype.FromInt64[X](v), nil
}
