package view

import (
	"sync"

	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/index"
	"github.com/born-ml/ndbuf/internal/parallel"
)

// Materialize copies the view into a fresh row-major heap buffer of the same kind.
func (v *View) Materialize() (*View, error) {
	return v.MaterializeWith(parallel.Default())
}

// MaterializeWith is Materialize with an explicit parallel configuration.
func (v *View) MaterializeWith(cfg parallel.Config) (*View, error) {
	n := v.NumElements()
	dst, err := buffer.MakeKind(v.Kind(), n)
	if err != nil {
		return nil, err
	}
	space, err := index.New(v.space.Shape())
	if err != nil {
		return nil, err
	}

	var (
		once     sync.Once
		firstErr error
	)
	parallel.ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			off, err := v.space.FlatOffset(i)
			if err == nil {
				err = buffer.CopyElem(dst, i, v.buf, off)
			}
			if err != nil {
				once.Do(func() { firstErr = err })
				return
			}
		}
	}, cfg)
	if firstErr != nil {
		return nil, firstErr
	}
	return New(dst, space)
}

// Equal reports whether a and b have the same shape and logically equal elements
// in row-major order.
func Equal(a, b *View) bool {
	return a.space.Shape().Equal(b.space.Shape()) && buffer.Equal(a.Linear(), b.Linear())
}
