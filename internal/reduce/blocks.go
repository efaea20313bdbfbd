package reduce

import (
	"github.com/born-ml/ndbuf/internal/buffer"
	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
	"github.com/born-ml/ndbuf/internal/view"
)

// Blocks folds the elements of v whose row-major flat index lies in [start, end)
// in strictly ascending order, starting from init. step returns the new
// accumulator and whether the fold is finished.
//
// The range may start and end anywhere, not only on dimension boundaries. The
// innermost loop always runs over the last dimension at one fixed outer
// coordinate; each block ends at the next multiple of the last extent (or at end),
// and its outer coordinate is recomputed from the flat position.
func Blocks[T dtype.Primitive, A any](v *view.View, start, end int, init A, step func(acc A, x T) (A, bool)) (A, error) {
	acc := init
	n := v.NumElements()
	if start < 0 || end > n || start > end {
		return acc, errs.Range(start, end, n)
	}
	if start == end {
		return acc, nil
	}

	s := v.Space()
	buf := v.Buffer()
	rank := s.Rank()

	// run folds dimension d (the last one) from coordinate from to to at base.
	run := func(base, d, from, to int) (bool, error) {
		for c := from; c < to; c++ {
			x, err := buffer.Read[T](buf, base+s.DimOffset(d, c))
			if err != nil {
				return true, err
			}
			var done bool
			if acc, done = step(acc, x); done {
				return true, nil
			}
		}
		return false, nil
	}

	switch rank {
	case 0:
		x, err := buffer.Read[T](buf, s.Offset())
		if err != nil {
			return acc, err
		}
		acc, _ = step(acc, x)
		return acc, nil

	case 1:
		_, err := run(s.Offset(), 0, start, end)
		return acc, err

	case 2:
		inner := s.Dim(1)
		for pos := start; pos < end; {
			i, j := pos/inner, pos%inner
			stop := min(end, (i+1)*inner)
			done, err := run(s.Offset()+s.DimOffset(0, i), 1, j, j+stop-pos)
			if done || err != nil {
				return acc, err
			}
			pos = stop
		}
		return acc, nil

	case 3:
		mid, inner := s.Dim(1), s.Dim(2)
		for pos := start; pos < end; {
			row, k := pos/inner, pos%inner
			i, j := row/mid, row%mid
			stop := min(end, (row+1)*inner)
			done, err := run(s.Offset()+s.DimOffset(0, i)+s.DimOffset(1, j), 2, k, k+stop-pos)
			if done || err != nil {
				return acc, err
			}
			pos = stop
		}
		return acc, nil

	default:
		last := rank - 1
		inner := s.Dim(last)
		coords := make([]int, rank)
		for pos := start; pos < end; {
			if err := s.Unravel(pos, coords); err != nil {
				return acc, err
			}
			base := s.Offset()
			for d := 0; d < last; d++ {
				base += s.DimOffset(d, coords[d])
			}
			k := coords[last]
			stop := min(end, (pos/inner+1)*inner)
			done, err := run(base, last, k, k+stop-pos)
			if done || err != nil {
				return acc, err
			}
			pos = stop
		}
		return acc, nil
	}
}
