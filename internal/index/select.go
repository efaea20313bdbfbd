package index

import (
	"github.com/born-ml/ndbuf/internal/errs"
)

type selectOp uint8

const (
	selectAll selectOp = iota
	selectAt
	selectList
	selectRange
)

// Selector picks coordinates along one dimension.
type Selector struct {
	op                selectOp
	index             int
	list              []int
	start, stop, step int
}

// All keeps every coordinate of the dimension.
func All() Selector { return Selector{op: selectAll} }

// At fixes the dimension to coordinate i and removes it from the result.
func At(i int) Selector { return Selector{op: selectAt, index: i} }

// List keeps the given coordinates in the given order. Repeats are allowed.
func List(indices ...int) Selector {
	return Selector{op: selectList, list: append([]int(nil), indices...)}
}

// Range keeps start, start+step, ... up to but excluding stop. A negative step
// walks the dimension backwards, in which case stop may be -1.
func Range(start, stop, step int) Selector {
	return Selector{op: selectRange, start: start, stop: stop, step: step}
}

// Select applies one selector per leading dimension; dimensions without a
// selector are kept whole.
func (s Space) Select(sels ...Selector) (Space, error) {
	if len(sels) > len(s.shape) {
		return Space{}, errs.Shape("select", "%d selectors for rank %d", len(sels), len(s.shape))
	}

	out := Space{offset: s.offset}
	var lists [][]int
	hasList := false
	keep := func(n, stride int, list []int) {
		out.shape = append(out.shape, n)
		out.strides = append(out.strides, stride)
		lists = append(lists, list)
		hasList = hasList || list != nil
	}

	for d, n := range s.shape {
		sel := All()
		if d < len(sels) {
			sel = sels[d]
		}
		src := s.list(d)

		switch sel.op {
		case selectAll:
			keep(n, s.strides[d], src)

		case selectAt:
			if uint(sel.index) >= uint(n) {
				return Space{}, errs.Coord(d, sel.index, n)
			}
			out.offset += s.DimOffset(d, sel.index)

		case selectList:
			list := make([]int, len(sel.list))
			for k, c := range sel.list {
				if uint(c) >= uint(n) {
					return Space{}, errs.Coord(d, c, n)
				}
				list[k] = c
				if src != nil {
					list[k] = src[c]
				}
			}
			keep(len(list), s.strides[d], list)

		case selectRange:
			count, err := rangeCount(d, n, sel)
			if err != nil {
				return Space{}, err
			}
			switch {
			case count == 0:
				keep(0, s.strides[d], nil)
			case src != nil:
				list := make([]int, count)
				for k := range list {
					list[k] = src[sel.start+k*sel.step]
				}
				keep(count, s.strides[d], list)
			default:
				out.offset += sel.start * s.strides[d]
				keep(count, s.strides[d]*sel.step, nil)
			}
		}
	}

	if out.shape == nil {
		out.shape = Shape{}
		out.strides = []int{}
	}
	if hasList {
		out.lists = lists
	}
	return out, nil
}

// rangeCount validates a Range selector against extent n and returns how many
// coordinates it yields.
func rangeCount(d, n int, sel Selector) (int, error) {
	switch {
	case sel.step > 0:
		if sel.start < 0 || sel.stop > n {
			return 0, errs.Shape("select", "range [%d, %d) exceeds dimension %d (size %d)", sel.start, sel.stop, d, n)
		}
		if sel.stop <= sel.start {
			return 0, nil
		}
		return (sel.stop - sel.start + sel.step - 1) / sel.step, nil
	case sel.step < 0:
		if sel.start >= n || sel.stop < -1 {
			return 0, errs.Shape("select", "range [%d, %d) exceeds dimension %d (size %d)", sel.start, sel.stop, d, n)
		}
		if sel.start <= sel.stop {
			return 0, nil
		}
		return (sel.start - sel.stop - sel.step - 1) / -sel.step, nil
	default:
		return 0, errs.Shape("select", "zero step in dimension %d", d)
	}
}
