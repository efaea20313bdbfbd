// Package ranges compresses integer index streams into arithmetic progressions,
// falling back to explicit lists when the stream is irregular.
package ranges

import (
	"fmt"

	"github.com/born-ml/ndbuf/internal/buffer"
)

// Form classifies the values held by a Compressor.
type Form uint8

// Forms, in the order a growing stream moves through them.
const (
	Empty Form = iota
	Scalar
	Progression
	List
)

// String returns the form name.
func (f Form) String() string {
	switch f {
	case Empty:
		return "empty"
	case Scalar:
		return "scalar"
	case Progression:
		return "progression"
	case List:
		return "list"
	default:
		return fmt.Sprintf("form(%d)", f)
	}
}

// Compressor records an int64 stream as first..last by a fixed increment for as
// long as the stream is an arithmetic progression. The first irregular step
// turns it into a list for good.
//
// The zero value is an empty compressor.
type Compressor struct {
	first, last int64
	incr        int64
	lo, hi      int64
	count       int
	list        []int64 // non-nil once irregular
}

// New returns an empty Compressor.
func New() *Compressor { return &Compressor{} }

// Of returns a Compressor fed with values.
func Of(values ...int64) *Compressor {
	c := New()
	for _, v := range values {
		c.Add(v)
	}
	return c
}

// Add appends v to the stream.
func (c *Compressor) Add(v int64) {
	switch {
	case c.count == 0:
		c.first, c.last, c.lo, c.hi = v, v, v, v
		c.count = 1
		return
	case c.list != nil:
		c.list = append(c.list, v)
	case c.count == 1:
		c.incr = v - c.last
		c.last = v
	case v-c.last == c.incr:
		c.last = v
	default:
		c.list = append(c.Values(), v)
	}
	c.lo = min(c.lo, v)
	c.hi = max(c.hi, v)
	c.count++
}

// Accept implements the staged accumulator contract; it is Add.
func (c *Compressor) Accept(v int64) { c.Add(v) }

// Combine appends other's stream after c's and returns c.
//
// Two progressions with the same increment merge when other starts exactly one
// increment after c ends; a scalar side adopts the other side's increment.
// Anything else yields a list.
func (c *Compressor) Combine(other *Compressor) *Compressor {
	switch {
	case other.count == 0:
		return c
	case c.count == 0:
		*c = *other.Clone()
		return c
	}

	if c.list == nil && other.list == nil {
		incr, ok := c.joinIncrement(other)
		if ok {
			c.incr = incr
			c.last = other.last
			c.count += other.count
			c.lo = min(c.lo, other.lo)
			c.hi = max(c.hi, other.hi)
			return c
		}
	}

	merged := append(c.Values(), other.Values()...)
	c.lo = min(c.lo, other.lo)
	c.hi = max(c.hi, other.hi)
	c.count += other.count
	c.list = merged
	return c
}

// joinIncrement returns the increment of c followed by other when the two
// form a single progression.
func (c *Compressor) joinIncrement(other *Compressor) (int64, bool) {
	switch {
	case c.count == 1 && other.count == 1:
		return other.first - c.last, true
	case c.count == 1:
		return other.incr, c.last+other.incr == other.first
	case other.count == 1:
		return c.incr, c.last+c.incr == other.first
	default:
		return c.incr, c.incr == other.incr && c.last+c.incr == other.first
	}
}

// Form returns the classification of the stream so far.
func (c *Compressor) Form() Form {
	switch {
	case c.count == 0:
		return Empty
	case c.list != nil:
		return List
	case c.count == 1:
		return Scalar
	default:
		return Progression
	}
}

// Progression returns the stream as first, last and increment. ok is false for
// empty and list forms; a scalar reports increment 0.
func (c *Compressor) Progression() (first, last, incr int64, ok bool) {
	switch c.Form() {
	case Scalar:
		return c.first, c.last, 0, true
	case Progression:
		return c.first, c.last, c.incr, true
	default:
		return 0, 0, 0, false
	}
}

// Len returns the number of values in the stream.
func (c *Compressor) Len() int { return c.count }

// Min returns the smallest value, 0 when empty.
func (c *Compressor) Min() int64 { return c.lo }

// Max returns the largest value, 0 when empty.
func (c *Compressor) Max() int64 { return c.hi }

// Values returns the stream as a new slice.
func (c *Compressor) Values() []int64 {
	if c.list != nil {
		return append([]int64(nil), c.list...)
	}
	out := make([]int64, c.count)
	for i := range out {
		out[i] = c.first + int64(i)*c.incr
	}
	return out
}

// Buffer returns the stream as a read-only computed buffer for progressions and
// a heap buffer for lists.
func (c *Compressor) Buffer() buffer.Buffer {
	if c.list != nil {
		return buffer.ReadOnly(buffer.FromSlice(c.list))
	}
	return buffer.NewArange(c.first, c.incr, c.count)
}

// Clone returns an independent copy of c.
func (c *Compressor) Clone() *Compressor {
	out := *c
	if c.list != nil {
		out.list = append([]int64(nil), c.list...)
	}
	return &out
}

// String describes the compressed form.
func (c *Compressor) String() string {
	switch c.Form() {
	case Empty:
		return "empty"
	case Scalar:
		return fmt.Sprintf("scalar(%d)", c.first)
	case Progression:
		return fmt.Sprintf("progression(%d, %d, %+d)", c.first, c.last, c.incr)
	default:
		return fmt.Sprintf("list%v", c.list)
	}
}
