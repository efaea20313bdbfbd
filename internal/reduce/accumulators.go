package reduce

import "math"

// Sum is a running float64 sum with count.
type Sum struct {
	sum   float64
	count int
}

// NewSum returns an empty Sum.
func NewSum() *Sum { return &Sum{} }

// Accept adds x.
func (s *Sum) Accept(x float64) {
	s.sum += x
	s.count++
}

// Combine adds other's sum and count.
func (s *Sum) Combine(other *Sum) *Sum {
	s.sum += other.sum
	s.count += other.count
	return s
}

// Value returns the sum.
func (s *Sum) Value() float64 { return s.sum }

// Count returns the number of accepted elements.
func (s *Sum) Count() int { return s.count }

// Mean returns sum/count, NaN when empty.
func (s *Sum) Mean() float64 { return s.sum / float64(s.count) }

// IntSum is an exact int64 running sum with count. Overflow wraps.
type IntSum struct {
	sum   int64
	count int
}

// NewIntSum returns an empty IntSum.
func NewIntSum() *IntSum { return &IntSum{} }

// Accept adds x.
func (s *IntSum) Accept(x int64) {
	s.sum += x
	s.count++
}

// Combine adds other's sum and count.
func (s *IntSum) Combine(other *IntSum) *IntSum {
	s.sum += other.sum
	s.count += other.count
	return s
}

// Value returns the sum.
func (s *IntSum) Value() int64 { return s.sum }

// Count returns the number of accepted elements.
func (s *IntSum) Count() int { return s.count }

// MappedSum sums fn(x) over the accepted elements.
type MappedSum struct {
	fn    func(float64) float64
	sum   float64
	count int
}

// MappedSumOf returns a factory of MappedSum accumulators applying fn.
func MappedSumOf(fn func(float64) float64) func() *MappedSum {
	return func() *MappedSum { return &MappedSum{fn: fn} }
}

// Accept adds fn(x).
func (s *MappedSum) Accept(x float64) {
	s.sum += s.fn(x)
	s.count++
}

// Combine adds other's sum and count.
func (s *MappedSum) Combine(other *MappedSum) *MappedSum {
	s.sum += other.sum
	s.count += other.count
	return s
}

// Value returns the mapped sum.
func (s *MappedSum) Value() float64 { return s.sum }

// Count returns the number of accepted elements.
func (s *MappedSum) Count() int { return s.count }

// Fold folds an associative binary operator over the accepted elements.
//
// Partitions fold without the seed; Result applies it once, on the left, so a
// seed that is not the operator's identity is counted exactly once.
type Fold[T any] struct {
	op   func(a, b T) T
	stop func(T) bool
	seed T
	acc  T
	has  bool
}

// FoldOf returns a factory of Fold accumulators.
func FoldOf[T any](seed T, op func(a, b T) T) func() *Fold[T] {
	return FoldUntil(seed, op, nil)
}

// FoldUntil is FoldOf with an early-termination predicate over the partial fold.
func FoldUntil[T any](seed T, op func(a, b T) T, stop func(T) bool) func() *Fold[T] {
	return func() *Fold[T] { return &Fold[T]{op: op, stop: stop, seed: seed} }
}

// Accept folds x into the partial result.
func (f *Fold[T]) Accept(x T) {
	if !f.has {
		f.acc, f.has = x, true
		return
	}
	f.acc = f.op(f.acc, x)
}

// Combine folds other's partial result to the right of the receiver's.
func (f *Fold[T]) Combine(other *Fold[T]) *Fold[T] {
	switch {
	case !other.has:
	case !f.has:
		f.acc, f.has = other.acc, true
	default:
		f.acc = f.op(f.acc, other.acc)
	}
	return f
}

// Reduced reports whether the stop predicate holds for the partial result.
func (f *Fold[T]) Reduced() bool {
	return f.has && f.stop != nil && f.stop(f.acc)
}

// Result returns op(seed, partial), or the seed when nothing was accepted.
func (f *Fold[T]) Result() T {
	if !f.has {
		return f.seed
	}
	return f.op(f.seed, f.acc)
}

// MinMaxSum tracks minimum, maximum and sum in one pass. NaN propagates to the
// minimum and maximum.
type MinMaxSum struct {
	lo, hi float64
	sum    float64
	count  int
}

// NewMinMaxSum returns an empty MinMaxSum.
func NewMinMaxSum() *MinMaxSum { return &MinMaxSum{} }

// Accept folds x in.
func (m *MinMaxSum) Accept(x float64) {
	if m.count == 0 {
		m.lo, m.hi = x, x
	} else {
		m.lo = min(m.lo, x)
		m.hi = max(m.hi, x)
	}
	m.sum += x
	m.count++
}

// Combine merges other into m.
func (m *MinMaxSum) Combine(other *MinMaxSum) *MinMaxSum {
	switch {
	case other.count == 0:
	case m.count == 0:
		*m = *other
	default:
		m.lo = min(m.lo, other.lo)
		m.hi = max(m.hi, other.hi)
		m.sum += other.sum
		m.count += other.count
	}
	return m
}

// Min returns the smallest accepted value, 0 when empty.
func (m *MinMaxSum) Min() float64 { return m.lo }

// Max returns the largest accepted value, 0 when empty.
func (m *MinMaxSum) Max() float64 { return m.hi }

// Sum returns the sum of accepted values.
func (m *MinMaxSum) Sum() float64 { return m.sum }

// Count returns the number of accepted values.
func (m *MinMaxSum) Count() int { return m.count }

// MaxAbs tracks the largest absolute value. It is 0 when empty; NaN propagates.
type MaxAbs struct {
	peak float64
}

// NewMaxAbs returns an empty MaxAbs.
func NewMaxAbs() *MaxAbs { return &MaxAbs{} }

// Accept folds |x| in.
func (m *MaxAbs) Accept(x float64) { m.peak = max(m.peak, math.Abs(x)) }

// Combine merges other into m.
func (m *MaxAbs) Combine(other *MaxAbs) *MaxAbs {
	m.peak = max(m.peak, other.peak)
	return m
}

// Value returns the largest absolute value seen.
func (m *MaxAbs) Value() float64 { return m.peak }
