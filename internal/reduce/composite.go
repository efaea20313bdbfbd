package reduce

// Stage is an accumulator with its concrete type erased, as held by a Composite.
type Stage[T any] interface {
	Accept(x T)
	// CombineStage merges a stage produced by the same factory.
	CombineStage(other Stage[T]) Stage[T]
	// Value returns the wrapped accumulator.
	Value() any
	Reduced() bool
}

type stage[T any, A Accumulator[T, A]] struct {
	acc A
}

// A finished part ignores further elements and merges.
func (s *stage[T, A]) Accept(x T) {
	if !isReduced(s.acc) {
		s.acc.Accept(x)
	}
}

func (s *stage[T, A]) CombineStage(other Stage[T]) Stage[T] {
	if !isReduced(s.acc) {
		s.acc = s.acc.Combine(other.(*stage[T, A]).acc)
	}
	return s
}

func (s *stage[T, A]) Value() any { return s.acc }

func (s *stage[T, A]) Reduced() bool { return isReduced(s.acc) }

// Part wraps an accumulator factory for use in a Composite.
func Part[T any, A Accumulator[T, A]](newAcc func() A) func() Stage[T] {
	return func() Stage[T] { return &stage[T, A]{acc: newAcc()} }
}

// Composite feeds every element to several independent accumulators, computing
// several statistics in one pass.
type Composite[T any] struct {
	parts []Stage[T]
}

// CompositeOf returns a factory of Composite accumulators over the given parts.
func CompositeOf[T any](parts ...func() Stage[T]) func() *Composite[T] {
	return func() *Composite[T] {
		c := &Composite[T]{parts: make([]Stage[T], len(parts))}
		for i, p := range parts {
			c.parts[i] = p()
		}
		return c
	}
}

// Accept feeds x to every part.
func (c *Composite[T]) Accept(x T) {
	for _, p := range c.parts {
		p.Accept(x)
	}
}

// Combine merges each part with the corresponding part of other.
func (c *Composite[T]) Combine(other *Composite[T]) *Composite[T] {
	for i, p := range c.parts {
		c.parts[i] = p.CombineStage(other.parts[i])
	}
	return c
}

// Reduced reports whether every part has finished early.
func (c *Composite[T]) Reduced() bool {
	for _, p := range c.parts {
		if !p.Reduced() {
			return false
		}
	}
	return len(c.parts) > 0
}

// Len returns the number of parts.
func (c *Composite[T]) Len() int { return len(c.parts) }

// PartValue returns part i of c as its concrete accumulator type.
func PartValue[A any, T any](c *Composite[T], i int) (A, bool) {
	if i < 0 || i >= len(c.parts) {
		var zero A
		return zero, false
	}
	a, ok := c.parts[i].Value().(A)
	return a, ok
}
