package ranges

import (
	"context"

	"github.com/born-ml/ndbuf/internal/parallel"
	"github.com/born-ml/ndbuf/internal/reduce"
)

type hit struct {
	index int
	keep  bool
}

// where collects the indices a predicate keeps.
type where struct {
	c *Compressor
}

func (w *where) Accept(h hit) {
	if h.keep {
		w.c.Add(int64(h.index))
	}
}

func (w *where) Combine(other *where) *where {
	w.c.Combine(other.c)
	return w
}

// Where returns the indices i in [0, n) for which pred(i) is true, in ascending
// order. Partitions are evaluated in parallel and merged in index order.
func Where(ctx context.Context, n int, pred func(i int) (bool, error), cfg parallel.Config) (*Compressor, error) {
	read := func(i int) (hit, error) {
		keep, err := pred(i)
		return hit{index: i, keep: keep}, err
	}
	acc, err := reduce.Reduce(ctx, n, read, func() *where { return &where{c: New()} }, cfg)
	if err != nil {
		return nil, err
	}
	return acc.c, nil
}

// Groups maps each key to the ascending indices that produced it.
type Groups[K comparable] struct {
	keys   []K
	groups map[K]*Compressor
}

func newGroups[K comparable]() *Groups[K] {
	return &Groups[K]{groups: make(map[K]*Compressor)}
}

type keyed[K comparable] struct {
	index int
	key   K
}

// Accept adds the element's index to the group of its key.
func (g *Groups[K]) Accept(e keyed[K]) {
	c, ok := g.groups[e.key]
	if !ok {
		c = New()
		g.groups[e.key] = c
		g.keys = append(g.keys, e.key)
	}
	c.Add(int64(e.index))
}

// Combine appends other's groups after g's.
func (g *Groups[K]) Combine(other *Groups[K]) *Groups[K] {
	for _, k := range other.keys {
		if c, ok := g.groups[k]; ok {
			c.Combine(other.groups[k])
			continue
		}
		g.groups[k] = other.groups[k]
		g.keys = append(g.keys, k)
	}
	return g
}

// Keys returns the keys in order of first appearance.
func (g *Groups[K]) Keys() []K { return append([]K(nil), g.keys...) }

// Get returns the indices of key k.
func (g *Groups[K]) Get(k K) (*Compressor, bool) {
	c, ok := g.groups[k]
	return c, ok
}

// Len returns the number of distinct keys.
func (g *Groups[K]) Len() int { return len(g.keys) }

// GroupBy partitions [0, n) by key(i). Each group holds its indices in ascending
// order, so runs of equal keys compress to progressions.
func GroupBy[K comparable](ctx context.Context, n int, key func(i int) (K, error), cfg parallel.Config) (*Groups[K], error) {
	read := func(i int) (keyed[K], error) {
		k, err := key(i)
		return keyed[K]{index: i, key: k}, err
	}
	return reduce.Reduce(ctx, n, read, newGroups[K], cfg)
}
