// Package reduce implements block reduction over views and the staged parallel
// reduction protocol.
//
// A staged reduction creates one accumulator per contiguous partition of the
// index domain, feeds each partition's elements to its accumulator on a worker
// goroutine, merges the partition accumulators left to right in partition order
// and finalizes the merged result once. Combine must be associative; it need not
// be commutative because the merge order is fixed.
package reduce

import (
	"context"

	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/parallel"
	"github.com/born-ml/ndbuf/internal/view"
)

// cancelCheck is how many elements a partition consumes between context checks.
const cancelCheck = 1024

// Accumulator is a per-partition staged consumer of T.
//
// Combine merges other, which covers the partition immediately to the right,
// into the receiver's state and returns the merged accumulator.
type Accumulator[T, A any] interface {
	Accept(x T)
	Combine(other A) A
}

// Reducer is implemented by accumulators that can finish early. Once Reduced
// reports true the partition skips its remaining elements and merging stops.
type Reducer interface {
	Reduced() bool
}

func isReduced(acc any) bool {
	r, ok := acc.(Reducer)
	return ok && r.Reduced()
}

// Protocol is a complete reduction: an accumulator factory and a finalizer.
type Protocol[T any, A Accumulator[T, A], R any] struct {
	New      func() A
	Finalize func(A) R
}

// Reduce feeds read(i) for every i in [0, n) to per-partition accumulators and
// returns the merged accumulator.
//
// The first error from read, or the cancellation of ctx, is returned once every
// running partition has stopped.
func Reduce[T any, A Accumulator[T, A]](ctx context.Context, n int, read func(i int) (T, error), newAcc func() A, cfg parallel.Config) (A, error) {
	return reduceParts(ctx, n, newAcc, cfg, func(ctx context.Context, acc A, r parallel.Range) error {
		for i := r.Start; i < r.End; i++ {
			if (i-r.Start)%cancelCheck == cancelCheck-1 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			x, err := read(i)
			if err != nil {
				return err
			}
			acc.Accept(x)
			if isReduced(acc) {
				return nil
			}
		}
		return nil
	})
}

// ReduceView is Reduce over the row-major elements of v. Each partition is
// folded with Blocks, so partition bounds need not align with dimensions.
func ReduceView[T dtype.Primitive, A Accumulator[T, A]](ctx context.Context, v *view.View, newAcc func() A, cfg parallel.Config) (A, error) {
	return reduceParts(ctx, v.NumElements(), newAcc, cfg, func(ctx context.Context, acc A, r parallel.Range) error {
		var ctxErr error
		seen := 0
		_, err := Blocks(v, r.Start, r.End, acc, func(acc A, x T) (A, bool) {
			acc.Accept(x)
			if seen++; seen%cancelCheck == 0 {
				if ctxErr = ctx.Err(); ctxErr != nil {
					return acc, true
				}
			}
			return acc, isReduced(acc)
		})
		if err != nil {
			return err
		}
		return ctxErr
	})
}

// Run executes p over read(0..n) and finalizes the merged accumulator.
func Run[T any, A Accumulator[T, A], R any](ctx context.Context, n int, read func(i int) (T, error), p Protocol[T, A, R], cfg parallel.Config) (R, error) {
	acc, err := Reduce(ctx, n, read, p.New, cfg)
	if err != nil {
		var zero R
		return zero, err
	}
	return p.Finalize(acc), nil
}

// RunView executes p over the row-major elements of v.
func RunView[T dtype.Primitive, A Accumulator[T, A], R any](ctx context.Context, v *view.View, p Protocol[T, A, R], cfg parallel.Config) (R, error) {
	acc, err := ReduceView[T](ctx, v, p.New, cfg)
	if err != nil {
		var zero R
		return zero, err
	}
	return p.Finalize(acc), nil
}

// reduceParts runs feed on every partition of [0, n) with a fresh accumulator
// and merges the results left to right.
func reduceParts[A interface{ Combine(A) A }](ctx context.Context, n int, newAcc func() A, cfg parallel.Config,
	feed func(ctx context.Context, acc A, r parallel.Range) error,
) (A, error) {
	parts := parallel.Split(n, cfg)
	if len(parts) == 0 {
		return newAcc(), ctx.Err()
	}

	partials := make([]A, len(parts))
	err := parallel.Run(ctx, parts, cfg, func(ctx context.Context, p int, r parallel.Range) error {
		acc := newAcc()
		partials[p] = acc
		return feed(ctx, acc, r)
	})
	if err != nil {
		var zero A
		return zero, err
	}

	result := partials[0]
	for _, p := range partials[1:] {
		if isReduced(result) {
			break
		}
		result = result.Combine(p)
	}
	return result, nil
}
