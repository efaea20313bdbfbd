// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reduce

import (
	"context"

	"github.com/born-ml/ndbuf/internal/ranges"
)

// Compressor stores a sequence of int64 values as a scalar, an arithmetic
// progression or a plain list, whichever is the most compact.
type Compressor = ranges.Compressor

// Form is the current representation of a Compressor.
type Form = ranges.Form

// Compressor forms.
const (
	Empty       Form = ranges.Empty
	Scalar      Form = ranges.Scalar
	Progression Form = ranges.Progression
	List        Form = ranges.List
)

// Groups maps keys to the indices that produced them.
type Groups[K comparable] = ranges.Groups[K]

// NewCompressor returns an empty Compressor.
func NewCompressor() *Compressor { return ranges.New() }

// CompressorOf returns a Compressor holding values.
func CompressorOf(values ...int64) *Compressor { return ranges.Of(values...) }

// Where returns the ascending indices in [0, n) for which pred is true.
func Where(ctx context.Context, n int, pred func(i int) (bool, error), cfg Config) (*Compressor, error) {
	return ranges.Where(ctx, n, pred, cfg)
}

// GroupBy partitions [0, n) by key(i).
func GroupBy[K comparable](ctx context.Context, n int, key func(i int) (K, error), cfg Config) (*Groups[K], error) {
	return ranges.GroupBy(ctx, n, key, cfg)
}
