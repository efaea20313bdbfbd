package dtype

import "math"

// Bit-level reinterpretation between IEEE-754 floats and integers of the same width.
// These are used for hashing and serialization and are never a substitute for Convert:
// Convert[int64](1.0) is 1, Float64Bits(1.0) is 0x3FF0000000000000.

// Float64Bits returns the IEEE-754 bits of f as an int64.
func Float64Bits(f float64) int64 {
	return int64(math.Float64bits(f)) //nolint:gosec // G115: reinterpretation
}

// Float64FromBits returns the float64 whose IEEE-754 bits are b.
func Float64FromBits(b int64) float64 {
	return math.Float64frombits(uint64(b)) //nolint:gosec // G115: reinterpretation
}

// Float32Bits returns the IEEE-754 bits of f as an int32.
func Float32Bits(f float32) int32 {
	return int32(math.Float32bits(f)) //nolint:gosec // G115: reinterpretation
}

// Float32FromBits returns the float32 whose IEEE-754 bits are b.
func Float32FromBits(b int32) float32 {
	return math.Float32frombits(uint32(b)) //nolint:gosec // G115: reinterpretation
}
