package reduce

import "math"

// Moments accumulates the 2nd, 3rd and 4th central moments about a mean fixed
// before the pass. Both sides of a Combine share that mean, so the sums add.
type Moments struct {
	mean       float64
	m2, m3, m4 float64
	n          int
}

// MomentsAbout returns a factory of Moments accumulators around mean.
func MomentsAbout(mean float64) func() *Moments {
	return func() *Moments { return &Moments{mean: mean} }
}

// Accept adds the powers of x's deviation from the mean.
func (m *Moments) Accept(x float64) {
	d := x - m.mean
	d2 := d * d
	m.m2 += d2
	m.m3 += d2 * d
	m.m4 += d2 * d2
	m.n++
}

// Combine adds other's moment sums.
func (m *Moments) Combine(other *Moments) *Moments {
	m.m2 += other.m2
	m.m3 += other.m3
	m.m4 += other.m4
	m.n += other.n
	return m
}

// Count returns the number of accepted values.
func (m *Moments) Count() int { return m.n }

// Variance returns the population variance m2/n, NaN when empty.
func (m *Moments) Variance() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	return m.m2 / float64(m.n)
}

// Skewness returns (m3/n)/σ³, or 0 when the variance is 0.
func (m *Moments) Skewness() float64 {
	v := m.Variance()
	if !(v > 0) {
		return 0
	}
	return (m.m3 / float64(m.n)) / (v * math.Sqrt(v))
}

// Kurtosis returns the excess kurtosis (m4/n)/σ⁴ - 3, or 0 when the variance is 0.
func (m *Moments) Kurtosis() float64 {
	v := m.Variance()
	if !(v > 0) {
		return 0
	}
	return (m.m4/float64(m.n))/(v*v) - 3
}
