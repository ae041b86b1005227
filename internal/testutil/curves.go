package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates non-negative bin amplitudes in [0, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * amplitude
	}
	return out
}

// Ramp generates length bins rising linearly from start to stop (inclusive).
func Ramp(start, stop float64, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(length-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Gaussian generates a bell-shaped emission line centred at normalized
// position center with the given normalized width (standard deviation).
func Gaussian(center, width float64, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		x := float64(i)/float64(length-1) - center
		out[i] = math.Exp(-0.5 * x * x / (width * width))
	}
	return out
}

// DC generates a constant-valued curve.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PiecewiseLinearAt evaluates the piecewise-linear curve through equally
// spaced bins at normalized position x in [0,1].
func PiecewiseLinearAt(bins []float64, x float64) float64 {
	n := len(bins)
	if n == 1 {
		return bins[0]
	}
	pos := x * float64(n-1)
	k := int(math.Floor(pos))
	if k >= n-1 {
		return bins[n-1]
	}
	t := pos - float64(k)
	return bins[k] + t*(bins[k+1]-bins[k])
}

// TrapezoidMean integrates the piecewise-linear curve through bins over the
// normalized range [lo, hi] with the trapezoid rule and returns the mean.
// Every bin breakpoint inside the range is used as a node, so the result is
// exact up to rounding. It is intentionally independent from the production
// interval-average code and serves as a reference.
func TrapezoidMean(bins []float64, lo, hi float64) float64 {
	if hi <= lo {
		return PiecewiseLinearAt(bins, lo)
	}

	nodes := []float64{lo}
	segments := len(bins) - 1
	for k := 1; k < segments; k++ {
		x := float64(k) / float64(segments)
		if x > lo && x < hi {
			nodes = append(nodes, x)
		}
	}
	nodes = append(nodes, hi)

	area := 0.0
	for i := 1; i < len(nodes); i++ {
		a := PiecewiseLinearAt(bins, nodes[i-1])
		b := PiecewiseLinearAt(bins, nodes[i])
		area += 0.5 * (a + b) * (nodes[i] - nodes[i-1])
	}
	return area / (hi - lo)
}
