package interp

import "github.com/cwbudde/algo-spectra/dsp/core"

// Lerp interpolates linearly from a (t = 0) to b (t = 1).
func Lerp[T core.Float](t, a, b T) T {
	return a*(1-t) + b*t
}

// SegmentAverage returns the mean value of the linear profile running from a
// (local position 0) to b (local position 1), taken over the local sub-range
// [lo, hi].
//
// For a linear profile the mean over a sub-range equals the mean of its two
// endpoint values, so the result is exact (trapezoid rule). lo == hi yields the
// point value.
func SegmentAverage[T core.Float](lo, hi, a, b T) T {
	return 0.5*Lerp(lo, a, b) + 0.5*Lerp(hi, a, b)
}
