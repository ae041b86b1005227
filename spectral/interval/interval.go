// Package interval implements closed intervals over floating-point scalars.
package interval

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Interval is the closed range [Min, Max]. Callers are expected to keep
// Min <= Max; see [Interval.Valid].
type Interval[T core.Float] struct {
	Min, Max T
}

// New returns the interval [min, max].
func New[T core.Float](min, max T) Interval[T] {
	return Interval[T]{Min: min, Max: max}
}

// Length returns Max - Min.
func (i Interval[T]) Length() T {
	return i.Max - i.Min
}

// Valid reports whether Min <= Max. A NaN bound fails the comparison, so
// intervals with a NaN bound are never valid.
func (i Interval[T]) Valid() bool {
	return i.Min <= i.Max
}

// Degenerate reports whether the interval collapses to a single point.
func (i Interval[T]) Degenerate() bool {
	return i.Min == i.Max
}

// Contains reports whether x lies in [Min, Max].
func (i Interval[T]) Contains(x T) bool {
	return x >= i.Min && x <= i.Max
}

// String formats the interval as "[min, max]".
func (i Interval[T]) String() string {
	return fmt.Sprintf("[%g, %g]", float64(i.Min), float64(i.Max))
}

// Intersection returns the overlap of a and b. The second result is false when
// the intervals are disjoint. Intervals that only touch yield a degenerate
// overlap of length zero.
func Intersection[T core.Float](a, b Interval[T]) (Interval[T], bool) {
	lo := max(a.Min, b.Min)
	hi := min(a.Max, b.Max)
	if !(lo <= hi) {
		return Interval[T]{}, false
	}
	return Interval[T]{Min: lo, Max: hi}, true
}
