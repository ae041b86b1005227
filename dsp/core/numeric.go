package core

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point widths spectral types are generic over.
type Float = constraints.Float

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp[T Float](value, min, max T) T {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual[T Float](a, b, eps T) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := abs(a - b)
	if diff <= eps {
		return true
	}

	largest := max(abs(a), abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// RelEqual reports whether a and b differ by at most maxRelDiff relative to
// the larger magnitude of the two. A non-positive maxRelDiff selects
// Epsilon[T]().
func RelEqual[T Float](a, b, maxRelDiff T) bool {
	if a == b {
		return true
	}
	if maxRelDiff <= 0 {
		maxRelDiff = Epsilon[T]()
	}

	largest := max(abs(a), abs(b))
	return abs(a-b) <= largest*maxRelDiff
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

// IsNaN reports whether v is not a number.
func IsNaN[T Float](v T) bool {
	return v != v
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
