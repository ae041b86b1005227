package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T any](dst, src []T) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// Widen converts src into a float64 slice, reusing dst capacity if possible.
func Widen[T Float](dst []float64, src []T) []float64 {
	dst = EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}
