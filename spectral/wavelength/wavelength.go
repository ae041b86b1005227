// Package wavelength provides a typed length in nanometres with the linear
// arithmetic spectral code needs.
package wavelength

import (
	"cmp"
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Nanometer is a wavelength in nanometres stored with float width T.
// The zero value is 0 nm.
type Nanometer[T core.Float] struct {
	v T
}

// New returns a wavelength of v nanometres.
func New[T core.Float](v T) Nanometer[T] {
	return Nanometer[T]{v: v}
}

// Float returns the magnitude in nanometres.
func (n Nanometer[T]) Float() T { return n.v }

// Add returns n + o.
func (n Nanometer[T]) Add(o Nanometer[T]) Nanometer[T] { return Nanometer[T]{v: n.v + o.v} }

// Sub returns n - o.
func (n Nanometer[T]) Sub(o Nanometer[T]) Nanometer[T] { return Nanometer[T]{v: n.v - o.v} }

// Scale returns n scaled by the dimensionless factor f.
func (n Nanometer[T]) Scale(f T) Nanometer[T] { return Nanometer[T]{v: n.v * f} }

// Ratio returns the dimensionless quotient n / o.
func (n Nanometer[T]) Ratio(o Nanometer[T]) T { return n.v / o.v }

// Less reports whether n is shorter than o.
func (n Nanometer[T]) Less(o Nanometer[T]) bool { return n.v < o.v }

// Compare returns -1, 0 or +1 depending on whether n is shorter than, equal to
// or longer than o.
func (n Nanometer[T]) Compare(o Nanometer[T]) int { return cmp.Compare(n.v, o.v) }

// Equal reports exact equality.
func (n Nanometer[T]) Equal(o Nanometer[T]) bool { return n.v == o.v }

// String formats the wavelength as e.g. "555nm".
func (n Nanometer[T]) String() string {
	return fmt.Sprintf("%gnm", float64(n.v))
}

// RelEqual reports whether a and b agree within the relative tolerance
// maxRelDiff. A non-positive maxRelDiff selects the machine epsilon of T.
func RelEqual[T core.Float](a, b Nanometer[T], maxRelDiff T) bool {
	return core.RelEqual(a.v, b.v, maxRelDiff)
}
