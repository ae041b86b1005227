package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/spectral/wavelength"
)

// Sample is one reconstructed point of a spectral curve.
type Sample[T core.Float] struct {
	Wavelength wavelength.Nanometer[T]
	Amplitude  T
}

// NewSample returns the sample (w, amplitude).
func NewSample[T core.Float](w wavelength.Nanometer[T], amplitude T) Sample[T] {
	return Sample[T]{Wavelength: w, Amplitude: amplitude}
}

// Equal reports exact field-wise equality.
func (s Sample[T]) Equal(o Sample[T]) bool {
	return s.Wavelength.Equal(o.Wavelength) && s.Amplitude == o.Amplitude
}

func (s Sample[T]) String() string {
	return fmt.Sprintf("%v: %g", s.Wavelength, float64(s.Amplitude))
}

// RelEqual reports whether a and b agree within the relative tolerance
// maxRelDiff, applied to wavelength and amplitude independently. A
// non-positive maxRelDiff selects the machine epsilon of T.
func RelEqual[T core.Float](a, b Sample[T], maxRelDiff T) bool {
	return core.RelEqual(a.Amplitude, b.Amplitude, maxRelDiff) &&
		wavelength.RelEqual(a.Wavelength, b.Wavelength, maxRelDiff)
}
