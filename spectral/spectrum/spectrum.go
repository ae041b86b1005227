package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/spectral/wavelength"
	"github.com/cwbudde/algo-vecmath"
)

// Bins is a read-only indexable source of bin amplitudes.
//
// This allows spectra to be built from lookup tables, measurement records or
// other containers without copying them into a slice first.
type Bins[T core.Float] interface {
	Len() int
	At(i int) T
}

// SliceBins adapts a slice as [Bins].
type SliceBins[T core.Float] []T

// Len returns the bin count.
func (s SliceBins[T]) Len() int { return len(s) }

// At returns the bin value at index i.
func (s SliceBins[T]) At(i int) T { return s[i] }

// Spectrum is an immutable curve sampled at equally spaced bins over
// [LambdaMin, LambdaMax].
type Spectrum[T core.Float] struct {
	lambdaMin wavelength.Nanometer[T]
	lambdaMax wavelength.Nanometer[T]
	bins      []T

	// segments[i] is the mean of bins i and i+1, the average height of a
	// fully covered segment.
	segments []float64
}

// New copies bins into a new spectrum spanning [lambdaMin, lambdaMax].
//
// The boundaries are stored as given; callers must ensure
// lambdaMin < lambdaMax. A nil source yields an empty spectrum.
func New[T core.Float](lambdaMin, lambdaMax wavelength.Nanometer[T], bins Bins[T]) *Spectrum[T] {
	s := &Spectrum[T]{lambdaMin: lambdaMin, lambdaMax: lambdaMax}
	if bins == nil {
		return s
	}

	s.bins = make([]T, bins.Len())
	if sb, ok := bins.(SliceBins[T]); ok {
		core.CopyInto(s.bins, []T(sb))
	} else {
		for i := range s.bins {
			s.bins[i] = bins.At(i)
		}
	}
	s.segments = segmentMeans(s.bins)
	return s
}

// FromSlice is shorthand for New with a [SliceBins] source. The slice is copied.
func FromSlice[T core.Float](lambdaMin, lambdaMax T, bins []T) *Spectrum[T] {
	return New(wavelength.New(lambdaMin), wavelength.New(lambdaMax), SliceBins[T](bins))
}

func segmentMeans[T core.Float](bins []T) []float64 {
	if len(bins) < 2 {
		return nil
	}
	wide := core.Widen(nil, bins)
	seg := make([]float64, len(bins)-1)
	copy(seg, wide[:len(seg)])
	vecmath.AddBlockInPlace(seg, wide[1:])
	vecmath.ScaleBlock(seg, seg, 0.5)
	return seg
}

// LambdaMin returns the wavelength of the first bin.
func (s *Spectrum[T]) LambdaMin() wavelength.Nanometer[T] { return s.lambdaMin }

// LambdaMax returns the wavelength of the last bin.
func (s *Spectrum[T]) LambdaMax() wavelength.Nanometer[T] { return s.lambdaMax }

// Len returns the bin count.
func (s *Spectrum[T]) Len() int { return len(s.bins) }

// Empty reports whether the spectrum has no bins.
func (s *Spectrum[T]) Empty() bool { return len(s.bins) == 0 }

// Bin returns the amplitude of bin i without validation.
// Like a slice index it panics if i is outside [0, Len()).
func (s *Spectrum[T]) Bin(i int) T { return s.bins[i] }

// At returns the amplitude of bin i, or an error wrapping [ErrOutOfRange].
func (s *Spectrum[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.bins) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(s.bins))
	}
	return s.bins[i], nil
}

// Values returns a copy of the bin amplitudes.
func (s *Spectrum[T]) Values() []T {
	out := make([]T, len(s.bins))
	core.CopyInto(out, s.bins)
	return out
}

// Wavelength returns the wavelength bin i is anchored at. It does not
// validate i.
func (s *Spectrum[T]) Wavelength(i int) wavelength.Nanometer[T] {
	switch {
	case len(s.bins) < 2 || i == 0:
		return s.lambdaMin
	case i == len(s.bins)-1:
		return s.lambdaMax
	}
	f := T(i) / T(len(s.bins)-1)
	return s.lambdaMin.Add(s.lambdaMax.Sub(s.lambdaMin).Scale(f))
}

// Interpolator returns a [LinearInterpolator] bound to s.
func (s *Spectrum[T]) Interpolator() LinearInterpolator[T] {
	return NewLinearInterpolator(s)
}

// binIndex returns the index of the segment containing normalized position f,
// clamped to [0, Len()-2] so that bin i+1 always exists.
func (s *Spectrum[T]) binIndex(f float64) int {
	last := float64(len(s.bins) - 2)
	return int(core.Clamp(f*float64(len(s.bins)-1), 0, last))
}
