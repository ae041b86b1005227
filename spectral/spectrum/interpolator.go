package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/interp"
	"github.com/cwbudde/algo-spectra/spectral/interval"
	"github.com/cwbudde/algo-spectra/spectral/wavelength"
)

// LinearInterpolator reconstructs a [Spectrum] by linear interpolation between
// neighbouring bins. It holds no state besides the spectrum it reads from, and
// its zero value is not usable.
type LinearInterpolator[T core.Float] struct {
	spec *Spectrum[T]
}

// NewLinearInterpolator returns an interpolator reading from s.
func NewLinearInterpolator[T core.Float](s *Spectrum[T]) LinearInterpolator[T] {
	return LinearInterpolator[T]{spec: s}
}

// Spectrum returns the spectrum l reads from.
func (l LinearInterpolator[T]) Spectrum() *Spectrum[T] { return l.spec }

// At reconstructs the curve at normalized position f in [0,1].
//
// f == 0 and f == 1 return the first and last bin with LambdaMin and
// LambdaMax exactly. A spectrum with a single bin is constant.
func (l LinearInterpolator[T]) At(f T) (Sample[T], error) {
	s := l.spec
	if core.IsNaN(f) || f < 0 || f > 1 {
		return Sample[T]{}, fmt.Errorf("%w: position %v not in [0, 1]", ErrDomain, f)
	}
	if s.Empty() {
		return Sample[T]{}, ErrEmpty
	}

	n := s.Len()
	switch f {
	case 0:
		return NewSample(s.lambdaMin, s.bins[0]), nil
	case 1:
		return NewSample(s.lambdaMax, s.bins[n-1]), nil
	}

	w := s.lambdaMin.Add(s.lambdaMax.Sub(s.lambdaMin).Scale(f))
	if n == 1 {
		return NewSample(w, s.bins[0]), nil
	}

	// Rounding can push f*(N-1) to N-1 for f just below 1; binIndex clamps
	// to the last segment in that case.
	i := s.binIndex(float64(f))
	last := T(n - 1)
	bin := interval.New(T(i)/last, T(i+1)/last)
	frac := (f - bin.Min) / bin.Length()

	return NewSample(w, interp.Lerp(frac, s.bins[i], s.bins[i+1])), nil
}

// AtWavelength reconstructs the curve at wavelength w in
// [LambdaMin, LambdaMax].
func (l LinearInterpolator[T]) AtWavelength(w wavelength.Nanometer[T]) (Sample[T], error) {
	s := l.spec
	if w.Less(s.lambdaMin) || s.lambdaMax.Less(w) {
		return Sample[T]{}, fmt.Errorf("%w: wavelength %v not in [%v, %v]",
			ErrDomain, w, s.lambdaMin, s.lambdaMax)
	}

	f := w.Sub(s.lambdaMin).Ratio(s.lambdaMax.Sub(s.lambdaMin))
	return l.At(f)
}

// binWeight is the overlap length of a query with one segment together with
// the mean amplitude over that overlap.
type binWeight struct {
	weight    float64
	amplitude float64
}

// Average returns the mean of the curve over the normalized interval r, a
// sub-range of [0,1].
//
// Each segment contributes its mean amplitude weighted by the length of its
// overlap with r, so the amplitude equals the integral of the
// piecewise-linear curve over r divided by r's length. The reported
// wavelength is the midpoint of r mapped onto [LambdaMin, LambdaMax]; it does
// not depend on the amplitudes. A degenerate interval yields the point value
// at r.Min.
//
// Cost is proportional to the number of segments r touches.
func (l LinearInterpolator[T]) Average(r interval.Interval[T]) (Sample[T], error) {
	s := l.spec
	if core.IsNaN(r.Min) || r.Min < 0 {
		return Sample[T]{}, fmt.Errorf("%w: interval %v starts below 0", ErrDomain, r)
	}
	if core.IsNaN(r.Max) || r.Max > 1 {
		return Sample[T]{}, fmt.Errorf("%w: interval %v ends above 1", ErrDomain, r)
	}
	if !r.Valid() {
		return Sample[T]{}, fmt.Errorf("%w: interval %v is reversed", ErrDomain, r)
	}
	if r.Degenerate() {
		return l.At(r.Min)
	}
	if s.Empty() {
		return Sample[T]{}, ErrEmpty
	}

	w := wavelength.New(interp.SegmentAverage(r.Min, r.Max, s.lambdaMin.Float(), s.lambdaMax.Float()))
	n := s.Len()
	if n == 1 {
		return NewSample(w, s.bins[0]), nil
	}

	// Given the bins             [    |    |    |    |    ]
	// and the query interval        [______________]
	// the first and last segment are weighted by their exact overlap, the
	// segments in between are fully covered and weigh one bin width each:
	//                            [exact|full|full|exact|    ]
	q := interval.New(float64(r.Min), float64(r.Max))
	delta := 1 / float64(n-1)
	minI := s.binIndex(q.Min)
	maxI := s.binIndex(q.Max)

	var sum, total float64

	first := l.binAverage(minI, q, delta)
	sum += first.amplitude * first.weight
	total += first.weight

	// A query inside one segment was fully accounted for above.
	if minI != maxI {
		last := l.binAverage(maxI, q, delta)
		sum += last.amplitude * last.weight
		total += last.weight
	}

	for i := minI + 1; i < maxI; i++ {
		sum += s.segments[i] * delta
		total += delta
	}

	if total == 0 {
		return l.At(r.Min)
	}
	return NewSample(w, T(sum/total)), nil
}

// binAverage computes the overlap of segment bin with q and the mean
// amplitude over it.
func (l LinearInterpolator[T]) binAverage(bin int, q interval.Interval[float64], delta float64) binWeight {
	global := interval.New(float64(bin)*delta, float64(bin)*delta+delta)
	overlap, ok := interval.Intersection(global, q)
	if !ok {
		return binWeight{}
	}

	local := interval.New((overlap.Min-global.Min)/delta, (overlap.Max-global.Min)/delta)
	a := float64(l.spec.bins[bin])
	b := float64(l.spec.bins[bin+1])

	return binWeight{
		weight:    overlap.Length(),
		amplitude: interp.SegmentAverage(local.Min, local.Max, a, b),
	}
}
