package spectral

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/spectral/interval"
	"github.com/cwbudde/algo-spectra/spectral/spectrum"
	"github.com/cwbudde/algo-vecmath"
	"github.com/montanaflynn/stats"
)

// ErrEmpty is returned for spectra without bins.
var ErrEmpty = errors.New("spectral: spectrum has no bins")

// Stats holds descriptive statistics of a spectral curve. Wavelengths are in
// nanometres.
type Stats struct {
	BinCount       int
	Min            float64
	MinWavelength  float64
	Max            float64
	PeakWavelength float64
	BinMean        float64 // arithmetic mean of the bin values
	Median         float64
	StdDev         float64 // population standard deviation of the bin values
	Mean           float64 // mean of the piecewise-linear curve over the whole domain
	Centroid       float64 // amplitude-weighted wavelength
	Spread         float64 // amplitude-weighted standard deviation around Centroid
	FWHM           float64 // full width at half maximum around the peak
	HighBandRatio  float64
}

// Calculate computes all statistics of s.
func Calculate[T core.Float](s *spectrum.Spectrum[T]) (Stats, error) {
	if s == nil || s.Empty() {
		return Stats{}, ErrEmpty
	}

	values := core.Widen(nil, s.Values())
	lambdas := wavelengths(s)

	var st Stats
	st.BinCount = len(values)

	minBin, maxBin := 0, 0
	for i, v := range values {
		if v < values[minBin] {
			minBin = i
		}
		if v > values[maxBin] {
			maxBin = i
		}
	}
	st.Min, st.MinWavelength = values[minBin], lambdas[minBin]
	st.Max, st.PeakWavelength = values[maxBin], lambdas[maxBin]

	var err error
	if st.BinMean, err = stats.Mean(values); err != nil {
		return Stats{}, fmt.Errorf("spectral: bin mean: %w", err)
	}
	if st.Median, err = stats.Median(values); err != nil {
		return Stats{}, fmt.Errorf("spectral: median: %w", err)
	}
	if st.StdDev, err = stats.StandardDeviationPopulation(values); err != nil {
		return Stats{}, fmt.Errorf("spectral: standard deviation: %w", err)
	}

	whole, err := s.Interpolator().Average(interval.New[T](0, 1))
	if err != nil {
		return Stats{}, err
	}
	st.Mean = float64(whole.Amplitude)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	st.Centroid = centroid(values, lambdas, sum)
	st.Spread = spread(values, lambdas, st.Centroid, sum)
	st.FWHM = fwhm(values, lambdas, maxBin)

	if st.HighBandRatio, err = HighBandRatio(s); err != nil {
		return Stats{}, err
	}

	return st, nil
}

// Centroid returns the amplitude-weighted mean wavelength of s in nanometres:
//
//	centroid = sum(lambda_i * a_i) / sum(a_i)
//
// It returns 0 if the amplitudes sum to zero.
func Centroid[T core.Float](s *spectrum.Spectrum[T]) (float64, error) {
	if s == nil || s.Empty() {
		return 0, ErrEmpty
	}
	values := core.Widen(nil, s.Values())
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return centroid(values, wavelengths(s), sum), nil
}

func wavelengths[T core.Float](s *spectrum.Spectrum[T]) []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = float64(s.Wavelength(i).Float())
	}
	return out
}

func centroid(values, lambdas []float64, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	weighted := make([]float64, len(values))
	vecmath.MulBlock(weighted, lambdas, values)

	weightedSum := 0.0
	for _, v := range weighted {
		weightedSum += v
	}
	return weightedSum / sum
}

// spread is the standard deviation of the curve around its centroid.
func spread(values, lambdas []float64, cent, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	weightedSqSum := 0.0
	for i, v := range values {
		diff := lambdas[i] - cent
		weightedSqSum += diff * diff * v
	}
	return math.Sqrt(math.Abs(weightedSqSum / sum))
}

// fwhm locates the half-maximum crossings on both sides of the peak bin,
// interpolating linearly between bins, and returns their distance.
func fwhm(values, lambdas []float64, peakBin int) float64 {
	n := len(values)
	peak := values[peakBin]
	if n < 2 || peak <= 0 {
		return 0
	}

	threshold := peak / 2

	lower := lambdas[0]
	for i := peakBin; i >= 1; i-- {
		if values[i-1] <= threshold && values[i] > threshold {
			lower = crossing(lambdas[i-1], lambdas[i], values[i-1], values[i], threshold)
			break
		}
	}

	upper := lambdas[n-1]
	for i := peakBin; i < n-1; i++ {
		if values[i+1] <= threshold && values[i] > threshold {
			upper = crossing(lambdas[i], lambdas[i+1], values[i], values[i+1], threshold)
			break
		}
	}

	if w := upper - lower; w > 0 {
		return w
	}
	return 0
}

// crossing linearly interpolates the wavelength where the curve between two
// bins crosses threshold.
func crossing(lambdaLow, lambdaHigh, low, high, threshold float64) float64 {
	denom := high - low
	if denom == 0 {
		return (lambdaLow + lambdaHigh) / 2
	}
	t := (threshold - low) / denom
	return lambdaLow + t*(lambdaHigh-lambdaLow)
}

// HighBandRatio returns the fraction of the bin sequence's variation energy
// that lies in the upper half of its frequency band (above a quarter of the
// sampling rate of the bins).
//
// The mean-removed bins are zero-padded to a power of two and transformed
// with an FFT; DC is excluded. Smooth, well band-limited curves yield values
// near 0, while bin-to-bin alternation approaches 1. Spectra with fewer than
// three bins, or constant ones, return 0.
func HighBandRatio[T core.Float](s *spectrum.Spectrum[T]) (float64, error) {
	if s == nil || s.Empty() {
		return 0, ErrEmpty
	}
	n := s.Len()
	if n < 3 {
		return 0, nil
	}

	size := 1
	for size < n {
		size <<= 1
	}

	mean := 0.0
	for i := range n {
		mean += float64(s.Bin(i))
	}
	mean /= float64(n)

	in := make([]complex128, size)
	for i := range n {
		in[i] = complex(float64(s.Bin(i))-mean, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return 0, fmt.Errorf("spectral: fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("spectral: fft: %w", err)
	}

	half := size / 2
	var total, high float64
	for k := 1; k <= half; k++ {
		p := real(out[k])*real(out[k]) + imag(out[k])*imag(out[k])
		total += p
		if k > half/2 {
			high += p
		}
	}
	if total <= 1e-24 {
		return 0, nil
	}
	return high / total, nil
}
