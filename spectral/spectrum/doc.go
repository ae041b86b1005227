// Package spectrum stores band-limited spectral curves sampled at evenly
// spaced wavelength bins and reconstructs them exactly at a point or averaged
// over a sub-interval.
//
// A [Spectrum] owns N amplitude bins spanning [LambdaMin, LambdaMax]; bin i
// sits at normalized position i/(N-1). Between neighbouring bins the curve is
// linear. A [LinearInterpolator] is a read-only view over one spectrum with
// three queries:
//
//   - [LinearInterpolator.At]:           normalized position in [0,1]
//   - [LinearInterpolator.AtWavelength]: wavelength in [LambdaMin, LambdaMax]
//   - [LinearInterpolator.Average]:      mean over a normalized sub-interval
//
// Interval averages weight each bin by its exact overlap with the query, so
// resampling a curve onto a coarser grid neither aliases nor double-counts
// bin boundaries.
//
// All types are generic over the float width; amplitudes and wavelengths may
// be kept in float32 or float64. Spectra are immutable after construction and
// safe for concurrent readers.
package spectrum
