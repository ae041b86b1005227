// Package spectral computes descriptive statistics of sampled spectral
// curves: extrema, bin moments, the continuous mean of the reconstructed
// curve, centroid wavelength, spread, full width at half maximum and a
// band-limitation measure.
package spectral
