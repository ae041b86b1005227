// Package interp provides the interpolation primitives used by spectral
// reconstruction.
//
// Available methods:
//
//   - [Lerp]:           2-point linear interpolation
//   - [SegmentAverage]: exact mean of a linear segment over a local sub-range
//
// Both are generic over the floating-point width so that spectra can be kept
// in float32 or float64 without touching the reconstruction code.
package interp
