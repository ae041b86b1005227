package spectrum

import "errors"

var (
	// ErrOutOfRange is returned by checked bin access for an index outside [0, Len()).
	ErrOutOfRange = errors.New("spectrum: bin index out of range")
	// ErrDomain is returned by queries whose position, wavelength or interval
	// lies outside the spectrum's domain.
	ErrDomain = errors.New("spectrum: query outside domain")
	// ErrEmpty is returned by queries against a spectrum without bins.
	ErrEmpty = errors.New("spectrum: no bins")
)
