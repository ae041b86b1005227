// Package specfile reads spectrum definition files.
//
// Definition files use git-config syntax with a single [Spectrum] section:
//
//	[Spectrum]
//	Name      = ramp
//	LambdaMin = 380
//	LambdaMax = 730
//	Bin       = 0.0
//	Bin       = 1.0
//
// Bins may also be given as one list separated by commas or whitespace,
// as in Bins = 0.0, 1.0 or Bins = 0.0 1.0.
package specfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cwbudde/algo-spectra/spectral/spectrum"
	"gopkg.in/gcfg.v1"
)

var (
	// ErrNoBins is returned for definitions without any bin value.
	ErrNoBins = errors.New("specfile: no bins defined")
	// ErrRange is returned when LambdaMin is not below LambdaMax.
	ErrRange = errors.New("specfile: LambdaMin must be less than LambdaMax")
)

// ExampleFile is a commented definition template.
const ExampleFile = `[Spectrum]

#######################
# Required Parameters #
#######################

# Wavelength in nanometres of the first and the last bin. The bins in between
# are spaced evenly.
LambdaMin = 380
LambdaMax = 730

# Bin amplitudes, one per line, from LambdaMin to LambdaMax.
Bin = 0.0
Bin = 0.5
Bin = 1.0

#######################
# Optional Parameters #
#######################

# Label shown in the output.
# Name = ramp

# Alternative compact form of the bins, appended after any Bin lines.
# Entries are separated by commas or whitespace.
# Bins = 0.0, 0.5, 1.0`

// Config is the parsed content of a definition file.
type Config struct {
	Spectrum Section
}

// Section holds the [Spectrum] variables.
type Section struct {
	Name      string
	LambdaMin float64
	LambdaMax float64
	Bin       []float64
	Bins      string
}

// Parse reads a definition from text.
func Parse(text string) (Config, error) {
	var cfg Config
	if err := gcfg.ReadStringInto(&cfg, text); err != nil {
		return Config{}, fmt.Errorf("specfile: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a definition from the file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if err := gcfg.ReadFileInto(&cfg, path); err != nil {
		return Config{}, fmt.Errorf("specfile: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w (%s)", err, path)
	}
	return cfg, nil
}

// Values returns the Bin values followed by the entries of Bins.
func (c Config) Values() ([]float64, error) {
	values := append([]float64(nil), c.Spectrum.Bin...)
	for i, field := range strings.FieldsFunc(c.Spectrum.Bins, isBinSeparator) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("specfile: Bins entry %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func isBinSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Validate checks the wavelength range and that at least one bin exists.
func (c Config) Validate() error {
	if !(c.Spectrum.LambdaMin < c.Spectrum.LambdaMax) {
		return fmt.Errorf("%w: %g >= %g", ErrRange, c.Spectrum.LambdaMin, c.Spectrum.LambdaMax)
	}
	values, err := c.Values()
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ErrNoBins
	}
	return nil
}

// Build validates c and returns the spectrum it describes.
func (c Config) Build() (*spectrum.Spectrum[float64], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	values, err := c.Values()
	if err != nil {
		return nil, err
	}
	return spectrum.FromSlice(c.Spectrum.LambdaMin, c.Spectrum.LambdaMax, values), nil
}
