package spectral

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/internal/testutil"
	"github.com/cwbudde/algo-spectra/spectral/spectrum"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestCalculateTriangle(t *testing.T) {
	s := spectrum.FromSlice(400, 800, []float64{0, 1, 2, 1, 0})

	got, err := Calculate(s)
	require.NoError(t, err)

	want := Stats{
		BinCount:       5,
		Min:            0,
		MinWavelength:  400,
		Max:            2,
		PeakWavelength: 600,
		BinMean:        0.8,
		Median:         1,
		StdDev:         math.Sqrt(0.56),
		Mean:           1,
		Centroid:       600,
		Spread:         math.Sqrt(5000),
		FWHM:           200,
		HighBandRatio:  got.HighBandRatio,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Fatalf("Calculate mismatch (-want +got):\n%s", diff)
	}
	assert.GreaterOrEqual(t, got.HighBandRatio, 0.0)
	assert.LessOrEqual(t, got.HighBandRatio, 1.0)
}

func TestCalculateEmpty(t *testing.T) {
	_, err := Calculate(spectrum.FromSlice[float64](380, 730, nil))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Calculate[float64](nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestCalculateSingleBin(t *testing.T) {
	got, err := Calculate(spectrum.FromSlice[float32](500, 600, []float32{0.25}))
	require.NoError(t, err)

	assert.Equal(t, 1, got.BinCount)
	assert.Equal(t, 0.25, got.Mean)
	assert.Equal(t, 0.25, got.BinMean)
	assert.Equal(t, 500.0, got.Centroid)
	assert.Equal(t, 0.0, got.Spread)
	assert.Equal(t, 0.0, got.FWHM)
	assert.Equal(t, 0.0, got.HighBandRatio)
}

func TestMeanMatchesReference(t *testing.T) {
	bins := testutil.DeterministicNoise(9, 1, 41)
	got, err := Calculate(spectrum.FromSlice(380, 780, bins))
	require.NoError(t, err)

	testutil.RequireNearlyEqual(t, got.Mean, testutil.TrapezoidMean(bins, 0, 1), 1e-12)
}

func TestCentroidSymmetricPeak(t *testing.T) {
	s := spectrum.FromSlice(400, 700, testutil.Gaussian(0.5, 0.1, 31))

	c, err := Centroid(s)
	require.NoError(t, err)
	testutil.RequireNearlyEqual(t, c, 550, 1e-9)
}

func TestCentroidShiftsTowardsPeak(t *testing.T) {
	s := spectrum.FromSlice(400, 700, testutil.Gaussian(0.8, 0.05, 61))

	c, err := Centroid(s)
	require.NoError(t, err)
	assert.InDelta(t, 640, c, 1)
}

func TestCentroidZeroCurve(t *testing.T) {
	c, err := Centroid(spectrum.FromSlice(400, 700, testutil.DC(0, 8)))
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)
}

func TestFWHMGaussian(t *testing.T) {
	const sigma = 0.05
	s := spectrum.FromSlice(400, 700, testutil.Gaussian(0.5, sigma, 301))

	got, err := Calculate(s)
	require.NoError(t, err)

	// FWHM of a Gaussian is 2*sqrt(2*ln 2)*sigma.
	want := 2 * math.Sqrt(2*math.Ln2) * sigma * 300
	assert.InDelta(t, want, got.FWHM, 0.1)
	testutil.RequireNearlyEqual(t, got.PeakWavelength, 550, 1e-9)
}

func TestHighBandRatio(t *testing.T) {
	alternating := make([]float64, 16)
	for i := range alternating {
		alternating[i] = float64((i + 1) % 2)
	}

	tests := []struct {
		name string
		bins []float64
		min  float64
		max  float64
	}{
		{name: "constant", bins: testutil.DC(0.3, 32), min: 0, max: 0},
		{name: "alternating", bins: alternating, min: 1 - 1e-12, max: 1 + 1e-12},
		{name: "smooth", bins: testutil.Gaussian(0.5, 0.2, 64), min: 0, max: 0.01},
		{name: "two bins", bins: []float64{0, 1}, min: 0, max: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HighBandRatio(spectrum.FromSlice(380, 730, tt.bins))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestHighBandRatioNoiseAboveSmooth(t *testing.T) {
	noise, err := HighBandRatio(spectrum.FromSlice(380, 730, testutil.DeterministicNoise(4, 1, 64)))
	require.NoError(t, err)
	smooth, err := HighBandRatio(spectrum.FromSlice(380, 730, testutil.Gaussian(0.5, 0.2, 64)))
	require.NoError(t, err)

	assert.Greater(t, noise, smooth)
}
