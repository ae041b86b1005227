package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectra/spectral/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		arg  string
		want query
	}{
		{arg: "0.25", want: query{text: "0.25", kind: queryPosition, pos: 0.25}},
		{arg: "550nm", want: query{text: "550nm", kind: queryWavelength, nanos: 550}},
		{arg: " 467.5 NM", want: query{text: "467.5 NM", kind: queryWavelength, nanos: 467.5}},
		{arg: "0.1:0.4", want: query{text: "0.1:0.4", kind: queryInterval, lo: 0.1, hi: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseQuery(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQueryInvalid(t *testing.T) {
	for _, arg := range []string{"", "abc", "xnm", "0.1:", ":0.4", "a:b"} {
		_, err := parseQuery(arg)
		assert.Error(t, err, "arg %q", arg)
	}
}

func TestStepQueries(t *testing.T) {
	assert.Nil(t, stepQueries(0))

	qs := stepQueries(4)
	require.Len(t, qs, 5)
	assert.Equal(t, 0.0, qs[0].pos)
	assert.Equal(t, 0.5, qs[2].pos)
	assert.Equal(t, 1.0, qs[4].pos)
}

func TestLoadConfigDefaultsToExample(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	s, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestPrintQueries(t *testing.T) {
	s := spectrum.FromSlice(380, 730, []float64{0, 1})
	var qs []query
	for _, arg := range []string{"0.25", "555nm", "0:1"} {
		q, err := parseQuery(arg)
		require.NoError(t, err)
		qs = append(qs, q)
	}

	var buf bytes.Buffer
	require.NoError(t, printQueries(&buf, s, qs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"0.25", "467.5000", "0.250000"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"555nm", "555.0000", "0.500000"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"0:1", "555.0000", "0.500000"}, strings.Fields(lines[4]))
}

func TestPrintQueriesDomainError(t *testing.T) {
	s := spectrum.FromSlice(380, 730, []float64{0, 1})
	q, err := parseQuery("800nm")
	require.NoError(t, err)

	err = printQueries(&bytes.Buffer{}, s, []query{q})
	require.ErrorIs(t, err, spectrum.ErrDomain)
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printStats(&buf, spectrum.FromSlice(400, 800, []float64{0, 1, 2, 1, 0})))

	out := buf.String()
	assert.Contains(t, out, "2.000000 @ 600.00nm")
	assert.Contains(t, out, "200.00nm")
}
