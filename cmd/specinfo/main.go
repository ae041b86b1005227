// Command specinfo reconstructs a sampled spectrum at points, wavelengths and
// intervals.
//
// Usage:
//
//	specinfo [flags] [query ...]
//
// A query is a normalized position ("0.25"), a wavelength ("550nm") or a
// normalized interval whose average is reported ("0.1:0.4"). Without a
// -config file the spectrum from -example is used.
//
// Examples:
//
//	specinfo -example > ramp.gcfg
//	specinfo -config ramp.gcfg 0 0.25 550nm 0:1
//	specinfo -config ramp.gcfg -stats
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectra/internal/specfile"
	"github.com/cwbudde/algo-spectra/spectral/interval"
	"github.com/cwbudde/algo-spectra/spectral/spectrum"
	"github.com/cwbudde/algo-spectra/spectral/wavelength"
	spectralstats "github.com/cwbudde/algo-spectra/stats/spectral"
)

type queryKind int

const (
	queryPosition queryKind = iota
	queryWavelength
	queryInterval
)

type query struct {
	text  string
	kind  queryKind
	pos   float64
	lo    float64
	hi    float64
	nanos float64
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("specinfo: ")

	config := flag.String("config", "", "spectrum definition file (git-config syntax)")
	showStats := flag.Bool("stats", false, "print curve statistics")
	example := flag.Bool("example", false, "print an example definition file and exit")
	steps := flag.Int("steps", 0, "additionally evaluate N+1 evenly spaced positions across [0,1]")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specinfo [flags] [query ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reconstructs a sampled spectrum at the given queries.\n")
		fmt.Fprintf(os.Stderr, "A query is a position in [0,1] (0.25), a wavelength (550nm)\n")
		fmt.Fprintf(os.Stderr, "or an interval of positions to average over (0.1:0.4).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  specinfo -example > ramp.gcfg\n")
		fmt.Fprintf(os.Stderr, "  specinfo -config ramp.gcfg 0.25 550nm 0:1\n")
		fmt.Fprintf(os.Stderr, "  specinfo -config ramp.gcfg -stats\n")
	}
	flag.Parse()

	if *example {
		fmt.Println(specfile.ExampleFile)
		return
	}

	cfg, err := loadConfig(*config)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	queries := make([]query, 0, flag.NArg()+*steps+1)
	for _, arg := range flag.Args() {
		q, err := parseQuery(arg)
		if err != nil {
			log.Fatal(err)
		}
		queries = append(queries, q)
	}
	queries = append(queries, stepQueries(*steps)...)

	name := cfg.Spectrum.Name
	if name == "" {
		name = *config
	}
	if name == "" {
		name = "example"
	}
	fmt.Printf("%s: %d bins, %v .. %v\n\n", name, spec.Len(), spec.LambdaMin(), spec.LambdaMax())

	if len(queries) > 0 {
		if err := printQueries(os.Stdout, spec, queries); err != nil {
			log.Fatal(err)
		}
	}

	if *showStats {
		if err := printStats(os.Stdout, spec); err != nil {
			log.Fatal(err)
		}
	}
}

func loadConfig(path string) (specfile.Config, error) {
	if path == "" {
		return specfile.Parse(specfile.ExampleFile)
	}
	return specfile.Load(path)
}

func parseQuery(arg string) (query, error) {
	text := strings.TrimSpace(arg)
	q := query{text: text}

	switch {
	case strings.HasSuffix(strings.ToLower(text), "nm"):
		v, err := strconv.ParseFloat(strings.TrimSpace(text[:len(text)-2]), 64)
		if err != nil {
			return query{}, fmt.Errorf("invalid wavelength %q: %w", arg, err)
		}
		q.kind, q.nanos = queryWavelength, v

	case strings.Contains(text, ":"):
		lo, hi, _ := strings.Cut(text, ":")
		a, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		if err != nil {
			return query{}, fmt.Errorf("invalid interval start %q: %w", arg, err)
		}
		b, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err != nil {
			return query{}, fmt.Errorf("invalid interval end %q: %w", arg, err)
		}
		q.kind, q.lo, q.hi = queryInterval, a, b

	default:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return query{}, fmt.Errorf("invalid position %q: %w", arg, err)
		}
		q.kind, q.pos = queryPosition, v
	}
	return q, nil
}

func stepQueries(steps int) []query {
	if steps <= 0 {
		return nil
	}
	out := make([]query, 0, steps+1)
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		out = append(out, query{text: strconv.FormatFloat(f, 'g', 6, 64), kind: queryPosition, pos: f})
	}
	return out
}

func evaluate(l spectrum.LinearInterpolator[float64], q query) (spectrum.Sample[float64], error) {
	switch q.kind {
	case queryWavelength:
		return l.AtWavelength(wavelength.New(q.nanos))
	case queryInterval:
		return l.Average(interval.New(q.lo, q.hi))
	default:
		return l.At(q.pos)
	}
}

func printQueries(w io.Writer, spec *spectrum.Spectrum[float64], queries []query) error {
	l := spec.Interpolator()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Query\tWavelength [nm]\tAmplitude\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t---------------\t---------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, q := range queries {
		smp, err := evaluate(l, q)
		if err != nil {
			return fmt.Errorf("query %q: %w", q.text, err)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%.4f\t%.6f\n", q.text, smp.Wavelength.Float(), smp.Amplitude); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printStats(w io.Writer, spec *spectrum.Spectrum[float64]) error {
	st, err := spectralstats.Calculate(spec)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Bins", strconv.Itoa(st.BinCount)},
		{"Min", fmt.Sprintf("%.6f @ %.2fnm", st.Min, st.MinWavelength)},
		{"Peak", fmt.Sprintf("%.6f @ %.2fnm", st.Max, st.PeakWavelength)},
		{"Mean (curve)", fmt.Sprintf("%.6f", st.Mean)},
		{"Mean (bins)", fmt.Sprintf("%.6f", st.BinMean)},
		{"Median", fmt.Sprintf("%.6f", st.Median)},
		{"Std dev", fmt.Sprintf("%.6f", st.StdDev)},
		{"Centroid", fmt.Sprintf("%.2fnm", st.Centroid)},
		{"Spread", fmt.Sprintf("%.2fnm", st.Spread)},
		{"FWHM", fmt.Sprintf("%.2fnm", st.FWHM)},
		{"High band ratio", fmt.Sprintf("%.6f", st.HighBandRatio)},
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
