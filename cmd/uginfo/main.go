// Command uginfo prints the measured frequency response of the unit
// generators.
//
// Usage:
//
//	uginfo [flags] [unit-name ...]
//
// Without arguments it prints the response of every unit with a linear
// response. Each unit is driven through a ugen.Host with a unit impulse.
//
// Examples:
//
//	uginfo lowpass highpass
//	uginfo -cutoff 500 -freqs 100,500,2000 lowpass
//	uginfo -delay 0.002 -feedback 0.7 echo
//	uginfo -impl
//	uginfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
	"github.com/cwbudde/algo-ugen/dsp/frame"
	"github.com/cwbudde/algo-ugen/dsp/vec"
	"github.com/cwbudde/algo-ugen/measure/response"
	"github.com/cwbudde/algo-ugen/ugen"
	"github.com/cwbudde/algo-vecmath/cpu"
)

type settings struct {
	sampleRate float64
	cutoff     float64
	moogCutoff float64
	resonance  float64
	delay      float64
	feedback   float64
	damping    float64
	lagTime    float64
}

type unitEntry struct {
	name     string
	describe func(s settings) string
	config   func(s settings) ugen.Config
	params   func(s settings) ugen.Params
}

var registry = []unitEntry{
	{
		name:     "lowpass",
		describe: func(s settings) string { return fmt.Sprintf("fc=%g Hz", s.cutoff) },
		config:   func(s settings) ugen.Config { return ugen.PassConfig{SampleRate: s.sampleRate, Mode: "lowpass"} },
		params:   func(s settings) ugen.Params { return ugen.PassParams{Cutoff: s.cutoff} },
	},
	{
		name:     "highpass",
		describe: func(s settings) string { return fmt.Sprintf("fc=%g Hz", s.cutoff) },
		config:   func(s settings) ugen.Config { return ugen.PassConfig{SampleRate: s.sampleRate, Mode: "highpass"} },
		params:   func(s settings) ugen.Params { return ugen.PassParams{Cutoff: s.cutoff} },
	},
	{
		name:     "moog",
		describe: func(s settings) string { return fmt.Sprintf("fc=%g res=%g", s.moogCutoff, s.resonance) },
		config:   func(settings) ugen.Config { return ugen.MoogConfig{} },
		params: func(s settings) ugen.Params {
			return ugen.MoogParams{Cutoff: s.moogCutoff, Resonance: s.resonance}
		},
	},
	{
		name: "echo",
		describe: func(s settings) string {
			return fmt.Sprintf("delay=%g s fb=%g damp=%g", s.delay, s.feedback, s.damping)
		},
		config: func(s settings) ugen.Config {
			return ugen.EchoConfig{SampleRate: s.sampleRate, MaxDelay: s.delay}
		},
		params: func(s settings) ugen.Params {
			return ugen.EchoParams{Delay: s.delay, Feedback: s.feedback, Damping: s.damping}
		},
	},
	{
		name:     "lag",
		describe: func(s settings) string { return fmt.Sprintf("t60=%g s", s.lagTime) },
		config:   func(s settings) ugen.Config { return ugen.LagConfig{SampleRate: s.sampleRate} },
		params:   func(s settings) ugen.Params { return ugen.LagParams{LagTime: s.lagTime} },
	},
}

func main() {
	var s settings

	flag.Float64Var(&s.sampleRate, "rate", 48000, "sample rate in Hz")
	flag.Float64Var(&s.cutoff, "cutoff", 1000, "cutoff of lowpass/highpass in Hz")
	flag.Float64Var(&s.moogCutoff, "moog-cutoff", 0.2, "normalized moog cutoff in [0, 1]")
	flag.Float64Var(&s.resonance, "resonance", 1, "moog resonance in [0, 4]")
	flag.Float64Var(&s.delay, "delay", 0.001, "echo delay in seconds")
	flag.Float64Var(&s.feedback, "feedback", 0.5, "echo feedback")
	flag.Float64Var(&s.damping, "damping", 0.2, "echo damping")
	flag.Float64Var(&s.lagTime, "lag", 0.001, "lag 60 dB time in seconds")
	length := flag.Int("length", 8192, "impulse response length in samples")
	freqList := flag.String("freqs", "100,1000,10000", "comma-separated frequencies to report in Hz")
	list := flag.Bool("list", false, "list available unit names")
	impl := flag.Bool("impl", false, "print the selected SIMD kernels and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: uginfo [flags] [unit-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the measured frequency response of unit generators.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every unit.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  uginfo lowpass highpass\n")
		fmt.Fprintf(os.Stderr, "  uginfo -cutoff 500 -freqs 100,500,2000 lowpass\n")
		fmt.Fprintf(os.Stderr, "  uginfo -impl\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}
	if *impl {
		printImplementations()
		return
	}

	freqs, err := parseFreqs(*freqList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching units\n")
		os.Exit(1)
	}

	host := ugen.NewHost(core.WithSampleRate(s.sampleRate))
	if !printAnalysis(host, entries, s, *length, freqs) {
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func printImplementations() {
	f := cpu.DetectFeatures()
	fmt.Printf("arch: %s\n", f.Architecture)
	fmt.Printf("vec multiply: %s\n", vec.Implementation())
	fmt.Printf("biquad: %s\n", biquad.Implementation())
}

func parseFreqs(list string) ([]float64, error) {
	var freqs []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		f, err := strconv.ParseFloat(field, 64)
		if err != nil || f < 0 || math.IsInf(f, 0) {
			return nil, fmt.Errorf("invalid frequency %q", field)
		}
		freqs = append(freqs, f)
	}
	return freqs, nil
}

func resolveEntries(names []string) []unitEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]unitEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []unitEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown unit %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// measure drives one unit through the host and returns its response.
func measure(host *ugen.Host, e unitEntry, s settings, length int) (*response.Response, error) {
	handle, err := host.Construct(e.config(s))
	if err != nil {
		return nil, err
	}
	defer func() { _ = host.Release(handle) }()

	params := e.params(s)
	kernel := func(in []float64) ([]float64, error) {
		out, err := host.Process(handle, ugen.Block(frame.Pack(in)), params)
		if err != nil {
			return nil, err
		}
		return frame.Unpack(out.Block)
	}

	return response.Measure(kernel, s.sampleRate, response.WithLength(length), response.WithPreroll(1))
}

func printAnalysis(host *ugen.Host, entries []unitEntry, s settings, length int, freqs []float64) bool {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := []string{"Unit", "Params", "DC [dB]"}
	for _, f := range freqs {
		header = append(header, fmt.Sprintf("%g Hz [dB]", f))
	}
	header = append(header, "-3 dB from peak [Hz]")

	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}

	for _, row := range [][]string{header, rule} {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
			return false
		}
	}

	ok := true
	for _, e := range entries {
		r, err := measure(host, e, s, length)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			ok = false
			continue
		}

		row := []string{e.name, e.describe(s), formatDB(r.At(0))}
		for _, f := range freqs {
			row = append(row, formatDB(r.At(f)))
		}

		row = append(row, edgeColumn(r))

		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return false
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return false
	}

	return ok
}

// edgeColumn reports the first frequency 3 dB below the passband peak.
func edgeColumn(r *response.Response) string {
	if f, found := r.Crossing(r.Peak() - 3); found {
		return fmt.Sprintf("%.1f", f)
	}
	return "-"
}

func formatDB(db float64) string {
	if math.IsInf(db, -1) {
		return "-inf"
	}
	return fmt.Sprintf("%.2f", db)
}
