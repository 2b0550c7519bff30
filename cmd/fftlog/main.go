// Command fftlog transforms a tabulated function with the FFTLog method.
//
// Usage:
//
//	fftlog [flags] -in table.txt
//
// The input holds two whitespace-separated columns, x and f(x), on a
// log-spaced grid with an even number of rows. Lines starting with # are
// ignored. The output holds one "y F(y)" block per order, blocks separated
// by a blank line.
//
// Examples:
//
//	fftlog -in pk.txt -ell 0 -nu 1.01
//	fftlog -in pk.txt -ell 0,1,2 -parallel 3 -out xi.txt
//	fftlog -in f.txt -hankel -ell 0 -nu 1 -extrap-low 500 -extrap-high 500
//	fftlog -in f.txt -backend gonum -time
//	fftlog -in irregular.txt -resample 2048
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-fftlog/dsp/fftlog"
	"github.com/cwbudde/algo-fftlog/dsp/fftlog/kernel"
	"github.com/cwbudde/algo-fftlog/dsp/hankel"
	"github.com/cwbudde/algo-fftlog/dsp/interp"
	"github.com/cwbudde/algo-fftlog/dsp/loggrid"
)

var errNoInput = errors.New("no input file (use -in)")

type settings struct {
	in, out    string
	ells       []float64
	nu         float64
	width      float64
	derivative int
	low, high  int
	hankel     bool
	backend    string
	parallel   int
	resample   int
	timing     bool
}

func main() {
	var s settings
	var ellList string

	flag.StringVar(&s.in, "in", "", "input table with columns x and f(x)")
	flag.StringVar(&s.out, "out", "", "output file (default stdout)")
	flag.StringVar(&ellList, "ell", "0", "comma-separated transform orders")
	flag.Float64Var(&s.nu, "nu", 1.5, "bias exponent")
	flag.Float64Var(&s.width, "window", 0.25, "tapered fraction of the spectrum, in [0,1]")
	flag.IntVar(&s.derivative, "derivative", 0, "kernel variant: 0 plain, 1 first derivative, 2 second derivative")
	flag.IntVar(&s.low, "extrap-low", 0, "points extrapolated below the grid")
	flag.IntVar(&s.high, "extrap-high", 0, "points extrapolated above the grid")
	flag.BoolVar(&s.hankel, "hankel", false, "cylindrical J_n transform instead of spherical j_l")
	flag.StringVar(&s.backend, "backend", fftlog.BackendAuto, "FFT backend: auto, algofft or gonum")
	flag.IntVar(&s.parallel, "parallel", 1, "goroutines used for multiple orders")
	flag.IntVar(&s.resample, "resample", 0, "interpolate the table onto this many log-spaced points (0 keeps the input grid)")
	flag.BoolVar(&s.timing, "time", false, "print elapsed time and CPU features to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fftlog [flags] -in table.txt\n\n")
		fmt.Fprintf(os.Stderr, "Computes F(y) = ∫ dx/x f(x) j_l(xy) for a log-spaced table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fftlog -in pk.txt -ell 0 -nu 1.01\n")
		fmt.Fprintf(os.Stderr, "  fftlog -in pk.txt -ell 0,1,2 -parallel 3 -out xi.txt\n")
		fmt.Fprintf(os.Stderr, "  fftlog -in f.txt -hankel -ell 0 -nu 1\n")
	}
	flag.Parse()

	ells, err := parseOrders(ellList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	s.ells = ells

	if err := run(s); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(s settings) error {
	if s.in == "" {
		return errNoInput
	}

	f, err := os.Open(s.in)
	if err != nil {
		return err
	}
	defer f.Close()

	x, fx, err := readTable(f)
	if err != nil {
		return fmt.Errorf("%s: %w", s.in, err)
	}

	if s.resample > 0 {
		if x, fx, err = resample(x, fx, s.resample); err != nil {
			return err
		}
	}

	start := time.Now()
	ys, fys, err := transform(s, x, fx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := io.Writer(os.Stdout)
	if s.out != "" {
		of, err := os.Create(s.out)
		if err != nil {
			return err
		}
		defer of.Close()
		w = of
	}

	if err := writeBlocks(w, ys, fys); err != nil {
		return err
	}

	if s.timing {
		fmt.Fprintf(os.Stderr, "%d points, %d orders: %v\n", len(x), len(s.ells), elapsed)
		fmt.Fprintf(os.Stderr, "cpu: %s\n", describeCPU(cpu.DetectFeatures()))
	}
	return nil
}

func transform(s settings, x, fx []float64) (y, fy [][]float64, err error) {
	backend, err := fftlog.BackendByName(s.backend)
	if err != nil {
		return nil, nil, err
	}

	opts := []fftlog.Option{
		fftlog.WithNu(s.nu),
		fftlog.WithWindowWidth(s.width),
		fftlog.WithDerivative(kernel.Variant(s.derivative)),
		fftlog.WithExtrapolation(s.low, s.high),
		fftlog.WithBackend(backend),
		fftlog.WithParallel(s.parallel),
	}

	if s.hankel {
		return hankel.TransformOrders(x, fx, s.ells, opts...)
	}

	t, err := fftlog.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return t.TransformOrders(x, fx, s.ells)
}

// resample moves the table onto n log-spaced points spanning its range.
func resample(x, fx []float64, n int) ([]float64, []float64, error) {
	tab, err := interp.NewTable(x, fx, interp.ModeHermite)
	if err != nil {
		return nil, nil, err
	}

	grid, err := loggrid.LogSpace(x[0], x[len(x)-1], n)
	if err != nil {
		return nil, nil, err
	}
	// Pin the ends so rounding in LogSpace cannot leave the table.
	grid[0], grid[n-1] = x[0], x[len(x)-1]

	values := make([]float64, n)
	if err := tab.Resample(values, grid); err != nil {
		return nil, nil, err
	}
	return grid, values, nil
}

// parseOrders parses a comma-separated list of orders.
func parseOrders(list string) ([]float64, error) {
	var ells []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid order %q", field)
		}
		ells = append(ells, v)
	}
	if len(ells) == 0 {
		return nil, fmt.Errorf("no orders in %q", list)
	}
	return ells, nil
}

// readTable reads two whitespace-separated columns. Blank lines and lines
// starting with # are skipped; extra columns are ignored.
func readTable(r io.Reader) (x, fx []float64, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("line %d: want 2 columns, got %d", line, len(fields))
		}

		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		fv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}

		x = append(x, xv)
		fx = append(fx, fv)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if len(x) == 0 {
		return nil, nil, errors.New("empty table")
	}
	return x, fx, nil
}

func writeBlocks(w io.Writer, ys, fys [][]float64) error {
	bw := bufio.NewWriter(w)
	for j := range ys {
		if j > 0 {
			fmt.Fprintln(bw)
		}
		for i := range ys[j] {
			fmt.Fprintf(bw, "%.10e %.10e\n", ys[j][i], fys[j][i])
		}
	}
	return bw.Flush()
}

func describeCPU(f cpu.Features) string {
	var levels []string
	for _, l := range []cpu.SIMDLevel{cpu.SIMDSSE2, cpu.SIMDAVX, cpu.SIMDAVX2, cpu.SIMDAVX512, cpu.SIMDNEON} {
		if cpu.Supports(f, l) {
			levels = append(levels, l.String())
		}
	}
	if f.ForceGeneric || len(levels) == 0 {
		levels = []string{cpu.SIMDNone.String()}
	}
	return fmt.Sprintf("%s [%s]", f.Architecture, strings.Join(levels, " "))
}
