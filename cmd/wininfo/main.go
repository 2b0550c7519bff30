// Command wininfo prints the FFTLog spectral taper for a grid size.
//
// Usage:
//
//	wininfo [flags] [width ...]
//
// Without arguments it prints the taper summary for a set of common widths.
//
// Examples:
//
//	wininfo 0.25
//	wininfo -size 4096 0.1 0.25 0.5
//	wininfo -size 32 -bins 0.5
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-fftlog/dsp/window"
)

var defaultWidths = []float64{0, 0.1, 0.25, 0.5, 1}

func main() {
	size := flag.Int("size", 1024, "grid length N (even)")
	bins := flag.Bool("bins", false, "print every tapered bin instead of a summary")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [width ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the one-sided FFTLog taper of an N-point grid.\n")
		fmt.Fprintf(os.Stderr, "Widths are fractions of the half spectrum in [0,1].\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo 0.25\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 4096 0.1 0.25 0.5\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 32 -bins 0.5\n")
	}
	flag.Parse()

	if *size < 2 || *size%2 != 0 {
		fmt.Fprintf(os.Stderr, "error: size must be even and >= 2: %d\n", *size)
		os.Exit(1)
	}

	widths, err := parseWidths(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *bins {
		err = printBins(os.Stdout, *size/2, widths)
	} else {
		err = printSummary(os.Stdout, *size/2, widths)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseWidths(args []string) ([]float64, error) {
	if len(args) == 0 {
		return defaultWidths, nil
	}

	widths := make([]float64, 0, len(args))
	for _, a := range args {
		w, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q", a)
		}
		widths = append(widths, w)
	}
	return widths, nil
}

// summary describes the taper of one width.
type summary struct {
	width     float64
	cut       int
	firstBin  int
	meanGain  float64
	tailPower float64
}

func summarize(halfN int, width float64) (summary, error) {
	coeffs, err := window.Coefficients(halfN, width)
	if err != nil {
		return summary{}, err
	}

	s := summary{width: width, cut: window.Cut(halfN, width)}
	s.firstBin = halfN - s.cut

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	s.meanGain = sum / float64(len(coeffs))

	for _, c := range coeffs[s.firstBin:] {
		s.tailPower += c * c
	}
	return s, nil
}

func printSummary(w io.Writer, halfN int, widths []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Width\tN/2\tNcut\tFirst Bin\tMean Gain\tTail Power\n")
	fmt.Fprintf(tw, "-----\t---\t----\t---------\t---------\t----------\n")

	for _, width := range widths {
		s, err := summarize(halfN, width)
		if err != nil {
			return fmt.Errorf("width %g: %w", width, err)
		}
		fmt.Fprintf(tw, "%.3f\t%d\t%d\t%d\t%.6f\t%.4f\n",
			s.width, halfN, s.cut, s.firstBin, s.meanGain, s.tailPower)
	}
	return tw.Flush()
}

func printBins(w io.Writer, halfN int, widths []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Width\tBin\tW\n")
	fmt.Fprintf(tw, "-----\t---\t-\n")

	for _, width := range widths {
		coeffs, err := window.Coefficients(halfN, width)
		if err != nil {
			return fmt.Errorf("width %g: %w", width, err)
		}
		for bin := halfN - window.Cut(halfN, width); bin <= halfN; bin++ {
			fmt.Fprintf(tw, "%.3f\t%d\t%.6f\n", width, bin, coeffs[bin])
		}
	}
	return tw.Flush()
}
