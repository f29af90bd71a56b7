// Command bandinfo prints the band layout of the log-frequency band
// extractor for a given transform geometry.
//
// Usage:
//
//	bandinfo [flags]
//
// Examples:
//
//	bandinfo
//	bandinfo -bands 32 -rate 44100 -fft 4096
//	bandinfo -bands 8 -min 100 -max 10000
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-viz/bands"
)

func main() {
	bandCount := flag.Int("bands", 16, "number of output bands")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	fftSize := flag.Int("fft", 2048, "FFT size in samples")
	minHz := flag.Float64("min", 40, "lower frequency bound in Hz")
	maxHz := flag.Float64("max", 16000, "upper frequency bound in Hz")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bandinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints center frequency and bin coverage per extractor band.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bandinfo -bands 32 -rate 44100 -fft 4096\n")
		fmt.Fprintf(os.Stderr, "  bandinfo -bands 8 -min 100 -max 10000\n")
	}
	flag.Parse()

	extractor, err := bands.New(bands.WithFreqRange(*minHz, *maxHz))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	layout, err := extractor.Layout(*bandCount, *rate, *fftSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hzPerBin := *rate / float64(*fftSize)
	fmt.Printf("bands=%d rate=%.0f fft=%d range=%.0f..%.0f Hz (%.2f Hz/bin)\n\n",
		*bandCount, *rate, *fftSize, *minHz, *maxHz, hzPerBin)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "band\tcenter Hz\tcenter bin\tbin range\twidth")

	for i, b := range layout {
		width := b.HighBin - b.LowBin + 1
		if width < 0 {
			width = 0
		}

		rangeCol := fmt.Sprintf("%d..%d", b.LowBin, b.HighBin)
		if width == 0 {
			rangeCol = "-"
		}

		fmt.Fprintf(w, "%d\t%.1f\t%d\t%s\t%d\n", i, b.CenterHz, b.CenterBin, rangeCol, width)
	}

	err = w.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
