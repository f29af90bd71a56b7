package analyzer_test

import (
	"testing"

	"github.com/cwbudde/algo-viz/analyzer"
	"github.com/cwbudde/algo-viz/bands"
	"github.com/cwbudde/algo-viz/internal/testutil"
)

func TestPipelineSineDrivesNearestBand(t *testing.T) {
	a, err := analyzer.New(
		analyzer.WithSampleRate(48000),
		analyzer.WithFFTSize(2048),
		analyzer.WithWindow("hann"),
		analyzer.WithOverlap(0.5),
		analyzer.WithSmoothing(0),
	)
	if err != nil {
		t.Fatalf("analyzer.New error: %v", err)
	}

	extractor, err := bands.New(
		bands.WithFreqRange(40, 16000),
		bands.WithTilt(0),
		bands.WithGain(1),
		bands.WithCompression(1),
		bands.WithNoiseFloor(0),
		bands.WithEnvelope(1, 1),
		bands.WithSmoothing(0),
	)
	if err != nil {
		t.Fatalf("bands.New error: %v", err)
	}

	a.Push(testutil.DeterministicSine(1000, 48000, 0.8, 8192))

	out, err := extractor.Bands(a.Frame(), 16)
	if err != nil {
		t.Fatalf("Bands error: %v", err)
	}

	testutil.RequireInRange(t, out, 0, 1)

	// With 16 bands over 40..16000 Hz, band 8 sits at ~977 Hz and its
	// averaging window covers the 1 kHz tone.
	if got := testutil.ArgMax(out); got != 8 {
		t.Fatalf("loudest band: got %d, want 8 (%v)", got, out)
	}
}
