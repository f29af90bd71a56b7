package analyzer

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-viz/internal/testutil"
)

func TestAnalyzerNotReadyBeforeFill(t *testing.T) {
	a, err := New(WithFFTSize(2048))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if !a.Frame().Empty() {
		t.Fatalf("expected empty frame before any input")
	}

	a.Push(testutil.DeterministicSine(440, 48000, 0.5, 1000))

	if !a.Frame().Empty() {
		t.Fatalf("expected empty frame before the ring fills")
	}
}

func TestAnalyzerSinePeakBin(t *testing.T) {
	a, err := New(
		WithSampleRate(48000),
		WithFFTSize(2048),
		WithWindow("hann"),
		WithOverlap(0.5),
		WithSmoothing(0),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	a.Push(testutil.DeterministicSine(1000, 48000, 0.8, 4096))

	frame := a.Frame()
	if frame.Empty() {
		t.Fatalf("expected a ready frame")
	}

	if len(frame.Bins) != 1024 {
		t.Fatalf("bin count mismatch: got %d", len(frame.Bins))
	}

	if frame.SampleRate != 48000 || frame.FFTSize != 2048 {
		t.Fatalf("frame geometry mismatch: %f %d", frame.SampleRate, frame.FFTSize)
	}

	wantBin := 1000.0 / (48000.0 / 2048.0)
	peakBin := testutil.ArgMax(frame.Bins)
	if math.Abs(float64(peakBin)-wantBin) > 1 {
		t.Fatalf("peak bin: got %d, want near %.1f", peakBin, wantBin)
	}

	if frame.Bins[peakBin] < -10 {
		t.Fatalf("peak level too low: %f dB", frame.Bins[peakBin])
	}

	// Far away from the tone the hann leakage must have died off.
	if frame.Bins[500] > -40 {
		t.Fatalf("excessive leakage at bin 500: %f dB", frame.Bins[500])
	}

	testutil.RequireFinite(t, frame.Bins)
}

func TestAnalyzerSilenceStaysAtFloor(t *testing.T) {
	a, err := New(WithFFTSize(1024), WithSmoothing(0))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	a.Push(make([]float64, 2048))

	frame := a.Frame()
	if frame.Empty() {
		t.Fatalf("expected a ready frame")
	}

	for i, v := range frame.Bins {
		if v != minDB {
			t.Fatalf("bin %d: got %f, want floor %f", i, v, minDB)
		}
	}
}

func TestAnalyzerSmoothingConverges(t *testing.T) {
	sharp, err := New(WithFFTSize(1024), WithSmoothing(0))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	smooth, err := New(WithFFTSize(1024), WithSmoothing(0.9))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Silence first, then a sustained tone: the smoothed analyzer must
	// lag behind the unsmoothed one at the tone bin.
	silence := make([]float64, 2048)
	tone := testutil.DeterministicSine(2000, 48000, 0.5, 2048)

	sharp.Push(silence)
	smooth.Push(silence)
	sharp.Push(tone)
	smooth.Push(tone)

	bin := testutil.ArgMax(sharp.Frame().Bins)
	if smooth.Frame().Bins[bin] >= sharp.Frame().Bins[bin] {
		t.Fatalf("smoothed analyzer did not lag: %f >= %f",
			smooth.Frame().Bins[bin], sharp.Frame().Bins[bin])
	}
}

func TestAnalyzerReset(t *testing.T) {
	a, err := New(WithFFTSize(1024))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	a.Push(testutil.DeterministicSine(500, 48000, 0.5, 4096))

	if a.Frame().Empty() {
		t.Fatalf("expected a ready frame before reset")
	}

	a.Reset()

	if !a.Frame().Empty() {
		t.Fatalf("expected an empty frame after reset")
	}
}

func TestAnalyzerRejectsInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"zero sample rate", WithSampleRate(0)},
		{"non power-of-two fft", WithFFTSize(1000)},
		{"overlap too high", WithOverlap(0.99)},
		{"overlap too low", WithOverlap(0.1)},
		{"unknown window", WithWindow("parzen")},
		{"smoothing too high", WithSmoothing(0.99)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opt)
			if err == nil {
				t.Fatalf("expected configuration error")
			}
		})
	}
}

func TestAnalyzerHopFromOverlap(t *testing.T) {
	a, err := New(WithFFTSize(2048), WithOverlap(0.75))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if a.HopSize() != 512 {
		t.Fatalf("hop size: got %d, want 512", a.HopSize())
	}

	if a.FFTSize() != 2048 || a.SampleRate() != 48000 {
		t.Fatalf("unexpected configuration: %d %f", a.FFTSize(), a.SampleRate())
	}
}

func TestGenerateWindow(t *testing.T) {
	for _, name := range WindowNames() {
		win, err := generateWindow(name, 256)
		if err != nil {
			t.Fatalf("generateWindow(%s) error: %v", name, err)
		}

		if len(win) != 256 {
			t.Fatalf("window %s length mismatch: %d", name, len(win))
		}

		sum := 0.0
		for _, w := range win {
			sum += w
		}

		if sum <= 0 {
			t.Fatalf("window %s has non-positive sum: %f", name, sum)
		}
	}

	_, err := generateWindow("nope", 256)
	if err == nil {
		t.Fatalf("expected error for unknown window")
	}

	_, err = generateWindow("hann", 0)
	if err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestHannWindowShape(t *testing.T) {
	win, err := generateWindow("hann", 8)
	if err != nil {
		t.Fatalf("generateWindow error: %v", err)
	}

	// Periodic hann: w[i] = 0.5 - 0.5*cos(2*pi*i/8).
	want := make([]float64, 8)
	for i := range want {
		want[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/8)
	}

	testutil.RequireSliceNearlyEqual(t, win, want, 1e-12)
}
