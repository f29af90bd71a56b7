package bands_test

import (
	"fmt"

	"github.com/cwbudde/algo-viz/bands"
)

func ExampleExtractor_Bands() {
	extractor, _ := bands.New()

	// Without a primed spectral source the extractor stays silent
	// instead of failing.
	out, _ := extractor.Bands(bands.Frame{}, 4)
	fmt.Println(out)
	// Output:
	// [0 0 0 0]
}

func ExampleExtractor_Layout() {
	extractor, _ := bands.New(bands.WithFreqRange(100, 10000))

	layout, _ := extractor.Layout(4, 44100, 4096)
	for _, band := range layout {
		fmt.Printf("%.0f Hz -> bin %d\n", band.CenterHz, band.CenterBin)
	}
	// Output:
	// 100 Hz -> bin 9
	// 464 Hz -> bin 43
	// 2154 Hz -> bin 200
	// 10000 Hz -> bin 929
}
