package analyzer

import (
	"fmt"
	"math"
	"sort"
)

// Cosine-sum analysis window coefficients, periodic (FFT) form:
// w[i] = sum_k (-1)^k a_k cos(k * 2*pi*i/N).
var windowTerms = map[string][]float64{
	"hann":           {0.5, 0.5},
	"hamming":        {0.54, 0.46},
	"blackman":       {0.42, 0.5, 0.08},
	"blackmanharris": {0.35875, 0.48829, 0.14128, 0.01168},
	"flattop":        {0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368},
}

// WindowNames lists the supported analysis window names, sorted.
func WindowNames() []string {
	names := make([]string, 0, len(windowTerms))
	for name := range windowTerms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func generateWindow(name string, size int) ([]float64, error) {
	terms, ok := windowTerms[name]
	if !ok {
		return nil, fmt.Errorf("analyzer: unsupported window: %s", name)
	}

	if size <= 0 {
		return nil, fmt.Errorf("analyzer: window size must be > 0: %d", size)
	}

	out := make([]float64, size)
	step := 2 * math.Pi / float64(size)

	for i := range out {
		x := step * float64(i)

		v := 0.0
		sign := 1.0

		for k, a := range terms {
			v += sign * a * math.Cos(float64(k)*x)
			sign = -sign
		}

		out[i] = v
	}

	return out, nil
}
