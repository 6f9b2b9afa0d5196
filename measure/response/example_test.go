package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/filter/pass"
	"github.com/cwbudde/algo-ugen/measure/response"
)

func ExampleMeasure() {
	lpf, err := pass.New(48000, pass.LowPass)
	if err != nil {
		panic(err)
	}

	r, err := response.Measure(func(in []float64) ([]float64, error) {
		return lpf.Process(in, 1500)
	}, 48000, response.WithPreroll(1))
	if err != nil {
		panic(err)
	}

	fmt.Printf("DC gain: %.3f\n", r.Magnitude[0])
	fmt.Printf("1.5 kHz: %.2f dB\n", r.At(1500))
	// Output:
	// DC gain: 1.000
	// 1.5 kHz: -3.01 dB
}
