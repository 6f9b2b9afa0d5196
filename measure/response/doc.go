// Package response measures the impulse and frequency response of a block
// processor.
//
// A unit impulse is run through the processor, optionally after a stretch
// of silence so that units which seed their state from the first sample
// start from rest. The impulse response is transformed with an FFT and
// reported as magnitude and phase per bin.
//
// # Usage
//
//	lpf, _ := pass.New(48000, pass.LowPass)
//	r, err := response.Measure(func(in []float64) ([]float64, error) {
//	    return lpf.Process(in, 1000)
//	}, 48000, response.WithPreroll(1))
//	fmt.Printf("%.2f dB at 1 kHz\n", r.At(1000))
package response
