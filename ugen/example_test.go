package ugen_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/frame"
	"github.com/cwbudde/algo-ugen/ugen"
)

func ExampleHost() {
	host := ugen.NewHost()

	crusher, err := host.Construct(ugen.BitCrusherConfig{})
	if err != nil {
		panic(err)
	}
	defer host.Release(crusher)

	in := frame.Pack([]float64{0.1, 0.3, 0.6, -0.2})
	out, err := host.Process(crusher, ugen.Block(in), ugen.BitCrusherParams{Bits: 3, NormalizedFrequency: 1})
	if err != nil {
		panic(err)
	}

	samples, _ := frame.Unpack(out.Block)
	fmt.Println(samples)

	_, err = host.Process(crusher, ugen.Scalar(0.5), ugen.BitCrusherParams{Bits: 3, NormalizedFrequency: 1})
	fmt.Println(errors.Is(err, ugen.ErrUnsupportedInput))
	// Output:
	// [0.125 0.25 0.625 -0.25]
	// true
}

func ExampleOffset() {
	out, err := ugen.Offset(frame.Pack([]float64{0, 0.5, -0.5}), 0.25)
	if err != nil {
		panic(err)
	}

	samples, _ := frame.Unpack(out)
	fmt.Println(samples)
	// Output: [0.25 0.75 -0.25]
}
