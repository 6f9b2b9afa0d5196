package moog_test

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/filter/moog"
)

func ExampleLadder_Process() {
	l := moog.New()

	out, err := l.Process([]float64{1, 1, 1, 1, 1, 1, 1, 1}, 0.5, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	// The step response rises monotonically.
	rising := true
	for i := 1; i < len(out); i++ {
		rising = rising && out[i] > out[i-1]
	}
	fmt.Println("rising:", rising)

	_, err = l.Process(out, 2, 0)
	fmt.Println(err)
	// Output:
	// rising: true
	// moog: cutoff must be in [0, 1]: 2.000000
}
