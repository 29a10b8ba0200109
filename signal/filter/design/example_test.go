package design_test

import (
	"fmt"
	"log"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/signal/filter/biquad"
	"github.com/cwbudde/algo-signal/signal/filter/design"
)

func ExampleButterworthLP() {
	sections, err := design.ButterworthLP(1000, 4, 48000)
	if err != nil {
		log.Fatal(err)
	}

	chain := biquad.NewChain(sections)
	fmt.Printf("sections: %d\n", chain.NumSections())
	fmt.Printf("dc gain: %.3f\n", cmplx.Abs(chain.Response(0, 48000)))
	fmt.Printf("1 kHz: %.1f dB\n", chain.MagnitudeDB(1000, 48000))
	fmt.Printf("10 kHz: %.0f dB\n", chain.MagnitudeDB(10000, 48000))

	// Output:
	// sections: 2
	// dc gain: 1.000
	// 1 kHz: -3.0 dB
	// 10 kHz: -85 dB
}

func ExampleLowpass() {
	c, err := design.Lowpass(1000, 4, 48000)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("resonant peak: %.2f dB\n", c.MagnitudeDB(1000, 48000))

	// Output:
	// resonant peak: 12.04 dB
}
