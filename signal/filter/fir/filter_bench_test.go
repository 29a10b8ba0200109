package fir

import (
	"fmt"
	"testing"
)

func BenchmarkProcessBlock(b *testing.B) {
	for _, ntaps := range []int{8, 32, 128} {
		b.Run(fmt.Sprintf("taps=%d", ntaps), func(b *testing.B) {
			taps := make([]float64, ntaps)
			for i := range taps {
				taps[i] = 1 / float64(ntaps)
			}

			f, err := New(taps)
			if err != nil {
				b.Fatal(err)
			}

			buf := make([]float64, 1024)
			for i := range buf {
				buf[i] = float64(i) * 0.001
			}

			b.SetBytes(1024 * 8)
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				f.ProcessBlock(buf)
			}
		})
	}
}
