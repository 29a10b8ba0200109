package conv

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-signal/internal/testutil"
)

func BenchmarkDirect(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1.0, 4096)

	for _, kernelLen := range []int{8, 32, 128} {
		kernel := testutil.DeterministicNoise(2, 1.0, kernelLen)
		dst := make([]float64, len(signal)+kernelLen-1)

		b.Run("kernel/"+strconv.Itoa(kernelLen), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				DirectTo(dst, signal, kernel)
			}
		})
	}
}

func BenchmarkOverlapAdd(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1.0, 4096)

	for _, kernelLen := range []int{128, 512} {
		kernel := testutil.DeterministicNoise(2, 1.0, kernelLen)

		oa, err := NewOverlapAdd(kernel, 0)
		if err != nil {
			b.Fatal(err)
		}
		dst := make([]float64, len(signal)+kernelLen-1)

		b.Run("kernel/"+strconv.Itoa(kernelLen), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := oa.ProcessTo(dst, signal); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFFTConvolve(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1.0, 4096)
	kernel := testutil.DeterministicNoise(2, 1.0, 512)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := FFTConvolve(signal, kernel); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCorrelateFFT(b *testing.B) {
	a := testutil.DeterministicNoise(1, 1.0, 2048)
	v := testutil.DeterministicNoise(2, 1.0, 2048)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := CorrelateFFT(a, v); err != nil {
			b.Fatal(err)
		}
	}
}
