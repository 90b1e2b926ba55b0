package math32_test

import (
	"math"
	"testing"

	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-math32/math32"
)

var (
	sinkF32 float32
	sinkF64 float64
)

func BenchmarkSinCos(b *testing.B) {
	b.Run("math32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s, _ := math32.SinCos(float32(i) * 0.001)
			sinkF32 = s
		}
	})
	b.Run("stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s, _ := math.Sincos(float64(i) * 0.001)
			sinkF64 = s
		}
	})
}

func BenchmarkSqrt(b *testing.B) {
	b.Run("math32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF32 = math32.Sqrt(float32(i) + 0.5)
		}
	})
	b.Run("stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF64 = math.Sqrt(float64(i) + 0.5)
		}
	})
	b.Run("approx", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF64 = approx.FastSqrt(float64(i) + 0.5)
		}
	})
}

func BenchmarkExp(b *testing.B) {
	b.Run("math32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF32 = math32.Exp(float32(i%40) * 0.25)
		}
	})
	b.Run("stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF64 = math.Exp(float64(i%40) * 0.25)
		}
	})
	b.Run("approx", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF64 = approx.FastExp(float64(i%40) * 0.25)
		}
	})
}

func BenchmarkLn(b *testing.B) {
	b.Run("math32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF32 = math32.Ln(float32(i) + 1.5)
		}
	})
	b.Run("stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF64 = math.Log(float64(i) + 1.5)
		}
	})
	b.Run("approx", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF64 = approx.FastLog(float64(i) + 1.5)
		}
	})
}

func BenchmarkAtan2(b *testing.B) {
	b.Run("math32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF32 = math32.Atan2(float32(i)*0.01, 1)
		}
	})
	b.Run("stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF64 = math.Atan2(float64(i)*0.01, 1)
		}
	})
}
