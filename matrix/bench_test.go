// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matalg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
	sinkB bool
)

func BenchmarkAdd(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 1337)
			B := RandDense(b, n, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 1)
			B := RandDense(b, n, n, 2)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulAssign(b *testing.B) {
	const n = 128
	A := RandDense(b, n, n, 3)
	I := MustEye(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := A.MulAssign(I); err != nil {
			b.Fatal(err)
		}
	}
	sinkM = A
}

func BenchmarkTranspose(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 7)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkElementMul(b *testing.B) {
	const n = 256
	A := RandDense(b, n, n, 5)
	B := RandDense(b, n, n, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := matrix.ElementMul(A, B)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = v
	}
}

func BenchmarkEqual(b *testing.B) {
	const n = 256
	A := RandDense(b, n, n, 9)
	B := A.Copy()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = matrix.Equal(A, B)
	}
}
