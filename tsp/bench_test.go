// SPDX-License-Identifier: MIT

package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qubox/encoder"
	"github.com/katalvlaran/qubox/matrix"
	"github.com/katalvlaran/qubox/tsp"
)

// circle places n cities on a rippled circle and returns rounded Euclidean
// distances, so every run sees the same instance.
func circle(n int) [][]float64 {
	xs, ys := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		r := 100 + 10*math.Sin(3*a)
		xs[i], ys[i] = r*math.Cos(a), r*math.Sin(a)
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = math.Round(math.Hypot(xs[i]-xs[j], ys[i]-ys[j]))
		}
	}

	return out
}

func benchmarkBuild(b *testing.B, n, workers int, layout matrix.Layout) {
	dist := circle(n)
	opts := []encoder.Option{encoder.WithWorkers(workers), encoder.WithLayout(layout)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Build(dist, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild8(b *testing.B)          { benchmarkBuild(b, 8, 1, matrix.Upper) }
func BenchmarkBuild8Parallel(b *testing.B)  { benchmarkBuild(b, 8, 4, matrix.Upper) }
func BenchmarkBuild16(b *testing.B)         { benchmarkBuild(b, 16, 1, matrix.Upper) }
func BenchmarkBuild16Parallel(b *testing.B) { benchmarkBuild(b, 16, 4, matrix.Upper) }
func BenchmarkBuild16Sym(b *testing.B)      { benchmarkBuild(b, 16, 4, matrix.Symmetric) }
