// SPDX-License-Identifier: MIT

package entropy_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/geoentropy/entropy"
	"github.com/katalvlaran/geoentropy/grid"
)

func benchGrid(b *testing.B, n, k int) *grid.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	vals := make([][]int, n)
	for r := range vals {
		vals[r] = make([]int, n)
		for c := range vals[r] {
			vals[r][c] = rng.Intn(k)
		}
	}
	g, err := grid.New(vals)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkShannonZ(b *testing.B) {
	g := benchGrid(b, 256, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := entropy.ShannonZ(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLeibovici(b *testing.B) {
	g := benchGrid(b, 128, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := entropy.Leibovici(g, entropy.WithCriticalDistance(3)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBatty(b *testing.B) {
	g := benchGrid(b, 256, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := entropy.Batty(g, 1, entropy.WithPartitions(32), entropy.WithSeed(7)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKarlstrom(b *testing.B) {
	g := benchGrid(b, 256, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := entropy.Karlstrom(g, 1, entropy.WithPartitions(32), entropy.WithSeed(7)); err != nil {
			b.Fatal(err)
		}
	}
}
