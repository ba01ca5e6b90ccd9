// SPDX-License-Identifier: MIT

package pairs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/geoentropy/grid"
	"github.com/katalvlaran/geoentropy/pairs"
)

func benchGrid(b *testing.B, n int) *grid.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	vals := make([][]int, n)
	for r := range vals {
		vals[r] = make([]int, n)
		for c := range vals[r] {
			vals[r][c] = rng.Intn(5)
		}
	}
	g, err := grid.New(vals)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	return g
}

// BenchmarkAdjacent measures the 4-neighbour scan on a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkAdjacent(b *testing.B) {
	g := benchGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pairs.Adjacent(g)
	}
}

// BenchmarkWithinDistance measures the windowed distance scan on a 200×200 grid.
// Complexity: O(N·w) with w ≈ π·d² cells.
func BenchmarkWithinDistance(b *testing.B) {
	g := benchGrid(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pairs.WithinDistance(g, 3)
	}
}
