// SPDX-License-Identifier: MIT

package pairs_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoentropy/grid"
	"github.com/katalvlaran/geoentropy/pairs"
)

var nan = math.NaN()

func countKeys(keys []string) map[string]int {
	out := make(map[string]int)
	for _, k := range keys {
		out[k]++
	}
	return out
}

// bruteWithin is the reference O(N²) scan over every i<j in row-major order.
func bruteWithin(g *grid.Grid[float64], d float64) []string {
	var keys []string
	cs := g.CellSize()
	for i := 0; i < g.Len(); i++ {
		r, c := g.Coordinate(i)
		a, ok := g.At(r, c)
		if !ok {
			continue
		}
		for j := i + 1; j < g.Len(); j++ {
			r2, c2 := g.Coordinate(j)
			b, ok := g.At(r2, c2)
			if !ok {
				continue
			}
			dy, dx := float64(r2-r)*cs.Y, float64(c2-c)*cs.X
			if math.Sqrt(dy*dy+dx*dx) <= d {
				keys = append(keys, grid.PairKey(a, b))
			}
		}
	}
	return keys
}

//----------------------------------------------------------------------------//
// Adjacent
//----------------------------------------------------------------------------//

// TestAdjacent_CompleteGrid checks the edge count formula and scan-ordered keys.
func TestAdjacent_CompleteGrid(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 2, 1, 1},
		{1, 1, 2, 2},
		{2, 2, 1, 1},
		{1, 1, 2, 2},
	})
	require.NoError(t, err)

	keys, err := pairs.Adjacent(g)
	require.NoError(t, err)

	rows, cols := 4, 4
	assert.Len(t, keys, (rows-1)*cols+rows*(cols-1))
	assert.Equal(t, map[string]int{"1-2": 9, "2-1": 7, "1-1": 5, "2-2": 3}, countKeys(keys))
}

// TestAdjacent_SkipsMissing verifies pairs touching a missing cell are dropped.
func TestAdjacent_SkipsMissing(t *testing.T) {
	g, err := grid.FromFloat64([][]float64{
		{1, 2, 1, nan},
		{2, 1, nan, 2},
		{1, 1, 2, 1},
		{nan, 2, 1, 2},
	})
	require.NoError(t, err)

	keys, err := pairs.Adjacent(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2-1": 8, "1-2": 6, "1-1": 2}, countKeys(keys))
}

// TestAdjacent_Errors covers degenerate category sets and grids without edges.
func TestAdjacent_Errors(t *testing.T) {
	one, err := grid.New([][]int{{3, 3}, {3, 3}})
	require.NoError(t, err)
	_, err = pairs.Adjacent(one)
	assert.ErrorIs(t, err, pairs.ErrDegenerateCategory)

	allMissing, err := grid.FromFloat64([][]float64{{nan, nan}, {nan, nan}})
	require.NoError(t, err)
	_, err = pairs.Adjacent(allMissing)
	assert.ErrorIs(t, err, pairs.ErrInsufficientData)
	assert.NotErrorIs(t, err, pairs.ErrDegenerateCategory)

	checker, err := grid.FromFloat64([][]float64{{1, nan}, {nan, 2}})
	require.NoError(t, err)
	_, err = pairs.Adjacent(checker)
	assert.ErrorIs(t, err, pairs.ErrInsufficientData)

	_, err = pairs.Adjacent[int](nil)
	assert.ErrorIs(t, err, grid.ErrInvalidInput)
}

//----------------------------------------------------------------------------//
// WithinDistance
//----------------------------------------------------------------------------//

// TestWithinDistance_Reference checks a hand-verified distribution.
func TestWithinDistance_Reference(t *testing.T) {
	g, err := grid.FromFloat64([][]float64{
		{1, 2, 1, nan},
		{2, 1, nan, 2},
		{1, 1, 2, 1},
		{nan, 2, 1, 2},
	})
	require.NoError(t, err)

	keys, err := pairs.WithinDistance(g, 2)
	require.NoError(t, err)
	assert.Len(t, keys, 39)
	assert.Equal(t, map[string]int{"1-1": 10, "1-2": 13, "2-1": 10, "2-2": 6}, countKeys(keys))
}

// TestWithinDistance_UnitEqualsAdjacent: at d = cell size the pair set is the 4-neighbour set.
func TestWithinDistance_UnitEqualsAdjacent(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 2, 3},
		{3, 1, 2},
		{2, 2, 1},
	})
	require.NoError(t, err)

	adj, err := pairs.Adjacent(g)
	require.NoError(t, err)
	within, err := pairs.WithinDistance(g, 1)
	require.NoError(t, err)

	assert.Equal(t, countKeys(adj), countKeys(within))
}

// TestWithinDistance_MatchesBruteForce compares the windowed scan to the full scan
// on random grids with missing cells and anisotropic cells.
func TestWithinDistance_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cases := []struct {
		name   string
		rows   int
		cols   int
		cx, cy float64
		d      float64
	}{
		{"Unit", 7, 9, 1, 1, 2.5},
		{"Wide", 6, 11, 0.3, 1.7, 1.9},
		{"Tall", 12, 5, 2, 0.1, 2.05},
		{"Tiny", 8, 8, 0.1, 0.1, 0.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vals := make([][]float64, tc.rows)
			for r := range vals {
				vals[r] = make([]float64, tc.cols)
				for c := range vals[r] {
					if rng.Float64() < 0.15 {
						vals[r][c] = nan
						continue
					}
					vals[r][c] = float64(rng.Intn(3))
				}
			}
			g, err := grid.FromFloat64(vals, grid.WithCellSizeXY(tc.cx, tc.cy))
			require.NoError(t, err)

			got, err := pairs.WithinDistance(g, tc.d)
			require.NoError(t, err)
			want := bruteWithin(g, tc.d)

			slices.Sort(got)
			slices.Sort(want)
			assert.Equal(t, want, got)
		})
	}
}

// TestValidateDistance covers both bounds.
func TestValidateDistance(t *testing.T) {
	g, err := grid.New([][]int{{1, 2, 1}, {2, 1, 2}}, grid.WithCellSizeXY(1, 2))
	require.NoError(t, err)
	// extent diagonal: hypot(2·2, 3·1) = 5
	cases := []struct {
		name string
		d    float64
		err  error
	}{
		{"BelowMinCell", 0.99, pairs.ErrTooSmallDistance},
		{"NaN", nan, pairs.ErrTooSmallDistance},
		{"AtMinCell", 1, nil},
		{"JustBelowExtent", 4.999, nil},
		{"AtExtent", 5, pairs.ErrDistanceExceedsExtent},
		{"BeyondExtent", 50, pairs.ErrDistanceExceedsExtent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := pairs.ValidateDistance(g, tc.d)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)

			_, err = pairs.WithinDistance(g, tc.d)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestWithinDistance_ExtremeCellRatio: a reach of far more rows than the grid
// has is clamped instead of overflowing, so no pair is lost.
func TestWithinDistance_ExtremeCellRatio(t *testing.T) {
	g, err := grid.FromFloat64([][]float64{
		{1, 2, 1},
		{2, 1, 2},
	}, grid.WithCellSizeXY(1, 1e-300))
	require.NoError(t, err)

	keys, err := pairs.WithinDistance(g, 1.5)
	require.NoError(t, err)
	assert.Len(t, keys, 11)
	assert.Equal(t, countKeys(bruteWithin(g, 1.5)), countKeys(keys))
}

// TestWithinDistance_NoPairs reports isolated cells.
func TestWithinDistance_NoPairs(t *testing.T) {
	g, err := grid.FromFloat64([][]float64{{1, nan, 2}, {nan, nan, nan}, {2, nan, 1}})
	require.NoError(t, err)

	_, err = pairs.WithinDistance(g, 1.5)
	assert.ErrorIs(t, err, pairs.ErrInsufficientData)
}
