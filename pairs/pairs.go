// SPDX-License-Identifier: MIT

package pairs

import (
	"cmp"
	"math"

	"github.com/katalvlaran/geoentropy/grid"
)

// Adjacent returns one key per 4-neighbour edge whose cells are both present.
// Implementation:
//   - Stage 1: require at least two distinct non-missing categories.
//   - Stage 2: walk the grid once per forward offset (down, then right) and
//     emit "a-b" for (r,c) → (r+dr,c+dc).
//
// Errors:
//   - grid.ErrInvalidInput for a nil grid.
//   - ErrDegenerateCategory when exactly one category is present.
//   - ErrInsufficientData when no edge joins two present cells (an all-missing
//     grid included).
//
// Complexity:
//   - Time O(rows×cols), Space O(rows×cols) for the keys.
//
// Notes:
//   - On a complete grid the key count is (rows−1)·cols + rows·(cols−1).
func Adjacent[T cmp.Ordered](g *grid.Grid[T]) ([]string, error) {
	if g == nil {
		return nil, grid.ErrInvalidInput
	}
	if len(g.Categories()) == 1 {
		return nil, ErrDegenerateCategory
	}

	rows, cols := g.Rows(), g.Cols()
	keys := make([]string, 0, (rows-1)*cols+rows*(cols-1))
	for _, d := range g.ForwardOffsets() {
		for r := 0; r < rows-d[0]; r++ {
			for c := 0; c < cols-d[1]; c++ {
				a, ok := g.At(r, c)
				if !ok {
					continue
				}
				b, ok := g.At(r+d[0], c+d[1])
				if !ok {
					continue
				}
				keys = append(keys, grid.PairKey(a, b))
			}
		}
	}
	if len(keys) == 0 {
		return nil, ErrInsufficientData
	}
	return keys, nil
}

// ValidateDistance checks min(cell_x, cell_y) <= d < g.MaxDistance().
// Returns ErrTooSmallDistance or ErrDistanceExceedsExtent.
func ValidateDistance[T cmp.Ordered](g *grid.Grid[T], d float64) error {
	if math.IsNaN(d) || d < g.CellSize().Min() {
		return ErrTooSmallDistance
	}
	if d >= g.MaxDistance() {
		return ErrDistanceExceedsExtent
	}
	return nil
}

// WithinDistance returns one key per unordered pair of present cells i<j
// (row-major) whose centres lie at most d apart.
// Implementation:
//   - Stage 1: validate d (ValidateDistance).
//   - Stage 2: for every present cell i, scan the following cells j that can
//     still be within d: rows r..r+⌊d/cell_y⌋+1 and, per row, columns within
//     ⌊d/cell_x⌋+1. The visited set is a superset of every qualifying pair, so
//     the result equals a full O(N²) scan.
//   - Stage 3: keep pairs with sqrt((Δr·cell_y)² + (Δc·cell_x)²) <= d.
//
// Errors:
//   - grid.ErrInvalidInput, ErrTooSmallDistance, ErrDistanceExceedsExtent.
//   - ErrInsufficientData when no pair qualifies.
//
// Complexity:
//   - Time O(N·w), worst case O(N²); Space O(pairs).
func WithinDistance[T cmp.Ordered](g *grid.Grid[T], d float64) ([]string, error) {
	if g == nil {
		return nil, grid.ErrInvalidInput
	}
	if err := ValidateDistance(g, d); err != nil {
		return nil, err
	}

	rows, cols := g.Rows(), g.Cols()
	cs := g.CellSize()
	// One extra row/column absorbs rounding in d/cell; a reach past the
	// grid is clamped before the float-to-int conversion can overflow.
	maxDR := reach(d/cs.Y, rows)
	maxDC := reach(d/cs.X, cols)

	var keys []string
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a, ok := g.At(r, c)
			if !ok {
				continue
			}
			for rr := r; rr < rows && rr-r <= maxDR; rr++ {
				lo := max(0, c-maxDC)
				if rr == r {
					lo = c + 1
				}
				hi := min(cols-1, c+maxDC)
				for cc := lo; cc <= hi; cc++ {
					b, ok := g.At(rr, cc)
					if !ok {
						continue
					}
					dy := float64(rr-r) * cs.Y
					dx := float64(cc-c) * cs.X
					if math.Sqrt(dy*dy+dx*dx) <= d {
						keys = append(keys, grid.PairKey(a, b))
					}
				}
			}
		}
	}
	if len(keys) == 0 {
		return nil, ErrInsufficientData
	}
	return keys, nil
}

// reach converts a distance in cell units to a row or column offset bound,
// capped at n.
func reach(cells float64, n int) int {
	if cells < float64(n) {
		return int(cells) + 1
	}
	return n
}
