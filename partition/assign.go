// SPDX-License-Identifier: MIT

package partition

import (
	"cmp"

	"github.com/katalvlaran/geoentropy/grid"
)

// Assign maps every cell of g to the nearest of centers.
// Implementation:
//   - Stage 1: build a k-d tree over the centres.
//   - Stage 2: walk the grid row-major, query the nearest centre for each
//     physical cell centre and record a Cell row.
//
// Behavior highlights:
//   - Total: every cell, missing or not, receives exactly one partition id.
//   - A partition may own zero cells.
//
// Errors:
//   - grid.ErrInvalidInput for a nil grid; ErrNoCenters for an empty centre set.
//
// Complexity:
//   - Time O(M log M + N log M), Space O(N) for N cells and M centres.
func Assign[T cmp.Ordered](g *grid.Grid[T], centers Centers) (*Assignment[T], error) {
	if g == nil {
		return nil, grid.ErrInvalidInput
	}
	if len(centers) == 0 {
		return nil, ErrNoCenters
	}

	idx := newCenterIndex(centers)
	cells := make([]Cell[T], 0, g.Len())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v, ok := g.At(r, c)
			p := g.CellCenter(r, c)
			cells = append(cells, Cell[T]{
				Row:       r,
				Col:       c,
				Center:    p,
				Category:  v,
				Missing:   !ok,
				Partition: idx.nearest(p) + 1,
			})
		}
	}

	return &Assignment[T]{
		Centers:  append(Centers(nil), centers...),
		Cells:    cells,
		cellArea: g.CellSize().Area(),
	}, nil
}

// CellCounts returns the number of cells owned by each partition, indexed by id-1.
// Complexity: O(N).
func (a *Assignment[T]) CellCounts() []int {
	counts := make([]int, len(a.Centers))
	for _, cell := range a.Cells {
		counts[cell.Partition-1]++
	}
	return counts
}
