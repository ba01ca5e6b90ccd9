// SPDX-License-Identifier: MIT

package grid

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// New constructs a Grid with no missing cells from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCellSize or ErrBadWindow
// for invalid geometry.
// Complexity: O(rows×cols) time and memory.
func New[T cmp.Ordered](values [][]T, opts ...Option) (*Grid[T], error) {
	return build(values, func(T) bool { return false }, opts)
}

// NewWithMissing is like New but treats every cell equal to sentinel as missing.
func NewWithMissing[T cmp.Ordered](values [][]T, sentinel T, opts ...Option) (*Grid[T], error) {
	return build(values, func(v T) bool { return v == sentinel }, opts)
}

// FromFloat64 builds a float grid where NaN marks a missing cell.
func FromFloat64(values [][]float64, opts ...Option) (*Grid[float64], error) {
	return build(values, math.IsNaN, opts)
}

func build[T cmp.Ordered](values [][]T, isMissing func(T) bool, opts []Option) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateCellSize(o.cellSize); err != nil {
		return nil, err
	}
	if !o.hasWindow {
		o.window.X.Hi = float64(cols) * o.cellSize.X
		o.window.Y.Hi = float64(rows) * o.cellSize.Y
	}
	if err := validateWindow(o.window); err != nil {
		return nil, err
	}

	// Deep copy to prevent external mutation
	g := &Grid[T]{
		rows:     rows,
		cols:     cols,
		values:   make([]T, rows*cols),
		missing:  make([]bool, rows*cols),
		cellSize: o.cellSize,
		window:   o.window,
	}
	for r := 0; r < rows; r++ {
		copy(g.values[r*cols:(r+1)*cols], values[r])
		for c := 0; c < cols; c++ {
			g.missing[r*cols+c] = isMissing(values[r][c])
		}
	}

	return g, nil
}

func validateCellSize(s CellSize) error {
	if !(s.X > 0) || !(s.Y > 0) || math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) {
		return ErrBadCellSize
	}
	return nil
}

func validateWindow(w r2.Rect) error {
	for _, v := range []float64{w.X.Lo, w.X.Hi, w.Y.Lo, w.Y.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadWindow
		}
	}
	if w.X.Lo >= w.X.Hi || w.Y.Lo >= w.Y.Hi {
		return ErrBadWindow
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid[T]) Len() int { return g.rows * g.cols }

// CellSize returns the physical cell extent.
func (g *Grid[T]) CellSize() CellSize { return g.cellSize }

// Window returns the observation window.
func (g *Grid[T]) Window() r2.Rect { return g.window }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the value at (r,c) and whether it is present (not missing).
// Out-of-range indices report (zero, false).
func (g *Grid[T]) At(r, c int) (T, bool) {
	var zero T
	if !g.InBounds(r, c) {
		return zero, false
	}
	i := g.index(r, c)
	return g.values[i], !g.missing[i]
}

// IsMissing reports whether (r,c) holds the missing marker.
// Out-of-range indices report true.
func (g *Grid[T]) IsMissing(r, c int) bool {
	if !g.InBounds(r, c) {
		return true
	}
	return g.missing[g.index(r, c)]
}

// index maps (r,c) to a row-major index: r*cols + c.
func (g *Grid[T]) index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}

// CellCenter returns the physical centre of cell (r,c).
func (g *Grid[T]) CellCenter(r, c int) r2.Point {
	return r2.Point{
		X: g.window.X.Lo + (float64(c)+0.5)*g.cellSize.X,
		Y: g.window.Y.Lo + (float64(r)+0.5)*g.cellSize.Y,
	}
}

// MaxDistance is the diagonal of the raster extent measured in cell-size units:
// sqrt((rows·cell_y)² + (cols·cell_x)²).
func (g *Grid[T]) MaxDistance() float64 {
	return math.Hypot(float64(g.rows)*g.cellSize.Y, float64(g.cols)*g.cellSize.X)
}

// Categories returns the distinct non-missing values in ascending order.
func (g *Grid[T]) Categories() []T {
	out := make([]T, 0, 8)
	for i, v := range g.values {
		if !g.missing[i] {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Counts returns the occurrences of each non-missing value and the number of
// missing cells.
func (g *Grid[T]) Counts() (map[T]int, int) {
	counts := make(map[T]int)
	missing := 0
	for i, v := range g.values {
		if g.missing[i] {
			missing++
			continue
		}
		counts[v]++
	}
	return counts, missing
}

// Label formats a category for use in distribution keys.
func Label[T cmp.Ordered](v T) string {
	return fmt.Sprint(v)
}

// PairKey formats the scan-ordered pair key "a-b".
func PairKey[T cmp.Ordered](a, b T) string {
	return Label(a) + "-" + Label(b)
}

// forwardOffsets lists the two 4-neighbour directions that visit each
// undirected edge exactly once in row-major scan: down, then right.
var forwardOffsets = [2][2]int{{1, 0}, {0, 1}}

// ForwardOffsets returns the (dRow, dCol) offsets used by adjacency scans.
// Complexity: O(1).
func (g *Grid[T]) ForwardOffsets() [2][2]int {
	return forwardOffsets
}
