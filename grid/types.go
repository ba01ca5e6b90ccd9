// SPDX-License-Identifier: MIT

package grid

import (
	"cmp"

	"github.com/golang/geo/r2"
)

// MissingLabel is the label used for missing cells when they are reported as a category.
const MissingLabel = "NA"

// DefaultCellSize is the cell edge length used when no option overrides it.
const DefaultCellSize = 1.0

// CellSize holds the physical extent of one cell along each axis.
// X scales columns, Y scales rows.
type CellSize struct {
	X, Y float64
}

// Area returns X·Y.
func (s CellSize) Area() float64 { return s.X * s.Y }

// Min returns the smaller of the two edge lengths.
func (s CellSize) Min() float64 { return min(s.X, s.Y) }

// Grid is an immutable raster of categories of type T.
// values and missing are row-major with len == rows*cols.
type Grid[T cmp.Ordered] struct {
	rows, cols int
	values     []T
	missing    []bool
	cellSize   CellSize
	window     r2.Rect
}

// Option configures grid geometry.
type Option func(*options)

type options struct {
	cellSize  CellSize
	window    r2.Rect
	hasWindow bool
}

func defaultOptions() options {
	return options{cellSize: CellSize{X: DefaultCellSize, Y: DefaultCellSize}}
}

// WithCellSize sets square cells of edge s.
func WithCellSize(s float64) Option {
	return func(o *options) { o.cellSize = CellSize{X: s, Y: s} }
}

// WithCellSizeXY sets rectangular cells: x for columns, y for rows.
func WithCellSizeXY(x, y float64) Option {
	return func(o *options) { o.cellSize = CellSize{X: x, Y: y} }
}

// WithWindow sets an explicit observation window.
// Bounds are validated by the constructor, not here.
func WithWindow(minX, minY, maxX, maxY float64) Option {
	return func(o *options) {
		o.window = r2.Rect{}
		o.window.X.Lo, o.window.X.Hi = minX, maxX
		o.window.Y.Lo, o.window.Y.Hi = minY, maxY
		o.hasWindow = true
	}
}
