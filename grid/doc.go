// SPDX-License-Identifier: MIT

// Package grid models a rectangular raster of categorical values with an
// explicit missing-value marker, a physical cell size and an observation
// window.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T with a per-cell missing mask.
//   - Cell (row r, col c) has the physical centre
//     (min_x + (c+0.5)·cell_x, min_y + (r+0.5)·cell_y).
//   - The window defaults to (0, 0, cols·cell_x, rows·cell_y).
//   - Categories are any cmp.Ordered type; missing cells never count as a category.
//
// Why:
//
//   - Every entropy metric reads the same substrate: categories, counts,
//     cell centres and 4-neighbour scan offsets.
//
// Complexity:
//
//   - New / FromFloat64: O(rows×cols) time and memory (deep copy).
//   - Categories, Counts: O(rows×cols).
//
// Options:
//
//   - WithCellSize(s): square cells, s > 0.
//   - WithCellSizeXY(x, y): rectangular cells, x, y > 0.
//   - WithWindow(minX, minY, maxX, maxY): explicit observation window.
//
// Errors:
//
//   - ErrInvalidInput: root of every validation failure in this package.
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCellSize, ErrBadWindow wrap it.
package grid
