// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root sentinel for malformed grids and geometry.
// Every other error in this package matches it under errors.Is.
var ErrInvalidInput = errors.New("grid: invalid input")

var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidInput)
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = fmt.Errorf("%w: cell size must be finite and > 0", ErrInvalidInput)
	// ErrBadWindow indicates a window with min >= max on some axis, or non-finite bounds.
	ErrBadWindow = fmt.Errorf("%w: window must satisfy min < max on both axes", ErrInvalidInput)
)
