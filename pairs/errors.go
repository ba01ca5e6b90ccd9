// SPDX-License-Identifier: MIT

package pairs

import "errors"

var (
	// ErrDegenerateCategory indicates a single distinct non-missing category.
	ErrDegenerateCategory = errors.New("pairs: at least two categories are required")
	// ErrInsufficientData indicates no qualifying pair was found.
	ErrInsufficientData = errors.New("pairs: no qualifying pairs")
	// ErrTooSmallDistance indicates a critical distance below the smallest cell edge.
	ErrTooSmallDistance = errors.New("pairs: critical distance too small to build any pair")
	// ErrDistanceExceedsExtent indicates a critical distance at or beyond the grid diagonal.
	ErrDistanceExceedsExtent = errors.New("pairs: critical distance reaches the observation extent")
)
