// SPDX-License-Identifier: MIT

package distribution

import "errors"

var (
	// ErrEmpty indicates no key or no positive count to build a distribution from.
	ErrEmpty = errors.New("distribution: no positive counts")
	// ErrNegativeCount indicates a count below zero.
	ErrNegativeCount = errors.New("distribution: negative count")
	// ErrDimensionMismatch indicates parallel slices of different lengths.
	ErrDimensionMismatch = errors.New("distribution: dimension mismatch")
	// ErrUnstableComputation indicates sub-unit (or non-positive) areas without rescale permission.
	ErrUnstableComputation = errors.New("distribution: area sizes < 1 make ln(area) unstable; enable rescale")
)
