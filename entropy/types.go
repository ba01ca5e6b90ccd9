// SPDX-License-Identifier: MIT

package entropy

import (
	"cmp"

	"github.com/katalvlaran/geoentropy/distribution"
	"github.com/katalvlaran/geoentropy/partition"
)

// Result is the common outcome of every metric.
type Result struct {
	Value        float64
	Range        distribution.Range
	Relative     float64 // Value / Range.Maximum, 0 when the maximum is degenerate
	Distribution distribution.Distribution
}

// ShannonResult adds the entropy variance to Result.
type ShannonResult struct {
	Result
	Variance float64
}

// AreaResult carries the partition layout behind Batty and Karlström.
// Distribution is keyed by partition id with Count = target cells.
type AreaResult[T cmp.Ordered] struct {
	Result
	Areas      []partition.Area
	Assignment *partition.Assignment[T]
	Neighbors  [][]int // Karlström only; index = partition id − 1
}
