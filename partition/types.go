// SPDX-License-Identifier: MIT

package partition

import (
	"cmp"

	"github.com/golang/geo/r2"
)

// Centers is the ordered, immutable set of partition centres.
// Centre i owns partition id i+1.
type Centers []r2.Point

// Cell is one row of the long-form assignment table.
type Cell[T cmp.Ordered] struct {
	Row, Col  int
	Center    r2.Point // physical cell centre
	Category  T
	Missing   bool
	Partition int // 1-based id of the nearest centre
}

// Assignment is the output of Assign: the centres and every cell mapped to one of them.
type Assignment[T cmp.Ordered] struct {
	Centers  Centers
	Cells    []Cell[T] // row-major
	cellArea float64
}

// Area aggregates one partition for a target category.
//
// Positive counts target cells, Cells counts all cells (missing included),
// Size is the physical area Cells·cell_x·cell_y and Frequency is
// Positive / Σ Positive over all partitions.
type Area struct {
	Partition int
	Positive  int
	Cells     int
	Size      float64
	Frequency float64
}

// Method selects how neighbouring partitions are found.
type Method int

const (
	// ByNumber takes the K nearest other centres.
	ByNumber Method = iota
	// ByDistance takes every centre within Radius, the centre itself included.
	ByDistance
)

// String returns "number" or "distance".
func (m Method) String() string {
	switch m {
	case ByNumber:
		return "number"
	case ByDistance:
		return "distance"
	default:
		return "unknown"
	}
}

// NeighborQuery describes a neighbour search over partition centres.
type NeighborQuery struct {
	Method Method
	K      int     // used by ByNumber
	Radius float64 // used by ByDistance
}
