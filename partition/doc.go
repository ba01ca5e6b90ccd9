// SPDX-License-Identifier: MIT

// Package partition assigns raster cells to spatial partitions and aggregates
// per-partition counts.
//
// Every cell centre is attached to its nearest partition centre (Voronoi
// assignment) through a k-d tree, so assignment costs O(N log M) for N cells
// and M centres. Centres are either drawn uniformly inside the observation
// window from a caller-supplied *rand.Rand, or supplied explicitly and checked
// against the window.
//
// Tie-breaking: when a cell centre is equidistant from two or more partition
// centres, the winner is whichever the k-d tree reaches first. The choice is
// stable for a given input but otherwise unspecified.
//
// The package also finds neighbouring partitions (k nearest or within a
// radius) for neighbourhood-relative measures.
//
// Partition ids are 1-based.
package partition
