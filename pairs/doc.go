// SPDX-License-Identifier: MIT

// Package pairs enumerates category-pair observations over a grid.
//
// Two enumerators share one output shape, a slice of scan-ordered keys "a-b"
// where a is the category of the cell visited first in row-major order:
//
//   - Adjacent: every 4-neighbour edge exactly once (vertical edges first,
//     then horizontal ones). Keys are NOT canonicalised, so "1-2" and "2-1"
//     are distinct.
//   - WithinDistance: every unordered pair of cells i<j (row-major) whose
//     physical centre distance is <= the critical distance.
//
// Missing cells never take part in a pair.
//
// Complexity:
//
//   - Adjacent: O(rows×cols).
//   - WithinDistance: O(N·w) where w is the number of cells inside the
//     critical-distance window; O(N²) when the distance approaches the extent.
//     This is the dominant cost of distance-based metrics, which is why grids
//     must stay moderate.
package pairs
