// SPDX-License-Identifier: MIT

package partition

import (
	"gonum.org/v1/gonum/floats"
)

// Areas aggregates the assignment for target.
// Only partitions that own at least one cell are reported, in ascending id order.
// Missing cells count toward Cells and Size but never toward Positive.
// Returns ErrNoPositiveCells when no non-missing cell equals target.
// Complexity: O(N + M).
func (a *Assignment[T]) Areas(target T) ([]Area, error) {
	m := len(a.Centers)
	positive := make([]int, m)
	cells := make([]int, m)
	total := 0
	for _, cell := range a.Cells {
		i := cell.Partition - 1
		cells[i]++
		if !cell.Missing && cell.Category == target {
			positive[i]++
			total++
		}
	}
	if total == 0 {
		return nil, ErrNoPositiveCells
	}

	out := make([]Area, 0, m)
	for i := 0; i < m; i++ {
		if cells[i] == 0 {
			continue
		}
		out = append(out, Area{
			Partition: i + 1,
			Positive:  positive[i],
			Cells:     cells[i],
			Size:      float64(cells[i]) * a.cellArea,
			Frequency: float64(positive[i]) / float64(total),
		})
	}
	return out, nil
}

// Sizes returns the physical sizes of areas in order.
func Sizes(areas []Area) []float64 {
	out := make([]float64, len(areas))
	for i, ar := range areas {
		out[i] = ar.Size
	}
	return out
}

// Frequencies returns the relative frequencies of areas in order.
func Frequencies(areas []Area) []float64 {
	out := make([]float64, len(areas))
	for i, ar := range areas {
		out[i] = ar.Frequency
	}
	return out
}

// TotalSize returns Σ Size over areas.
func TotalSize(areas []Area) float64 {
	return floats.Sum(Sizes(areas))
}
