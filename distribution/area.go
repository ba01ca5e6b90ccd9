// SPDX-License-Identifier: MIT

package distribution

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// rescaleOffset is added to 1/min(A) when rescaling sub-unit areas.
const rescaleOffset = 1e-2

// AreaEntropy returns Σ p·ln(A/p) over entries with p > 0.
// Implementation:
//   - Stage 1: validate parallel slices.
//   - Stage 2: if min(A) < 1 and rescale is set, multiply every area by
//     c = 1/min(A) + 0.01, sum the terms and subtract ln(c); notify once.
//   - Stage 3: otherwise sum the terms directly.
//
// Behavior highlights:
//   - With Σp = 1 the rescale is exact: Σ p·ln(cA/p) − ln c = Σ p·ln(A/p).
//
// Errors:
//   - ErrEmpty for no areas, ErrDimensionMismatch for unequal lengths.
//   - ErrUnstableComputation when min(A) < 1 and rescale is false, or any A <= 0.
//
// Complexity:
//   - Time O(n), Space O(1).
func AreaEntropy(sizes, freqs []float64, rescale bool, notify Notifier) (float64, error) {
	if len(sizes) == 0 {
		return 0, ErrEmpty
	}
	if len(sizes) != len(freqs) {
		return 0, ErrDimensionMismatch
	}
	minSize := floats.Min(sizes)
	if !(minSize > 0) {
		return 0, ErrUnstableComputation
	}
	if minSize >= 1 {
		return areaTerms(sizes, freqs, 1), nil
	}
	if !rescale {
		return 0, ErrUnstableComputation
	}

	c := 1/minSize + rescaleOffset
	notify.emit(Notice{
		Op:      OpAreaRescale,
		Message: "sub-areas with size < 1 were rescaled internally; the entropy refers to the original area scale",
		Value:   c,
	})
	return areaTerms(sizes, freqs, c) - math.Log(c), nil
}

func areaTerms(sizes, freqs []float64, scale float64) float64 {
	var h float64
	for i, p := range freqs {
		if p > 0 {
			h += p * math.Log(scale*sizes[i]/p)
		}
	}
	return h
}

// AreaRange returns [max(0, ln min(A)), ln Σ A].
func AreaRange(sizes []float64) Range {
	if len(sizes) == 0 {
		return Range{}
	}
	return Range{
		Minimum: math.Max(0, math.Log(floats.Min(sizes))),
		Maximum: math.Log(floats.Sum(sizes)),
	}
}

// NeighborMeans returns, for each ids[i], the mean of freq over that id's
// neighbours. Neighbours absent from freq are ignored; an empty set gives 0.
// neighbors is indexed by id-1.
// Complexity: O(Σ |neighbours|).
func NeighborMeans(ids []int, freq map[int]float64, neighbors [][]int) []float64 {
	out := make([]float64, len(ids))
	vals := make([]float64, 0, 8)
	for i, id := range ids {
		vals = vals[:0]
		if id-1 < len(neighbors) {
			for _, n := range neighbors[id-1] {
				if f, ok := freq[n]; ok {
					vals = append(vals, f)
				}
			}
		}
		if len(vals) > 0 {
			out[i] = stat.Mean(vals, nil)
		}
	}
	return out
}

// NeighborhoodEntropy returns min(Σ p·ln(1/m), limit) where the sum runs over
// entries with p > 0 and m > 0. Entries with an empty or all-zero
// neighbourhood contribute 0. A clamp is reported through notify.
// Returns ErrDimensionMismatch for unequal lengths.
// Complexity: O(n).
func NeighborhoodEntropy(freqs, means []float64, limit float64, notify Notifier) (float64, error) {
	if len(freqs) != len(means) {
		return 0, ErrDimensionMismatch
	}
	var h float64
	for i, p := range freqs {
		if p > 0 && means[i] > 0 {
			h += p * math.Log(1/means[i])
		}
	}
	if h > limit {
		notify.emit(Notice{
			Op:      OpEntropyClamp,
			Message: "neighbourhood entropy exceeded its theoretical maximum and was clamped",
			Value:   limit,
		})
		h = limit
	}
	return h, nil
}
