// SPDX-License-Identifier: MIT

package partition

import "math"

// Neighbors returns, for every centre i, the 1-based ids of its neighbouring
// partitions under q. Result index i corresponds to partition id i+1.
//
// ByNumber takes the q.K nearest centres excluding the centre itself; fewer are
// returned when len(centers)-1 < q.K. ByDistance takes every centre whose
// distance is <= q.Radius, the centre itself included.
//
// Returns ErrNoCenters or ErrBadNeighbors.
// Complexity: O(M log M + M·(log M + K)).
func Neighbors(centers Centers, q NeighborQuery) ([][]int, error) {
	if len(centers) == 0 {
		return nil, ErrNoCenters
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	idx := newCenterIndex(centers)
	out := make([][]int, len(centers))
	for i, c := range centers {
		var ids []int
		switch q.Method {
		case ByNumber:
			ids = idx.nearestK(c, q.K+1)
			ids = dropID(ids, i, q.K)
		case ByDistance:
			ids = idx.within(c, q.Radius)
		}
		for j := range ids {
			ids[j]++
		}
		out[i] = ids
	}
	return out, nil
}

// Validate checks K > 0 for ByNumber and a finite Radius > 0 for ByDistance.
// Returns ErrBadNeighbors.
func (q NeighborQuery) Validate() error {
	switch q.Method {
	case ByNumber:
		if q.K <= 0 {
			return ErrBadNeighbors
		}
	case ByDistance:
		if !(q.Radius > 0) || math.IsInf(q.Radius, 0) {
			return ErrBadNeighbors
		}
	default:
		return ErrBadNeighbors
	}
	return nil
}

// dropID removes self from ids and truncates to at most k entries.
// When self is absent (a duplicate centre won the tie), the farthest entry goes.
func dropID(ids []int, self, k int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id != self {
			out = append(out, id)
		}
	}
	if len(out) > k {
		out = out[:k]
	}
	return out
}
