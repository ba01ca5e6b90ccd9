// SPDX-License-Identifier: MIT

package partition

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// RandomCenters draws k centres uniformly inside window.
// Returns ErrBadPartitionCount for k <= 0 and ErrNilRand for a nil rng.
// Complexity: O(k).
func RandomCenters(k int, window r2.Rect, rng *rand.Rand) (Centers, error) {
	if k <= 0 {
		return nil, ErrBadPartitionCount
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	w, h := window.X.Length(), window.Y.Length()
	centers := make(Centers, k)
	// All x coordinates are drawn before any y coordinate.
	for i := range centers {
		centers[i].X = window.X.Lo + rng.Float64()*w
	}
	for i := range centers {
		centers[i].Y = window.Y.Lo + rng.Float64()*h
	}
	return centers, nil
}

// ExplicitCenters copies pts after checking every point lies in the closed window.
// Returns ErrNoCenters for an empty list and ErrOutOfBounds otherwise.
// Complexity: O(len(pts)).
func ExplicitCenters(pts []r2.Point, window r2.Rect) (Centers, error) {
	if len(pts) == 0 {
		return nil, ErrNoCenters
	}
	centers := make(Centers, len(pts))
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || !window.ContainsPoint(p) {
			return nil, ErrOutOfBounds
		}
		centers[i] = p
	}
	return centers, nil
}
