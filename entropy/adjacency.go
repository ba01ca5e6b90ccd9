// SPDX-License-Identifier: MIT

package entropy

import (
	"cmp"

	"github.com/katalvlaran/geoentropy/distribution"
	"github.com/katalvlaran/geoentropy/grid"
	"github.com/katalvlaran/geoentropy/pairs"
)

// ONeill returns O'Neill's entropy of 4-neighbour category pairs.
// Keys keep scan order ("1-2" ≠ "2-1"), so the range counts ordered pairs:
// [0, ln K²] for K distinct non-missing categories.
//
// Errors:
//   - ErrInvalidInput, ErrDegenerateCategory (K == 1), ErrInsufficientData
//     (no present pair, e.g. an all-missing grid).
//
// Complexity: O(rows×cols).
func ONeill[T cmp.Ordered](g *grid.Grid[T], _ ...Option) (Result, error) {
	if g == nil {
		return Result{}, entropyErrorf(opONeill, ErrInvalidInput)
	}
	keys, err := pairs.Adjacent(g)
	if err != nil {
		return Result{}, entropyErrorf(opONeill, err)
	}
	return pairResult(opONeill, keys, len(g.Categories()))
}

// Leibovici returns Leibovici's entropy of category pairs whose cell centres
// lie within the critical distance (WithCriticalDistance, default 1).
// Range [0, ln K²] as for ONeill.
//
// Errors:
//   - ErrInvalidInput, ErrTooSmallDistance (d < min cell edge),
//     ErrDistanceExceedsExtent (d >= grid diagonal), ErrInsufficientData.
//
// Complexity: O(N·w), worst case O(N²); see package pairs.
func Leibovici[T cmp.Ordered](g *grid.Grid[T], opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, entropyErrorf(opLeibovici, ErrInvalidInput)
	}
	o := gatherOptions(opts)

	keys, err := pairs.WithinDistance(g, o.criticalDistance)
	if err != nil {
		return Result{}, entropyErrorf(opLeibovici, err)
	}
	return pairResult(opLeibovici, keys, len(g.Categories()))
}

func pairResult(op string, keys []string, k int) (Result, error) {
	d, err := distribution.FromKeys(keys)
	if err != nil {
		return Result{}, entropyErrorf(op, mapEmpty(err, ErrInsufficientData))
	}
	h := d.Entropy()
	r := distribution.LogRange(k * k)
	return Result{
		Value:        h,
		Range:        r,
		Relative:     distribution.Relative(h, r),
		Distribution: d,
	}, nil
}
