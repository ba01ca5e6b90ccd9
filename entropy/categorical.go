// SPDX-License-Identifier: MIT

package entropy

import (
	"cmp"
	"errors"
	"slices"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/geoentropy/distribution"
	"github.com/katalvlaran/geoentropy/grid"
)

// Shannon returns the Shannon entropy of the grid's category frequencies.
// Implementation:
//   - Stage 1: count each category; missing cells form an "NA" category unless
//     WithSkipMissing is given.
//   - Stage 2: H = −Σ p·ln p, Var = Σ p·(ln 1/p)² − H².
//   - Stage 3: range [0, ln K]; relative 0 when K <= 1.
//
// Errors:
//   - ErrInvalidInput for a nil grid.
//   - ErrInsufficientData when every cell is missing and missing cells are skipped.
//
// Complexity:
//   - Time O(N + K log K), Space O(K).
func Shannon[T cmp.Ordered](g *grid.Grid[T], opts ...Option) (ShannonResult, error) {
	if g == nil {
		return ShannonResult{}, entropyErrorf(opShannon, ErrInvalidInput)
	}
	o := gatherOptions(opts)

	labels, counts := categoryCounts(g, o.skipMissing)
	d, err := distribution.FromCounts(labels, counts)
	if err != nil {
		return ShannonResult{}, entropyErrorf(opShannon, mapEmpty(err, ErrInsufficientData))
	}

	h := d.Entropy()
	r := distribution.LogRange(d.Len())
	return ShannonResult{
		Result: Result{
			Value:        h,
			Range:        r,
			Relative:     distribution.Relative(h, r),
			Distribution: d,
		},
		Variance: d.Variance(),
	}, nil
}

// ShannonZ returns the entropy of unordered category pairs drawn without
// replacement from the grid.
// Implementation:
//   - Stage 1: count categories as Shannon does.
//   - Stage 2: for every combination with replacement (a,b), a<=b in category
//     order: n_a·n_b when a≠b, C(n_a, 2) when a=b.
//   - Stage 3: H over the pair distribution; range [0, ln C(K+1, 2)].
//
// Errors:
//   - ErrInvalidInput for a nil grid.
//   - ErrZeroPairs when no pair can be drawn (e.g. a single cell).
//
// Complexity:
//   - Time O(N + K²), Space O(K²).
func ShannonZ[T cmp.Ordered](g *grid.Grid[T], opts ...Option) (ShannonResult, error) {
	if g == nil {
		return ShannonResult{}, entropyErrorf(opShannonZ, ErrInvalidInput)
	}
	o := gatherOptions(opts)

	labels, counts := categoryCounts(g, o.skipMissing)
	k := len(labels)
	keys := make([]string, 0, k*(k+1)/2)
	freqs := make([]int, 0, k*(k+1)/2)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			keys = append(keys, labels[i]+"-"+labels[j])
			if i == j {
				freqs = append(freqs, choose2(counts[i]))
				continue
			}
			freqs = append(freqs, counts[i]*counts[j])
		}
	}

	d, err := distribution.FromCounts(keys, freqs)
	if err != nil {
		return ShannonResult{}, entropyErrorf(opShannonZ, mapEmpty(err, ErrZeroPairs))
	}

	h := d.Entropy()
	var r distribution.Range
	if k > 1 {
		r = distribution.LogRange(combin.Binomial(k+1, 2))
	}
	return ShannonResult{
		Result: Result{
			Value:        h,
			Range:        r,
			Relative:     distribution.Relative(h, r),
			Distribution: d,
		},
		Variance: d.Variance(),
	}, nil
}

// categoryCounts returns labels in ascending category order, with the missing
// label last when kept and present.
func categoryCounts[T cmp.Ordered](g *grid.Grid[T], skipMissing bool) ([]string, []int) {
	byValue, missing := g.Counts()
	cats := make([]T, 0, len(byValue))
	for v := range byValue {
		cats = append(cats, v)
	}
	slices.Sort(cats)

	labels := make([]string, 0, len(cats)+1)
	counts := make([]int, 0, len(cats)+1)
	for _, v := range cats {
		labels = append(labels, grid.Label(v))
		counts = append(counts, byValue[v])
	}
	if missing > 0 && !skipMissing {
		labels = append(labels, grid.MissingLabel)
		counts = append(counts, missing)
	}
	return labels, counts
}

// choose2 returns C(n, 2), 0 for n < 2.
func choose2(n int) int {
	if n < 2 {
		return 0
	}
	return combin.Binomial(n, 2)
}

// mapEmpty translates distribution.ErrEmpty into the metric's own sentinel.
func mapEmpty(err, to error) error {
	if errors.Is(err, distribution.ErrEmpty) {
		return to
	}
	return err
}
