// SPDX-License-Identifier: MIT

package distribution

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// FromKeys counts occurrences of each distinct key.
// Entries are ordered by descending count, then ascending key.
// Returns ErrEmpty for an empty key list.
// Complexity: O(n + k log k) for n keys and k distinct keys.
func FromKeys(keys []string) (Distribution, error) {
	if len(keys) == 0 {
		return Distribution{}, ErrEmpty
	}
	counts := make(map[string]int)
	for _, k := range keys {
		counts[k]++
	}

	entries := make([]Entry, 0, len(counts))
	for k, n := range counts {
		entries = append(entries, Entry{Key: k, Count: n})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return finish(entries, len(keys)), nil
}

// FromCounts builds a distribution from parallel keys and counts, keeping the
// caller's order and zero-count entries.
// Returns ErrDimensionMismatch, ErrNegativeCount, or ErrEmpty when Σ counts == 0.
// Complexity: O(n).
func FromCounts(keys []string, counts []int) (Distribution, error) {
	if len(keys) != len(counts) {
		return Distribution{}, ErrDimensionMismatch
	}
	total := 0
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		if counts[i] < 0 {
			return Distribution{}, ErrNegativeCount
		}
		entries[i] = Entry{Key: k, Count: counts[i]}
		total += counts[i]
	}
	if total == 0 {
		return Distribution{}, ErrEmpty
	}
	return finish(entries, total), nil
}

func finish(entries []Entry, total int) Distribution {
	inv := 1.0 / float64(total)
	for i := range entries {
		entries[i].Frequency = float64(entries[i].Count) * inv
	}
	return Distribution{Entries: entries, Total: total}
}

// Len returns the number of entries, zero-count ones included.
func (d Distribution) Len() int { return len(d.Entries) }

// Probabilities returns the relative frequencies in entry order.
func (d Distribution) Probabilities() []float64 {
	p := make([]float64, len(d.Entries))
	for i, e := range d.Entries {
		p[i] = e.Frequency
	}
	return p
}

// Lookup returns the entry for key.
func (d Distribution) Lookup(key string) (Entry, bool) {
	for _, e := range d.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Entropy returns −Σ p·ln p over p > 0.
func (d Distribution) Entropy() float64 {
	return stat.Entropy(d.Probabilities())
}

// Variance returns Σ p·(ln 1/p)² − H², the second-moment estimator of the
// sampling variance of the entropy. Zero-probability entries contribute nothing.
func (d Distribution) Variance() float64 {
	h := d.Entropy()
	var m2 float64
	for _, e := range d.Entries {
		if e.Frequency > 0 {
			l := math.Log(1 / e.Frequency)
			m2 += e.Frequency * l * l
		}
	}
	return m2 - h*h
}

// Relative returns value / r.Maximum, or 0 when the maximum is not a positive
// finite number (single category, unit total area).
func Relative(value float64, r Range) float64 {
	if !(r.Maximum > 0) || math.IsInf(r.Maximum, 1) {
		return 0
	}
	return value / r.Maximum
}

// LogRange returns [0, ln n]; n <= 1 gives [0, 0].
func LogRange(n int) Range {
	if n <= 1 {
		return Range{}
	}
	return Range{Minimum: 0, Maximum: math.Log(float64(n))}
}
