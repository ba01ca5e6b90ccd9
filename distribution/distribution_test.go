// SPDX-License-Identifier: MIT

package distribution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoentropy/distribution"
)

const eps = 1e-9

//----------------------------------------------------------------------------//
// Building distributions
//----------------------------------------------------------------------------//

// TestFromKeys_OrderAndFrequencies verifies value-count ordering and Σp = 1.
func TestFromKeys_OrderAndFrequencies(t *testing.T) {
	d, err := distribution.FromKeys([]string{"b", "a", "c", "a", "b", "a", "c"})
	require.NoError(t, err)

	require.Equal(t, 3, d.Len())
	assert.Equal(t, 7, d.Total)
	assert.Equal(t, "a", d.Entries[0].Key)
	assert.Equal(t, 3, d.Entries[0].Count)
	// b and c tie on 2: key order breaks the tie.
	assert.Equal(t, "b", d.Entries[1].Key)
	assert.Equal(t, "c", d.Entries[2].Key)

	sum := 0.0
	for _, p := range d.Probabilities() {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, eps)

	e, ok := d.Lookup("c")
	assert.True(t, ok)
	assert.InDelta(t, 2.0/7, e.Frequency, eps)
	_, ok = d.Lookup("z")
	assert.False(t, ok)
}

// TestFromKeys_Empty returns ErrEmpty.
func TestFromKeys_Empty(t *testing.T) {
	_, err := distribution.FromKeys(nil)
	assert.ErrorIs(t, err, distribution.ErrEmpty)
}

// TestFromCounts keeps order and zero entries and validates its inputs.
func TestFromCounts(t *testing.T) {
	d, err := distribution.FromCounts([]string{"x", "y", "z"}, []int{0, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, []string{d.Entries[0].Key, d.Entries[1].Key, d.Entries[2].Key})
	assert.Equal(t, []float64{0, 0.75, 0.25}, d.Probabilities())

	_, err = distribution.FromCounts([]string{"x"}, []int{1, 2})
	assert.ErrorIs(t, err, distribution.ErrDimensionMismatch)

	_, err = distribution.FromCounts([]string{"x", "y"}, []int{2, -1})
	assert.ErrorIs(t, err, distribution.ErrNegativeCount)

	_, err = distribution.FromCounts([]string{"x", "y"}, []int{0, 0})
	assert.ErrorIs(t, err, distribution.ErrEmpty)
}

//----------------------------------------------------------------------------//
// Entropy and variance
//----------------------------------------------------------------------------//

// TestEntropyAndVariance checks a two-category case against closed forms.
func TestEntropyAndVariance(t *testing.T) {
	d, err := distribution.FromCounts([]string{"1", "2"}, []int{9, 7})
	require.NoError(t, err)

	p, q := 9.0/16, 7.0/16
	h := -(p*math.Log(p) + q*math.Log(q))
	assert.InDelta(t, h, d.Entropy(), eps)
	assert.InDelta(t, 0.6853142072764582, d.Entropy(), eps)

	v := p*math.Pow(math.Log(1/p), 2) + q*math.Pow(math.Log(1/q), 2) - h*h
	assert.InDelta(t, v, d.Variance(), eps)
	assert.InDelta(t, 0.015543020848890587, d.Variance(), eps)
}

// TestEntropy_UniformIsMaximal: equiprobable outcomes reach ln K and zero variance.
func TestEntropy_UniformIsMaximal(t *testing.T) {
	d, err := distribution.FromCounts([]string{"a", "b", "c", "d", "e"}, []int{4, 4, 4, 4, 4})
	require.NoError(t, err)

	r := distribution.LogRange(5)
	assert.InDelta(t, r.Maximum, d.Entropy(), eps)
	assert.InDelta(t, 1.0, distribution.Relative(d.Entropy(), r), eps)
	assert.InDelta(t, 0.0, d.Variance(), eps)
}

// TestEntropy_ZeroEntriesIgnored: zero counts add nothing to entropy or variance.
func TestEntropy_ZeroEntriesIgnored(t *testing.T) {
	a, err := distribution.FromCounts([]string{"a", "b"}, []int{1, 3})
	require.NoError(t, err)
	b, err := distribution.FromCounts([]string{"a", "z", "b"}, []int{1, 0, 3})
	require.NoError(t, err)

	assert.InDelta(t, a.Entropy(), b.Entropy(), eps)
	assert.InDelta(t, a.Variance(), b.Variance(), eps)
}

// TestRelative covers the degenerate-range fallback.
func TestRelative(t *testing.T) {
	assert.Equal(t, 0.0, distribution.Relative(0.3, distribution.Range{}))
	assert.Equal(t, 0.0, distribution.Relative(0.3, distribution.LogRange(1)))
	assert.Equal(t, 0.0, distribution.Relative(0.3, distribution.Range{Maximum: math.Inf(1)}))
	assert.InDelta(t, 0.5, distribution.Relative(math.Log(2)/2, distribution.LogRange(2)), eps)
}

//----------------------------------------------------------------------------//
// Area entropy
//----------------------------------------------------------------------------//

// TestAreaEntropy_RescaleRoundTrip checks that the −ln(c) correction undoes the
// uniform rescale exactly, and that a ×10 integer-area case differs by ln 10.
func TestAreaEntropy_RescaleRoundTrip(t *testing.T) {
	sizes := []float64{0.5, 2, 3}
	freqs := []float64{0.2, 0.3, 0.5}

	var notices []distribution.Notice
	got, err := distribution.AreaEntropy(sizes, freqs, true, func(n distribution.Notice) {
		notices = append(notices, n)
	})
	require.NoError(t, err)

	direct := 0.0
	for i, p := range freqs {
		direct += p * math.Log(sizes[i]/p)
	}
	assert.InDelta(t, direct, got, eps)

	scaled, err := distribution.AreaEntropy([]float64{5, 20, 30}, freqs, true, nil)
	require.NoError(t, err)
	assert.InDelta(t, scaled-math.Log(10), got, eps)

	require.Len(t, notices, 1)
	assert.Equal(t, distribution.OpAreaRescale, notices[0].Op)
	assert.InDelta(t, 1/0.5+0.01, notices[0].Value, eps)
}

// TestAreaEntropy_Errors covers disabled rescale and malformed input.
func TestAreaEntropy_Errors(t *testing.T) {
	_, err := distribution.AreaEntropy([]float64{0.5, 2}, []float64{0.5, 0.5}, false, nil)
	assert.ErrorIs(t, err, distribution.ErrUnstableComputation)

	_, err = distribution.AreaEntropy([]float64{0, 2}, []float64{0.5, 0.5}, true, nil)
	assert.ErrorIs(t, err, distribution.ErrUnstableComputation)

	_, err = distribution.AreaEntropy([]float64{1, 2}, []float64{1}, true, nil)
	assert.ErrorIs(t, err, distribution.ErrDimensionMismatch)

	_, err = distribution.AreaEntropy(nil, nil, true, nil)
	assert.ErrorIs(t, err, distribution.ErrEmpty)
}

// TestAreaEntropy_NoRescaleNeeded: unit-or-larger areas never notify.
func TestAreaEntropy_NoRescaleNeeded(t *testing.T) {
	called := false
	h, err := distribution.AreaEntropy([]float64{4, 4, 4, 4}, []float64{1.0 / 3, 2.0 / 9, 2.0 / 9, 2.0 / 9}, false, func(distribution.Notice) {
		called = true
	})
	require.NoError(t, err)
	assert.False(t, called)

	want := 1.0/3*math.Log(4*3) + 3*(2.0/9)*math.Log(4*9.0/2)
	assert.InDelta(t, want, h, eps)

	r := distribution.AreaRange([]float64{4, 4, 4, 4})
	assert.InDelta(t, math.Log(4), r.Minimum, eps)
	assert.InDelta(t, math.Log(16), r.Maximum, eps)
	assert.LessOrEqual(t, h, r.Maximum)
}

// TestAreaRange_SubUnitMinimum floors the minimum at zero.
func TestAreaRange_SubUnitMinimum(t *testing.T) {
	r := distribution.AreaRange([]float64{0.25, 3})
	assert.Equal(t, 0.0, r.Minimum)
	assert.InDelta(t, math.Log(3.25), r.Maximum, eps)
	assert.Equal(t, distribution.Range{}, distribution.AreaRange(nil))
}

//----------------------------------------------------------------------------//
// Neighbourhood entropy
//----------------------------------------------------------------------------//

// TestNeighborMeans ignores absent neighbours and yields 0 for empty sets.
func TestNeighborMeans(t *testing.T) {
	freq := map[int]float64{1: 0.5, 2: 0.3, 4: 0.2}
	neighbors := [][]int{{2, 4}, {1, 3}, {}, {3}}

	got := distribution.NeighborMeans([]int{1, 2, 4}, freq, neighbors)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0}, got, eps)
}

// TestNeighborhoodEntropy sums well-defined terms and clamps at the limit.
func TestNeighborhoodEntropy(t *testing.T) {
	freqs := []float64{0.5, 0.3, 0.2, 0}
	means := []float64{0.25, 0.5, 0, 0.1}

	h, err := distribution.NeighborhoodEntropy(freqs, means, 10, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*math.Log(4)+0.3*math.Log(2), h, eps)

	var notices []distribution.Notice
	h, err = distribution.NeighborhoodEntropy(freqs, means, 0.1, func(n distribution.Notice) {
		notices = append(notices, n)
	})
	require.NoError(t, err)
	assert.Equal(t, 0.1, h)
	require.Len(t, notices, 1)
	assert.Equal(t, distribution.OpEntropyClamp, notices[0].Op)

	_, err = distribution.NeighborhoodEntropy(freqs, means[:2], 1, nil)
	assert.ErrorIs(t, err, distribution.ErrDimensionMismatch)
}
