// SPDX-License-Identifier: MIT

package entropy

import (
	"cmp"
	"math"
	"strconv"

	"github.com/katalvlaran/geoentropy/distribution"
	"github.com/katalvlaran/geoentropy/grid"
	"github.com/katalvlaran/geoentropy/partition"
)

// Batty returns Batty's spatial entropy of category over a Voronoi partition.
// Implementation:
//   - Stage 1: validate the grid, the partition layout and that category occurs.
//   - Stage 2: resolve centres (explicit or random) and assign every cell.
//   - Stage 3: aggregate per partition: p_g = target cells / all target cells,
//     A_g = physical partition area.
//   - Stage 4: H = Σ p_g·ln(A_g/p_g), with the sub-unit rescale policy of
//     distribution.AreaEntropy.
//
// Behavior highlights:
//   - Range [max(0, ln min A), ln Σ A]; Relative = H / ln Σ A.
//   - A rescale is reported through WithNotifier.
//
// Errors:
//   - ErrInvalidInput, ErrBadPartitionCount, ErrOutOfBounds, ErrNoPositiveCells,
//     ErrUnstableComputation (WithRescale(false) and some A < 1).
//
// Complexity:
//   - Time O(N log M), Space O(N).
func Batty[T cmp.Ordered](g *grid.Grid[T], category T, opts ...Option) (AreaResult[T], error) {
	o := gatherOptions(opts)
	res, err := partitionAreas(g, category, o)
	if err != nil {
		return AreaResult[T]{}, entropyErrorf(opBatty, err)
	}

	sizes := partition.Sizes(res.Areas)
	h, err := distribution.AreaEntropy(sizes, partition.Frequencies(res.Areas), o.rescale, o.notify)
	if err != nil {
		return AreaResult[T]{}, entropyErrorf(opBatty, err)
	}

	res.Value = h
	res.Range = distribution.AreaRange(sizes)
	res.Relative = distribution.Relative(h, res.Range)
	return res, nil
}

// Karlstrom returns Karlström's neighbourhood-relative spatial entropy of category.
// Implementation:
//   - Stage 1–3: as Batty.
//   - Stage 4: find each partition's neighbours (k nearest, or within a radius)
//     and their mean relative frequency m_g.
//   - Stage 5: H = Σ p_g·ln(1/m_g) over p_g > 0 and m_g > 0, clamped to
//     ln(M) − 1e-5 for M partitions.
//
// Behavior highlights:
//   - Range [max(0, ln min A), ln Σ A] over all partitions; Relative = H / ln Σ A.
//
// Errors:
//   - as Batty, plus ErrTooFewPartitions (M < 2) and ErrBadNeighbors.
//
// Complexity:
//   - Time O(N log M + M·(log M + k)), Space O(N).
func Karlstrom[T cmp.Ordered](g *grid.Grid[T], category T, opts ...Option) (AreaResult[T], error) {
	o := gatherOptions(opts)
	if n := o.centerCount(); n == 1 {
		return AreaResult[T]{}, entropyErrorf(opKarlstrom, ErrTooFewPartitions)
	}
	if err := o.neighbors.Validate(); err != nil {
		return AreaResult[T]{}, entropyErrorf(opKarlstrom, err)
	}

	res, err := partitionAreas(g, category, o)
	if err != nil {
		return AreaResult[T]{}, entropyErrorf(opKarlstrom, err)
	}

	centers := res.Assignment.Centers
	neighbors, err := partition.Neighbors(centers, o.neighbors)
	if err != nil {
		return AreaResult[T]{}, entropyErrorf(opKarlstrom, err)
	}

	ids := make([]int, len(res.Areas))
	freq := make(map[int]float64, len(res.Areas))
	for i, ar := range res.Areas {
		ids[i] = ar.Partition
		freq[ar.Partition] = ar.Frequency
	}
	means := distribution.NeighborMeans(ids, freq, neighbors)
	limit := math.Log(float64(len(centers))) - karlstromEpsilon

	h, err := distribution.NeighborhoodEntropy(partition.Frequencies(res.Areas), means, limit, o.notify)
	if err != nil {
		return AreaResult[T]{}, entropyErrorf(opKarlstrom, err)
	}

	res.Value = h
	res.Range = distribution.AreaRange(partition.Sizes(res.Areas))
	res.Relative = distribution.Relative(h, res.Range)
	res.Neighbors = neighbors
	return res, nil
}

// partitionAreas runs the shared Batty/Karlström pipeline up to the area table.
func partitionAreas[T cmp.Ordered](g *grid.Grid[T], category T, o Options) (AreaResult[T], error) {
	if g == nil {
		return AreaResult[T]{}, ErrInvalidInput
	}
	if len(o.centers) == 0 && o.partitions <= 0 {
		return AreaResult[T]{}, ErrBadPartitionCount
	}
	if counts, _ := g.Counts(); counts[category] == 0 {
		return AreaResult[T]{}, ErrNoPositiveCells
	}

	centers, err := o.resolveCenters(g.Window())
	if err != nil {
		return AreaResult[T]{}, err
	}
	a, err := partition.Assign(g, centers)
	if err != nil {
		return AreaResult[T]{}, err
	}
	areas, err := a.Areas(category)
	if err != nil {
		return AreaResult[T]{}, err
	}

	keys := make([]string, len(areas))
	positives := make([]int, len(areas))
	for i, ar := range areas {
		keys[i] = strconv.Itoa(ar.Partition)
		positives[i] = ar.Positive
	}
	d, err := distribution.FromCounts(keys, positives)
	if err != nil {
		return AreaResult[T]{}, mapEmpty(err, ErrNoPositiveCells)
	}

	return AreaResult[T]{
		Result:     Result{Distribution: d},
		Areas:      areas,
		Assignment: a,
	}, nil
}
