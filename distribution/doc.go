// SPDX-License-Identifier: MIT

// Package distribution reduces raw counts into probability distributions and
// entropy values.
//
// Purpose:
//   - Turn keys or counts into relative frequencies (Distribution).
//   - Reduce a distribution to −Σ p·ln p and to the variance of ln(1/p).
//   - Compute area-weighted entropy Σ p·ln(A/p) with a uniform rescale for
//     sub-unit areas, and neighbourhood-relative entropy Σ p·ln(1/m).
//
// Exposed API:
//   - FromKeys(keys)            -> Distribution ordered by count desc, key asc
//   - FromCounts(keys, counts)  -> Distribution in caller order (zeros kept)
//   - Distribution.Entropy()    -> −Σ p·ln p over p > 0
//   - Distribution.Variance()   -> Σ p·ln(1/p)² − H²
//   - AreaEntropy, AreaRange    -> partition-based reduction
//   - NeighborMeans, NeighborhoodEntropy -> neighbourhood-relative reduction
//   - Relative(value, r)        -> value / r.Maximum, 0 when the range is degenerate
//
// Numeric hazards:
//   - ln(A) for A < 1: AreaEntropy rescales all areas by c = 1/min(A) + 0.01
//     and subtracts ln(c), or fails with ErrUnstableComputation when rescale
//     is off. The rescale is reported through a Notifier, never printed.
package distribution
