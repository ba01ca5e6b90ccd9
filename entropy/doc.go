// SPDX-License-Identifier: MIT

// Package entropy computes spatial and categorical entropy metrics over a
// grid.Grid.
//
// 🚀 Metrics
//
//	Non-spatial:
//		• Shannon   : −Σ p·ln p over categories, with variance; range [0, ln K]
//		• ShannonZ  : entropy of unordered category pairs; range [0, ln C(K+1,2)]
//	Adjacency-based:
//		• ONeill    : 4-neighbour pairs, scan-ordered keys; range [0, ln K²]
//		• Leibovici : pairs within a critical distance; range [0, ln K²]
//	Partition-based (dichotomised on a target category):
//		• Batty     : Σ p·ln(A/p) over Voronoi partitions; range [max(0, ln min A), ln Σ A]
//		• Karlstrom : Σ p·ln(1/m) with m the neighbour mean; clamped below ln M − 1e-5
//
// Every metric returns a Result with Value, Range, Relative (Value/Range.Maximum,
// or 0 when the maximum is degenerate) and the underlying Distribution.
//
// ⚙️ Options
//
//	WithPartitions(k) / WithCenters(pts...)  partition layout (default 10 random centres)
//	WithSeed(s) / WithRand(r)                reproducible random centres
//	WithRescale(bool)                        Batty sub-unit area policy (default true)
//	WithNeighbors(k) / WithRadius(r)         Karlström neighbourhood (default 4 nearest)
//	WithCriticalDistance(d)                  Leibovici distance (default 1)
//	WithSkipMissing()                        drop missing cells from Shannon / ShannonZ
//	WithNotifier(fn)                         receive rescale / clamp notices
//
// All parameters are validated before any computation. Errors are the
// sentinels re-exported in errors.go and are matched with errors.Is.
//
// Concurrency: every call builds its own structures; calls are independent and
// safe to run in parallel as long as they do not share a *rand.Rand.
package entropy
