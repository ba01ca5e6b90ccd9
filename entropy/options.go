// SPDX-License-Identifier: MIT

package entropy

import (
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/geoentropy/distribution"
	"github.com/katalvlaran/geoentropy/partition"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPartitions is the number of random partition centres.
	DefaultPartitions = 10

	// DefaultRescale lets Batty rescale sub-unit areas instead of failing.
	DefaultRescale = true

	// DefaultNeighbors is the Karlström neighbour count (ByNumber).
	DefaultNeighbors = 4

	// DefaultCriticalDistance is the Leibovici pair distance.
	DefaultCriticalDistance = 1.0

	// karlstromEpsilon keeps Karlström strictly below ln(M).
	karlstromEpsilon = 1e-5
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Options never panic; values are validated
// by the metric that consumes them, before any computation.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	partitions       int
	centers          []r2.Point
	rng              *rand.Rand
	seed             int64
	rescale          bool
	neighbors        partition.NeighborQuery
	criticalDistance float64
	skipMissing      bool
	notify           distribution.Notifier
}

func defaultOptions() Options {
	return Options{
		partitions:       DefaultPartitions,
		rescale:          DefaultRescale,
		neighbors:        partition.NeighborQuery{Method: partition.ByNumber, K: DefaultNeighbors},
		criticalDistance: DefaultCriticalDistance,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPartitions draws k random partition centres inside the window.
// Ignored when WithCenters is also given.
func WithPartitions(k int) Option {
	return func(o *Options) { o.partitions = k }
}

// WithCenters supplies explicit partition centres; each must lie in the window.
func WithCenters(pts ...r2.Point) Option {
	return func(o *Options) { o.centers = append([]r2.Point(nil), pts...) }
}

// WithSeed seeds the random centre source. Seed 0 means time-based.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand injects the random centre source. Takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// WithRescale sets the Batty policy for areas smaller than one.
func WithRescale(on bool) Option {
	return func(o *Options) { o.rescale = on }
}

// WithNeighbors makes Karlström use the k nearest other partitions.
func WithNeighbors(k int) Option {
	return func(o *Options) {
		o.neighbors = partition.NeighborQuery{Method: partition.ByNumber, K: k}
	}
}

// WithRadius makes Karlström use every partition whose centre lies within r.
func WithRadius(r float64) Option {
	return func(o *Options) {
		o.neighbors = partition.NeighborQuery{Method: partition.ByDistance, Radius: r}
	}
}

// WithNeighborQuery sets the Karlström neighbourhood directly.
func WithNeighborQuery(q partition.NeighborQuery) Option {
	return func(o *Options) { o.neighbors = q }
}

// WithCriticalDistance sets the Leibovici pair distance.
func WithCriticalDistance(d float64) Option {
	return func(o *Options) { o.criticalDistance = d }
}

// WithSkipMissing drops missing cells from Shannon and ShannonZ counts.
// By default they form their own "NA" category.
func WithSkipMissing() Option {
	return func(o *Options) { o.skipMissing = true }
}

// WithNotifier receives informational notices (Batty rescale, Karlström clamp).
func WithNotifier(n distribution.Notifier) Option {
	return func(o *Options) { o.notify = n }
}

// resolveCenters returns explicit centres when given, random ones otherwise.
func (o Options) resolveCenters(window r2.Rect) (partition.Centers, error) {
	if len(o.centers) > 0 {
		return partition.ExplicitCenters(o.centers, window)
	}
	rng := o.rng
	if rng == nil {
		rng = partition.NewRand(o.seed)
	}
	return partition.RandomCenters(o.partitions, window, rng)
}

// centerCount is the number of partitions the options will produce.
func (o Options) centerCount() int {
	if len(o.centers) > 0 {
		return len(o.centers)
	}
	return o.partitions
}
