// SPDX-License-Identifier: MIT

package distribution

// Entry is one outcome of a distribution.
type Entry struct {
	Key       string
	Count     int
	Frequency float64
}

// Distribution maps outcomes to absolute and relative frequencies.
// Σ Frequency == 1 within floating tolerance over entries with Count > 0.
type Distribution struct {
	Entries []Entry
	Total   int
}

// Range is the theoretical [Minimum, Maximum] of an entropy value.
type Range struct {
	Minimum float64
	Maximum float64
}

// Notice is an informational event raised during a reduction.
type Notice struct {
	Op      string  // reduction that raised the notice
	Message string  // human-readable description
	Value   float64 // rescale constant or clamp limit
}

// Notifier receives notices. A nil Notifier drops them.
type Notifier func(Notice)

func (n Notifier) emit(nt Notice) {
	if n != nil {
		n(nt)
	}
}

// Notice ops.
const (
	OpAreaRescale  = "area-rescale"
	OpEntropyClamp = "entropy-clamp"
)
