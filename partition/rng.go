// SPDX-License-Identifier: MIT

package partition

import (
	"math/rand"
	"time"
)

// NewRand returns a *rand.Rand for centre sampling.
// Policy: seed==0 ⇒ time-based seed (exploratory, non-reproducible);
// otherwise the seed is used verbatim so runs are reproducible.
//
// math/rand.Rand is NOT goroutine-safe; create one per computation.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}
