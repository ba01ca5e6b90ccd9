// SPDX-License-Identifier: MIT

package partition

import "errors"

var (
	// ErrOutOfBounds indicates an explicit centre outside the observation window.
	ErrOutOfBounds = errors.New("partition: centre outside the observation window")
	// ErrBadPartitionCount indicates a non-positive number of random centres.
	ErrBadPartitionCount = errors.New("partition: partition count must be > 0")
	// ErrNoCenters indicates an empty explicit centre list.
	ErrNoCenters = errors.New("partition: no partition centres")
	// ErrNoPositiveCells indicates the target category is absent from the grid.
	ErrNoPositiveCells = errors.New("partition: target category has no cells")
	// ErrBadNeighbors indicates an invalid neighbour query (k <= 0, r <= 0, unknown method).
	ErrBadNeighbors = errors.New("partition: invalid neighbour query")
	// ErrNilRand indicates a nil random source for random centres.
	ErrNilRand = errors.New("partition: nil random source")
)
