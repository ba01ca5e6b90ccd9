// SPDX-License-Identifier: MIT

package entropy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geoentropy/distribution"
	"github.com/katalvlaran/geoentropy/grid"
	"github.com/katalvlaran/geoentropy/pairs"
	"github.com/katalvlaran/geoentropy/partition"
)

// Errors owned by this package.
var (
	// ErrZeroPairs indicates the pair frequencies of ShannonZ sum to zero.
	ErrZeroPairs = errors.New("entropy: sum of pair frequencies is zero")
	// ErrTooFewPartitions indicates Karlström was asked for fewer than two partitions.
	ErrTooFewPartitions = errors.New("entropy: at least two partitions are required")
)

// Re-exported sentinels so callers can match every failure through this package.
var (
	ErrInvalidInput          = grid.ErrInvalidInput
	ErrOutOfBounds           = partition.ErrOutOfBounds
	ErrBadPartitionCount     = partition.ErrBadPartitionCount
	ErrBadNeighbors          = partition.ErrBadNeighbors
	ErrNoPositiveCells       = partition.ErrNoPositiveCells
	ErrDegenerateCategory    = pairs.ErrDegenerateCategory
	ErrInsufficientData      = pairs.ErrInsufficientData
	ErrTooSmallDistance      = pairs.ErrTooSmallDistance
	ErrDistanceExceedsExtent = pairs.ErrDistanceExceedsExtent
	ErrUnstableComputation   = distribution.ErrUnstableComputation
)

// Operation names used for error context.
const (
	opShannon   = "Shannon"
	opShannonZ  = "ShannonZ"
	opBatty     = "Batty"
	opKarlstrom = "Karlstrom"
	opONeill    = "ONeill"
	opLeibovici = "Leibovici"
)

// entropyErrorf adds the operation name while keeping errors.Is on the sentinel.
func entropyErrorf(op string, err error) error {
	return fmt.Errorf("entropy: %s: %w", op, err)
}
