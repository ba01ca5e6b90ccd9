// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownMetric indicates a metric name outside MetricNames.
	ErrUnknownMetric = errors.New("config: unknown metric")
	// ErrMissingCategory indicates batty or karlstrom without a category.
	ErrMissingCategory = errors.New("config: category is required")
	// ErrBadMethod indicates a neighbourhood method other than number or distance.
	ErrBadMethod = errors.New("config: neighbourhood method must be number or distance")
	// ErrBadGeometry indicates a malformed cell_size, window or center entry.
	ErrBadGeometry = errors.New("config: malformed geometry")
	// ErrBadLogLevel indicates an unrecognised log level.
	ErrBadLogLevel = errors.New("config: unknown log level")
)
