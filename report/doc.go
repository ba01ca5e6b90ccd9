// SPDX-License-Identifier: MIT

// Package report writes entropy results as CSV tables in an output directory.
//
// A Writer owns four files, each with a header row written once:
//
//	summary.csv        one row per metric run (value, range, relative, variance)
//	distributions.csv  one row per distribution entry (key, count, frequency)
//	areas.csv          one row per partition of Batty / Karlström runs
//	assignments.csv    one row per cell of a partition assignment (optional)
//
// Rows carry the run label so several metrics can share one directory.
// A nil *Writer accepts every call and writes nothing.
package report
