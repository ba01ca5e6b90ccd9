// SPDX-License-Identifier: MIT

package report

import (
	"cmp"

	"github.com/katalvlaran/geoentropy/distribution"
	"github.com/katalvlaran/geoentropy/entropy"
	"github.com/katalvlaran/geoentropy/grid"
	"github.com/katalvlaran/geoentropy/partition"
)

// SummaryRow is one metric run.
type SummaryRow struct {
	Run      string  `csv:"run"`
	Metric   string  `csv:"metric"`
	Value    float64 `csv:"value"`
	Minimum  float64 `csv:"range_min"`
	Maximum  float64 `csv:"range_max"`
	Relative float64 `csv:"relative"`
	Variance float64 `csv:"variance"` // Shannon / Shannon-Z only
}

// DistributionRow is one entry of a result distribution.
type DistributionRow struct {
	Run       string  `csv:"run"`
	Key       string  `csv:"key"`
	Count     int     `csv:"count"`
	Frequency float64 `csv:"frequency"`
}

// AreaRow is one partition of an area-based run.
type AreaRow struct {
	Run       string  `csv:"run"`
	Partition int     `csv:"partition"`
	CenterX   float64 `csv:"center_x"`
	CenterY   float64 `csv:"center_y"`
	Positive  int     `csv:"positive"`
	Cells     int     `csv:"cells"`
	Size      float64 `csv:"size"`
	Frequency float64 `csv:"frequency"`
}

// AssignmentRow is one cell of a partition assignment.
type AssignmentRow struct {
	Run       string  `csv:"run"`
	Row       int     `csv:"row"`
	Col       int     `csv:"col"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Category  string  `csv:"category"`
	Partition int     `csv:"partition"`
}

// Summary flattens a result. variance is ignored by metrics without one.
func Summary(run, metric string, r entropy.Result, variance float64) SummaryRow {
	return SummaryRow{
		Run:      run,
		Metric:   metric,
		Value:    r.Value,
		Minimum:  r.Range.Minimum,
		Maximum:  r.Range.Maximum,
		Relative: r.Relative,
		Variance: variance,
	}
}

// DistributionRows lists d in its own entry order.
func DistributionRows(run string, d distribution.Distribution) []DistributionRow {
	out := make([]DistributionRow, len(d.Entries))
	for i, e := range d.Entries {
		out[i] = DistributionRow{Run: run, Key: e.Key, Count: e.Count, Frequency: e.Frequency}
	}
	return out
}

// AreaRows joins each area with its partition centre.
func AreaRows(run string, areas []partition.Area, centers partition.Centers) []AreaRow {
	out := make([]AreaRow, len(areas))
	for i, a := range areas {
		c := centers[a.Partition-1]
		out[i] = AreaRow{
			Run:       run,
			Partition: a.Partition,
			CenterX:   c.X,
			CenterY:   c.Y,
			Positive:  a.Positive,
			Cells:     a.Cells,
			Size:      a.Size,
			Frequency: a.Frequency,
		}
	}
	return out
}

// AssignmentRows lists every cell; missing cells carry grid.MissingLabel.
func AssignmentRows[T cmp.Ordered](run string, a *partition.Assignment[T]) []AssignmentRow {
	if a == nil {
		return nil
	}
	out := make([]AssignmentRow, len(a.Cells))
	for i, c := range a.Cells {
		label := grid.MissingLabel
		if !c.Missing {
			label = grid.Label(c.Category)
		}
		out[i] = AssignmentRow{
			Run:       run,
			Row:       c.Row,
			Col:       c.Col,
			X:         c.Center.X,
			Y:         c.Center.Y,
			Category:  label,
			Partition: c.Partition,
		}
	}
	return out
}
