// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// File names inside the output directory.
const (
	SummaryFile       = "summary.csv"
	DistributionsFile = "distributions.csv"
	AreasFile         = "areas.csv"
	AssignmentsFile   = "assignments.csv"
)

// table is one CSV file whose header is written with the first batch.
type table struct {
	name          string
	file          *os.File
	headerWritten bool
}

func (t *table) write(records any) error {
	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.file); err != nil {
			return fmt.Errorf("writing %s: %w", t.name, err)
		}
		t.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, t.file); err != nil {
		return fmt.Errorf("writing %s: %w", t.name, err)
	}
	return nil
}

// Writer appends result rows to the CSV files of one directory.
type Writer struct {
	dir           string
	summary       *table
	distributions *table
	areas         *table
	assignments   *table // nil unless requested
}

// NewWriter creates dir and its CSV files. Returns nil if dir is empty
// (output disabled). assignments enables assignments.csv.
func NewWriter(dir string, assignments bool) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	w := &Writer{dir: dir}
	names := []string{SummaryFile, DistributionsFile, AreasFile}
	if assignments {
		names = append(names, AssignmentsFile)
	}
	tables := make([]*table, 0, len(names))
	for _, name := range names {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			for _, t := range tables {
				t.file.Close()
			}
			return nil, fmt.Errorf("creating %s: %w", name, err)
		}
		tables = append(tables, &table{name: name, file: f})
	}
	w.summary, w.distributions, w.areas = tables[0], tables[1], tables[2]
	if assignments {
		w.assignments = tables[3]
	}
	return w, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// WriteSummary appends one summary row.
func (w *Writer) WriteSummary(row SummaryRow) error {
	if w == nil {
		return nil
	}
	return w.summary.write([]SummaryRow{row})
}

// WriteDistribution appends distribution rows.
func (w *Writer) WriteDistribution(rows []DistributionRow) error {
	if w == nil || len(rows) == 0 {
		return nil
	}
	return w.distributions.write(rows)
}

// WriteAreas appends partition rows.
func (w *Writer) WriteAreas(rows []AreaRow) error {
	if w == nil || len(rows) == 0 {
		return nil
	}
	return w.areas.write(rows)
}

// WriteAssignments appends cell rows; a no-op when assignments are disabled.
func (w *Writer) WriteAssignments(rows []AssignmentRow) error {
	if w == nil || w.assignments == nil || len(rows) == 0 {
		return nil
	}
	return w.assignments.write(rows)
}

// Close closes every file and returns the first error.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	var errs []error
	for _, t := range []*table{w.summary, w.distributions, w.areas, w.assignments} {
		if t == nil {
			continue
		}
		if err := t.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", t.name, err))
		}
	}
	return errors.Join(errs...)
}
