// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/geoentropy/config"
	"github.com/katalvlaran/geoentropy/distribution"
	"github.com/katalvlaran/geoentropy/entropy"
	"github.com/katalvlaran/geoentropy/grid"
	"github.com/katalvlaran/geoentropy/partition"
	"github.com/katalvlaran/geoentropy/report"
)

// outcome is the metric-independent view of one run.
type outcome struct {
	result     entropy.Result
	variance   float64
	areas      []partition.Area
	assignment *partition.Assignment[float64]
}

// run builds the grid, computes every metric in order and writes the reports.
// It stops at the first failing metric.
func run(cfg *config.Config, logger *slog.Logger) (err error) {
	g, err := cfg.Grid.Build()
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}
	logger.Debug("grid loaded",
		"rows", g.Rows(),
		"cols", g.Cols(),
		"cell_x", g.CellSize().X,
		"cell_y", g.CellSize().Y,
	)

	w, err := report.NewWriter(cfg.Output.Dir, cfg.Output.Assignments)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()
	if w != nil {
		if err := cfg.WriteYAML(filepath.Join(w.Dir(), "config.yaml")); err != nil {
			return err
		}
	}

	for i, m := range cfg.Metrics {
		id := strconv.Itoa(i + 1)
		out, err := compute(g, m, noticeLogger(logger, id, m.Name))
		if err != nil {
			return fmt.Errorf("metric %s (%s): %w", id, m.Name, err)
		}

		logger.Info("metric computed",
			"run", id,
			"metric", m.Name,
			"value", out.result.Value,
			"range_min", out.result.Range.Minimum,
			"range_max", out.result.Range.Maximum,
			"relative", out.result.Relative,
		)
		if err := write(w, id, m.Name, out); err != nil {
			return err
		}
	}
	return nil
}

// compute dispatches one metric by name.
func compute(g *grid.Grid[float64], m config.MetricConfig, notify distribution.Notifier) (outcome, error) {
	opts := options(m, notify)
	switch m.Name {
	case config.MetricShannon:
		res, err := entropy.Shannon(g, opts...)
		return outcome{result: res.Result, variance: res.Variance}, err
	case config.MetricShannonZ:
		res, err := entropy.ShannonZ(g, opts...)
		return outcome{result: res.Result, variance: res.Variance}, err
	case config.MetricONeill:
		res, err := entropy.ONeill(g, opts...)
		return outcome{result: res}, err
	case config.MetricLeibovici:
		res, err := entropy.Leibovici(g, opts...)
		return outcome{result: res}, err
	case config.MetricBatty:
		res, err := entropy.Batty(g, *m.Category, opts...)
		return outcome{result: res.Result, areas: res.Areas, assignment: res.Assignment}, err
	case config.MetricKarlstrom:
		res, err := entropy.Karlstrom(g, *m.Category, opts...)
		return outcome{result: res.Result, areas: res.Areas, assignment: res.Assignment}, err
	}
	return outcome{}, config.ErrUnknownMetric
}

// options translates a metric entry into entropy options.
func options(m config.MetricConfig, notify distribution.Notifier) []entropy.Option {
	opts := []entropy.Option{
		entropy.WithPartitions(m.Partitions),
		entropy.WithSeed(m.Seed),
		entropy.WithRescale(m.Rescale),
		entropy.WithCriticalDistance(m.CriticalDistance),
		entropy.WithNotifier(notify),
	}
	if len(m.Centers) > 0 {
		pts := make([]r2.Point, len(m.Centers))
		for i, c := range m.Centers {
			pts[i] = r2.Point{X: c[0], Y: c[1]}
		}
		opts = append(opts, entropy.WithCenters(pts...))
	}
	if m.Method == config.MethodDistance {
		opts = append(opts, entropy.WithRadius(m.Radius))
	} else {
		opts = append(opts, entropy.WithNeighbors(m.Neighbors))
	}
	if m.SkipMissing {
		opts = append(opts, entropy.WithSkipMissing())
	}
	return opts
}

// noticeLogger forwards library notices to the logger.
func noticeLogger(logger *slog.Logger, id, metric string) distribution.Notifier {
	return func(n distribution.Notice) {
		logger.Info(n.Message,
			"run", id,
			"metric", metric,
			"notice", n.Op,
			"value", n.Value,
		)
	}
}

func write(w *report.Writer, id, metric string, out outcome) error {
	if err := w.WriteSummary(report.Summary(id, metric, out.result, out.variance)); err != nil {
		return err
	}
	if err := w.WriteDistribution(report.DistributionRows(id, out.result.Distribution)); err != nil {
		return err
	}
	if out.assignment == nil {
		return nil
	}
	if err := w.WriteAreas(report.AreaRows(id, out.areas, out.assignment.Centers)); err != nil {
		return err
	}
	return w.WriteAssignments(report.AssignmentRows(id, out.assignment))
}
