// SPDX-License-Identifier: MIT

// Package geoentropy measures spatial and categorical entropy over rasters.
//
// The metrics answer one question in several ways: how mixed are the
// categories of a map, and does their arrangement in space matter?
//
//	Shannon     non-spatial entropy of category frequencies
//	ShannonZ    entropy of unordered category pairs
//	ONeill      entropy of 4-neighbour category pairs
//	Leibovici   entropy of category pairs within a critical distance
//	Batty       entropy of a category over Voronoi partitions, weighted by area
//	Karlstrom   Batty with each partition compared to its neighbours
//
// Every metric returns a value, its theoretical [min, max] range, the value
// relative to the maximum, and the distribution it was reduced from.
//
// Packages, leaf first:
//
//	grid/          immutable raster with missing cells, cell size and window
//	partition/     random or explicit centres, nearest-centre assignment (k-d tree),
//	               per-partition areas, k-nearest and radius neighbourhoods
//	pairs/         adjacent and within-distance pair enumeration
//	distribution/  frequency tables, entropy, variance, area and neighbourhood entropy
//	entropy/       the six metrics and their functional options
//	config/        YAML job files over embedded defaults
//	report/        CSV export of summaries, distributions, areas and assignments
//	cmd/geoentropy command-line runner for job files (see examples/)
//
// Quick example:
//
//	g, _ := grid.New([][]int{
//		{1, 2, 1, 1},
//		{1, 1, 2, 2},
//		{2, 2, 1, 1},
//		{1, 1, 2, 2},
//	})
//	res, _ := entropy.ONeill(g)
//	fmt.Println(res.Value, res.Relative)
package geoentropy
