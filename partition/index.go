// SPDX-License-Identifier: MIT

package partition

import (
	"cmp"
	"slices"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// site is a partition centre stored in the k-d tree together with its
// position in Centers. kdtree.New reorders its input, so the id travels
// with the point.
type site struct {
	p  r2.Point
	id int
}

var _ kdtree.Comparable = site{}

// Compare returns the signed distance of s from the plane through c along d.
func (s site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(site)
	switch d {
	case 0:
		return s.p.X - q.p.X
	case 1:
		return s.p.Y - q.p.Y
	default:
		panic("partition: illegal dimension")
	}
}

// Dims returns 2.
func (site) Dims() int { return 2 }

// Distance returns the squared Euclidean distance, as kdtree expects.
func (s site) Distance(c kdtree.Comparable) float64 {
	q := c.(site)
	dx, dy := s.p.X-q.p.X, s.p.Y-q.p.Y
	return dx*dx + dy*dy
}

// sites implements kdtree.Interface.
type sites []site

func (s sites) Index(i int) kdtree.Comparable        { return s[i] }
func (s sites) Len() int                              { return len(s) }
func (s sites) Slice(start, end int) kdtree.Interface { return s[start:end] }
func (s sites) Pivot(d kdtree.Dim) int                { return plane{sites: s, dim: d}.pivot() }

// plane sorts sites along one dimension for median selection.
type plane struct {
	sites
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	if p.dim == 0 {
		return p.sites[i].p.X < p.sites[j].p.X
	}
	return p.sites[i].p.Y < p.sites[j].p.Y
}
func (p plane) Swap(i, j int) { p.sites[i], p.sites[j] = p.sites[j], p.sites[i] }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.sites = p.sites[start:end]
	return p
}
func (p plane) pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

// centerIndex is a k-d tree over partition centres.
type centerIndex struct {
	tree *kdtree.Tree
	n    int
}

// newCenterIndex builds the tree. centers must be non-empty.
// Complexity: O(M log M).
func newCenterIndex(centers Centers) *centerIndex {
	s := make(sites, len(centers))
	for i, c := range centers {
		s[i] = site{p: c, id: i}
	}
	return &centerIndex{tree: kdtree.New(s, false), n: len(centers)}
}

// nearest returns the 0-based index of the centre closest to p.
// Complexity: O(log M) expected.
func (ci *centerIndex) nearest(p r2.Point) int {
	c, _ := ci.tree.Nearest(site{p: p, id: -1})
	return c.(site).id
}

// nearestK returns up to k centre indices ordered by ascending distance from p.
func (ci *centerIndex) nearestK(p r2.Point, k int) []int {
	keep := kdtree.NewNKeeper(k)
	ci.tree.NearestSet(keep, site{p: p, id: -1})
	return keptIDs(keep.Heap)
}

// within returns every centre index at Euclidean distance <= r from p.
func (ci *centerIndex) within(p r2.Point, r float64) []int {
	// kdtree distances are squared.
	keep := kdtree.NewDistKeeper(r * r)
	ci.tree.NearestSet(keep, site{p: p, id: -1})
	return keptIDs(keep.Heap)
}

// keptIDs drops the keeper's sentinel entries and sorts by distance, then id.
func keptIDs(h kdtree.Heap) []int {
	items := make([]kdtree.ComparableDist, 0, len(h))
	for _, cd := range h {
		if cd.Comparable == nil {
			continue
		}
		items = append(items, cd)
	}
	slices.SortFunc(items, func(a, b kdtree.ComparableDist) int {
		if c := cmp.Compare(a.Dist, b.Dist); c != 0 {
			return c
		}
		return cmp.Compare(a.Comparable.(site).id, b.Comparable.(site).id)
	})
	ids := make([]int, len(items))
	for i, cd := range items {
		ids[i] = cd.Comparable.(site).id
	}
	return ids
}
