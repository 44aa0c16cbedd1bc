package region

import "github.com/gogpu/region/internal/bandalg"

// Region is an integer-coordinate planar region: an ordered, canonical
// sequence of non-overlapping rectangles plus a cached bounding
// rectangle. See the internal/bandalg package doc for the canonical-form
// invariants that make region equality a plain slice comparison.
//
// Region is a plain value: copying it is O(n), there is no shared
// mutable state, and every operation is a pure function returning a new
// Region. The zero value is the empty region.
type Region = bandalg.Region[int32]

// Empty returns the empty region.
func Empty() Region {
	return Region{}
}

// FromRect builds a region from a single rectangle. An empty rectangle
// yields the empty region.
func FromRect(r Rect) Region {
	return bandalg.NewRegion(bandalg.FromRect(r))
}

// FromSortedRects builds a region from a rectangle list already in
// canonical form (the invariants referenced from [Region], including
// coalescing). The input is copied verbatim and the bounding rectangle
// recomputed. Passing a non-canonical list is undefined-but-safe: see
// DESIGN.md's Open Question decision.
func FromSortedRects(rects []Rect) Region {
	return bandalg.NewRegion(bandalg.FromSortedRects(rects))
}

// FromRectsSortedByY builds a region from a rectangle list sorted by
// top only; rectangles sharing a top may be unsorted, and the
// resulting bands may overlap before being merged.
func FromRectsSortedByY(rects []Rect) Region {
	n := len(rects)
	dropped := 0
	for _, rc := range rects {
		if rc.IsEmpty() {
			dropped++
		}
	}
	out := bandalg.FromRectsSortedByY(rects)
	if dropped > 0 {
		Logger().Debug("region: FromRectsSortedByY dropped empty rectangles", "input", n, "dropped", dropped, "output", len(out))
	}
	return bandalg.NewRegion(out)
}

// FromUnsortedRects builds a region from an arbitrary rectangle list:
// any order, overlaps, and duplicates are allowed.
func FromUnsortedRects(rects []Rect) Region {
	n := len(rects)
	dropped := 0
	for _, rc := range rects {
		if rc.IsEmpty() {
			dropped++
		}
	}
	out := bandalg.FromUnsortedRects(rects)
	if dropped > 0 {
		Logger().Debug("region: FromUnsortedRects dropped empty rectangles", "input", n, "dropped", dropped, "output", len(out))
	}
	return bandalg.NewRegion(out)
}

// ContainsPoint reports whether p lies within r.
func ContainsPoint(r Region, p Point) bool {
	return r.ContainsXY(p.X, p.Y)
}

// Infinite returns the infinite region: the rectangle at
// (math.MinInt32/2, math.MinInt32/2) with width and height
// math.MaxInt32, so each axis spans [math.MinInt32/2,
// math.MinInt32/2+math.MaxInt32), roughly [-2^30, 2^30). Translating it
// by a modest offset cannot overflow int32.
func Infinite() Region {
	return bandalg.NewRegion(bandalg.FromRect(infiniteRect()))
}
