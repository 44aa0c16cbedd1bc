package region

import "github.com/gogpu/region/internal/bandalg"

// RegionF is the real-coordinate counterpart of [Region]. It performs
// no epsilon comparisons: equality and ordering are exact, and callers
// are expected to round explicitly ([Rounded], [RoundedIn],
// [RoundedOut]) before comparing the
// output of a scale against another region.
type RegionF = bandalg.Region[float64]

// EmptyF returns the empty real-coordinate region.
func EmptyF() RegionF {
	return RegionF{}
}

// FromRectF builds a real region from a single rectangle.
func FromRectF(r RectF) RegionF {
	return bandalg.NewRegion(bandalg.FromRect(r))
}

// FromSortedRectsF is the RegionF counterpart of [FromSortedRects].
func FromSortedRectsF(rects []RectF) RegionF {
	return bandalg.NewRegion(bandalg.FromSortedRects(rects))
}

// FromRectsSortedByYF is the RegionF counterpart of [FromRectsSortedByY].
func FromRectsSortedByYF(rects []RectF) RegionF {
	return bandalg.NewRegion(bandalg.FromRectsSortedByY(rects))
}

// FromUnsortedRectsF is the RegionF counterpart of [FromUnsortedRects].
func FromUnsortedRectsF(rects []RectF) RegionF {
	return bandalg.NewRegion(bandalg.FromUnsortedRects(rects))
}

// ContainsPointF reports whether p lies within r.
func ContainsPointF(r RegionF, p PointF) bool {
	return r.ContainsXY(p.X, p.Y)
}

// InfiniteF returns the infinite real region. See [infiniteRectF] for
// the choice of bound.
func InfiniteF() RegionF {
	return bandalg.NewRegion(bandalg.FromRect(infiniteRectF()))
}

// Scaled lifts r to real coordinates, multiplying every rectangle by
// (sx,sy) and rebuilding canonical form. A negative
// scale factor is allowed: it flips the affected rectangles, and
// canonical order is restored during the rebuild.
func Scaled(r Region, sx, sy float64) RegionF {
	return bandalg.NewRegion(bandalg.ScaleRects(r.Rects(), sx, sy))
}

// Scale returns rf scaled by (sx,sy) as a new RegionF, leaving rf
// unchanged: the real-coordinate variant's transform stays within
// RegionF, unlike the integer variant's Scaled which must lift into
// RegionF.
func Scale(rf RegionF, sx, sy float64) RegionF {
	return bandalg.NewRegion(bandalg.ScaleRects(rf.Rects(), sx, sy))
}

// ScaledAndRoundedOut scales r by (sx,sy) and rounds every resulting
// rectangle outward (floor left/top, ceil right/bottom) before
// rebuilding canonical form, producing an integer region that never
// loses area to rounding.
func ScaledAndRoundedOut(r Region, sx, sy float64) Region {
	scaled := bandalg.ScaleRects(r.Rects(), sx, sy)
	return bandalg.NewRegion(bandalg.RoundRects(scaled, bandalg.RoundOut))
}

// Rounded converts rf to integer coordinates, rounding every edge to
// the nearest integer, dropping rectangles that become empty, and
// rebuilding canonical form.
func Rounded(rf RegionF) Region {
	return bandalg.NewRegion(bandalg.RoundRects(rf.Rects(), bandalg.RoundNearest))
}

// RoundedIn converts rf to integer coordinates, rounding inward (left/
// top up, right/bottom down), so the result is never larger than rf.
func RoundedIn(rf RegionF) Region {
	return bandalg.NewRegion(bandalg.RoundRects(rf.Rects(), bandalg.RoundIn))
}

// RoundedOut converts rf to integer coordinates, rounding outward
// (left/top down, right/bottom up), so the result is never smaller
// than rf.
func RoundedOut(rf RegionF) Region {
	return bandalg.NewRegion(bandalg.RoundRects(rf.Rects(), bandalg.RoundOut))
}
