package bandalg

import "sort"

// BoundingRect returns the union bounding rectangle of rects, or the
// empty rectangle if rects is empty.
func BoundingRect[T Coord](rects []Rect[T]) Rect[T] {
	if len(rects) == 0 {
		return Rect[T]{}
	}
	b := rects[0]
	for _, r := range rects[1:] {
		b = b.Union(r)
	}
	return b
}

// FromRect builds a single-rectangle region, or the empty region if r
// is empty.
func FromRect[T Coord](r Rect[T]) []Rect[T] {
	if r.IsEmpty() {
		return nil
	}
	return []Rect[T]{r}
}

// FromSortedRects accepts input already in canonical form: copies it
// verbatim. Malformed input is undefined-but-safe in
// release builds; the regiondebug build tag enables a full invariant
// check.
func FromSortedRects[T Coord](rects []Rect[T]) []Rect[T] {
	if debugAssertions {
		assertCanonical(rects)
	}
	if len(rects) == 0 {
		return nil
	}
	out := make([]Rect[T], len(rects))
	copy(out, rects)
	return out
}

// organizeBand turns an unordered bucket of rectangles that all share a
// top coordinate (but not necessarily a bottom coordinate) into a
// canonical sub-region. When every rectangle in the bucket also shares
// a bottom, they are merged directly by sorting on left and collapsing
// touching or overlapping runs; if any bottom differs, the whole bucket
// is folded together through the general band-scan driver, which
// always produces a correct result regardless of how the bucket's
// vertical extents relate to each other.
func organizeBand[T Coord](bucket []Rect[T]) []Rect[T] {
	if len(bucket) == 0 {
		return nil
	}
	sorted := make([]Rect[T], len(bucket))
	copy(sorted, bucket)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X1 < sorted[j].X1 })

	bottom := sorted[0].Y2
	uniform := true
	for _, r := range sorted[1:] {
		if r.Y2 != bottom {
			uniform = false
			break
		}
	}
	if uniform {
		top := sorted[0].Y1
		return mergeBands[T](sorted, nil, top, bottom)
	}

	acc := []Rect[T](nil)
	for _, r := range sorted {
		acc = Unite(acc, FromRect(r))
	}
	return acc
}

// FromRectsSortedByY accepts input sorted by top only: rectangles
// sharing a top may be unsorted and the resulting bands may overlap.
// Each top-group is organized into a sub-region via organizeBand, then
// the sub-regions are folded together with the ordinary union driver,
// which also performs the final vertical coalescing.
func FromRectsSortedByY[T Coord](rects []Rect[T]) []Rect[T] {
	filtered := filterEmpty(rects)
	if len(filtered) == 0 {
		return nil
	}

	acc := []Rect[T](nil)
	i := 0
	for i < len(filtered) {
		top := filtered[i].Y1
		j := i + 1
		for j < len(filtered) && filtered[j].Y1 == top {
			j++
		}
		acc = Unite(acc, organizeBand(filtered[i:j]))
		i = j
	}
	return acc
}

// FromUnsortedRects accepts an arbitrary list of rectangles — any order,
// overlaps, and duplicates allowed — and builds the canonical union via
// a balanced divide-and-conquer fold: O(n log n ·
// avg-band-width) rather than the quadratic behavior of a naive
// left-fold.
func FromUnsortedRects[T Coord](rects []Rect[T]) []Rect[T] {
	filtered := filterEmpty(rects)
	return unionFold(filtered)
}

func unionFold[T Coord](rects []Rect[T]) []Rect[T] {
	switch len(rects) {
	case 0:
		return nil
	case 1:
		return FromRect(rects[0])
	}
	mid := len(rects) / 2
	left := unionFold(rects[:mid])
	right := unionFold(rects[mid:])
	return Unite(left, right)
}

func filterEmpty[T Coord](rects []Rect[T]) []Rect[T] {
	out := make([]Rect[T], 0, len(rects))
	for _, r := range rects {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	return out
}
