package bandalg

// mergeBands implements the union of two horizontally-sorted, disjoint,
// non-touching rectangle slices within a single [top,bottom) band. It
// also serves as the solitary-side rule for union (copy the non-empty
// side) since merging against an empty slice is a no-op pass-through,
// and as the final merge step of xorBands.
func mergeBands[T Coord](l, r []Rect[T], top, bottom T) []Rect[T] {
	combined := make([]Rect[T], 0, len(l)+len(r))
	i, j := 0, 0
	for i < len(l) && j < len(r) {
		if l[i].X1 <= r[j].X1 {
			combined = append(combined, l[i])
			i++
		} else {
			combined = append(combined, r[j])
			j++
		}
	}
	combined = append(combined, l[i:]...)
	combined = append(combined, r[j:]...)
	if len(combined) == 0 {
		return nil
	}

	out := make([]Rect[T], 0, len(combined))
	a, b := combined[0].X1, combined[0].X2
	for _, rc := range combined[1:] {
		if rc.X1 <= b { // touching or overlapping: collapse (invariant #2)
			if rc.X2 > b {
				b = rc.X2
			}
		} else {
			out = append(out, Rect[T]{X1: a, Y1: top, X2: b, Y2: bottom})
			a, b = rc.X1, rc.X2
		}
	}
	out = append(out, Rect[T]{X1: a, Y1: top, X2: b, Y2: bottom})
	return out
}

// subtractBands implements L \ R within a single band: for every
// rectangle in l, emit the parts not covered by any rectangle in r.
// With r empty this copies l (the "L only" solitary rule); with l empty
// it naturally emits nothing (the "R only" solitary rule).
func subtractBands[T Coord](l, r []Rect[T], top, bottom T) []Rect[T] {
	if len(l) == 0 {
		return nil
	}
	var out []Rect[T]
	j := 0
	for _, lr := range l {
		for j < len(r) && r[j].X2 <= lr.X1 {
			j++
		}
		cursor := lr.X1
		k := j
		for k < len(r) && r[k].X1 < lr.X2 {
			if r[k].X1 > cursor {
				out = append(out, Rect[T]{X1: cursor, Y1: top, X2: r[k].X1, Y2: bottom})
			}
			if r[k].X2 > cursor {
				cursor = r[k].X2
			}
			k++
		}
		if cursor < lr.X2 {
			out = append(out, Rect[T]{X1: cursor, Y1: top, X2: lr.X2, Y2: bottom})
		}
		// Keep j pointing at the last r rectangle if it still extends
		// past this l rectangle — it may still overlap the next one.
		if k > j && r[k-1].X2 > lr.X2 {
			j = k - 1
		} else {
			j = k
		}
	}
	return out
}

// xorBands implements the symmetric difference within a single band as
// (L \ R) ∪ (R \ L).
// The two subtraction results are disjoint by construction, so merging
// them also takes care of rectangles that abut exactly at the boundary
// between an L-only run and an R-only run.
func xorBands[T Coord](l, r []Rect[T], top, bottom T) []Rect[T] {
	lOnly := subtractBands(l, r, top, bottom)
	rOnly := subtractBands(r, l, top, bottom)
	return mergeBands(lOnly, rOnly, top, bottom)
}

// intersectBands implements the intersection within a single band via a
// standard two-pointer interval sweep.
func intersectBands[T Coord](l, r []Rect[T], top, bottom T) []Rect[T] {
	var out []Rect[T]
	i, j := 0, 0
	for i < len(l) && j < len(r) {
		a := max(l[i].X1, r[j].X1)
		b := min(l[i].X2, r[j].X2)
		if a < b {
			out = append(out, Rect[T]{X1: a, Y1: top, X2: b, Y2: bottom})
		}
		if l[i].X2 < r[j].X2 {
			i++
		} else if r[j].X2 < l[i].X2 {
			j++
		} else {
			i++
			j++
		}
	}
	return out
}

// Unite returns the canonical union of two canonical rectangle lists.
func Unite[T Coord](l, r []Rect[T]) []Rect[T] { return scan(l, r, mergeBands[T]) }

// Subtract returns the canonical result of l \ r.
func Subtract[T Coord](l, r []Rect[T]) []Rect[T] { return scan(l, r, subtractBands[T]) }

// Xor returns the canonical symmetric difference of l and r.
func Xor[T Coord](l, r []Rect[T]) []Rect[T] { return scan(l, r, xorBands[T]) }

// Intersect returns the canonical intersection of l and r.
func Intersect[T Coord](l, r []Rect[T]) []Rect[T] { return scan(l, r, intersectBands[T]) }
