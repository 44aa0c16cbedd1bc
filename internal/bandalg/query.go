package bandalg

import "sort"

// ContainsPoint reports whether (x,y) is covered by rects, via binary
// search for the containing band and then for the containing rectangle
// within it: O(log n).
func ContainsPoint[T Coord](rects []Rect[T], x, y T) bool {
	n := len(rects)
	idx := sort.Search(n, func(i int) bool { return rects[i].Y2 > y })
	if idx == n || rects[idx].Y1 > y {
		return false
	}
	band, _ := bandAt(rects, idx)
	j := sort.Search(len(band), func(i int) bool { return band[i].X2 > x })
	if j == len(band) || band[j].X1 > x {
		return false
	}
	return true
}

// IntersectsRect reports whether r overlaps any rectangle in rects,
// scanning only the bands whose Y-range overlaps r and early-exiting on
// the first X overlap.
func IntersectsRect[T Coord](rects []Rect[T], r Rect[T]) bool {
	if r.IsEmpty() {
		return false
	}
	n := len(rects)
	idx := sort.Search(n, func(i int) bool { return rects[i].Y2 > r.Y1 })
	for i := idx; i < n && rects[i].Y1 < r.Y2; i++ {
		if rects[i].X1 < r.X2 && rects[i].X2 > r.X1 {
			return true
		}
	}
	return false
}

// IntersectsRegion reports whether a and b overlap, band-walking both
// sides and early-exiting on the first overlap.
func IntersectsRegion[T Coord](a, b []Rect[T]) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		bandA, nextA := bandAt(a, i)
		bandB, nextB := bandAt(b, j)
		topA, botA := bandA[0].Y1, bandA[0].Y2
		topB, botB := bandB[0].Y1, bandB[0].Y2

		switch {
		case botA <= topB:
			i = nextA
		case botB <= topA:
			j = nextB
		default:
			if bandsXOverlap(bandA, bandB) {
				return true
			}
			switch {
			case botA < botB:
				i = nextA
			case botB < botA:
				j = nextB
			default:
				i, j = nextA, nextB
			}
		}
	}
	return false
}

func bandsXOverlap[T Coord](a, b []Rect[T]) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].X1 < b[j].X2 && b[j].X1 < a[i].X2 {
			return true
		}
		if a[i].X2 < b[j].X2 {
			i++
		} else {
			j++
		}
	}
	return false
}

// Equal reports whether a and b are the same canonical rectangle list
// element-wise — sufficient for point-set equality given canonical form.
func Equal[T Coord](a, b []Rect[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
