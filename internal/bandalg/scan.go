package bandalg

// bandAt returns the maximal band starting at index i (i.e. rects[i:j]
// where j is the first index whose top differs from rects[i]'s), and
// the index of the next band. Callers only invoke this on canonical
// lists, where all rectangles in a band share top and bottom.
func bandAt[T Coord](rects []Rect[T], i int) (band []Rect[T], next int) {
	if i >= len(rects) {
		return nil, i
	}
	top := rects[i].Y1
	j := i + 1
	for j < len(rects) && rects[j].Y1 == top {
		j++
	}
	return rects[i:j], j
}

// sameFootprint reports whether two bands occupy the same horizontal
// extents, rectangle for rectangle.
func sameFootprint[T Coord](a, b []Rect[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].X1 != b[i].X1 || a[i].X2 != b[i].X2 {
			return false
		}
	}
	return true
}

// scanState accumulates the output of a band-scan, coalescing vertically
// adjacent bands with identical footprints as it goes.
type scanState[T Coord] struct {
	out       []Rect[T]
	lastStart int // index into out where the last appended band begins, or -1
	lastTop   T
	lastBot   T
}

func newScanState[T Coord]() scanState[T] {
	return scanState[T]{lastStart: -1}
}

// appendBand appends a band over [top,bottom) with the given column
// footprint, coalescing it into the previously appended band in place
// when they touch and share an identical footprint.
func (s *scanState[T]) appendBand(top, bottom T, footprint []Rect[T]) {
	if len(footprint) == 0 {
		return
	}
	if s.lastStart >= 0 && s.lastBot == top && sameFootprint(s.out[s.lastStart:], footprint) {
		for i := s.lastStart; i < len(s.out); i++ {
			s.out[i].Y2 = bottom
		}
		s.lastBot = bottom
		return
	}
	start := len(s.out)
	for _, r := range footprint {
		s.out = append(s.out, Rect[T]{X1: r.X1, Y1: top, X2: r.X2, Y2: bottom})
	}
	s.lastStart = start
	s.lastTop = top
	s.lastBot = bottom
}

// bandOp merges the L and R contributions to a single [top,bottom) band
// into the operation's output footprint. Either slice may be empty (a
// "solitary side"); see mergeBands/subtractBands/xorBands/intersectBands.
type bandOp[T Coord] func(l, r []Rect[T], top, bottom T) []Rect[T]

// scan walks two canonical rectangle lists as streams of bands and
// applies op to every [top,bottom) interval where at least one side has
// a band, producing a new canonical rectangle list. This is the shared
// driver behind Unite, Subtract, Xor, and Intersect.
func scan[T Coord](l, r []Rect[T], op bandOp[T]) []Rect[T] {
	st := newScanState[T]()
	iL, iR := 0, 0
	var cur T
	started := false

	for iL < len(l) || iR < len(r) {
		hasL := iL < len(l)
		hasR := iR < len(r)

		var bandL, bandR []Rect[T]
		var nextL, nextR int
		var topL, botL, topR, botR T

		if hasL {
			bandL, nextL = bandAt(l, iL)
			topL, botL = bandL[0].Y1, bandL[0].Y2
		}
		if hasR {
			bandR, nextR = bandAt(r, iR)
			topR, botR = bandR[0].Y1, bandR[0].Y2
		}

		var candidate T
		switch {
		case hasL && hasR:
			candidate = min(topL, topR)
		case hasL:
			candidate = topL
		default:
			candidate = topR
		}
		if !started || candidate > cur {
			cur = candidate
		}
		started = true

		lCovers := hasL && topL <= cur && cur < botL
		rCovers := hasR && topR <= cur && cur < botR

		var end T
		haveEnd := false
		note := func(v T) {
			if !haveEnd || v < end {
				end = v
				haveEnd = true
			}
		}
		if hasL {
			if lCovers {
				note(botL)
			} else {
				note(topL)
			}
		}
		if hasR {
			if rCovers {
				note(botR)
			} else {
				note(topR)
			}
		}
		if !haveEnd {
			break
		}

		if lCovers || rCovers {
			var lr, rr []Rect[T]
			if lCovers {
				lr = bandL
			}
			if rCovers {
				rr = bandR
			}
			st.appendBand(cur, end, op(lr, rr, cur, end))
		}

		cur = end
		if hasL && botL == cur {
			iL = nextL
		}
		if hasR && botR == cur {
			iR = nextR
		}
	}

	return st.out
}
