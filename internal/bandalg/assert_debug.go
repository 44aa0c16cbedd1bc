//go:build regiondebug

package bandalg

import "fmt"

const debugAssertions = true

// assertCanonical panics if rects violates any canonical-form invariant.
// Only compiled in with the regiondebug build tag; release builds never
// assert (see assert_release.go), so malformed input to FromSortedRects
// is undefined but safe rather than checked.
func assertCanonical[T Coord](rects []Rect[T]) {
	for i, r := range rects {
		if r.IsEmpty() {
			panic(fmt.Sprintf("bandalg: rect %d is empty: %+v", i, r))
		}
	}
	i := 0
	var prevBand []Rect[T]
	var prevBottom T
	for i < len(rects) {
		band, next := bandAt(rects, i)
		top, bottom := band[0].Y1, band[0].Y2
		if i > 0 && top < rects[i-1].Y2 {
			panic(fmt.Sprintf("bandalg: band starting at %d overlaps previous band", i))
		}
		for k, r := range band {
			if r.Y1 != top || r.Y2 != bottom {
				panic(fmt.Sprintf("bandalg: rect %d in band at %d has inconsistent top/bottom", i+k, i))
			}
			if k > 0 && band[k-1].X2 >= r.X1 {
				panic(fmt.Sprintf("bandalg: rects %d and %d touch or overlap horizontally", i+k-1, i+k))
			}
		}
		if prevBand != nil && prevBottom == top && sameFootprint(prevBand, band) {
			panic(fmt.Sprintf("bandalg: bands at %d and %d should have been coalesced", i-len(prevBand), i))
		}
		prevBand, prevBottom = band, bottom
		i = next
	}
}
