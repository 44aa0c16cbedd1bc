package bandalg

import "testing"

func TestContainsPoint(t *testing.T) {
	rects := FromUnsortedRects([]Rect[int32]{r(0, 0, 10, 10), r(20, 20, 30, 30)})

	cases := []struct {
		x, y int32
		want bool
	}{
		{0, 0, true},
		{9, 9, true},
		{10, 10, false},
		{15, 15, false},
		{25, 25, true},
		{-1, 0, false},
	}
	for _, c := range cases {
		if got := ContainsPoint(rects, c.x, c.y); got != c.want {
			t.Errorf("ContainsPoint(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIntersectsRect(t *testing.T) {
	rects := FromUnsortedRects([]Rect[int32]{r(0, 0, 10, 10), r(20, 20, 30, 30)})

	if !IntersectsRect(rects, r(5, 5, 15, 15)) {
		t.Error("expected overlap with first rect")
	}
	if IntersectsRect(rects, r(10, 10, 20, 20)) {
		t.Error("did not expect overlap (touching only)")
	}
	if IntersectsRect(rects, Rect[int32]{}) {
		t.Error("empty query rect should never intersect")
	}
}

func TestIntersectsRegion(t *testing.T) {
	a := FromRect(r(0, 0, 10, 10))
	b := FromRect(r(5, 5, 15, 15))
	c := FromRect(r(20, 20, 30, 30))

	if !IntersectsRegion(a, b) {
		t.Error("expected a and b to intersect")
	}
	if IntersectsRegion(a, c) {
		t.Error("did not expect a and c to intersect")
	}
	if IntersectsRegion(nil, a) || IntersectsRegion(a, nil) {
		t.Error("empty region should never intersect")
	}
}

func TestEqual(t *testing.T) {
	a := FromUnsortedRects([]Rect[int32]{r(0, 0, 10, 10), r(20, 20, 30, 30)})
	b := FromSortedRects(a)
	if !Equal(a, b) {
		t.Error("expected a and b to be equal")
	}
	c := FromRect(r(0, 0, 10, 10))
	if Equal(a, c) {
		t.Error("did not expect a and c to be equal")
	}
}
