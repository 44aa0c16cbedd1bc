package bandalg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRegion(t *testing.T) {
	rects := FromUnsortedRects([]Rect[int32]{r(0, 0, 10, 10), r(20, 20, 30, 30)})
	rg := NewRegion(rects)
	if rg.IsEmpty() {
		t.Fatal("expected non-empty region")
	}
	if diff := cmp.Diff(rects, rg.Rects()); diff != "" {
		t.Fatalf("Rects() mismatch (-want +got):\n%s", diff)
	}
	want := r(0, 0, 30, 30)
	if rg.BoundingRect() != want {
		t.Fatalf("BoundingRect() = %+v, want %+v", rg.BoundingRect(), want)
	}
}

func TestRegionIsEmpty(t *testing.T) {
	if !(Region[int32]{}).IsEmpty() {
		t.Fatal("zero value region should be empty")
	}
}

func TestRegionEqual(t *testing.T) {
	a := NewRegion(FromUnsortedRects([]Rect[int32]{r(0, 0, 10, 10)}))
	b := NewRegion(FromSortedRects(a.Rects()))
	if !a.Equal(b) {
		t.Fatal("expected a and b to be equal")
	}
	c := NewRegion(FromRect(r(5, 5, 15, 15)))
	if a.Equal(c) {
		t.Fatal("did not expect a and c to be equal")
	}
}

func TestRegionSetAlgebraMethods(t *testing.T) {
	a := NewRegion(FromRect(r(0, 0, 20, 20)))
	b := NewRegion(FromRect(r(10, 10, 30, 30)))

	union := a.United(b)
	if diff := cmp.Diff(Unite(a.Rects(), b.Rects()), union.Rects()); diff != "" {
		t.Fatalf("United() mismatch (-want +got):\n%s", diff)
	}

	diffRegion := a.Subtracted(b)
	if diff := cmp.Diff(Subtract(a.Rects(), b.Rects()), diffRegion.Rects()); diff != "" {
		t.Fatalf("Subtracted() mismatch (-want +got):\n%s", diff)
	}

	xorRegion := a.Xored(b)
	if diff := cmp.Diff(Xor(a.Rects(), b.Rects()), xorRegion.Rects()); diff != "" {
		t.Fatalf("Xored() mismatch (-want +got):\n%s", diff)
	}

	inter := a.Intersected(b)
	if diff := cmp.Diff(Intersect(a.Rects(), b.Rects()), inter.Rects()); diff != "" {
		t.Fatalf("Intersected() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegionContainsAndIntersects(t *testing.T) {
	a := NewRegion(FromRect(r(0, 0, 20, 20)))

	if !a.ContainsXY(5, 5) {
		t.Error("expected (5,5) to be contained")
	}
	if a.ContainsXY(25, 25) {
		t.Error("did not expect (25,25) to be contained")
	}
	if !a.ContainsRect(r(5, 5, 15, 15)) {
		t.Error("expected inner rect to be contained")
	}
	if a.ContainsRect(r(15, 15, 25, 25)) {
		t.Error("did not expect partially-outside rect to be contained")
	}
	if !a.IntersectsRect(r(15, 15, 25, 25)) {
		t.Error("expected overlap")
	}
	b := NewRegion(FromRect(r(100, 100, 110, 110)))
	if a.Intersects(b) {
		t.Error("did not expect disjoint regions to intersect")
	}
}

func TestRegionTranslated(t *testing.T) {
	a := NewRegion(FromRect(r(0, 0, 10, 10)))
	got := a.Translated(5, 5)
	want := NewRegion(FromRect(r(5, 5, 15, 15)))
	if !got.Equal(want) {
		t.Fatalf("Translated() = %+v, want %+v", got.Rects(), want.Rects())
	}
}
