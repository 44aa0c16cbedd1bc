package region

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromImageRectangles(t *testing.T) {
	got := FromImageRectangles([]image.Rectangle{
		image.Rect(0, 0, 10, 10),
		image.Rect(20, 20, 30, 30),
	})
	want := FromUnsortedRects([]Rect{NewRect(0, 0, 10, 10), NewRect(20, 20, 10, 10)})
	if diff := cmp.Diff(want.Rects(), got.Rects()); diff != "" {
		t.Fatalf("FromImageRectangles() mismatch (-want +got):\n%s", diff)
	}
}

func TestToImageRectangles(t *testing.T) {
	r := FromUnsortedRects([]Rect{NewRect(0, 0, 10, 10), NewRect(20, 20, 10, 10)})
	got := ToImageRectangles(r)
	want := []image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(20, 20, 30, 30)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToImageRectangles() mismatch (-want +got):\n%s", diff)
	}
}

func TestImageRectangleRoundTrip(t *testing.T) {
	in := []image.Rectangle{image.Rect(5, 5, 15, 15), image.Rect(50, 50, 60, 60)}
	r := FromImageRectangles(in)
	out := ToImageRectangles(r)
	want := []image.Rectangle{image.Rect(5, 5, 15, 15), image.Rect(50, 50, 60, 60)}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
