package bandalg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslate(t *testing.T) {
	in := []Rect[int32]{r(0, 0, 10, 10), r(20, 20, 30, 30)}
	got := Translate(in, 5, -5)
	want := []Rect[int32]{r(5, -5, 15, 5), r(25, 15, 35, 25)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Translate() mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslateEmpty(t *testing.T) {
	if got := Translate[int32](nil, 1, 1); got != nil {
		t.Fatalf("Translate(nil) = %v, want nil", got)
	}
}

func TestTranslatePreservesCanonicalForm(t *testing.T) {
	in := FromUnsortedRects([]Rect[int32]{r(0, 0, 10, 10), r(20, 20, 30, 30)})
	got := Translate(in, 100, 100)
	want := FromUnsortedRects([]Rect[int32]{r(100, 100, 110, 110), r(120, 120, 130, 130)})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Translate() mismatch (-want +got):\n%s", diff)
	}
}
