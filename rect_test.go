package region

import "testing"

func TestNewRectRoot(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	if r.X1 != 1 || r.Y1 != 2 || r.X2 != 11 || r.Y2 != 22 {
		t.Fatalf("unexpected rect: %+v", r)
	}
	if got := NewRect(0, 0, 0, 10); !got.IsEmpty() {
		t.Fatalf("NewRect with zero width should be empty, got %+v", got)
	}
}

func TestNewRectFRoot(t *testing.T) {
	r := NewRectF(1.5, 2.5, 10, 20)
	if r.X1 != 1.5 || r.Y1 != 2.5 || r.X2 != 11.5 || r.Y2 != 22.5 {
		t.Fatalf("unexpected rect: %+v", r)
	}
}
