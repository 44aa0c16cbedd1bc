package bandalg

import "golang.org/x/exp/constraints"

// Coord is the set of coordinate types the band algorithm can be
// instantiated over: any integer or floating-point type.
type Coord interface {
	constraints.Integer | constraints.Float
}

// Rect is an axis-aligned, half-open rectangle: [X1,X2) x [Y1,Y2).
// It is empty iff X1>=X2 or Y1>=Y2.
type Rect[T Coord] struct {
	X1, Y1, X2, Y2 T
}

// NewRect builds a rectangle from position and size. A non-positive
// width or height yields the zero-value empty rectangle.
func NewRect[T Coord](x, y, w, h T) Rect[T] {
	if w <= 0 || h <= 0 {
		return Rect[T]{}
	}
	return Rect[T]{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Left returns the left edge.
func (r Rect[T]) Left() T { return r.X1 }

// Top returns the top edge.
func (r Rect[T]) Top() T { return r.Y1 }

// Right returns the right edge.
func (r Rect[T]) Right() T { return r.X2 }

// Bottom returns the bottom edge.
func (r Rect[T]) Bottom() T { return r.Y2 }

// X returns the left edge (x,y,w,h style accessor).
func (r Rect[T]) X() T { return r.X1 }

// Y returns the top edge (x,y,w,h style accessor).
func (r Rect[T]) Y() T { return r.Y1 }

// Width returns the width of the rectangle.
func (r Rect[T]) Width() T { return r.X2 - r.X1 }

// Height returns the height of the rectangle.
func (r Rect[T]) Height() T { return r.Y2 - r.Y1 }

// IsEmpty reports whether the rectangle has no area.
func (r Rect[T]) IsEmpty() bool { return r.X1 >= r.X2 || r.Y1 >= r.Y2 }

// Translated returns a copy of r shifted by (dx,dy).
func (r Rect[T]) Translated(dx, dy T) Rect[T] {
	return Rect[T]{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// ContainsPoint reports whether (x,y) lies within r.
func (r Rect[T]) ContainsPoint(x, y T) bool {
	return x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2
}

// Intersects reports whether r and o overlap.
func (r Rect[T]) Intersects(o Rect[T]) bool {
	return r.X1 < o.X2 && o.X1 < r.X2 && r.Y1 < o.Y2 && o.Y1 < r.Y2
}

// Intersect returns the overlapping portion of r and o, or the empty
// rectangle if they don't overlap.
func (r Rect[T]) Intersect(o Rect[T]) Rect[T] {
	x1, y1 := max(r.X1, o.X1), max(r.Y1, o.Y1)
	x2, y2 := min(r.X2, o.X2), min(r.Y2, o.Y2)
	if x1 >= x2 || y1 >= y2 {
		return Rect[T]{}
	}
	return Rect[T]{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Union returns the smallest rectangle containing both r and o. Unlike
// [Rect.Intersect], this is the bounding box, not a set operation: it
// may contain points belonging to neither r nor o.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rect[T]{
		X1: min(r.X1, o.X1), Y1: min(r.Y1, o.Y1),
		X2: max(r.X2, o.X2), Y2: max(r.Y2, o.Y2),
	}
}
