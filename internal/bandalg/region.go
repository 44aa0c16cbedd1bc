package bandalg

// Region is a canonical rectangle list plus its cached bounding
// rectangle — the generic engine behind both of the root package's
// coordinate variants. See the package doc for canonical-form
// invariants.
type Region[T Coord] struct {
	rects  []Rect[T]
	bounds Rect[T]
}

// NewRegion wraps an already-canonical rectangle list, computing its
// bounding rectangle. Callers (the root package's constructors) are
// responsible for having produced a canonical list via this package's
// From* functions.
func NewRegion[T Coord](rects []Rect[T]) Region[T] {
	return Region[T]{rects: rects, bounds: BoundingRect(rects)}
}

// Rects returns the canonical rectangle list. Callers must not modify
// the returned slice.
func (rg Region[T]) Rects() []Rect[T] { return rg.rects }

// BoundingRect returns the cached bounding rectangle, or the empty
// rectangle if the region is empty.
func (rg Region[T]) BoundingRect() Rect[T] { return rg.bounds }

// IsEmpty reports whether the region contains no points.
func (rg Region[T]) IsEmpty() bool { return len(rg.rects) == 0 }

// Equal reports whether rg and o describe the same point set. Because
// canonical form is unique, this reduces to element-wise list equality
// rather than a geometric comparison. Region has a slice field and so
// is not comparable with Go's == operator; Equal is the idiomatic
// substitute.
func (rg Region[T]) Equal(o Region[T]) bool {
	return Equal(rg.rects, o.rects)
}

// United returns the union of rg and o.
func (rg Region[T]) United(o Region[T]) Region[T] {
	return NewRegion(Unite(rg.rects, o.rects))
}

// UnitedRect returns the union of rg and the rectangle r.
func (rg Region[T]) UnitedRect(r Rect[T]) Region[T] {
	return NewRegion(Unite(rg.rects, FromRect(r)))
}

// Subtracted returns rg with o's area removed.
func (rg Region[T]) Subtracted(o Region[T]) Region[T] {
	return NewRegion(Subtract(rg.rects, o.rects))
}

// SubtractedRect returns rg with the rectangle r's area removed.
func (rg Region[T]) SubtractedRect(r Rect[T]) Region[T] {
	return NewRegion(Subtract(rg.rects, FromRect(r)))
}

// Xored returns the symmetric difference of rg and o.
func (rg Region[T]) Xored(o Region[T]) Region[T] {
	return NewRegion(Xor(rg.rects, o.rects))
}

// XoredRect returns the symmetric difference of rg and the rectangle r.
func (rg Region[T]) XoredRect(r Rect[T]) Region[T] {
	return NewRegion(Xor(rg.rects, FromRect(r)))
}

// Intersected returns the intersection of rg and o.
func (rg Region[T]) Intersected(o Region[T]) Region[T] {
	return NewRegion(Intersect(rg.rects, o.rects))
}

// IntersectedRect returns the intersection of rg and the rectangle r.
func (rg Region[T]) IntersectedRect(r Rect[T]) Region[T] {
	return NewRegion(Intersect(rg.rects, FromRect(r)))
}

// Translated returns rg shifted by (dx,dy).
func (rg Region[T]) Translated(dx, dy T) Region[T] {
	return NewRegion(Translate(rg.rects, dx, dy))
}

// ContainsXY reports whether (x,y) lies within rg.
func (rg Region[T]) ContainsXY(x, y T) bool {
	return ContainsPoint(rg.rects, x, y)
}

// ContainsRect reports whether r is entirely contained within rg:
// equivalently, r \ rg is empty.
func (rg Region[T]) ContainsRect(r Rect[T]) bool {
	return len(Subtract(FromRect(r), rg.rects)) == 0
}

// IntersectsRect reports whether r overlaps rg.
func (rg Region[T]) IntersectsRect(r Rect[T]) bool {
	return IntersectsRect(rg.rects, r)
}

// Intersects reports whether rg and o overlap.
func (rg Region[T]) Intersects(o Region[T]) bool {
	return IntersectsRegion(rg.rects, o.rects)
}
