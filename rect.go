package region

import "github.com/gogpu/region/internal/bandalg"

// Rect is an axis-aligned, half-open integer rectangle: [X1,X2) x
// [Y1,Y2). It is empty iff X1>=X2 or Y1>=Y2. Rect and [RegionF]'s
// [RectF] are the only "external collaborator" types this package would
// otherwise expect to be supplied by a host graphics toolkit — here
// they are defined directly, since region ships standalone.
type Rect = bandalg.Rect[int32]

// RectF is the real-coordinate counterpart of [Rect].
type RectF = bandalg.Rect[float64]

// NewRect builds an integer rectangle from position and size. A
// non-positive width or height yields the empty rectangle.
func NewRect(x, y, w, h int32) Rect {
	return bandalg.NewRect(x, y, w, h)
}

// NewRectF builds a real rectangle from position and size. A
// non-positive width or height yields the empty rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return bandalg.NewRect(x, y, w, h)
}
