package region

import "image"

// FromImageRectangles builds a region from a slice of standard library
// rectangles, the nearest real Go ecosystem stand-in for a host GUI
// toolkit's rectangle list. Input order and overlap are unconstrained.
func FromImageRectangles(rects []image.Rectangle) Region {
	converted := make([]Rect, len(rects))
	for i, r := range rects {
		converted[i] = NewRect(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
	}
	return FromUnsortedRects(converted)
}

// ToImageRectangles returns r's canonical rectangle list as standard
// library rectangles, for handing damage/clip bands to code built on
// the image package's conventions.
func ToImageRectangles(r Region) []image.Rectangle {
	rects := r.Rects()
	out := make([]image.Rectangle, len(rects))
	for i, rect := range rects {
		out[i] = image.Rect(int(rect.X1), int(rect.Y1), int(rect.X2), int(rect.Y2))
	}
	return out
}
