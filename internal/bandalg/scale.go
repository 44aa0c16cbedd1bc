package bandalg

import "math"

// ScaleRects multiplies every rectangle's coordinates by (sx,sy) and
// rebuilds canonical form from the result. A negative scale flips a
// rectangle's corners, which can reorder rectangles within and across
// bands; routing the scaled list back through [FromUnsortedRects]
// handles that uniformly instead of special-casing sign.
func ScaleRects[T Coord](rects []Rect[T], sx, sy float64) []Rect[float64] {
	if len(rects) == 0 {
		return nil
	}
	scaled := make([]Rect[float64], len(rects))
	for i, r := range rects {
		x1, x2 := float64(r.X1)*sx, float64(r.X2)*sx
		y1, y2 := float64(r.Y1)*sy, float64(r.Y2)*sy
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		scaled[i] = Rect[float64]{X1: x1, Y1: y1, X2: x2, Y2: y2}
	}
	return FromUnsortedRects(scaled)
}

// RoundMode selects how a real rectangle's edges round to integers.
type RoundMode int

const (
	// RoundNearest rounds every edge to the nearest integer.
	RoundNearest RoundMode = iota
	// RoundIn rounds inward: left/top up, right/bottom down. The
	// result never exceeds the original rectangle's area.
	RoundIn
	// RoundOut rounds outward: left/top down, right/bottom up. The
	// result never falls short of the original rectangle's area.
	RoundOut
)

// RoundRects converts a real rectangle list to integer coordinates
// using mode, drops rectangles that become empty, and rebuilds
// canonical form.
func RoundRects(rects []Rect[float64], mode RoundMode) []Rect[int32] {
	if len(rects) == 0 {
		return nil
	}
	rounded := make([]Rect[int32], 0, len(rects))
	for _, r := range rects {
		var x1, y1, x2, y2 int32
		switch mode {
		case RoundIn:
			x1, y1 = int32(math.Ceil(r.X1)), int32(math.Ceil(r.Y1))
			x2, y2 = int32(math.Floor(r.X2)), int32(math.Floor(r.Y2))
		case RoundOut:
			x1, y1 = int32(math.Floor(r.X1)), int32(math.Floor(r.Y1))
			x2, y2 = int32(math.Ceil(r.X2)), int32(math.Ceil(r.Y2))
		default:
			x1, y1 = int32(math.Round(r.X1)), int32(math.Round(r.Y1))
			x2, y2 = int32(math.Round(r.X2)), int32(math.Round(r.Y2))
		}
		if x1 >= x2 || y1 >= y2 {
			continue
		}
		rounded = append(rounded, Rect[int32]{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
	return FromUnsortedRects(rounded)
}
