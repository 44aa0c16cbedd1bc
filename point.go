package region

// Point is an integer-coordinate point, used by [ContainsPoint].
type Point struct {
	X, Y int32
}

// Pt is a convenience function to create a Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// PointF is a real-coordinate point, used by [ContainsPointF].
type PointF struct {
	X, Y float64
}

// PtF is a convenience function to create a PointF.
func PtF(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

// Add returns the sum of two points.
func (p PointF) Add(q PointF) PointF {
	return PointF{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p PointF) Sub(q PointF) PointF {
	return PointF{X: p.X - q.X, Y: p.Y - q.Y}
}
