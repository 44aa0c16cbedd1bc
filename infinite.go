package region

import "math"

// infiniteRect is the largest rectangle Infinite regions are built
// from. Halving the minimum leaves headroom so that translating or
// intersecting an infinite region by a modest offset cannot overflow
// int32.
func infiniteRect() Rect {
	return NewRect(math.MinInt32/2, math.MinInt32/2, math.MaxInt32, math.MaxInt32)
}

// infiniteRectF is the RegionF analogue of infiniteRect. It uses
// -math.MaxFloat64/2 as the low corner, matching the int32 variant's
// "halve the true extreme to leave translation headroom" shape while
// actually covering the plane: the minimum positive normal float64
// would leave an interval only a few ULPs wide around zero, nowhere
// near an effectively-infinite region.
func infiniteRectF() RectF {
	const half = math.MaxFloat64 / 2
	return NewRectF(-half, -half, math.MaxFloat64, math.MaxFloat64)
}
