// Package region provides a planar rectangular region algebra: a value
// type representing an arbitrary axis-aligned region of the 2D plane as
// a canonical sequence of non-overlapping rectangles, together with the
// set-algebraic operations (union, intersection, difference, symmetric
// difference), point/rectangle containment queries, and axis-aligned
// translate/scale transforms.
//
// # Overview
//
// region underlies damage tracking, clipping, and occlusion reasoning in
// a compositor: regions are unioned as windows invalidate parts of the
// screen, intersected against clip rectangles, and subtracted to find
// the parts of one surface occluded by another. Correctness of the
// canonical form is what makes all of this cheap — two regions describe
// the same point set if and only if their rectangle lists are equal
// element-wise (see [Region] and [RegionF]).
//
//	import "github.com/gogpu/region"
//
//	a := region.FromRect(region.NewRect(0, 0, 100, 100))
//	b := region.FromRect(region.NewRect(50, 50, 100, 100))
//	damage := a.Xored(b) // the parts that changed
//
// # Two coordinate variants
//
// [Region] uses int32 coordinates; [RegionF] uses float64 coordinates.
// Both share a single generic band-scan algorithm (internal/bandalg) —
// see that package's doc comment for the algorithm itself. RegionF
// performs no epsilon comparisons: equality and ordering are exact,
// and callers are expected to round explicitly (see [Rounded],
// [RoundedIn], [RoundedOut]) before comparing the
// output of a scale against another region.
//
// # Concurrency
//
// Region and RegionF are plain values: no internal synchronization, no
// shared mutable state, no I/O, no suspension points. Concurrent reads
// of the same value (or of distinct values) from multiple goroutines are
// safe; concurrent writes to the same variable are the caller's
// responsibility, like any other Go value.
//
// # Non-goals
//
// Anti-aliasing, sub-pixel coverage, non-rectilinear polygons, arbitrary
// affine transforms (only axis-aligned scale/translate), and a real
// Qt/QML toolkit binding are all out of scope. See [FromImageRectangles]
// for the interop seam this package does provide.
package region
