// Package bandalg implements the band-decomposition algorithm shared by
// the two coordinate variants of github.com/gogpu/region's Region type.
//
// The algorithm is written once, generically, parameterized over the
// coordinate type via [Coord]. The root package instantiates it twice
// (int32 for Region, float64 for RegionF) and exposes the results as
// concrete, non-generic types through type aliases — "two
// monomorphizations sharing an internal template".
//
// # Canonical form
//
// A rectangle list is canonical when:
//
//  1. It partitions into maximal bands: consecutive runs of rectangles
//     sharing the same top and bottom, listed top to bottom.
//  2. Within a band, rectangles are sorted by left, strictly ascending,
//     pairwise disjoint, and non-touching.
//  3. No two vertically adjacent bands have identical column footprints
//     (such bands must be merged into one taller band).
//  4. No rectangle is empty.
//
// Two regions describe the same point set if and only if their
// rectangle lists are equal element-wise — this is what makes region
// equality a cheap slice comparison instead of a geometric test.
package bandalg
