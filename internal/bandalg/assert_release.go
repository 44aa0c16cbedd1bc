//go:build !regiondebug

package bandalg

const debugAssertions = false

// assertCanonical is a no-op in release builds: canonical-form invariant
// checking is a debug-only aid, never a release-mode assertion.
func assertCanonical[T Coord](rects []Rect[T]) {}
