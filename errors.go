package region

import "errors"

// Errors returned by [Decode] and [DecodeF].
// Region algebra itself never fails; these are confined
// to the binary codec, which reads caller-supplied data. The
// image.Rectangle interop helpers return no errors.
var (
	// ErrTruncated is returned when a buffer ends before the record
	// count it declares is satisfied.
	ErrTruncated = errors.New("region: truncated buffer")
	// ErrNegativeCount is returned when a decoded rectangle count
	// exceeds the decoder's fixed upper bound on rectangles.
	ErrNegativeCount = errors.New("region: invalid rectangle count")
	// ErrInvalidRect is returned when a decoded rectangle fails the
	// half-open ordering constraint (x1<x2, y1<y2).
	ErrInvalidRect = errors.New("region: invalid rectangle")
)
