package region

import (
	"encoding/binary"
	"io"
	"math"
)

// Encode writes r to w as a count-prefixed list of fixed-size records:
// a little-endian uint32 rectangle count followed by that many
// (x,y,w,h) int32 quads. The format is this module's own; it makes
// no attempt at cross-process compatibility with any host toolkit's
// region serialization.
func Encode(w io.Writer, r Region) error {
	rects := r.Rects()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(rects))); err != nil {
		return err
	}
	buf := make([]int32, 0, len(rects)*4)
	for _, rect := range rects {
		buf = append(buf, rect.X1, rect.Y1, rect.Width(), rect.Height())
	}
	return binary.Write(w, binary.LittleEndian, buf)
}

// Decode reads a region previously written by [Encode]. It validates
// each rectangle against the half-open ordering constraint and returns
// [ErrInvalidRect] on the first violation, [ErrTruncated] if r ends
// before the declared count is satisfied, and [ErrNegativeCount] if the
// declared count exceeds the fixed bound maxDecodeRects.
func Decode(r io.Reader) (Region, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		if err == io.EOF {
			return Empty(), ErrTruncated
		}
		return Empty(), err
	}
	if count > maxDecodeRects {
		Logger().Warn("region: Decode rejected implausible rectangle count", "count", count)
		return Empty(), ErrNegativeCount
	}
	rects := make([]Rect, count)
	for i := range rects {
		var quad [4]int32
		if err := binary.Read(r, binary.LittleEndian, &quad); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return Empty(), ErrTruncated
			}
			return Empty(), err
		}
		x, y, width, height := quad[0], quad[1], quad[2], quad[3]
		if width <= 0 || height <= 0 {
			Logger().Warn("region: Decode rejected malformed rectangle", "index", i)
			return Empty(), ErrInvalidRect
		}
		rects[i] = Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
	}
	return FromSortedRects(rects), nil
}

// EncodeF is the RegionF counterpart of [Encode]: the same
// count-prefixed framing, with float64 (x,y,w,h) quads in place of
// int32.
func EncodeF(w io.Writer, r RegionF) error {
	rects := r.Rects()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(rects))); err != nil {
		return err
	}
	buf := make([]float64, 0, len(rects)*4)
	for _, rect := range rects {
		buf = append(buf, rect.X1, rect.Y1, rect.Width(), rect.Height())
	}
	return binary.Write(w, binary.LittleEndian, buf)
}

// DecodeF is the RegionF counterpart of [Decode].
func DecodeF(r io.Reader) (RegionF, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		if err == io.EOF {
			return EmptyF(), ErrTruncated
		}
		return EmptyF(), err
	}
	if count > maxDecodeRects {
		Logger().Warn("region: DecodeF rejected implausible rectangle count", "count", count)
		return EmptyF(), ErrNegativeCount
	}
	rects := make([]RectF, count)
	for i := range rects {
		var quad [4]float64
		if err := binary.Read(r, binary.LittleEndian, &quad); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return EmptyF(), ErrTruncated
			}
			return EmptyF(), err
		}
		x, y, width, height := quad[0], quad[1], quad[2], quad[3]
		if !finite(x) || !finite(y) || !finite(width) || !finite(height) || width <= 0 || height <= 0 {
			Logger().Warn("region: DecodeF rejected malformed rectangle", "index", i)
			return EmptyF(), ErrInvalidRect
		}
		rects[i] = RectF{X1: x, Y1: y, X2: x + width, Y2: y + height}
	}
	return FromSortedRectsF(rects), nil
}

// finite reports whether f is neither NaN nor infinite. A NaN field in a
// decoded quad compares false against every float in either direction,
// and a +Inf width or height passes a positive-size check; either would
// slip past the ordinary width/height check undetected.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// maxDecodeRects bounds a decoded rectangle count against a hostile or
// corrupt length prefix, well above any region this module would
// plausibly construct (a screen's worth of damage bands numbers in the
// thousands, not millions).
const maxDecodeRects = 1 << 24
