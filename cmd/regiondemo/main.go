// Command regiondemo exercises the region algebra against a synthetic
// multi-window damage scenario: a handful of overlapping window
// rectangles invalidate parts of the screen, and the demo unions their
// damage, clips it to the visible screen, and reports what is left
// after each window's own area occludes the ones behind it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/region"
)

func main() {
	var (
		screenW = flag.Int("width", 1920, "screen width")
		screenH = flag.Int("height", 1080, "screen height")
		verbose = flag.Bool("v", false, "log lifecycle events at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	region.SetLogger(logger)
	slog.SetDefault(logger)

	screen := region.FromRect(region.NewRect(0, 0, int32(*screenW), int32(*screenH)))

	windows := []region.Rect{
		region.NewRect(100, 100, 400, 300),
		region.NewRect(350, 200, 400, 300),
		region.NewRect(1200, 600, 500, 400),
	}

	slog.Info("regiondemo: starting", "windows", len(windows), "screen_w", *screenW, "screen_h", *screenH)

	damage := region.Empty()
	occluded := region.Empty()
	for i, w := range windows {
		wr := region.FromRect(w)
		visible := wr.Subtracted(occluded)
		damage = damage.United(visible)
		occluded = occluded.United(wr)
		slog.Debug("regiondemo: window placed", "index", i, "visible_bands", len(visible.Rects()))
	}

	damage = damage.IntersectedRect(screen.BoundingRect())

	fmt.Printf("screen damage: %d band(s)\n", len(damage.Rects()))
	for _, r := range damage.Rects() {
		fmt.Printf("  (%d,%d)-(%d,%d)\n", r.X1, r.Y1, r.X2, r.Y2)
	}

	occludedOnScreen := occluded.IntersectedRect(screen.BoundingRect())
	fmt.Printf("total window coverage: %d band(s), bounding box %v\n",
		len(occludedOnScreen.Rects()), occludedOnScreen.BoundingRect())
}
