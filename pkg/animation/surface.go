package animation

import (
	"github.com/willbeason/growing-tree/pkg/schedule"
	"github.com/willbeason/growing-tree/pkg/stroke"
	"image/color"
	"time"
)

// A Surface accumulates stroked line segments. Drawing never erases what was
// drawn before; only Clear does.
type Surface interface {
	SetStrokeColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(c stroke.Cap)

	DrawSegment(x1, y1, x2, y2 float64)

	// Clear erases the rectangle from the origin to (width, height).
	Clear(width, height float64)
}

// A Scheduler runs callbacks later. Callbacks must never overlap.
type Scheduler interface {
	StartPeriodic(interval time.Duration, fn func()) schedule.Handle
	CancelPeriodic(h schedule.Handle)
	Delay(d time.Duration, fn func())
}

var _ Scheduler = (*schedule.Clock)(nil)
