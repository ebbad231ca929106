package ui

import (
	"strings"
	"time"
)

// Gesture is what a completed mouse interaction on a bubble amounted to.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureTap
	GestureLongPress
	GestureSwipe
)

// GestureTracker turns mouse press, motion and release events on a list item
// into taps, long presses and reply swipes. A rightward drag of at least
// SwipeThreshold cells is a swipe; holding still for LongPressDuration is a
// long press.
type GestureTracker struct {
	active bool
	fired  bool // long press already delivered while held
	moved  bool
	index  int
	startX int
	startY int
	start  time.Time
	offset int
}

// Press starts tracking a gesture on the item at index.
func (g *GestureTracker) Press(index, x, y int, now time.Time) {
	*g = GestureTracker{active: true, index: index, startX: x, startY: y, start: now}
}

// Motion updates the drag and returns the current swipe offset.
func (g *GestureTracker) Motion(x, y int) int {
	if !g.active {
		return 0
	}
	dx, dy := x-g.startX, y-g.startY
	if abs(dx) > 1 || abs(dy) > 0 {
		g.moved = true
	}
	g.offset = min(max(dx, 0), 2*SwipeThreshold)
	return g.offset
}

// HeldLongEnough reports whether the press has become a long press without
// waiting for release. The caller delivers it once via MarkFired.
func (g *GestureTracker) HeldLongEnough(now time.Time) bool {
	return g.active && !g.fired && !g.moved && now.Sub(g.start) >= LongPressDuration
}

// MarkFired records that the long press was already delivered, so the
// eventual release produces nothing.
func (g *GestureTracker) MarkFired() {
	g.fired = true
}

// Release ends the gesture and classifies it. The returned index is the item
// the gesture started on, or -1 when nothing was being tracked.
func (g *GestureTracker) Release(x, y int, now time.Time) (Gesture, int) {
	if !g.active {
		return GestureNone, -1
	}
	g.Motion(x, y)
	index := g.index
	held := now.Sub(g.start)
	dx := x - g.startX
	fired, moved := g.fired, g.moved
	g.Cancel()

	switch {
	case fired:
		return GestureNone, index
	case dx >= SwipeThreshold:
		return GestureSwipe, index
	case moved:
		return GestureNone, index
	case held >= LongPressDuration:
		return GestureLongPress, index
	default:
		return GestureTap, index
	}
}

// Cancel drops the gesture in progress.
func (g *GestureTracker) Cancel() {
	*g = GestureTracker{index: -1}
}

// Active reports whether a gesture is being tracked.
func (g *GestureTracker) Active() bool { return g.active }

// Index is the item under the gesture, or -1.
func (g *GestureTracker) Index() int {
	if !g.active {
		return -1
	}
	return g.index
}

// Offset is the current swipe offset in cells.
func (g *GestureTracker) Offset() int { return g.offset }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ApplySwipe shifts a bubble right by offset cells. Once the offset passes
// SwipeThreshold the reply hint appears in the gap.
func ApplySwipe(view string, offset int) string {
	if offset <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	pad := strings.Repeat(" ", offset)
	hintLine := len(lines) / 2
	for i, l := range lines {
		if i == hintLine && offset >= SwipeThreshold {
			lines[i] = SwipeHintStyle.Render("↩") + strings.Repeat(" ", offset-1) + l
			continue
		}
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
