package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestGestureTracker_Release(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		moveX  int
		moveY  int
		held   time.Duration
		want   Gesture
	}{
		{"quick tap", 0, 0, 50 * time.Millisecond, GestureTap},
		{"one cell jitter is still a tap", 1, 0, 50 * time.Millisecond, GestureTap},
		{"long press", 0, 0, LongPressDuration, GestureLongPress},
		{"swipe right", SwipeThreshold, 0, 50 * time.Millisecond, GestureSwipe},
		{"slow swipe is still a swipe", SwipeThreshold + 3, 0, time.Second, GestureSwipe},
		{"short drag is nothing", SwipeThreshold - 1, 0, 50 * time.Millisecond, GestureNone},
		{"drag left is nothing", -SwipeThreshold, 0, 50 * time.Millisecond, GestureNone},
		{"vertical drag is nothing", 0, 2, time.Second, GestureNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g GestureTracker
			g.Press(3, 10, 5, start)
			g.Motion(10+tt.moveX, 5+tt.moveY)
			got, index := g.Release(10+tt.moveX, 5+tt.moveY, start.Add(tt.held))

			if got != tt.want {
				t.Errorf("gesture = %v, want %v", got, tt.want)
			}
			if index != 3 {
				t.Errorf("index = %d, want 3", index)
			}
			if g.Active() {
				t.Error("tracker should be idle after release")
			}
		})
	}
}

func TestGestureTracker_ReleaseWithoutPress(t *testing.T) {
	var g GestureTracker
	if got, index := g.Release(0, 0, time.Now()); got != GestureNone || index != -1 {
		t.Errorf("Release() = %v, %d, want none, -1", got, index)
	}
	if g.Index() != -1 {
		t.Errorf("Index = %d, want -1", g.Index())
	}
}

func TestGestureTracker_LongPressWhileHeld(t *testing.T) {
	start := time.Now()
	var g GestureTracker
	g.Press(0, 0, 0, start)

	if g.HeldLongEnough(start.Add(LongPressDuration / 2)) {
		t.Error("not held long enough yet")
	}
	if !g.HeldLongEnough(start.Add(LongPressDuration)) {
		t.Fatal("should be a long press once the duration passes")
	}
	g.MarkFired()
	if g.HeldLongEnough(start.Add(2 * LongPressDuration)) {
		t.Error("a long press is delivered once")
	}
	if got, _ := g.Release(0, 0, start.Add(2*LongPressDuration)); got != GestureNone {
		t.Errorf("release after delivery = %v, want none", got)
	}
}

func TestGestureTracker_MotionClamps(t *testing.T) {
	var g GestureTracker
	g.Press(0, 10, 0, time.Now())

	if off := g.Motion(5, 0); off != 0 {
		t.Errorf("leftward drag offset = %d, want 0", off)
	}
	if off := g.Motion(100, 0); off != 2*SwipeThreshold {
		t.Errorf("offset = %d, want clamp at %d", off, 2*SwipeThreshold)
	}
	g.Cancel()
	if g.Offset() != 0 || g.Active() {
		t.Error("cancel should reset the tracker")
	}
}

func TestApplySwipe(t *testing.T) {
	view := "aaa\nbbb\nccc"

	if got := ApplySwipe(view, 0); got != view {
		t.Errorf("zero offset should not change the view: %q", got)
	}

	short := ApplySwipe(view, 2)
	if strings.Contains(short, "↩") {
		t.Error("hint should not show before the threshold")
	}
	for _, l := range strings.Split(short, "\n") {
		if !strings.HasPrefix(l, "  ") {
			t.Errorf("line %q should be shifted by 2", l)
		}
	}

	full := strings.Split(ansi.Strip(ApplySwipe(view, SwipeThreshold)), "\n")
	if !strings.HasPrefix(full[1], "↩") {
		t.Errorf("middle line should carry the reply hint: %q", full[1])
	}
	if !strings.HasSuffix(full[1], "bbb") || ansi.StringWidth(full[1]) != SwipeThreshold+3 {
		t.Errorf("hint line should keep its width: %q", full[1])
	}
}
