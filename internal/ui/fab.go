package ui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// RenderFAB draws the scroll-to-bottom affordance.
func RenderFAB(label string) string {
	if label == "" {
		label = "↓"
	}
	return FABStyle.Render(label)
}

// FABRect is where the affordance sits inside a list of the given size:
// bottom right, one cell in from the edges.
func FABRect(label string, width, height int) uv.Rectangle {
	fab := RenderFAB(label)
	w, h := lipgloss.Width(fab), lipgloss.Height(fab)
	x := max(width-w-1, 0)
	y := max(height-h-1, 0)
	return uv.Rect(x, y, w, h)
}

// InRect reports whether the cell (x, y) falls inside r.
func InRect(x, y int, r uv.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
