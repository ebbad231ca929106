package ui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Overlay composites layer over base at (x, y) using an ultraviolet screen
// buffer of width x height cells. Cells outside the layer keep base content.
func Overlay(base string, width, height int, layer string, x, y int) string {
	if width <= 0 || height <= 0 || layer == "" {
		return base
	}

	scr := uv.NewScreenBuffer(width, height)
	uv.NewStyledString(base).Draw(scr, uv.Rect(0, 0, width, height))

	lw, lh := lipgloss.Width(layer), lipgloss.Height(layer)
	uv.NewStyledString(layer).Draw(scr, uv.Rect(x, y, lw, lh))

	return scr.Render()
}
