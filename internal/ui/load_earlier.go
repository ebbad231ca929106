package ui

import "charm.land/lipgloss/v2"

// RenderLoadEarlier draws the header row that asks the host for older messages.
func RenderLoadEarlier(loading bool, width int) string {
	label := "Load earlier messages"
	if loading {
		label = "Loading…"
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, LoadEarlierStyle.Render(label))
}
