package ui

import (
	"charm.land/lipgloss/v2"
)

// typingFrames cycle while the other side is composing
var typingFrames = []string{"●∙∙", "∙●∙", "∙∙●", "∙●∙"}

// TypingIndicator is the animated "someone is typing" row at the end of the list.
type TypingIndicator struct {
	visible bool
	frame   int
}

// SetVisible shows or hides the indicator and reports whether that changed.
func (t *TypingIndicator) SetVisible(v bool) bool {
	if t.visible == v {
		return false
	}
	t.visible = v
	t.frame = 0
	return true
}

// Visible reports whether the indicator is shown.
func (t *TypingIndicator) Visible() bool { return t.visible }

// Advance moves to the next frame.
func (t *TypingIndicator) Advance() {
	t.frame = (t.frame + 1) % len(typingFrames)
}

// View renders the indicator as an "other" bubble, or "" when hidden.
func (t *TypingIndicator) View(width int) string {
	if !t.visible {
		return ""
	}
	bubble := OtherBubbleStyle.Render(TypingStyle.Render(typingFrames[t.frame]))
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble)
}
