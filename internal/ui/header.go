package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// Header represents the top header bar
type Header struct {
	width    int
	peer     string
	messages int
	typing   bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetConversation sets who the conversation is with and how long it is.
func (h *Header) SetConversation(peer string, messages int) {
	h.peer = peer
	h.messages = messages
}

// SetTyping marks the peer as composing.
func (h *Header) SetTyping(typing bool) {
	h.typing = typing
}

// View renders the header
func (h *Header) View() string {
	title := " chatty"
	var right, muted string
	if h.peer != "" {
		right = h.peer
		if h.typing {
			right += " is typing…"
		}
		muted = fmt.Sprintf(" (%s messages) ", humanize.Comma(int64(h.messages)))
	}

	pad := max(h.width-ansi.StringWidth(title)-ansi.StringWidth(right+muted), 0)
	content := title + strings.Repeat(" ", pad) + right + muted
	content = ansi.Truncate(content, h.width, "")

	mutedStart := -1
	if muted != "" {
		mutedStart = len([]rune(content)) - len([]rune(muted))
	}
	return h.renderGradient(content, mutedStart)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content over a background fading from the
// primary color to the main background. Runes from mutedStart on use the
// muted text color.
func (h *Header) renderGradient(content string, mutedStart int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < 7) // " chatty"

		if mutedStart >= 0 && i >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
