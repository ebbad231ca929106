package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/zhubert/chatty/internal/layout"
	"github.com/zhubert/chatty/internal/message"
)

// minBubbleWidth keeps very narrow lists readable.
const minBubbleWidth = 12

// BubbleOptions describes how a single bubble is drawn.
type BubbleOptions struct {
	Width      int // width of the whole list row
	Variant    layout.Variant
	Selected   bool
	ShowAuthor bool
}

// MaxBubbleWidth is the widest a bubble of this variant may be in a row of
// the given width, border included.
func MaxBubbleWidth(v layout.Variant, rowWidth int) int {
	w := int(float64(rowWidth) * v.BubbleWidthRatio())
	if w < minBubbleWidth {
		w = min(minBubbleWidth, rowWidth)
	}
	return w
}

// RenderReplyPreview draws the quoted message above a reply.
func RenderReplyPreview(ref *message.ReplyRef, width int) string {
	if ref == nil {
		return ""
	}
	// left bar and its padding take two cells
	inner := max(width-2, 1)

	text := strings.Join(strings.Fields(ref.Text), " ")
	if text == "" {
		text = "…"
	}
	preview := ansi.Truncate(text, inner, "…")
	if ref.Author != "" {
		preview = ReplyAuthorStyle.Render(runewidth.Truncate(ref.Author, inner, "…")) + "\n" + preview
	}
	return ReplyPreviewStyle.Render(preview)
}

// RenderBubble draws msg as a bordered bubble: author, quoted reply, media
// cards, text and the timestamp footer, in that order.
func RenderBubble(msg message.Message, opts BubbleOptions) string {
	rowWidth := opts.Width
	if rowWidth <= 0 {
		rowWidth = DefaultWrapWidth
	}
	// border and horizontal padding take four cells
	inner := max(MaxBubbleWidth(opts.Variant, rowWidth)-4, 1)

	var parts []string
	if opts.ShowAuthor && !msg.Me && msg.Author != "" {
		parts = append(parts, AuthorStyle.Render(runewidth.Truncate(msg.Author, inner, "…")))
	}
	if msg.RepliedTo != nil {
		parts = append(parts, RenderReplyPreview(msg.RepliedTo, inner))
	}
	if msg.HasMedia() {
		parts = append(parts, RenderMediaList(msg.Media, inner))
	}
	if msg.Text != "" {
		parts = append(parts, RenderMarkdown(msg.Text, inner))
	}

	if ts := RenderTimestamp(msg.CreatedAt); ts != "" {
		w := max(lipgloss.Width(lipgloss.JoinVertical(lipgloss.Left, parts...)), lipgloss.Width(ts))
		parts = append(parts, lipgloss.PlaceHorizontal(w, lipgloss.Right, ts))
	}

	style := OtherBubbleStyle
	if msg.Me {
		style = SelfBubbleStyle
	}
	if opts.Selected {
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(ColorBorderFocus)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// AlignBubble places a bubble on its side of the row: right for the local
// user, left for everyone else.
func AlignBubble(bubble string, me bool, width int) string {
	pos := lipgloss.Left
	if me {
		pos = lipgloss.Right
	}
	return lipgloss.PlaceHorizontal(width, pos, bubble)
}

// clipLines truncates every line of s to width cells.
func clipLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if lipgloss.Width(l) > width {
			lines[i] = ansi.Truncate(l, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
