package ui

import (
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/zhubert/chatty/internal/layout"
)

// DateHeaderOptions controls the day separator drawn above Dated items.
type DateHeaderOptions struct {
	Format   string // Go layout for days before yesterday
	Relative bool   // "3 days ago" instead of Format
	Now      func() time.Time
}

func (o DateHeaderOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// UndatedLabel heads messages without a timestamp. The classifier places
// them on the zero date, so they get their own day rather than today's.
const UndatedLabel = "Undated"

// DateLabel names the day t falls on.
func DateLabel(t time.Time, opts DateHeaderOptions) string {
	if t.IsZero() {
		return UndatedLabel
	}
	now := opts.now()
	switch {
	case layout.SameDay(t, now):
		return "Today"
	case layout.SameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	case opts.Relative:
		return humanize.RelTime(t, now, "ago", "from now")
	}
	format := opts.Format
	if format == "" {
		format = "Mon, Jan 2 2006"
	}
	return t.Local().Format(format)
}

// RenderDateHeader draws the centered day separator across width.
func RenderDateHeader(t time.Time, opts DateHeaderOptions, width int) string {
	label := " " + DateLabel(t, opts) + " "
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, DateHeaderStyle.Render(label),
		lipgloss.WithWhitespaceChars("─"),
		lipgloss.WithWhitespaceStyle(lipgloss.NewStyle().Foreground(ColorBorder)))
}

// RenderTimestamp formats the clock time shown in a bubble's footer.
func RenderTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return TimestampStyle.Render(t.Local().Format("15:04"))
}
