package ui

import (
	"github.com/zhubert/chatty/internal/message"
)

// RowRenderer replaces the default bubble. The date header, swipe offset and
// transition are still applied around whatever it returns.
type RowRenderer func(msg message.Message, opts BubbleOptions) string

// ItemOptions carries everything RenderItem needs besides the message.
type ItemOptions struct {
	Bubble     BubbleOptions
	DateHeader bool // draw the day separator above the bubble
	Date       DateHeaderOptions
	Row        RowRenderer // nil draws the default bubble

	// Swipeable is set when a reply handler exists. Only then does
	// SwipeOffset move the bubble and reveal the reply hint.
	Swipeable   bool
	SwipeOffset int

	// Progress is the entrance/exit transition position, 1 when settled.
	Progress float64
}

// RenderItem composes one list item: optional date header, then the bubble
// with its swipe and transition applied.
func RenderItem(msg message.Message, opts ItemOptions) string {
	width := opts.Bubble.Width
	if width <= 0 {
		width = DefaultWrapWidth
		opts.Bubble.Width = width
	}

	var bubble string
	if opts.Row != nil {
		bubble = opts.Row(msg, opts.Bubble)
	} else {
		bubble = RenderBubble(msg, opts.Bubble)
	}

	if opts.Swipeable {
		bubble = ApplySwipe(bubble, opts.SwipeOffset)
	}

	row := clipLines(AlignBubble(bubble, msg.Me, width), width)
	row = ApplyTransition(row, opts.Progress, msg.Me, width)

	if opts.DateHeader {
		return RenderDateHeader(msg.CreatedAt, opts.Date, width) + "\n" + row
	}
	return row
}
