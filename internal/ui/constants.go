package ui

import "time"

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + BorderSize

	// ReplyBannerHeight is the quoted-message banner shown while composing a reply
	ReplyBannerHeight = 2

	// ReplyListRatio is the share of the content area the list keeps while
	// the reply banner is open
	ReplyListRatio = 0.9

	// DefaultWrapWidth is the default width for text wrapping when the list width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight clamp degenerate resize events
	MinTerminalWidth  = 30
	MinTerminalHeight = 10

	// ItemSpacing is the blank lines between list items
	ItemSpacing = 1
)

// Bottom sheet snap points, as a share of the list height.
const (
	SheetSnapLow  = 0.25
	SheetSnapHigh = 0.50
)

// Animation timing
const (
	// FrameInterval drives springs and the typing dots
	FrameInterval = time.Second / 60

	// TypingFrameInterval is how long each typing indicator frame is held
	TypingFrameInterval = 300 * time.Millisecond

	// SwipeThreshold is the horizontal drag, in cells, that triggers a reply
	SwipeThreshold = 6

	// LongPressDuration is how long the mouse must be held to open the menu
	LongPressDuration = 500 * time.Millisecond
)
