package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Populated from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorSelected    color.Color
	ColorWarning     color.Color
	ColorError       color.Color
)

// Header, footer and status line
var (
	HeaderStyle      lipgloss.Style
	FooterStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	StatusInfoStyle  lipgloss.Style
)

// Bubble styles
var (
	SelfBubbleStyle     lipgloss.Style
	OtherBubbleStyle    lipgloss.Style
	SelectedMarkerStyle lipgloss.Style
	AuthorStyle         lipgloss.Style
	TimestampStyle      lipgloss.Style
	DateHeaderStyle     lipgloss.Style
	ReplyPreviewStyle   lipgloss.Style
	ReplyAuthorStyle    lipgloss.Style
	MediaCardStyle      lipgloss.Style
)

// Affordance styles
var (
	TypingStyle      lipgloss.Style
	FABStyle         lipgloss.Style
	LoadEarlierStyle lipgloss.Style
	SwipeHintStyle   lipgloss.Style
	ReplyBannerStyle lipgloss.Style
)

// Context menu and bottom sheet
var (
	MenuStyle         lipgloss.Style
	MenuItemStyle     lipgloss.Style
	MenuSelectedStyle lipgloss.Style
	SheetStyle        lipgloss.Style
	SheetHandleStyle  lipgloss.Style
)

// Input box
var (
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
)

// Markdown styles. Foregrounds are left unset where possible so text keeps
// the bubble's color.
var (
	MarkdownHeadingStyle    lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownBlockquoteStyle lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)
