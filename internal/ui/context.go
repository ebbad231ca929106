package ui

import (
	"sync"

	"github.com/zhubert/chatty/internal/logger"
)

// ViewContext holds the host layout: how the terminal splits into header,
// chat list, reply banner, input and footer. All size calculations go
// through it.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int // between header and footer
	InputHeight   int
	ListHeight    int
	BannerHeight  int // 0 unless a reply is being composed

	replying bool
	mu       sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			InputHeight:  InputTotalHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when the terminal is
// resized. Degenerate sizes are clamped to the minimum.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.TerminalWidth = max(width, MinTerminalWidth)
	v.TerminalHeight = max(height, MinTerminalHeight)
	v.recalculate()

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", v.TerminalWidth,
		"height", v.TerminalHeight,
		"contentHeight", v.ContentHeight,
		"listHeight", v.ListHeight,
		"bannerHeight", v.BannerHeight,
	)
}

// SetReplying opens or closes the reply banner. While open the list keeps
// ReplyListRatio of the space above the input and the banner gets the rest.
func (v *ViewContext) SetReplying(replying bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.replying = replying
	v.recalculate()
}

// recalculate must be called with mu held.
func (v *ViewContext) recalculate() {
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.InputHeight = InputTotalHeight
	v.ContentHeight = v.TerminalHeight - v.HeaderHeight - v.FooterHeight

	avail := max(v.ContentHeight-v.InputHeight, 1)
	if !v.replying {
		v.ListHeight = avail
		v.BannerHeight = 0
		return
	}

	v.ListHeight = int(float64(avail) * ReplyListRatio)
	v.BannerHeight = avail - v.ListHeight
	if v.BannerHeight < ReplyBannerHeight {
		v.BannerHeight = min(ReplyBannerHeight, avail-1)
		v.ListHeight = avail - v.BannerHeight
	}
}

// Width returns the terminal width.
func (v *ViewContext) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.TerminalWidth
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

