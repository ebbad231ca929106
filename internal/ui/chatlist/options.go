package chatlist

import (
	"time"

	"github.com/zhubert/chatty/internal/config"
	"github.com/zhubert/chatty/internal/haptic"
	"github.com/zhubert/chatty/internal/keys"
	"github.com/zhubert/chatty/internal/message"
	"github.com/zhubert/chatty/internal/ui"
)

// Options configure a list. The zero value is a plain read-only list with no
// reply, menu, affordance or haptics.
type Options struct {
	// Haptics pulses once when a single message from someone else is
	// appended. Ignored on the web platform.
	Haptics  bool
	Platform haptic.Platform
	Trigger  haptic.Trigger // nil uses the terminal beep

	// ReplyEnabled turns on swipe-to-reply even without OnReply; the
	// reply is then only delivered as a ReplyMsg.
	ReplyEnabled bool
	OnReply      func(message.Message)

	OnScroll     func(ScrollEvent)
	OnEndReached func()
	OnAction     func(index, action int, msg message.Message)

	// RowRenderer replaces the default bubble.
	RowRenderer ui.RowRenderer

	Actions           []string
	NativeContextMenu bool

	ShowScrollToBottom  bool
	ScrollToBottomLabel string

	DateHeader ui.DateHeaderOptions
	ShowAuthor bool

	// Inverted draws the collection bottom-up: index 0 sits at the bottom
	// and the end of the collection at the top.
	Inverted bool

	// EndReachedThreshold is in viewport heights from the end.
	EndReachedThreshold float64

	TypingIndicator bool
	LoadEarlier     bool

	// AutoScrollDelay is the wait before following a back-append.
	AutoScrollDelay time.Duration

	KeyMap *keys.ListKeyMap
}

// replyEnabled reports whether a reply handler is present.
func (o Options) replyEnabled() bool {
	return o.ReplyEnabled || o.OnReply != nil
}

// OptionsFromConfig maps the user configuration onto list options.
// Callbacks are left for the host to fill in.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Haptics:             cfg.Haptics,
		Platform:            haptic.Platform(cfg.Platform),
		ReplyEnabled:        cfg.ReplyEnabled,
		Actions:             cfg.GetActions(),
		NativeContextMenu:   cfg.NativeContextMenu,
		ShowScrollToBottom:  cfg.ShowScrollToBottom,
		ScrollToBottomLabel: cfg.ScrollToBottomLabel,
		DateHeader: ui.DateHeaderOptions{
			Format:   cfg.DateHeader.Format,
			Relative: cfg.DateHeader.Relative,
		},
		ShowAuthor:          true,
		Inverted:            cfg.Inverted,
		EndReachedThreshold: cfg.EndReachedThreshold,
		TypingIndicator:     cfg.TypingIndicator,
		LoadEarlier:         cfg.LoadEarlier,
		AutoScrollDelay:     cfg.AutoScrollDelay(),
	}
}
