// Package app is the demo host for the chat list: a full-screen
// conversation with an input box, a scripted peer, and a SQLite history.
package app

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatty/internal/clipboard"
	"github.com/zhubert/chatty/internal/config"
	"github.com/zhubert/chatty/internal/haptic"
	"github.com/zhubert/chatty/internal/history"
	"github.com/zhubert/chatty/internal/logger"
	"github.com/zhubert/chatty/internal/message"
	"github.com/zhubert/chatty/internal/notification"
	"github.com/zhubert/chatty/internal/transcript"
	"github.com/zhubert/chatty/internal/ui"
	"github.com/zhubert/chatty/internal/ui/chatlist"
)

// Focus represents which element has focus
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

func (f Focus) String() string {
	if f == FocusList {
		return "list"
	}
	return "input"
}

const (
	// DefaultPeer is who the scripted replies come from without a transcript.
	DefaultPeer = "echo"

	// DefaultPeerDelay is how long the peer "types" before answering.
	DefaultPeerDelay = 1200 * time.Millisecond

	// HistoryPageSize is how many messages one load-earlier press fetches.
	HistoryPageSize = 20

	// typingDelay is the pause between sending and the peer starting to type.
	typingDelay = 400 * time.Millisecond
)

// Options carry what the command line resolved for the host.
type Options struct {
	Version    string
	Transcript *transcript.Transcript // seeds the list; nil = history only
	History    *history.Store         // nil disables persistence
	PeerDelay  time.Duration          // <= 0 uses DefaultPeerDelay

	// Clipboard and Trigger replace the system clipboard and the terminal
	// beep. Tests set both.
	Clipboard func(string) error
	Trigger   haptic.Trigger

	// Notify announces peer replies. When nil, desktop notifications are
	// sent if the config enables them.
	Notify func(author, text string) error
}

// Model is the demo host's Bubble Tea model.
type Model struct {
	config  *config.Config
	version string
	log     *slog.Logger

	width  int
	height int

	header *ui.Header
	footer *ui.Footer
	list   *chatlist.Model
	input  textarea.Model
	focus  Focus

	replyTo *message.Message

	peer      string
	script    []string
	scriptPos int
	peerDelay time.Duration
	peerGen   int

	history  *history.Store
	copyText func(string) error
	notify   func(author, text string) error
}

// New creates the host with the list filled from the transcript, or from
// history when there is no transcript.
func New(cfg *config.Config, opts Options) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}
	ui.GetViewContext().SetReplying(false)

	listOpts := chatlist.OptionsFromConfig(cfg)
	listOpts.Trigger = opts.Trigger
	list := chatlist.New(listOpts)

	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 0
	ti.SetHeight(ui.TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.Focus()

	m := &Model{
		config:    cfg,
		version:   opts.Version,
		log:       logger.WithComponent("app"),
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(list.KeyMap()),
		list:      list,
		input:     ti,
		focus:     FocusInput,
		peer:      DefaultPeer,
		script:    defaultScript,
		peerDelay: opts.PeerDelay,
		history:   opts.History,
		copyText:  opts.Clipboard,
		notify:    opts.Notify,
	}
	if m.peerDelay <= 0 {
		m.peerDelay = DefaultPeerDelay
	}
	if m.copyText == nil {
		m.copyText = clipboard.WriteText
	}
	if m.notify == nil && cfg.Notifications {
		m.notify = notification.PeerReplied
	}

	m.list.SetMessages(m.initialMessages(opts.Transcript))
	return m
}

// initialMessages seeds history with the transcript, or reads the newest
// page of history when there is no transcript.
func (m *Model) initialMessages(t *transcript.Transcript) []message.Message {
	ctx := context.Background()

	if t != nil {
		if t.Peer != "" {
			m.peer = t.Peer
		}
		if len(t.Replies) > 0 {
			m.script = t.Replies
		}
		seed := t.Collection()
		if m.history != nil {
			if err := m.history.SaveAll(ctx, seed); err != nil {
				m.log.Error("failed to seed history", "error", err)
			}
		}
		return seed
	}

	if m.history == nil {
		return nil
	}
	msgs, err := m.history.Load(ctx, HistoryPageSize)
	if err != nil {
		m.log.Error("failed to load history", "error", err)
		return nil
	}
	m.log.Info("loaded history", "count", len(msgs), "path", m.history.Path())
	return msgs
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// List exposes the chat list.
func (m *Model) List() *chatlist.Model { return m.list }

// Focus returns the focused element.
func (m *Model) Focus() Focus { return m.focus }

// Replying reports whether a reply is being composed.
func (m *Model) Replying() bool { return m.replyTo != nil }

func (m *Model) setFocus(f Focus) {
	if m.focus == f {
		return
	}
	m.log.Debug("focus change", "from", m.focus, "to", f)
	m.focus = f
	m.list.SetFocused(f == FocusList)
	if f == FocusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) toggleFocus() {
	if m.focus == FocusInput {
		m.setFocus(FocusList)
	} else {
		m.setFocus(FocusInput)
	}
}

func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.list.SetSize(ctx.TerminalWidth, ctx.ListHeight)
	m.input.SetWidth(ctx.InnerWidth(ctx.TerminalWidth) - 2)
}

func (m *Model) cycleTheme() {
	names := ui.ThemeNames()
	current := ui.CurrentThemeName()
	next := names[0]
	for i, n := range names {
		if n == current {
			next = names[(i+1)%len(names)]
			break
		}
	}

	ui.SetTheme(next)
	m.config.SetTheme(string(next))
	m.list.InvalidateCache()

	if m.config.Path() != "" {
		if err := m.config.Save(); err != nil {
			m.log.Warn("failed to save theme", "error", err)
		}
	}
}
