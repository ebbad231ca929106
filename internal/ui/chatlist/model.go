// Package chatlist is the scrolling chat message list. It owns the message
// collection, lays items out with the layout classifier, follows new
// messages to the end, and turns presses, swipes and long presses into
// replies and context menu actions.
//
// The list never returns errors. Requests it cannot honour yet, such as
// scrolling before the first size is known, are skipped and logged.
package chatlist

import (
	"log/slog"
	"slices"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"
	"github.com/google/uuid"
	"github.com/zhubert/chatty/internal/haptic"
	"github.com/zhubert/chatty/internal/keys"
	"github.com/zhubert/chatty/internal/logger"
	"github.com/zhubert/chatty/internal/message"
	"github.com/zhubert/chatty/internal/ui"
)

// DefaultAutoScrollDelay is used when Options.AutoScrollDelay is not set.
const DefaultAutoScrollDelay = 100 * time.Millisecond

// maxAnimatedEntrances caps how many appended items fade in at once; larger
// batches just appear.
const maxAnimatedEntrances = 10

// ghost is a removed message still playing its exit transition. at is the
// collection index it was removed from.
type ghost struct {
	msg message.Message
	at  int
}

// Model is the chat list.
type Model struct {
	id      string
	opts    Options
	keys    keys.ListKeyMap
	trigger haptic.Trigger
	log     *slog.Logger
	now     func() time.Time

	messages []message.Message
	snapshot bool // a collection has been stored before

	viewport   viewport.Model
	width      int
	height     int
	mounted    bool
	focused    bool
	selectedID string

	rows      []row
	lineCount int
	cache     map[string]cachedItem

	typing        ui.TypingIndicator
	typingTicking bool

	menu    *ui.ContextMenu
	gesture ui.GestureTracker

	transitions *ui.Transitions
	ghosts      map[string]ghost
	framing     bool

	spring        harmonica.Spring
	scrollGen     int
	autoScrollGen int // only the newest scheduled auto-scroll runs
	anim          scrollAnim
	fabVisible    bool
	endReachedAt  int // lineCount when end-reached last fired

	loadingEarlier bool
}

// New creates a list. It is not mounted until SetSize is called with a
// non-zero size.
func New(opts Options) *Model {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	km := keys.DefaultListKeyMap()
	if opts.KeyMap != nil {
		km = *opts.KeyMap
	}

	trigger := opts.Trigger
	if trigger == nil {
		trigger = haptic.NewBeep()
	}
	if opts.Platform == "" {
		opts.Platform = haptic.PlatformTerminal
	}
	if opts.AutoScrollDelay <= 0 {
		opts.AutoScrollDelay = DefaultAutoScrollDelay
	}

	id := uuid.New().String()
	m := &Model{
		id:           id,
		opts:         opts,
		keys:         km,
		trigger:      trigger,
		log:          logger.WithList(id),
		now:          time.Now,
		viewport:     vp,
		cache:        make(map[string]cachedItem),
		menu:         ui.NewContextMenu(opts.Actions, opts.NativeContextMenu),
		transitions:  ui.NewTransitions(),
		ghosts:       make(map[string]ghost),
		spring:       harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0),
		endReachedAt: -1,
	}
	m.log.Debug("list created", "menu", m.menu.Mode().String(), "reply", opts.replyEnabled())
	return m
}

// ID identifies this list in every message it sends or accepts.
func (m *Model) ID() string { return m.id }

// Init implements the tea.Model convention.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize sets the list dimensions. The first non-zero size mounts the list.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(height)
	wasMounted := m.mounted
	m.mounted = width > 0 && height > 0
	if m.mounted && !wasMounted {
		m.log.Debug("list mounted", "width", width, "height", height)
	}
	m.InvalidateCache()
}

// Mounted reports whether the list has a size.
func (m *Model) Mounted() bool { return m.mounted }

// Width returns the list width.
func (m *Model) Width() int { return m.width }

// Height returns the list height.
func (m *Model) Height() int { return m.height }

// SetFocused toggles keyboard focus. The selection is only drawn while focused.
func (m *Model) SetFocused(focused bool) {
	if m.focused == focused {
		return
	}
	m.focused = focused
	if focused && m.selectedID == "" && len(m.messages) > 0 {
		m.selectedID = m.messages[len(m.messages)-1].ID
	}
	m.refresh()
}

// Focused reports keyboard focus.
func (m *Model) Focused() bool { return m.focused }

// InvalidateCache drops rendered items, e.g. after a theme change.
func (m *Model) InvalidateCache() {
	clear(m.cache)
	m.refresh()
}

// Messages returns a copy of the collection.
func (m *Model) Messages() []message.Message {
	return slices.Clone(m.messages)
}

// Len returns the collection size.
func (m *Model) Len() int { return len(m.messages) }

// Selected returns the index of the selected message, or -1.
func (m *Model) Selected() int {
	if m.selectedID == "" {
		return -1
	}
	return message.IndexOf(m.messages, m.selectedID)
}

// Select moves the selection to index, clamped to the collection.
func (m *Model) Select(index int) {
	if len(m.messages) == 0 {
		m.selectedID = ""
		return
	}
	index = min(max(index, 0), len(m.messages)-1)
	m.selectedID = m.messages[index].ID
	m.refresh()
}

// IsTyping reports whether the typing indicator is shown.
func (m *Model) IsTyping() bool { return m.typing.Visible() }

// FABVisible reports whether the scroll-to-bottom affordance is shown.
func (m *Model) FABVisible() bool {
	return m.opts.ShowScrollToBottom && m.fabVisible
}

// MenuMode reports how long presses are answered.
func (m *Model) MenuMode() ui.MenuMode { return m.menu.Mode() }

// MenuOpen reports whether the context menu is showing.
func (m *Model) MenuOpen() bool { return m.menu.IsOpen() }

// KeyMap returns the list's key bindings, for help rendering.
func (m *Model) KeyMap() keys.ListKeyMap { return m.keys }

// SetMessages replaces the collection wholesale.
func (m *Model) SetMessages(list []message.Message) tea.Cmd {
	if dup := message.DuplicateID(list); dup != "" {
		m.log.Warn("duplicate message id in collection", "id", dup)
	}
	return m.replace(slices.Clone(list), false)
}

// Append inserts batch at the back of the collection, or at the front when
// atFront is set. Batches never trigger haptics; see AppendOne.
func (m *Model) Append(batch []message.Message, atFront bool) tea.Cmd {
	if len(batch) == 0 {
		return nil
	}
	if !atFront && m.mounted && m.snapshot && len(batch) <= maxAnimatedEntrances {
		for _, msg := range batch {
			m.transitions.Enter(msg.ID)
		}
	}
	if atFront {
		m.loadingEarlier = false
	}
	return m.replace(message.Insert(m.messages, batch, atFront), atFront)
}

// AppendOne inserts a single message. A message from someone else pulses
// the haptic trigger once when haptics are enabled, except on the web.
func (m *Model) AppendOne(msg message.Message, atFront bool) tea.Cmd {
	cmd := m.Append([]message.Message{msg}, atFront)
	if !msg.Me && m.opts.Haptics && m.opts.Platform.SupportsHaptics() {
		m.trigger.Trigger(haptic.Heavy)
	}
	return cmd
}

// RemoveMessage drops the message with id. Unknown ids are ignored.
func (m *Model) RemoveMessage(id string) tea.Cmd {
	idx := message.IndexOf(m.messages, id)
	if idx < 0 {
		return nil
	}
	removed := m.messages[idx]
	next := message.Remove(m.messages, id)

	if m.mounted {
		m.ghosts[id] = ghost{msg: removed, at: idx}
		m.transitions.Exit(id)
	}
	if m.selectedID == id {
		m.selectedID = ""
		if len(next) > 0 {
			m.selectedID = next[min(idx, len(next)-1)].ID
		}
	}
	if m.menu.IsOpen() {
		if _, target := m.menu.Target(); target.ID == id {
			m.menu.Close()
		}
	}
	return m.replace(next, false)
}

// SetTyping shows or hides the typing indicator, when one is configured,
// and scrolls to the end either way.
func (m *Model) SetTyping(typing bool) tea.Cmd {
	var cmds []tea.Cmd
	if m.opts.TypingIndicator {
		if m.typing.SetVisible(typing) {
			m.refresh()
		}
		if typing && !m.typingTicking {
			m.typingTicking = true
			cmds = append(cmds, m.typingTick())
		}
	} else {
		m.log.Debug("typing indicator not configured, skipping")
	}
	cmds = append(cmds, m.ScrollToEnd(true))
	return tea.Batch(cmds...)
}

// replace stores next as the collection. When the head of the collection is
// unchanged (a back-append or a removal past the head) the list follows the
// end after AutoScrollDelay. Other changes keep the item at the top of the
// viewport in place.
func (m *Model) replace(next []message.Message, prepend bool) tea.Cmd {
	prevHead := message.HeadID(m.messages)
	hadSnapshot := m.snapshot
	anchor := m.captureAnchor()

	m.messages = next
	m.snapshot = true
	m.pruneGhosts()
	if m.selectedID != "" && message.IndexOf(next, m.selectedID) < 0 {
		m.selectedID = ""
	}
	m.refresh()

	var cmds []tea.Cmd
	if prepend {
		cmds = append(cmds, m.restoreAnchor(anchor))
	}
	if hadSnapshot && prevHead == message.HeadID(next) {
		cmds = append(cmds, m.scheduleAutoScroll())
	}
	cmds = append(cmds, m.startFrames())
	return tea.Batch(cmds...)
}

// pruneGhosts drops removed messages that should no longer be drawn: those
// whose exit was replaced by an entrance and those whose id is back in the
// collection. A re-added id still fading out gets an entrance instead.
func (m *Model) pruneGhosts() {
	for id := range m.ghosts {
		back := message.IndexOf(m.messages, id) >= 0
		if !back && m.transitions.Exiting(id) {
			continue
		}
		delete(m.ghosts, id)
		if back && m.transitions.Exiting(id) {
			m.transitions.Enter(id)
		}
	}
}

func (m *Model) scheduleAutoScroll() tea.Cmd {
	m.autoScrollGen++
	gen := m.autoScrollGen
	id := m.id
	return tea.Tick(m.opts.AutoScrollDelay, func(time.Time) tea.Msg {
		return autoScrollMsg{listID: id, gen: gen}
	})
}

func (m *Model) typingTick() tea.Cmd {
	id := m.id
	return tea.Tick(ui.TypingFrameInterval, func(time.Time) tea.Msg {
		return typingTickMsg{listID: id}
	})
}

// startFrames begins transition frames if any transition is pending.
func (m *Model) startFrames() tea.Cmd {
	if m.framing || !m.transitions.Active() {
		return nil
	}
	m.framing = true
	return m.transitionFrame()
}

func (m *Model) transitionFrame() tea.Cmd {
	id := m.id
	return tea.Tick(ui.FrameInterval, func(time.Time) tea.Msg {
		return transitionFrameMsg{listID: id}
	})
}

// Update handles messages addressed to this list and user input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReplyBubblePressedMsg:
		if msg.ListID != m.id {
			return m, nil
		}
		return m, m.handleReplyPressed(msg.MessageID)

	case autoScrollMsg:
		if msg.listID != m.id || msg.gen != m.autoScrollGen {
			return m, nil
		}
		return m, m.ScrollToEnd(true)

	case scrollFrameMsg:
		if msg.listID != m.id {
			return m, nil
		}
		return m, m.stepScroll(msg.gen)

	case transitionFrameMsg:
		if msg.listID != m.id {
			return m, nil
		}
		for _, id := range m.transitions.Step() {
			delete(m.ghosts, id)
		}
		m.refresh()
		if m.transitions.Active() {
			return m, m.transitionFrame()
		}
		m.framing = false
		return m, nil

	case typingTickMsg:
		if msg.listID != m.id {
			return m, nil
		}
		if !m.typing.Visible() {
			m.typingTicking = false
			return m, nil
		}
		m.typing.Advance()
		m.refresh()
		return m, m.typingTick()

	case longPressMsg:
		if msg.listID != m.id {
			return m, nil
		}
		if !m.gesture.HeldLongEnough(m.now()) {
			return m, nil
		}
		m.gesture.MarkFired()
		return m, m.openMenu(m.gesture.Index())

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)
	}

	if m.menu.IsOpen() {
		return m, m.updateMenu(msg)
	}
	return m, nil
}

// handleReplyPressed scrolls to the quoted message when it is still in the
// collection.
func (m *Model) handleReplyPressed(id string) tea.Cmd {
	idx := message.IndexOf(m.messages, id)
	if idx < 0 {
		m.log.Debug("replied message not in collection", "id", id)
		return nil
	}
	m.selectedID = id
	m.refresh()
	return m.ScrollToIndex(idx, true)
}

// View renders the visible part of the list with the scroll-to-bottom
// affordance and any open menu composited on top.
func (m *Model) View() string {
	if !m.mounted {
		return ""
	}
	view := m.viewport.View()

	if m.FABVisible() {
		r := ui.FABRect(m.opts.ScrollToBottomLabel, m.width, m.height)
		view = ui.Overlay(view, m.width, m.height, ui.RenderFAB(m.opts.ScrollToBottomLabel), r.Min.X, r.Min.Y)
	}

	if m.menu.IsOpen() {
		layer, x, y := m.menu.Layer(m.width, m.height, m.menuAnchor())
		view = ui.Overlay(view, m.width, m.height, layer, x, y)
	}
	return view
}

// menuAnchor is the viewport row just below the bubble the menu belongs to.
func (m *Model) menuAnchor() int {
	idx, _ := m.menu.Target()
	r, ok := m.rowForIndex(idx)
	if !ok {
		return 0
	}
	return r.start + r.height - m.viewport.YOffset()
}
