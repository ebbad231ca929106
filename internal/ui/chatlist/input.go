package chatlist

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatty/internal/message"
	"github.com/zhubert/chatty/internal/ui"
)

// handleKey routes key presses to the open menu first, then to the list
// bindings while focused.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.menu.IsOpen() {
		return m.updateMenu(msg)
	}
	if !m.focused {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		return m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		return m.scrollTo(0, false)
	case key.Matches(msg, m.keys.Bottom):
		return m.scrollTo(m.maxOffset(), false)
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-m.height)
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(m.height)
	case key.Matches(msg, m.keys.Reply):
		if sel, ok := m.selected(); ok && m.opts.replyEnabled() {
			return m.reply(sel)
		}
	case key.Matches(msg, m.keys.Menu):
		return m.openMenu(m.Selected())
	case key.Matches(msg, m.keys.JumpToReply):
		if sel, ok := m.selected(); ok && sel.RepliedTo != nil {
			return m.pressReply(sel.RepliedTo.ID)
		}
	case key.Matches(msg, m.keys.LoadEarlier):
		return m.loadEarlier()
	case key.Matches(msg, m.keys.Dismiss):
		if m.gesture.Active() {
			m.gesture.Cancel()
			m.refresh()
		}
	}
	return nil
}

func (m *Model) selected() (message.Message, bool) {
	i := m.Selected()
	if i < 0 {
		return message.Message{}, false
	}
	return m.messages[i], true
}

// moveSelection moves the selection visually up (-1) or down (+1).
func (m *Model) moveSelection(dir int) tea.Cmd {
	if len(m.messages) == 0 {
		return nil
	}
	if m.opts.Inverted {
		dir = -dir
	}
	i := m.Selected()
	if i < 0 {
		i = len(m.messages) - 1
	} else {
		i += dir
	}
	m.Select(i)
	return m.ensureVisible(m.Selected())
}

func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	if !m.mounted {
		return nil
	}
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		if m.menu.IsOpen() {
			return nil
		}
		return m.handleWheel(msg)
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		return m.handleClick(msg.X, msg.Y)
	case tea.MouseMotionMsg:
		if !m.gesture.Active() {
			return nil
		}
		before := m.gesture.Offset()
		if m.gesture.Motion(msg.X, msg.Y) != before && m.opts.replyEnabled() {
			m.refresh()
		}
	case tea.MouseReleaseMsg:
		return m.handleRelease(msg.X, msg.Y)
	}
	return nil
}

// handleClick handles a press at list-local cell (x, y).
func (m *Model) handleClick(x, y int) tea.Cmd {
	if m.menu.IsOpen() {
		return m.clickMenu(x, y)
	}

	if m.FABVisible() && ui.InRect(x, y, ui.FABRect(m.opts.ScrollToBottomLabel, m.width, m.height)) {
		return m.ScrollToEnd(true)
	}

	r, ok := m.rowAt(m.viewport.YOffset() + y)
	if !ok {
		return nil
	}
	switch r.kind {
	case rowLoadEarlier:
		return m.loadEarlier()
	case rowMessage:
		m.gesture.Press(r.index, x, y, m.now())
		id := m.id
		return tea.Tick(ui.LongPressDuration, func(time.Time) tea.Msg {
			return longPressMsg{listID: id}
		})
	}
	return nil
}

// clickMenu picks a native menu item or dismisses the menu when the press
// lands outside it.
func (m *Model) clickMenu(x, y int) tea.Cmd {
	layer, lx, ly := m.menu.Layer(m.width, m.height, m.menuAnchor())
	w, h := lipgloss.Width(layer), lipgloss.Height(layer)
	inside := x >= lx && x < lx+w && y >= ly && y < ly+h
	if !inside {
		m.menu.Close()
		return nil
	}
	if choice := m.menu.ClickItem(y - ly); choice != nil {
		return m.action(choice)
	}
	return nil
}

// handleRelease classifies the finished gesture.
func (m *Model) handleRelease(x, y int) tea.Cmd {
	swiped := m.gesture.Offset() > 0
	g, index := m.gesture.Release(x, y, m.now())
	if swiped {
		m.refresh()
	}
	if index < 0 || index >= len(m.messages) {
		return nil
	}
	msg := m.messages[index]

	switch g {
	case ui.GestureSwipe:
		if m.opts.replyEnabled() {
			return m.reply(msg)
		}
	case ui.GestureLongPress:
		return m.openMenu(index)
	case ui.GestureTap:
		m.Select(index)
		if msg.RepliedTo != nil {
			return m.pressReply(msg.RepliedTo.ID)
		}
	}
	return nil
}

// pressReply sends ReplyBubblePressedMsg for this list.
func (m *Model) pressReply(id string) tea.Cmd {
	pressed := ReplyBubblePressedMsg{ListID: m.id, MessageID: id}
	return func() tea.Msg { return pressed }
}

// openMenu opens the context menu for the message at index.
func (m *Model) openMenu(index int) tea.Cmd {
	if index < 0 || index >= len(m.messages) || m.menu.Mode() == ui.MenuNone {
		return nil
	}
	m.selectedID = m.messages[index].ID
	cmd := m.menu.Open(index, m.messages[index], m.width)
	m.refresh()
	m.log.Debug("context menu opened", "index", index, "mode", m.menu.Mode().String())
	return cmd
}

func (m *Model) updateMenu(msg tea.Msg) tea.Cmd {
	choice, cmd := m.menu.Update(msg)
	if choice == nil {
		return cmd
	}
	return tea.Batch(cmd, m.action(choice))
}

// action delivers a chosen menu action to the callback and as a message.
func (m *Model) action(c *ui.MenuChoice) tea.Cmd {
	m.log.Debug("action pressed", "index", c.Index, "action", c.Label)
	if m.opts.OnAction != nil {
		m.opts.OnAction(c.Index, c.Action, c.Message)
	}
	pressed := ActionPressedMsg{
		ListID:  m.id,
		Index:   c.Index,
		Action:  c.Action,
		Label:   c.Label,
		Message: c.Message,
	}
	return func() tea.Msg { return pressed }
}

// reply hands msg to the reply handler.
func (m *Model) reply(msg message.Message) tea.Cmd {
	if m.opts.OnReply != nil {
		m.opts.OnReply(msg)
	}
	replied := ReplyMsg{ListID: m.id, Message: msg}
	return func() tea.Msg { return replied }
}

// loadEarlier asks the host for older messages. Presses while a load is
// pending are ignored.
func (m *Model) loadEarlier() tea.Cmd {
	if !m.opts.LoadEarlier || m.loadingEarlier {
		return nil
	}
	m.loadingEarlier = true
	m.refresh()
	loading := LoadEarlierMsg{ListID: m.id}
	return func() tea.Msg { return loading }
}

// SetLoadingEarlier updates the load-earlier header. Prepending messages
// also clears it.
func (m *Model) SetLoadingEarlier(loading bool) {
	if m.loadingEarlier == loading {
		return
	}
	m.loadingEarlier = loading
	m.refresh()
}
