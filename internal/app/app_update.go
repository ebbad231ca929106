package app

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatty/internal/keys"
	"github.com/zhubert/chatty/internal/message"
	"github.com/zhubert/chatty/internal/ui"
	"github.com/zhubert/chatty/internal/ui/chatlist"
)

// historyPageMsg carries a page fetched for the load-earlier header.
type historyPageMsg struct {
	msgs []message.Message
	err  error
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg, tea.MouseReleaseMsg, tea.MouseMotionMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		return m, nil

	case peerTypingMsg:
		return m, m.peerStartsTyping(msg)

	case peerReplyMsg:
		return m, m.peerReplies(msg)

	case historyPageMsg:
		return m, m.handleHistoryPage(msg)

	case chatlist.ActionPressedMsg:
		if msg.ListID == m.list.ID() {
			return m, m.handleAction(msg)
		}
		return m, nil

	case chatlist.ReplyMsg:
		if msg.ListID == m.list.ID() {
			m.startReply(msg.Message)
		}
		return m, nil

	case chatlist.LoadEarlierMsg:
		if msg.ListID == m.list.ID() {
			return m, m.loadEarlier()
		}
		return m, nil

	case chatlist.EndReachedMsg:
		m.log.Debug("end reached", "distance", msg.Distance)
		return m, nil
	}

	// Internal list ticks and signals addressed to the list.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case keys.CtrlC:
		return tea.Quit
	case keys.CtrlT:
		m.cycleTheme()
		return m.flash(ui.FlashInfo, "Theme: %s", ui.CurrentTheme().Name)
	}

	// The open menu owns the keyboard wherever focus was.
	if m.list.MenuOpen() {
		_, cmd := m.list.Update(msg)
		return cmd
	}

	if key == keys.Tab || key == keys.ShiftTab {
		m.toggleFocus()
		return nil
	}

	if m.focus == FocusList {
		_, cmd := m.list.Update(msg)
		return cmd
	}

	switch key {
	case keys.Enter:
		return m.sendMessage()
	case keys.ShiftEnter:
		m.input.InsertString("\n")
		return nil
	case keys.Escape:
		if m.replyTo != nil {
			m.cancelReply()
		} else if m.footer.HasFlash() {
			m.footer.ClearFlash()
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// sendMessage appends the composed text as the user's own message, saves
// it, and queues the peer's answer.
func (m *Model) sendMessage() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	msg := message.New(m.config.UserName, text, true)
	if m.replyTo != nil {
		msg.RepliedTo = m.replyTo.ReplyTo()
		m.cancelReply()
	}
	m.input.Reset()

	return tea.Batch(m.list.AppendOne(msg, false), m.save(msg), m.queuePeer(msg))
}

func (m *Model) save(msg message.Message) tea.Cmd {
	if m.history == nil {
		return nil
	}
	if err := m.history.Save(context.Background(), msg); err != nil {
		m.log.Error("failed to save message", "id", msg.ID, "error", err)
		return m.flash(ui.FlashError, "History: %v", err)
	}
	return nil
}

func (m *Model) startReply(msg message.Message) {
	m.replyTo = &msg
	ui.GetViewContext().SetReplying(true)
	m.updateSizes()
	m.setFocus(FocusInput)
}

func (m *Model) cancelReply() {
	m.replyTo = nil
	ui.GetViewContext().SetReplying(false)
	m.updateSizes()
}

// handleAction runs the context menu action chosen on a message.
func (m *Model) handleAction(msg chatlist.ActionPressedMsg) tea.Cmd {
	m.log.Debug("action pressed", "label", msg.Label, "index", msg.Index, "id", msg.Message.ID)

	switch msg.Label {
	case "Copy":
		if err := m.copyText(msg.Message.Text); err != nil {
			return m.flash(ui.FlashError, "Copy failed: %v", err)
		}
		return m.flash(ui.FlashSuccess, "Copied to clipboard")

	case "Reply":
		m.startReply(msg.Message)
		return nil

	case "Delete":
		cmd := m.list.RemoveMessage(msg.Message.ID)
		if m.replyTo != nil && m.replyTo.ID == msg.Message.ID {
			m.cancelReply()
		}
		if m.history != nil {
			if err := m.history.Delete(context.Background(), msg.Message.ID); err != nil {
				return tea.Batch(cmd, m.flash(ui.FlashError, "History: %v", err))
			}
		}
		return tea.Batch(cmd, m.flash(ui.FlashInfo, "Message deleted"))
	}

	return m.flash(ui.FlashWarning, "No handler for %q", msg.Label)
}

// loadEarlier fetches the page before the current head.
func (m *Model) loadEarlier() tea.Cmd {
	if m.history == nil {
		m.list.SetLoadingEarlier(false)
		return m.flash(ui.FlashInfo, "No history configured")
	}

	store := m.history
	before := message.HeadID(m.list.Messages())
	return func() tea.Msg {
		msgs, err := store.LoadBefore(context.Background(), before, HistoryPageSize)
		return historyPageMsg{msgs: msgs, err: err}
	}
}

func (m *Model) handleHistoryPage(msg historyPageMsg) tea.Cmd {
	if msg.err != nil {
		m.list.SetLoadingEarlier(false)
		return m.flash(ui.FlashError, "History: %v", msg.err)
	}
	if len(msg.msgs) == 0 {
		m.list.SetLoadingEarlier(false)
		return m.flash(ui.FlashInfo, "No earlier messages")
	}
	return m.list.Append(msg.msgs, true)
}
