package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/chatty/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateChrome()

	parts := []string{m.header.View(), m.list.View()}
	if m.replyTo != nil {
		parts = append(parts, m.replyBanner())
	}
	parts = append(parts, m.inputView(), m.footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// updateChrome syncs the header and footer with the list state.
func (m *Model) updateChrome() {
	m.header.SetConversation(m.peer, m.list.Len())
	m.header.SetTyping(m.list.IsTyping())

	mode := ui.FooterInput
	switch {
	case m.list.MenuOpen():
		mode = ui.FooterMenu
	case m.focus == FocusList:
		mode = ui.FooterList
	}
	m.footer.SetContext(mode, m.replyTo != nil)
}

func (m *Model) replyBanner() string {
	ctx := ui.GetViewContext()
	width := ctx.TerminalWidth

	author := m.replyTo.Author
	if m.replyTo.Me {
		author = "yourself"
	}
	title := ui.ReplyAuthorStyle.Render("Replying to " + author)
	quote := ansi.Truncate(m.replyTo.Text, max(width-4, 1), "…")

	return ui.ReplyBannerStyle.
		Width(width).
		Height(max(ctx.BannerHeight-1, 1)).
		MaxHeight(ctx.BannerHeight).
		Render(title + "\n" + quote)
}

func (m *Model) inputView() string {
	style := ui.InputStyle
	if m.focus == FocusInput {
		style = ui.InputFocusedStyle
	}
	return style.Width(ui.GetViewContext().TerminalWidth).Render(m.input.View())
}
