package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatty/internal/ui"
)

// handleMouse translates terminal coordinates into list coordinates.
// Clicks and wheel events only reach the list inside its rows; motion and
// release always do, so a drag that leaves the list still finishes.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	ctx := ui.GetViewContext()
	top := ctx.HeaderHeight
	bottom := top + ctx.ListHeight

	var forward tea.Msg
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Y < top || msg.Y >= bottom {
			if msg.Y >= bottom+ctx.BannerHeight && msg.Y < bottom+ctx.BannerHeight+ctx.InputHeight {
				m.setFocus(FocusInput)
			}
			return nil
		}
		m.setFocus(FocusList)
		msg.Y -= top
		forward = msg
	case tea.MouseWheelMsg:
		if msg.Y < top || msg.Y >= bottom {
			return nil
		}
		msg.Y -= top
		forward = msg
	case tea.MouseMotionMsg:
		msg.Y -= top
		forward = msg
	case tea.MouseReleaseMsg:
		msg.Y -= top
		forward = msg
	default:
		return nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(forward)
	return cmd
}
