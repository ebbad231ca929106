package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatty/internal/ui"
)

// flash shows a formatted footer message and starts its dismiss timer.
func (m *Model) flash(kind ui.FlashType, format string, args ...any) tea.Cmd {
	m.footer.SetFlash(fmt.Sprintf(format, args...), kind)
	return ui.FlashTick()
}
