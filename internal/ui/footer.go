package ui

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// FlashType is the severity of a footer flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash stays before ClearIfExpired drops it.
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient status shown in place of the key help.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg asks the host to drop an expired flash.
type FlashTickMsg time.Time

// FlashTick returns a command that fires once a default flash has expired.
func FlashTick() tea.Cmd {
	return tea.Tick(DefaultFlashDuration+100*time.Millisecond, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterMode selects which bindings the footer advertises.
type FooterMode int

const (
	FooterInput FooterMode = iota // composing a message
	FooterList                    // browsing the list
	FooterMenu                    // context menu open
)

// Footer is the bottom bar: a flash message when one is pending, otherwise
// help for the bindings of the focused element.
type Footer struct {
	width        int
	mode         FooterMode
	replying     bool
	list         help.KeyMap
	help         help.Model
	flashMessage *FlashMessage
}

// inputKeys are the host bindings shown while composing.
type inputKeys struct {
	bindings []key.Binding
}

func (k inputKeys) ShortHelp() []key.Binding  { return k.bindings }
func (k inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.bindings} }

var (
	composeKeys = inputKeys{bindings: []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "browse")),
		key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}}
	replyKeys = inputKeys{bindings: []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send reply")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel reply")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "browse")),
	}}
	menuKeys = inputKeys{bindings: []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}}
)

// NewFooter creates a footer advertising list bindings from list.
func NewFooter(list help.KeyMap) *Footer {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(ColorTextMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(ColorBorder)
	return &Footer{list: list, help: h}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.SetWidth(max(width-2, 0))
}

// SetContext updates what the footer advertises.
func (f *Footer) SetContext(mode FooterMode, replying bool) {
	f.mode = mode
	f.replying = replying
}

// SetFlash shows text for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, kind FlashType) {
	f.SetFlashWithDuration(text, kind, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for d.
func (f *Footer) SetFlashWithDuration(text string, kind FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{Text: text, Type: kind, CreatedAt: time.Now(), Duration: d}
}

// ClearFlash drops any flash message.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is pending.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func flashIcon(kind FlashType) (string, lipgloss.Style) {
	switch kind {
	case FlashError:
		return "✕", StatusErrorStyle
	case FlashWarning:
		return "⚠", StatusErrorStyle.Foreground(ColorWarning)
	case FlashSuccess:
		return "✓", StatusInfoStyle.Italic(false)
	default:
		return "ℹ", StatusInfoStyle
	}
}

// View renders the footer
func (f *Footer) View() string {
	style := FooterStyle.Width(f.width).MaxHeight(FooterHeight)

	if f.flashMessage != nil {
		icon, s := flashIcon(f.flashMessage.Type)
		return style.Render(s.Render(icon + " " + f.flashMessage.Text))
	}

	var km help.KeyMap
	switch {
	case f.mode == FooterMenu:
		km = menuKeys
	case f.mode == FooterList && f.list != nil:
		km = f.list
	case f.replying:
		km = replyKeys
	default:
		km = composeKeys
	}
	return style.Render(f.help.View(km))
}
