package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatty/internal/keys"
	"github.com/zhubert/chatty/internal/message"
)

// MenuMode is how a long press on a bubble is answered. It is decided once
// when the menu is built.
type MenuMode int

const (
	// MenuNone passes presses through: no actions are configured.
	MenuNone MenuMode = iota
	// MenuNative draws an inline popup next to the pressed bubble.
	MenuNative
	// MenuSheet slides a bottom sheet with a select over the list.
	MenuSheet
)

func (m MenuMode) String() string {
	switch m {
	case MenuNone:
		return "none"
	case MenuNative:
		return "native"
	case MenuSheet:
		return "sheet"
	default:
		return "unknown"
	}
}

// DecideMenuMode picks the menu mode from the configured actions and the
// native menu capability flag.
func DecideMenuMode(actions []string, native bool) MenuMode {
	switch {
	case len(actions) == 0:
		return MenuNone
	case native:
		return MenuNative
	default:
		return MenuSheet
	}
}

// MenuChoice is an action picked from the menu for the message at Index.
type MenuChoice struct {
	Index   int
	Action  int
	Label   string
	Message message.Message
}

// ContextMenu is the long-press menu of the chat list.
type ContextMenu struct {
	mode    MenuMode
	actions []string

	open   bool
	index  int
	target message.Message

	cursor int // native popup selection

	form   *huh.Form // bottom sheet
	choice int
	snap   float64
}

// NewContextMenu builds a menu over actions.
func NewContextMenu(actions []string, native bool) *ContextMenu {
	return &ContextMenu{
		mode:    DecideMenuMode(actions, native),
		actions: append([]string(nil), actions...),
		index:   -1,
	}
}

// Mode reports the menu mode.
func (c *ContextMenu) Mode() MenuMode { return c.mode }

// IsOpen reports whether the menu is showing.
func (c *ContextMenu) IsOpen() bool { return c.open }

// Target returns the index and message the menu was opened for.
func (c *ContextMenu) Target() (int, message.Message) { return c.index, c.target }

// Open shows the menu for the message at index. With MenuNone it does nothing.
func (c *ContextMenu) Open(index int, msg message.Message, width int) tea.Cmd {
	switch c.mode {
	case MenuNative:
		c.open, c.index, c.target, c.cursor = true, index, msg, 0
		return nil
	case MenuSheet:
		c.open, c.index, c.target = true, index, msg
		c.snap = SheetSnapHigh
		c.choice = 0

		options := make([]huh.Option[int], len(c.actions))
		for i, a := range c.actions {
			options[i] = huh.NewOption(a, i)
		}
		c.form = huh.NewForm(huh.NewGroup(
			huh.NewSelect[int]().
				Title("Message actions").
				Options(options...).
				Value(&c.choice),
		)).WithTheme(SheetTheme()).
			WithShowHelp(false).
			WithWidth(max(width-4, 10))
		return c.form.Init()
	}
	return nil
}

// Close hides the menu without choosing.
func (c *ContextMenu) Close() {
	c.open = false
	c.index = -1
	c.form = nil
}

// ToggleSnap moves the sheet between its two snap points.
func (c *ContextMenu) ToggleSnap() {
	if c.snap == SheetSnapHigh {
		c.snap = SheetSnapLow
	} else {
		c.snap = SheetSnapHigh
	}
}

func (c *ContextMenu) choose(action int) *MenuChoice {
	if action < 0 || action >= len(c.actions) {
		return nil
	}
	choice := &MenuChoice{Index: c.index, Action: action, Label: c.actions[action], Message: c.target}
	c.Close()
	return choice
}

// Update handles input while the menu is open. A non-nil choice means an
// action was picked and the menu has closed.
func (c *ContextMenu) Update(msg tea.Msg) (*MenuChoice, tea.Cmd) {
	if !c.open {
		return nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Escape:
			c.Close()
			return nil, nil
		case keys.Enter:
			if c.mode == MenuNative {
				return c.choose(c.cursor), nil
			}
			return c.choose(c.choice), nil
		}

		if c.mode == MenuNative {
			switch keyMsg.String() {
			case keys.Up, "k":
				c.cursor = max(c.cursor-1, 0)
			case keys.Down, "j":
				c.cursor = min(c.cursor+1, len(c.actions)-1)
			}
			return nil, nil
		}
		if keyMsg.String() == keys.Tab {
			c.ToggleSnap()
			return nil, nil
		}
	}

	if c.mode == MenuSheet && c.form != nil {
		var cmd tea.Cmd
		c.form, cmd = huhFormUpdate(c.form, msg)
		return nil, cmd
	}
	return nil, nil
}

// ClickItem picks the native menu entry at row, counted from the top of the
// popup including its border. Clicks on the border pick nothing.
func (c *ContextMenu) ClickItem(row int) *MenuChoice {
	if !c.open || c.mode != MenuNative {
		return nil
	}
	return c.choose(row - 1)
}

// nativeView renders the popup.
func (c *ContextMenu) nativeView() string {
	items := make([]string, len(c.actions))
	for i, a := range c.actions {
		if i == c.cursor {
			items[i] = MenuSelectedStyle.Render(" " + a + " ")
		} else {
			items[i] = MenuItemStyle.Render(" " + a + " ")
		}
	}
	return MenuStyle.Render(strings.Join(items, "\n"))
}

// sheetView renders the bottom sheet filling width and its snap height.
func (c *ContextMenu) sheetView(width, height int) string {
	inner := max(width-4, 1)
	total := max(int(float64(height)*c.snap), 3)

	lines := []string{lipgloss.PlaceHorizontal(inner, lipgloss.Center, SheetHandleStyle.Render("───"))}
	if c.form != nil {
		lines = append(lines, strings.Split(c.form.View(), "\n")...)
	}
	// the top border takes one line
	body := total - 1
	for len(lines) < body {
		lines = append(lines, "")
	}
	lines = lines[:body]
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(inner, lipgloss.Left, clipLines(l, inner))
	}
	return SheetStyle.Render(strings.Join(lines, "\n"))
}

// Layer returns the rendered menu and where to draw it over a list of
// width x height cells. anchorY is the row of the pressed bubble.
func (c *ContextMenu) Layer(width, height, anchorY int) (string, int, int) {
	if !c.open {
		return "", 0, 0
	}
	if c.mode == MenuSheet {
		view := c.sheetView(width, height)
		return view, 0, max(height-lipgloss.Height(view), 0)
	}

	view := c.nativeView()
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	x := max((width-w)/2, 0)
	y := min(max(anchorY, 0), max(height-h, 0))
	return view, x, y
}
