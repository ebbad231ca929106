// Package keys provides string constants for Bubble Tea v2 key press events
// and the key bindings of the chat list.
//
// The constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// so they always match runtime values. Single-character keys like "j" or "r"
// are written inline in the bindings.
package keys

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Space      = tea.KeyPressMsg{Code: tea.KeySpace}.String()                      // "space"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlT = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String() // "ctrl+t"
	CtrlH = (tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl}).String() // "ctrl+h"
)

// ListKeyMap binds the chat list's keyboard affordances. A press on a
// selected bubble is "enter", a long press is "m", a swipe is "r".
type ListKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Reply       key.Binding
	Menu        key.Binding
	JumpToReply key.Binding
	LoadEarlier key.Binding
	Dismiss     key.Binding
}

// DefaultListKeyMap returns the standard bindings.
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up: key.NewBinding(
			key.WithKeys(Up, "k"),
			key.WithHelp("↑/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys(Down, "j"),
			key.WithHelp("↓/j", "next"),
		),
		Top: key.NewBinding(
			key.WithKeys(Home, "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(End, "G"),
			key.WithHelp("G", "latest"),
		),
		PageUp: key.NewBinding(
			key.WithKeys(PgUp),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys(PgDown),
			key.WithHelp("pgdn", "page down"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r", Right),
			key.WithHelp("r", "reply"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", Space),
			key.WithHelp("m", "actions"),
		),
		JumpToReply: key.NewBinding(
			key.WithKeys(Enter),
			key.WithHelp("enter", "go to quoted"),
		),
		LoadEarlier: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "load earlier"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(Escape),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reply, k.Menu, k.Bottom}
}

// FullHelp implements help.KeyMap.
func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Reply, k.Menu, k.JumpToReply, k.LoadEarlier, k.Dismiss},
	}
}
