// Package ui provides theme management for the chat list.
// Themes define the palette used by bubbles, headers and menus, and switching
// theme regenerates every exported style.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the chat list.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (focus, selection, menu highlight)
	Primary string
	// Secondary is used for timestamps, links and the typing indicator
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Bubble colors
	SelfBubble  string // Border of the local user's bubbles
	SelfText    string // Text inside the local user's bubbles
	OtherBubble string // Border of everyone else's bubbles
	OtherText   string // Text inside everyone else's bubbles
	ReplyAccent string // Bar beside quoted replies

	// Semantic colors
	Warning string
	Error   string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Markdown colors
	MarkdownCode   string // Inline code
	MarkdownCodeBg string // Code background
	MarkdownLink   string // Links
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:           "Dark Purple",
		Primary:        "#7C3AED",
		Secondary:      "#06B6D4",
		Bg:             "#1F2937",
		Text:           "#F9FAFB",
		TextMuted:      "#9CA3AF",
		TextInverse:    "#1F2937",
		SelfBubble:     "#5B21B6",
		SelfText:       "#F5F3FF",
		OtherBubble:    "#6B7280",
		OtherText:      "#F9FAFB",
		ReplyAccent:    "#A78BFA",
		Warning:        "#F59E0B",
		Error:          "#EF4444",
		Border:         "#374151",
		MarkdownCode:   "#67E8F9",
		MarkdownCodeBg: "#1E1E2E",
		MarkdownLink:   "#67E8F9",
	},
	ThemeNord: {
		Name:           "Nord",
		Primary:        "#88C0D0",
		Secondary:      "#81A1C1",
		Bg:             "#2E3440",
		Text:           "#ECEFF4",
		TextMuted:      "#D8DEE9",
		TextInverse:    "#2E3440",
		SelfBubble:     "#5E81AC",
		SelfText:       "#ECEFF4",
		OtherBubble:    "#3B4252",
		OtherText:      "#ECEFF4",
		ReplyAccent:    "#A3BE8C",
		Warning:        "#EBCB8B",
		Error:          "#BF616A",
		Border:         "#4C566A",
		MarkdownCode:   "#A3BE8C",
		MarkdownCodeBg: "#242933",
		MarkdownLink:   "#88C0D0",
	},
	ThemeDracula: {
		Name:           "Dracula",
		Primary:        "#BD93F9",
		Secondary:      "#8BE9FD",
		Bg:             "#282A36",
		Text:           "#F8F8F2",
		TextMuted:      "#6272A4",
		TextInverse:    "#282A36",
		SelfBubble:     "#6D4AA8",
		SelfText:       "#F8F8F2",
		OtherBubble:    "#44475A",
		OtherText:      "#F8F8F2",
		ReplyAccent:    "#FF79C6",
		Warning:        "#FFB86C",
		Error:          "#FF5555",
		Border:         "#44475A",
		MarkdownCode:   "#50FA7B",
		MarkdownCodeBg: "#21222C",
		MarkdownLink:   "#8BE9FD",
	},
	ThemeGruvbox: {
		Name:           "Gruvbox Dark",
		Primary:        "#FE8019",
		Secondary:      "#83A598",
		Bg:             "#282828",
		Text:           "#EBDBB2",
		TextMuted:      "#A89984",
		TextInverse:    "#282828",
		SelfBubble:     "#AF3A03",
		SelfText:       "#FBF1C7",
		OtherBubble:    "#3C3836",
		OtherText:      "#EBDBB2",
		ReplyAccent:    "#FABD2F",
		Warning:        "#FE8019",
		Error:          "#FB4934",
		Border:         "#504945",
		MarkdownCode:   "#B8BB26",
		MarkdownCodeBg: "#1D2021",
		MarkdownLink:   "#83A598",
	},
	ThemeTokyoNight: {
		Name:           "Tokyo Night",
		Primary:        "#7AA2F7",
		Secondary:      "#BB9AF7",
		Bg:             "#1A1B26",
		Text:           "#C0CAF5",
		TextMuted:      "#565F89",
		TextInverse:    "#1A1B26",
		SelfBubble:     "#3D59A1",
		SelfText:       "#C0CAF5",
		OtherBubble:    "#292E42",
		OtherText:      "#C0CAF5",
		ReplyAccent:    "#9ECE6A",
		Warning:        "#E0AF68",
		Error:          "#F7768E",
		Border:         "#3B4261",
		MarkdownCode:   "#9ECE6A",
		MarkdownCodeBg: "#16161E",
		MarkdownLink:   "#7DCFFF",
	},
	ThemeLight: {
		Name:           "Light",
		Primary:        "#6366F1",
		Secondary:      "#0891B2",
		Bg:             "#FFFFFF",
		BgSelected:     "#E0E7FF",
		Text:           "#1F2937",
		TextMuted:      "#6B7280",
		TextInverse:    "#FFFFFF",
		SelfBubble:     "#6366F1",
		SelfText:       "#312E81",
		OtherBubble:    "#9CA3AF",
		OtherText:      "#1F2937",
		ReplyAccent:    "#7C3AED",
		Warning:        "#D97706",
		Error:          "#DC2626",
		Border:         "#D1D5DB",
		BorderFocus:    "#6366F1",
		MarkdownCode:   "#059669",
		MarkdownCodeBg: "#E5E7EB",
		MarkdownLink:   "#0891B2",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeTokyoNight,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorSelected = lipgloss.Color(t.GetBgSelected())
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)

	// Header and footer
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	// Bubbles
	SelfBubbleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.SelfText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.SelfBubble)).
		Padding(0, 1)

	OtherBubbleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.OtherText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.OtherBubble)).
		Padding(0, 1)

	SelectedMarkerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	AuthorStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	TimestampStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Faint(true)

	DateHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	ReplyPreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(t.ReplyAccent)).
		PaddingLeft(1)

	ReplyAuthorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.ReplyAccent)).
		Bold(true)

	MediaCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	// Affordances
	TypingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	FABStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	LoadEarlierStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)

	SwipeHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.ReplyAccent)).
		Bold(true)

	ReplyBannerStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(t.ReplyAccent)).
		Padding(0, 1)

	// Context menu
	MenuStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Background(ColorBg).
		Padding(0, 1)

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	MenuSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true)

	SheetStyle = lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Background(ColorBg).
		Padding(0, 2)

	SheetHandleStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	// Input
	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	InputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	// Markdown
	MarkdownHeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode)).
		Background(lipgloss.Color(t.MarkdownCodeBg))

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorTextMuted).
		PaddingLeft(1)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)
}
