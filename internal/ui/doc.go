// Package ui provides the rendering pieces of the chatty chat list and the
// chrome of the demo host.
//
// # Overview
//
// The list itself lives in the chatlist subpackage. This package holds what
// it composes: the item renderer, bubbles, date headers, media cards, the
// swipe and transition wrappers, the context menu, and the small
// affordances drawn over the list.
//
// # Layout System
//
// The demo host is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Message list                          [↓ latest]  │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Reply banner (only while replying)                  │
//	├─────────────────────────────────────────────────────┤
//	│ Input (3 lines + border)                            │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// While a reply is being composed the list keeps 90% of the space above the
// input and the banner takes the rest.
//
// RenderItem: An optional date header followed by a bubble, wrapped in the
// swipe offset and the entrance/exit transition. The bubble width depends on
// the layout variant chosen by the layout package.
//
// ContextMenu: Decides once, when built, between passing presses through,
// an inline popup menu, or a bottom sheet hosting a huh select.
//
// Overlay: Composites the scroll-to-bottom button and the menu over the
// rendered list with an ultraviolet screen buffer.
//
// Header, Footer: Title bar with a gradient, and context-aware key help or
// a transient flash message.
//
// # Styles
//
// All styles are defined in styles.go and regenerated from the active theme
// (theme.go) whenever the theme changes.
package ui
