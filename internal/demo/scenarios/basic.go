// Package scenarios contains built-in demo scenarios for chatty.
package scenarios

import (
	"time"

	"github.com/zhubert/chatty/internal/demo"
)

const seed = `
peer: alice
replies:
  - "Yes! Pushed it an hour ago."
  - "Here you go:\n` + "```" + `go\nlist.ScrollToEnd(true)\n` + "```" + `"
messages:
  - id: d1
    text: "Morning! Did the release go out?"
    created_at: 2026-03-01T09:00:00Z
  - id: d2
    me: true
    text: "Not yet, waiting on CI."
    created_at: 2026-03-01T09:02:00Z
  - id: d3
    text: "Here's the dashboard from last night"
    created_at: 2026-03-02T08:30:00Z
    media:
      - {type: image, uri: "file:///tmp/dashboard.png", name: dashboard.png, size: 482000}
  - id: d4
    me: true
    text: "Looks healthy."
    reply_to: d3
    created_at: 2026-03-02T08:31:00Z
`

// Basic shows sending, the peer typing and answering, and a reply.
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Send a message, watch the peer answer, reply to it",
	Width:       100,
	Height:      30,
	Transcript:  seed,
	Steps: []demo.Step{
		demo.Settle(time.Second),
		demo.Annotate("A seeded conversation with date headers, media and a quote"),
		demo.Capture(),

		demo.Type("Is the fix merged?"),
		demo.Wait(300 * time.Millisecond),
		demo.KeyWithDesc("enter", "send"),
		demo.Settle(3 * time.Second),
		demo.Annotate("The peer types, then answers with a quote of the question"),
		demo.Capture(),

		demo.KeyWithDesc("tab", "browse the list"),
		demo.KeyWithDesc("r", "reply to the selected message"),
		demo.Type("Thanks!"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),
		demo.Key("enter"),
		demo.Settle(3 * time.Second),
		demo.Capture(),
	},
}

// Actions opens the context menu and copies a message.
var Actions = &demo.Scenario{
	Name:        "actions",
	Description: "Browse the list and use the context menu",
	Width:       100,
	Height:      30,
	Transcript:  seed,
	Steps: []demo.Step{
		demo.Settle(time.Second),
		demo.KeyWithDesc("tab", "browse the list"),
		demo.Key("up"),
		demo.Key("up"),
		demo.KeyWithDesc("m", "open actions"),
		demo.Settle(500 * time.Millisecond),
		demo.Annotate("Long press, or m, opens the actions"),
		demo.Capture(),
		demo.KeyWithDesc("enter", "copy"),
		demo.Settle(500 * time.Millisecond),
		demo.Capture(),
		demo.Key("G"),
		demo.Settle(time.Second),
		demo.Capture(),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{Basic, Actions}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
