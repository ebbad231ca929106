package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatty/internal/message"
)

// defaultScript is what the peer says without a transcript. It cycles.
var defaultScript = []string{
	"Got it!",
	"Here's the snippet you asked about:\n```go\nfmt.Println(\"hello\")\n```",
	"Sounds good, talk soon.",
	"**Heads up:** the build is green again.",
}

type (
	peerTypingMsg struct {
		gen int
		to  message.Message
	}
	peerReplyMsg struct {
		gen int
		to  message.Message
	}
)

// queuePeer schedules the peer's answer to sent. A newer message restarts
// the wait so the peer answers once per burst.
func (m *Model) queuePeer(sent message.Message) tea.Cmd {
	m.peerGen++
	gen := m.peerGen
	return tea.Tick(typingDelay, func(time.Time) tea.Msg {
		return peerTypingMsg{gen: gen, to: sent}
	})
}

func (m *Model) peerStartsTyping(msg peerTypingMsg) tea.Cmd {
	if msg.gen != m.peerGen {
		return nil
	}
	gen, to := msg.gen, msg.to
	return tea.Batch(
		m.list.SetTyping(true),
		tea.Tick(m.peerDelay, func(time.Time) tea.Msg { return peerReplyMsg{gen: gen, to: to} }),
	)
}

func (m *Model) peerReplies(msg peerReplyMsg) tea.Cmd {
	if msg.gen != m.peerGen || len(m.script) == 0 {
		return nil
	}

	text := m.script[m.scriptPos%len(m.script)]
	m.scriptPos++

	reply := message.New(m.peer, text, false)
	// Questions get an explicit quote so the reply preview shows up.
	if strings.HasSuffix(strings.TrimSpace(msg.to.Text), "?") {
		reply.RepliedTo = msg.to.ReplyTo()
	}

	return tea.Batch(
		m.list.SetTyping(false),
		m.list.AppendOne(reply, false),
		m.save(reply),
		m.announce(reply),
	)
}

// announce sends the reply as a desktop notification off the update loop.
func (m *Model) announce(reply message.Message) tea.Cmd {
	if m.notify == nil {
		return nil
	}
	notify, log := m.notify, m.log
	return func() tea.Msg {
		if err := notify(reply.Author, reply.Text); err != nil {
			log.Warn("notification failed", "error", err)
		}
		return nil
	}
}
