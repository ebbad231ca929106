// Package transcript loads seed conversations from YAML files. The demo
// host and the classify command use them to fill a list.
//
// A transcript looks like:
//
//	peer: alice
//	replies:
//	  - "sounds good"
//	messages:
//	  - text: "hey"
//	    created_at: 2026-03-01T09:00:00Z
//	  - id: q1
//	    me: true
//	    text: "lunch?"
//	  - text: "sure"
//	    reply_to: q1
package transcript

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/zhubert/chatty/internal/errors"
	"github.com/zhubert/chatty/internal/message"
)

// Entry is a message as written in a transcript. ReplyTo names an earlier
// entry by id; the quoted preview is filled in from it.
type Entry struct {
	message.Message `yaml:",inline"`
	ReplyTo         string `yaml:"reply_to,omitempty"`
}

// Transcript is a parsed seed conversation.
type Transcript struct {
	Peer     string   `yaml:"peer"`
	Replies  []string `yaml:"replies,omitempty"` // scripted answers for the demo host
	Messages []Entry  `yaml:"messages"`

	path string
}

// Load reads and validates the transcript at path.
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.TranscriptLoadFailed(path, err)
	}
	return Parse(path, data)
}

// Parse decodes a transcript. path is only used in error messages.
func Parse(path string, data []byte) (*Transcript, error) {
	var t Transcript
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, apperrors.TranscriptLoadFailed(path, err)
	}
	t.path = path
	t.fill()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// fill assigns ids to entries without one and authors to the peer's
// messages.
func (t *Transcript) fill() {
	for i := range t.Messages {
		e := &t.Messages[i]
		if e.ID == "" {
			e.ID = message.NewID()
		}
		if !e.Me && e.Author == "" {
			e.Author = t.Peer
		}
	}
}

// Validate checks ids are unique, replies point backwards, every message has
// content, and timestamps never go back in time.
func (t *Transcript) Validate() error {
	list := make([]message.Message, len(t.Messages))
	for i, e := range t.Messages {
		list[i] = e.Message
	}
	if id := message.DuplicateID(list); id != "" {
		return apperrors.TranscriptInvalid(t.path, fmt.Sprintf("duplicate message id %q", id))
	}

	seen := make(map[string]bool, len(t.Messages))
	var last message.Message
	for i, e := range t.Messages {
		if e.Text == "" && !e.HasMedia() {
			return apperrors.TranscriptInvalid(t.path, fmt.Sprintf("message %d has neither text nor media", i+1))
		}
		if e.ReplyTo != "" {
			if e.RepliedTo != nil {
				return apperrors.TranscriptInvalid(t.path, fmt.Sprintf("message %q sets both reply_to and replied_to", e.ID))
			}
			if !seen[e.ReplyTo] {
				return apperrors.TranscriptInvalid(t.path, fmt.Sprintf("message %q replies to unknown or later message %q", e.ID, e.ReplyTo))
			}
		}
		if e.HasTimestamp() && last.HasTimestamp() && e.CreatedAt.Before(last.CreatedAt) {
			return apperrors.TranscriptInvalid(t.path, fmt.Sprintf("message %q is older than the one before it", e.ID))
		}
		if e.HasTimestamp() {
			last = e.Message
		}
		seen[e.ID] = true
	}
	return nil
}

// Collection returns the messages in display order with reply previews
// resolved.
func (t *Transcript) Collection() []message.Message {
	out := make([]message.Message, 0, len(t.Messages))
	for _, e := range t.Messages {
		msg := e.Message
		if e.ReplyTo != "" {
			if i := message.IndexOf(out, e.ReplyTo); i >= 0 {
				msg.RepliedTo = out[i].ReplyTo()
			}
		}
		out = append(out, msg)
	}
	return out
}
