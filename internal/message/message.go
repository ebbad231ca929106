// Package message defines the chat message model shown by the list and the
// copy-on-write helpers used to change a collection.
package message

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// MediaType identifies what kind of attachment a Media entry is.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
	MediaFile  MediaType = "file"
)

// VideoOptions carries playback hints for video attachments.
type VideoOptions struct {
	PictureInPicture bool              `json:"picture_in_picture,omitempty" yaml:"picture_in_picture,omitempty"`
	Headers          map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Media is a single attachment on a message.
type Media struct {
	Type  MediaType     `json:"type" yaml:"type"`
	URI   string        `json:"uri" yaml:"uri"`
	Name  string        `json:"name,omitempty" yaml:"name,omitempty"`
	Size  int64         `json:"size,omitempty" yaml:"size,omitempty"` // bytes, 0 = unknown
	Video *VideoOptions `json:"video,omitempty" yaml:"video,omitempty"`
}

// ReplyRef points at the message this one answers. Author and Text are a
// snapshot for the quoted preview; ID is what the list scrolls to.
type ReplyRef struct {
	ID     string `json:"id" yaml:"id"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Message is one entry in the chat list. Messages are treated as immutable
// once handed to the list; hosts replace them instead of editing in place.
type Message struct {
	ID        string    `json:"id" yaml:"id"`
	Me        bool      `json:"me,omitempty" yaml:"me,omitempty"` // authored by the local user
	Author    string    `json:"author,omitempty" yaml:"author,omitempty"`
	Text      string    `json:"text" yaml:"text"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"` // zero = unknown
	Media     []Media   `json:"media,omitempty" yaml:"media,omitempty"`
	RepliedTo *ReplyRef `json:"replied_to,omitempty" yaml:"replied_to,omitempty"`
}

// HasMedia reports whether the message carries at least one attachment.
func (m Message) HasMedia() bool {
	return len(m.Media) > 0
}

// HasTimestamp reports whether CreatedAt was set.
func (m Message) HasTimestamp() bool {
	return !m.CreatedAt.IsZero()
}

// ReplyTo builds a ReplyRef quoting m.
func (m Message) ReplyTo() *ReplyRef {
	return &ReplyRef{ID: m.ID, Author: m.Author, Text: m.Text}
}

// NewID returns a fresh, time-sortable message id.
func NewID() string {
	return ulid.Make().String()
}

// New creates a message stamped with a new id and the current time.
func New(author, text string, me bool) Message {
	return Message{
		ID:        NewID(),
		Me:        me,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}
}
