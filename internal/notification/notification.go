// Package notification sends desktop notifications through beeep. The demo
// host uses it to announce peer replies while the terminal is in the
// background.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/chatty/internal/logger"
)

// Title is shown on every notification.
const Title = "chatty"

// Maximum preview length in runes.
const previewLimit = 80

// notify is beeep.Notify, replaced in tests.
var notify = beeep.Notify

// Send sends a desktop notification with the given title and body.
func Send(title, body string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending", "title", title)
	if err := notify(title, body, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return err
	}
	return nil
}

// PeerReplied announces a message from author, previewing its first line.
func PeerReplied(author, text string) error {
	return Send(Title, author+": "+Preview(text))
}

// Preview returns the first line of text, shortened to previewLimit runes.
func Preview(text string) string {
	for i, r := range text {
		if r == '\n' {
			text = text[:i]
			break
		}
	}
	runes := []rune(text)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit-1]) + "…"
	}
	return text
}
