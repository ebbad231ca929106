// Package clipboard copies message text to and from the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	apperrors "github.com/zhubert/chatty/internal/errors"
	"github.com/zhubert/chatty/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. It is called lazily by ReadText and
// WriteText and is safe to call multiple times; a failure is sticky.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: Failed to initialize: %v", err)
			initErr = apperrors.ClipboardUnavailable(err)
			return
		}
		logger.Debug("Clipboard: Initialized successfully")
	})
	return initErr
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
