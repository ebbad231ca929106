package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciinema v2 file.
type castHeader struct {
	Version   int    `json:"version"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Timestamp int64  `json:"timestamp"`
	Title     string `json:"title,omitempty"`
}

// GenerateASCIICast writes frames as an asciinema v2 recording. Each frame
// redraws the whole screen and is shown for its delay.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int, title string) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(castHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().Unix(),
		Title:     title,
	}); err != nil {
		return fmt.Errorf("write cast header: %w", err)
	}

	var at time.Duration
	for i, f := range frames {
		out := "\x1b[H\x1b[2J" + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if f.Annotation != "" {
			out += "\r\n" + f.Annotation
		}
		event := []any{at.Seconds(), "o", out}
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
		at += max(f.Delay, 100*time.Millisecond)
	}
	return nil
}
