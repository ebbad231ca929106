package ui

import (
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/zhubert/chatty/internal/message"
)

var mediaIcons = map[message.MediaType]string{
	message.MediaImage: "▣",
	message.MediaVideo: "▶",
	message.MediaAudio: "♪",
	message.MediaFile:  "≡",
}

// mediaName picks a display name, falling back to the last URI segment.
func mediaName(m message.Media) string {
	if m.Name != "" {
		return m.Name
	}
	if m.URI == "" {
		return string(m.Type)
	}
	return path.Base(m.URI)
}

// RenderMediaCard draws one attachment as a bordered card no wider than width.
func RenderMediaCard(m message.Media, width int) string {
	icon, ok := mediaIcons[m.Type]
	if !ok {
		icon = mediaIcons[message.MediaFile]
	}

	var meta []string
	if m.Size > 0 {
		meta = append(meta, humanize.Bytes(uint64(m.Size)))
	}
	if m.Type == message.MediaVideo && m.Video != nil && m.Video.PictureInPicture {
		meta = append(meta, "pip")
	}

	// border and padding take four cells
	inner := max(width-4, 4)
	line := icon + " " + runewidth.Truncate(mediaName(m), inner-2, "…")
	if len(meta) > 0 {
		line += "\n" + TimestampStyle.Render(runewidth.Truncate(strings.Join(meta, " · "), inner, "…"))
	}
	return MediaCardStyle.Render(line)
}

// RenderMediaList stacks the cards of every attachment.
func RenderMediaList(media []message.Media, width int) string {
	cards := make([]string, 0, len(media))
	for _, m := range media {
		cards = append(cards, RenderMediaCard(m, width))
	}
	return strings.Join(cards, "\n")
}
