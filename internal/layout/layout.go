// Package layout assigns each chat message a rendering variant. The variant
// drives bubble width, render-cache bucketing and whether a date header is drawn.
package layout

import (
	"time"

	"github.com/rivo/uniseg"
	"github.com/zhubert/chatty/internal/message"
)

// Variant is the rendering category of a single list item.
type Variant int

const (
	Normal Variant = iota
	Dated
	Replied
	Media
	MediaHeavy
	Long
	Long2x
	Long3x
	ExtremeLong
)

// Text length thresholds, in user-perceived characters.
const (
	LongThreshold        = 100
	Long2xThreshold      = 200
	Long3xThreshold      = 400
	ExtremeLongThreshold = 600

	// MediaHeavyCount is the attachment count above which a message is MediaHeavy.
	MediaHeavyCount = 2
)

var variantNames = [...]string{
	Normal:      "normal",
	Dated:       "dated",
	Replied:     "replied",
	Media:       "media",
	MediaHeavy:  "media-heavy",
	Long:        "long",
	Long2x:      "long-2x",
	Long3x:      "long-3x",
	ExtremeLong: "extreme-long",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "unknown"
	}
	return variantNames[v]
}

// BubbleWidthRatio is the share of the list width a bubble of this variant may
// occupy. Longer text gets a wider bubble so it wraps onto fewer lines.
func (v Variant) BubbleWidthRatio() float64 {
	switch v {
	case ExtremeLong, Long3x:
		return 0.9
	case Long2x:
		return 0.8
	case Long, MediaHeavy:
		return 0.75
	default:
		return 0.6
	}
}

// TextLength counts grapheme clusters so emoji and combining marks count once.
func TextLength(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Classify picks the variant for msg. prev is the message directly before it in
// the collection (nil when absent) and isFirst reports whether msg is at index 0.
// Rules are checked in priority order and the first match wins.
func Classify(msg message.Message, prev *message.Message, isFirst bool) Variant {
	n := TextLength(msg.Text)
	switch {
	case n >= ExtremeLongThreshold:
		return ExtremeLong
	case n >= Long3xThreshold:
		return Long3x
	case n >= Long2xThreshold:
		return Long2x
	case n >= LongThreshold:
		return Long
	}

	if msg.HasMedia() {
		if len(msg.Media) > MediaHeavyCount {
			return MediaHeavy
		}
		return Media
	}

	if msg.RepliedTo != nil {
		return Replied
	}

	if isFirst || prev == nil || !SameDay(msg.CreatedAt, prev.CreatedAt) {
		return Dated
	}
	return Normal
}

// ClassifyAt classifies list[i] against its predecessor.
func ClassifyAt(list []message.Message, i int) Variant {
	var prev *message.Message
	if i > 0 {
		prev = &list[i-1]
	}
	return Classify(list[i], prev, i == 0)
}

// ClassifyAll returns the variant of every message in list.
func ClassifyAll(list []message.Message) []Variant {
	out := make([]Variant, len(list))
	for i := range list {
		out[i] = ClassifyAt(list, i)
	}
	return out
}

// NeedsDateHeader reports whether an item of this variant starts a new day.
func NeedsDateHeader(v Variant) bool {
	return v == Dated
}

// SameDay compares calendar dates in local time. Zero times compare as the
// zero date, so two missing timestamps are the same day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := dateOf(a)
	by, bm, bd := dateOf(b)
	return ay == by && am == bm && ad == bd
}

func dateOf(t time.Time) (int, time.Month, int) {
	if t.IsZero() {
		return t.Date()
	}
	return t.Local().Date()
}
