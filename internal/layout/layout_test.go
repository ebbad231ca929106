package layout

import (
	"strings"
	"testing"
	"time"

	"github.com/zhubert/chatty/internal/message"
)

var (
	jan1 = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)
	jan2 = time.Date(2024, time.January, 2, 9, 0, 0, 0, time.Local)
)

func media(n int) []message.Media {
	out := make([]message.Media, n)
	for i := range out {
		out[i] = message.Media{Type: message.MediaImage, URI: "file:///img.png"}
	}
	return out
}

func TestClassify_Priority(t *testing.T) {
	prevSameDay := &message.Message{ID: "p", Text: "earlier", CreatedAt: jan1}
	reply := &message.ReplyRef{ID: "p"}

	tests := []struct {
		name    string
		msg     message.Message
		prev    *message.Message
		isFirst bool
		want    Variant
	}{
		{"extreme long beats media", message.Message{Text: strings.Repeat("a", 650), CreatedAt: jan1, Media: media(3)}, prevSameDay, false, ExtremeLong},
		{"exactly 600", message.Message{Text: strings.Repeat("a", 600), CreatedAt: jan1}, prevSameDay, false, ExtremeLong},
		{"599 is long3x", message.Message{Text: strings.Repeat("a", 599), CreatedAt: jan1}, prevSameDay, false, Long3x},
		{"exactly 400", message.Message{Text: strings.Repeat("a", 400), CreatedAt: jan1}, prevSameDay, false, Long3x},
		{"exactly 200", message.Message{Text: strings.Repeat("a", 200), CreatedAt: jan1}, prevSameDay, false, Long2x},
		{"exactly 100", message.Message{Text: strings.Repeat("a", 100), CreatedAt: jan1}, prevSameDay, false, Long},
		{"long beats first", message.Message{Text: strings.Repeat("a", 150)}, nil, true, Long},
		{"three media is heavy", message.Message{Text: strings.Repeat("a", 10), Media: media(3)}, prevSameDay, false, MediaHeavy},
		{"two media", message.Message{Text: "pics", Media: media(2), CreatedAt: jan1}, prevSameDay, false, Media},
		{"media beats reply", message.Message{Text: "pics", Media: media(1), RepliedTo: reply}, prevSameDay, false, Media},
		{"empty media slice is no media", message.Message{Text: "hi", Media: []message.Media{}, CreatedAt: jan1}, prevSameDay, false, Normal},
		{"reply beats first", message.Message{Text: "re", RepliedTo: reply}, nil, true, Replied},
		{"reply on new day", message.Message{Text: "re", RepliedTo: reply, CreatedAt: jan2}, prevSameDay, false, Replied},
		{"first is dated", message.Message{Text: "hi", CreatedAt: jan1}, nil, true, Dated},
		{"new day is dated", message.Message{Text: "hi", CreatedAt: jan2}, prevSameDay, false, Dated},
		{"same day is normal", message.Message{Text: "hi", CreatedAt: jan1.Add(3 * time.Hour)}, prevSameDay, false, Normal},
		{"missing predecessor is dated", message.Message{Text: "hi", CreatedAt: jan1}, nil, false, Dated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.msg, tt.prev, tt.isFirst); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_ExtremeLongIgnoresOtherFields(t *testing.T) {
	text := strings.Repeat("x", 600)
	variants := []message.Message{
		{Text: text},
		{Text: text, Media: media(1)},
		{Text: text, Media: media(5)},
		{Text: text, RepliedTo: &message.ReplyRef{ID: "z"}},
		{Text: text, CreatedAt: jan2},
	}
	for i, m := range variants {
		for _, first := range []bool{true, false} {
			if got := Classify(m, nil, first); got != ExtremeLong {
				t.Errorf("case %d first=%v: got %v, want ExtremeLong", i, first, got)
			}
		}
	}
}

func TestClassify_MediaHeavyBelowLongThreshold(t *testing.T) {
	for n := 0; n < LongThreshold; n += 9 {
		for count := 3; count <= 6; count++ {
			m := message.Message{Text: strings.Repeat("b", n), Media: media(count)}
			if got := Classify(m, nil, false); got != MediaHeavy {
				t.Errorf("len=%d media=%d: got %v, want MediaHeavy", n, count, got)
			}
		}
	}
}

func TestClassify_TwoMessageScenario(t *testing.T) {
	msgA := message.Message{ID: "a", Text: "hi", CreatedAt: jan1}
	msgB := message.Message{ID: "b", Text: "hello", CreatedAt: jan2}

	if got := Classify(msgA, nil, true); got != Dated {
		t.Errorf("msgA = %v, want Dated", got)
	}
	if got := Classify(msgB, &msgA, false); got != Dated {
		t.Errorf("msgB on a new day = %v, want Dated", got)
	}

	msgB.CreatedAt = jan1.Add(time.Hour)
	if got := Classify(msgB, &msgA, false); got != Normal {
		t.Errorf("msgB on the same day = %v, want Normal", got)
	}
}

func TestClassify_SameDayOfMonthDifferentMonth(t *testing.T) {
	prev := message.Message{Text: "a", CreatedAt: time.Date(2024, time.January, 5, 10, 0, 0, 0, time.Local)}
	next := message.Message{Text: "b", CreatedAt: time.Date(2024, time.February, 5, 10, 0, 0, 0, time.Local)}
	if got := Classify(next, &prev, false); got != Dated {
		t.Errorf("same day-of-month in another month = %v, want Dated", got)
	}
}

func TestTextLength_Graphemes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"👍🏽", 1},
		{"🇳🇱🇧🇪", 2},
	}
	for _, tt := range tests {
		if got := TextLength(tt.in); got != tt.want {
			t.Errorf("TextLength(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClassifyAll(t *testing.T) {
	list := []message.Message{
		{ID: "1", Text: "morning", CreatedAt: jan1},
		{ID: "2", Text: "still morning", CreatedAt: jan1.Add(time.Minute)},
		{ID: "3", Text: "next day", CreatedAt: jan2},
		{ID: "4", Text: "re", CreatedAt: jan2, RepliedTo: &message.ReplyRef{ID: "1"}},
	}
	want := []Variant{Dated, Normal, Dated, Replied}

	got := ClassifyAll(list)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %v, want %v", i, got[i], want[i])
		}
		if ClassifyAt(list, i) != got[i] {
			t.Errorf("ClassifyAt(%d) disagrees with ClassifyAll", i)
		}
	}
}

func TestVariant_String(t *testing.T) {
	if Normal.String() != "normal" || ExtremeLong.String() != "extreme-long" || MediaHeavy.String() != "media-heavy" {
		t.Error("unexpected variant names")
	}
	if Variant(99).String() != "unknown" {
		t.Error("out of range variant should be unknown")
	}
}

func TestBubbleWidthRatio_WidensWithLength(t *testing.T) {
	order := []Variant{Normal, Long, Long2x, Long3x}
	for i := 1; i < len(order); i++ {
		if order[i].BubbleWidthRatio() < order[i-1].BubbleWidthRatio() {
			t.Errorf("%v should not be narrower than %v", order[i], order[i-1])
		}
	}
}

func TestNeedsDateHeader(t *testing.T) {
	if !NeedsDateHeader(Dated) {
		t.Error("Dated needs a header")
	}
	for _, v := range []Variant{Normal, Replied, Media, Long} {
		if NeedsDateHeader(v) {
			t.Errorf("%v should not need a header", v)
		}
	}
}
