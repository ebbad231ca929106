package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/zhubert/chatty/internal/errors"
)

const sample = `
peer: alice
replies:
  - "sounds good"
messages:
  - text: "hey"
    created_at: 2026-03-01T09:00:00Z
  - id: q1
    me: true
    text: "lunch?"
    created_at: 2026-03-01T09:01:00Z
  - id: a1
    text: "sure"
    reply_to: q1
    media:
      - type: image
        uri: "file:///tmp/cat.png"
        size: 52000
`

func TestParse(t *testing.T) {
	tr, err := Parse("sample.yaml", []byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if tr.Peer != "alice" || len(tr.Replies) != 1 {
		t.Errorf("header = %q %v", tr.Peer, tr.Replies)
	}

	list := tr.Collection()
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].ID == "" {
		t.Error("missing ids should be generated")
	}
	if list[0].Author != "alice" {
		t.Errorf("peer messages default to the peer, got %q", list[0].Author)
	}
	if list[1].Author != "" || !list[1].Me {
		t.Errorf("own message = %+v", list[1])
	}
	if list[2].RepliedTo == nil || list[2].RepliedTo.ID != "q1" || list[2].RepliedTo.Text != "lunch?" {
		t.Errorf("RepliedTo = %+v", list[2].RepliedTo)
	}
	if !list[2].HasMedia() || list[2].Media[0].Size != 52000 {
		t.Errorf("Media = %+v", list[2].Media)
	}
	if list[2].HasTimestamp() {
		t.Error("an absent created_at stays zero")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate ids",
			yaml: "messages:\n  - {id: a, text: x}\n  - {id: a, text: y}\n",
			want: "duplicate message id",
		},
		{
			name: "empty message",
			yaml: "messages:\n  - {id: a}\n",
			want: "neither text nor media",
		},
		{
			name: "forward reply",
			yaml: "messages:\n  - {id: a, text: x, reply_to: b}\n  - {id: b, text: y}\n",
			want: "unknown or later",
		},
		{
			name: "both reply forms",
			yaml: "messages:\n  - {id: a, text: x}\n  - {id: b, text: y, reply_to: a, replied_to: {id: a}}\n",
			want: "both reply_to and replied_to",
		},
		{
			name: "out of order",
			yaml: "messages:\n  - {id: a, text: x, created_at: 2026-03-02T00:00:00Z}\n  - {id: b, text: y, created_at: 2026-03-01T00:00:00Z}\n",
			want: "older than",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.yaml", []byte(tt.yaml))
			if !apperrors.Is(err, apperrors.KindInvalid) {
				t.Fatalf("error = %v, want invalid kind", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse("broken.yaml", []byte("messages: [\n"))
	if !apperrors.Is(err, apperrors.KindIO) {
		t.Errorf("error = %v, want I/O kind", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tr.Messages) != 3 {
		t.Errorf("len = %d", len(tr.Messages))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
