package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatty/internal/config"
	"github.com/zhubert/chatty/internal/haptic"
	"github.com/zhubert/chatty/internal/history"
	"github.com/zhubert/chatty/internal/message"
	"github.com/zhubert/chatty/internal/transcript"
	"github.com/zhubert/chatty/internal/ui"
	"github.com/zhubert/chatty/internal/ui/chatlist"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

func openHistory(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open("")
	if err != nil {
		t.Fatalf("history.Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestModel(t *testing.T, opts Options) (*Model, *fakeClipboard, *haptic.Recorder) {
	t.Helper()
	clip := &fakeClipboard{}
	rec := &haptic.Recorder{}
	if opts.Clipboard == nil {
		opts.Clipboard = clip.write
	}
	opts.Trigger = rec

	m := New(config.Default(), opts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	t.Cleanup(func() { ui.GetViewContext().SetReplying(false) })
	return m, clip, rec
}

func press(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func count(t *testing.T, s *history.Store) int {
	t.Helper()
	n, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	return n
}

func TestNew_SeedsFromTranscript(t *testing.T) {
	tr, err := transcript.Parse("seed.yaml", []byte(`
peer: alice
replies: ["ok"]
messages:
  - {id: a, text: "hi"}
  - {id: b, me: true, text: "hello"}
  - {id: c, text: "how are you?", reply_to: b}
`))
	if err != nil {
		t.Fatal(err)
	}
	store := openHistory(t)

	m, _, _ := newTestModel(t, Options{Transcript: tr, History: store})

	if m.List().Len() != 3 {
		t.Errorf("list len = %d, want 3", m.List().Len())
	}
	if count(t, store) != 3 {
		t.Errorf("history count = %d, want the transcript saved", count(t, store))
	}
	if m.peer != "alice" || len(m.script) != 1 {
		t.Errorf("peer = %q script = %v", m.peer, m.script)
	}
}

func TestNew_LoadsNewestHistoryPage(t *testing.T) {
	store := openHistory(t)
	var batch []message.Message
	for i := range HistoryPageSize + 5 {
		batch = append(batch, message.Message{ID: fmt.Sprintf("m%02d", i), Text: "x"})
	}
	if err := store.SaveAll(context.Background(), batch); err != nil {
		t.Fatal(err)
	}

	m, _, _ := newTestModel(t, Options{History: store})

	got := m.List().Messages()
	if len(got) != HistoryPageSize {
		t.Fatalf("list len = %d, want %d", len(got), HistoryPageSize)
	}
	if got[0].ID != "m05" {
		t.Errorf("head = %s, want the newest page", got[0].ID)
	}

	_, cmd := m.Update(chatlist.LoadEarlierMsg{ListID: m.List().ID()})
	if cmd == nil {
		t.Fatal("load earlier should fetch a page")
	}
	m.Update(cmd())

	if m.List().Len() != HistoryPageSize+5 || m.List().Messages()[0].ID != "m00" {
		t.Errorf("after load earlier len = %d head = %s", m.List().Len(), m.List().Messages()[0].ID)
	}

	_, cmd = m.Update(chatlist.LoadEarlierMsg{ListID: m.List().ID()})
	m.Update(cmd())
	if !m.footer.HasFlash() {
		t.Error("an empty page should flash")
	}
}

func TestLoadEarlier_OtherListIgnored(t *testing.T) {
	m, _, _ := newTestModel(t, Options{History: openHistory(t)})
	if _, cmd := m.Update(chatlist.LoadEarlierMsg{ListID: "someone-else"}); cmd != nil {
		t.Error("signals for other lists are ignored")
	}
}

func TestSendMessage_PeerAnswers(t *testing.T) {
	store := openHistory(t)
	m, _, rec := newTestModel(t, Options{History: store})

	m.input.SetValue("  lunch?  ")
	if cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd == nil {
		t.Fatal("sending should schedule work")
	}

	msgs := m.List().Messages()
	if len(msgs) != 1 || !msgs[0].Me || msgs[0].Text != "lunch?" {
		t.Fatalf("messages = %+v", msgs)
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared")
	}
	if count(t, store) != 1 {
		t.Errorf("history count = %d, want 1", count(t, store))
	}
	if len(rec.Pulses) != 0 {
		t.Error("own messages never pulse")
	}

	gen := m.peerGen
	m.Update(peerTypingMsg{gen: gen})
	if !m.List().IsTyping() {
		t.Error("peer should be typing")
	}

	m.Update(peerReplyMsg{gen: gen, to: msgs[0]})
	msgs = m.List().Messages()
	if len(msgs) != 2 || msgs[1].Me || msgs[1].Author != DefaultPeer {
		t.Fatalf("messages = %+v", msgs)
	}
	if msgs[1].RepliedTo == nil || msgs[1].RepliedTo.ID != msgs[0].ID {
		t.Error("questions are answered with a quote")
	}
	if m.List().IsTyping() {
		t.Error("typing should stop with the reply")
	}
	if len(rec.Pulses) != 1 {
		t.Errorf("pulses = %d, want 1 for the peer's message", len(rec.Pulses))
	}
	if count(t, store) != 2 {
		t.Errorf("history count = %d, want 2", count(t, store))
	}
}

func TestPeer_StaleGenerationDropped(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	m.input.SetValue("one")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	stale := m.peerGen
	m.input.SetValue("two")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	m.Update(peerTypingMsg{gen: stale})
	m.Update(peerReplyMsg{gen: stale})
	if m.List().Len() != 2 || m.List().IsTyping() {
		t.Error("only the newest burst gets an answer")
	}
}

func TestSendMessage_EmptyIgnored(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m.input.SetValue("   ")
	if cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("blank input sends nothing")
	}
	if m.List().Len() != 0 {
		t.Error("list should stay empty")
	}
}

func TestTab_TogglesFocus(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})

	if m.Focus() != FocusInput {
		t.Fatalf("initial focus = %v", m.Focus())
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.Focus() != FocusList || !m.List().Focused() {
		t.Error("tab should focus the list")
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.Focus() != FocusInput || m.List().Focused() {
		t.Error("tab again should focus the input")
	}
}

func TestActions(t *testing.T) {
	seed := []message.Message{
		{ID: "a", Author: "alice", Text: "copy me"},
		{ID: "b", Author: "alice", Text: "delete me"},
	}

	tests := []struct {
		name     string
		label    string
		target   message.Message
		clipErr  error
		wantLen  int
		wantClip string
		replying bool
	}{
		{name: "copy", label: "Copy", target: seed[0], wantLen: 2, wantClip: "copy me"},
		{name: "copy fails", label: "Copy", target: seed[0], clipErr: errors.New("no display"), wantLen: 2},
		{name: "reply", label: "Reply", target: seed[0], wantLen: 2, replying: true},
		{name: "delete", label: "Delete", target: seed[1], wantLen: 1},
		{name: "unknown", label: "Pin", target: seed[0], wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openHistory(t)
			if err := store.SaveAll(context.Background(), seed); err != nil {
				t.Fatal(err)
			}
			m, clip, _ := newTestModel(t, Options{History: store})
			clip.err = tt.clipErr

			m.Update(chatlist.ActionPressedMsg{
				ListID:  m.List().ID(),
				Index:   message.IndexOf(seed, tt.target.ID),
				Label:   tt.label,
				Message: tt.target,
			})

			if m.List().Len() != tt.wantLen {
				t.Errorf("list len = %d, want %d", m.List().Len(), tt.wantLen)
			}
			if count(t, store) != tt.wantLen {
				t.Errorf("history count = %d, want %d", count(t, store), tt.wantLen)
			}
			if clip.text != tt.wantClip {
				t.Errorf("clipboard = %q, want %q", clip.text, tt.wantClip)
			}
			if m.Replying() != tt.replying {
				t.Errorf("Replying() = %v, want %v", m.Replying(), tt.replying)
			}
			if !tt.replying && !m.footer.HasFlash() {
				t.Error("actions report through the footer")
			}
		})
	}
}

func TestReply_BannerAndSend(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	target := message.Message{ID: "q", Author: "alice", Text: "which one?"}
	m.List().SetMessages([]message.Message{target})
	full := ui.GetViewContext().ListHeight

	m.Update(chatlist.ReplyMsg{ListID: m.List().ID(), Message: target})
	ctx := ui.GetViewContext()
	if !m.Replying() || ctx.BannerHeight == 0 || ctx.ListHeight >= full {
		t.Fatalf("replying = %v banner = %d list = %d (full %d)", m.Replying(), ctx.BannerHeight, ctx.ListHeight, full)
	}
	if m.List().Height() != ctx.ListHeight {
		t.Errorf("list height = %d, want %d", m.List().Height(), ctx.ListHeight)
	}
	if !strings.Contains(m.RenderToString(), "Replying to alice") {
		t.Error("banner should name the quoted author")
	}

	m.input.SetValue("the blue one")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	msgs := m.List().Messages()
	last := msgs[len(msgs)-1]
	if last.RepliedTo == nil || last.RepliedTo.ID != "q" {
		t.Errorf("sent message should quote q, got %+v", last.RepliedTo)
	}
	if m.Replying() || ui.GetViewContext().BannerHeight != 0 {
		t.Error("sending ends the reply")
	}
}

func TestReply_EscapeCancels(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m.Update(chatlist.ReplyMsg{ListID: m.List().ID(), Message: message.Message{ID: "x", Text: "y"}})

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Replying() {
		t.Error("escape should cancel the reply")
	}
}

func TestEscape_DismissesFlash(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m.flash(ui.FlashInfo, "hello")

	m.Update(chatlist.ReplyMsg{ListID: m.List().ID(), Message: message.Message{ID: "x", Text: "y"}})
	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Replying() || !m.footer.HasFlash() {
		t.Fatal("the first escape cancels the reply and keeps the flash")
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.footer.HasFlash() {
		t.Error("a second escape should dismiss the flash")
	}
}

func TestMouse_Focus(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m.List().SetMessages([]message.Message{{ID: "a", Text: "hi"}})

	m.Update(tea.MouseClickMsg{X: 5, Y: 0, Button: tea.MouseLeft})
	if m.Focus() != FocusInput {
		t.Error("header clicks do nothing")
	}

	m.Update(tea.MouseClickMsg{X: 5, Y: ui.HeaderHeight + 1, Button: tea.MouseLeft})
	if m.Focus() != FocusList {
		t.Error("list clicks focus the list")
	}

	ctx := ui.GetViewContext()
	m.Update(tea.MouseClickMsg{X: 5, Y: ctx.HeaderHeight + ctx.ListHeight + 1, Button: tea.MouseLeft})
	if m.Focus() != FocusInput {
		t.Error("input clicks focus the input")
	}
}

func TestCycleTheme(t *testing.T) {
	defer ui.SetTheme(ui.CurrentThemeName())
	ui.SetTheme(ui.ThemeNames()[0])

	m, _, _ := newTestModel(t, Options{})
	cmd := press(m, tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})

	want := ui.ThemeNames()[1]
	if ui.CurrentThemeName() != want || m.config.GetTheme() != string(want) {
		t.Errorf("theme = %q config = %q, want %q", ui.CurrentThemeName(), m.config.GetTheme(), want)
	}
	if cmd == nil || !m.footer.HasFlash() {
		t.Error("theme changes are announced")
	}
}

func TestView(t *testing.T) {
	m := New(config.Default(), Options{Clipboard: func(string) error { return nil }, Trigger: haptic.Nop})
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("unsized view = %q", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	out := m.RenderToString()
	for _, want := range []string{"chatty", "send"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if v := m.View(); !v.AltScreen {
		t.Error("the host runs in the alt screen")
	}
}

func TestFlashTick_ClearsExpired(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m.footer.SetFlashWithDuration("gone", ui.FlashInfo, time.Nanosecond)
	time.Sleep(time.Millisecond)

	m.Update(ui.FlashTickMsg(time.Now()))
	if m.footer.HasFlash() {
		t.Error("expired flash should be cleared")
	}
}

func TestPeer_Announce(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	if m.announce(message.New("bob", "hi", false)) != nil {
		t.Error("no notifier means no command")
	}

	var got []string
	m, _, _ = newTestModel(t, Options{Notify: func(author, text string) error {
		got = append(got, author+": "+text)
		return errors.New("no notification daemon")
	}})
	cmd := m.announce(message.New("bob", "hi", false))
	if cmd == nil {
		t.Fatal("announce should return a command")
	}
	if msg := cmd(); msg != nil {
		t.Errorf("announce produced %T, want nil", msg)
	}
	if len(got) != 1 || got[0] != "bob: hi" {
		t.Errorf("notified = %v", got)
	}
}
