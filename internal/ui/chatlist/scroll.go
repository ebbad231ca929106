package chatlist

import (
	"math"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatty/internal/layout"
	"github.com/zhubert/chatty/internal/message"
	"github.com/zhubert/chatty/internal/ui"
)

// maxScrollFrames bounds an animated scroll in case the spring never settles.
const maxScrollFrames = 120

type rowKind int

const (
	rowMessage rowKind = iota
	rowGhost
	rowLoadEarlier
	rowTyping
)

// row is one laid-out item. start and height are in content lines.
type row struct {
	kind   rowKind
	id     string
	index  int // collection index, -1 for everything but messages
	start  int
	height int
}

type cacheKey struct {
	width    int
	variant  layout.Variant
	selected bool
	dated    bool
	text     string
	media    int
	reply    string
}

type cachedItem struct {
	key  cacheKey
	view string
}

type scrollAnim struct {
	active bool
	pos    float64
	vel    float64
	target int
	frames int
}

// anchor remembers which item sat at the top of the viewport so a prepend
// does not move what the user is reading.
type anchor struct {
	id    string
	delta int
}

type entry struct {
	kind    rowKind
	index   int
	msg     message.Message
	variant layout.Variant
}

// entries lists what to draw in collection order: the load-earlier header,
// messages with exiting ghosts at the positions they were removed from,
// then the typing indicator.
func (m *Model) entries() []entry {
	variants := layout.ClassifyAll(m.messages)

	ghosts := make([]ghost, 0, len(m.ghosts))
	for _, g := range m.ghosts {
		ghosts = append(ghosts, g)
	}
	slices.SortStableFunc(ghosts, func(a, b ghost) int {
		if a.at != b.at {
			return a.at - b.at
		}
		return strings.Compare(a.msg.ID, b.msg.ID)
	})

	out := make([]entry, 0, len(m.messages)+len(ghosts)+2)
	if m.opts.LoadEarlier {
		out = append(out, entry{kind: rowLoadEarlier, index: -1})
	}
	g := 0
	for i, msg := range m.messages {
		for g < len(ghosts) && ghosts[g].at <= i {
			out = append(out, m.ghostEntry(ghosts[g]))
			g++
		}
		out = append(out, entry{kind: rowMessage, index: i, msg: msg, variant: variants[i]})
	}
	for ; g < len(ghosts); g++ {
		out = append(out, m.ghostEntry(ghosts[g]))
	}
	if m.typing.Visible() {
		out = append(out, entry{kind: rowTyping, index: -1})
	}

	if m.opts.Inverted {
		slices.Reverse(out)
	}
	return out
}

func (m *Model) ghostEntry(g ghost) entry {
	return entry{kind: rowGhost, index: -1, msg: g.msg, variant: layout.Classify(g.msg, nil, false)}
}

// refresh lays out every item and hands the content to the viewport.
func (m *Model) refresh() {
	if !m.mounted {
		m.rows = nil
		m.lineCount = 0
		return
	}

	items := m.entries()
	views := make([]string, 0, len(items))
	m.rows = m.rows[:0]
	line := 0
	for _, it := range items {
		view := m.renderEntry(it)
		h := lipgloss.Height(view)
		m.rows = append(m.rows, row{kind: it.kind, id: it.msg.ID, index: it.index, start: line, height: h})
		views = append(views, view)
		line += h + ui.ItemSpacing
	}
	if len(views) > 0 {
		line -= ui.ItemSpacing
	}
	m.lineCount = line

	sep := "\n" + strings.Repeat("\n", ui.ItemSpacing)
	m.viewport.SetContent(strings.Join(views, sep))
}

func (m *Model) renderEntry(it entry) string {
	switch it.kind {
	case rowLoadEarlier:
		return ui.RenderLoadEarlier(m.loadingEarlier, m.width)
	case rowTyping:
		return m.typing.View(m.width)
	case rowGhost:
		return ui.RenderItem(it.msg, ui.ItemOptions{
			Bubble:   ui.BubbleOptions{Width: m.width, Variant: it.variant, ShowAuthor: m.opts.ShowAuthor},
			Row:      m.opts.RowRenderer,
			Progress: m.transitions.Progress(it.msg.ID),
		})
	}

	msg := it.msg
	opts := ui.ItemOptions{
		Bubble: ui.BubbleOptions{
			Width:      m.width,
			Variant:    it.variant,
			Selected:   m.focused && msg.ID == m.selectedID,
			ShowAuthor: m.opts.ShowAuthor,
		},
		DateHeader: layout.NeedsDateHeader(it.variant),
		Date:       m.opts.DateHeader,
		Row:        m.opts.RowRenderer,
		Swipeable:  m.opts.replyEnabled(),
		Progress:   m.transitions.Progress(msg.ID),
	}
	if m.gesture.Active() && m.gesture.Index() == it.index {
		opts.SwipeOffset = m.gesture.Offset()
	}

	// Only settled, unswiped items are cached.
	cacheable := opts.Progress >= 1 && opts.SwipeOffset == 0
	key := cacheKey{
		width:    m.width,
		variant:  it.variant,
		selected: opts.Bubble.Selected,
		dated:    opts.DateHeader,
		text:     msg.Text,
		media:    len(msg.Media),
	}
	if msg.RepliedTo != nil {
		key.reply = msg.RepliedTo.ID
	}
	if cacheable {
		if c, ok := m.cache[msg.ID]; ok && c.key == key {
			return c.view
		}
	}

	view := ui.RenderItem(msg, opts)
	if cacheable {
		m.cache[msg.ID] = cachedItem{key: key, view: view}
	}
	return view
}

// rowAt returns the row covering content line y.
func (m *Model) rowAt(y int) (row, bool) {
	for _, r := range m.rows {
		if y >= r.start && y < r.start+r.height {
			return r, true
		}
	}
	return row{}, false
}

// rowForIndex returns the row of the message at collection index i.
func (m *Model) rowForIndex(i int) (row, bool) {
	for _, r := range m.rows {
		if r.kind == rowMessage && r.index == i {
			return r, true
		}
	}
	return row{}, false
}

func (m *Model) captureAnchor() anchor {
	top := m.viewport.YOffset()
	for _, r := range m.rows {
		if r.kind == rowMessage && r.start+r.height > top {
			return anchor{id: r.id, delta: top - r.start}
		}
	}
	return anchor{}
}

// restoreAnchor puts the anchored item back where it was in the viewport.
func (m *Model) restoreAnchor(a anchor) tea.Cmd {
	if a.id == "" || !m.mounted {
		return nil
	}
	for _, r := range m.rows {
		if r.kind == rowMessage && r.id == a.id {
			m.viewport.SetYOffset(m.clampOffset(r.start + a.delta))
			return m.observe()
		}
	}
	return nil
}

func (m *Model) maxOffset() int {
	return max(m.lineCount-m.height, 0)
}

func (m *Model) clampOffset(y int) int {
	return min(max(y, 0), m.maxOffset())
}

// endOffset is the viewport offset showing the last item of the collection.
func (m *Model) endOffset() int {
	if m.opts.Inverted {
		return 0
	}
	return m.maxOffset()
}

// ScrollToEnd brings the last item of the collection into view.
func (m *Model) ScrollToEnd(animated bool) tea.Cmd {
	if !m.mounted {
		m.log.Debug("list not mounted, skipping scroll to end")
		return nil
	}
	return m.scrollTo(m.endOffset(), animated)
}

// ScrollToIndex brings the message at index to the top of the viewport.
// Out-of-range indexes are ignored.
func (m *Model) ScrollToIndex(index int, animated bool) tea.Cmd {
	if !m.mounted {
		m.log.Debug("list not mounted, skipping scroll to index", "index", index)
		return nil
	}
	r, ok := m.rowForIndex(index)
	if !ok {
		m.log.Debug("no row for index, skipping scroll", "index", index)
		return nil
	}
	return m.scrollTo(r.start, animated)
}

// scrollTo moves the viewport to line y. A new request cancels any animated
// scroll in flight.
func (m *Model) scrollTo(y int, animated bool) tea.Cmd {
	m.scrollGen++
	y = m.clampOffset(y)

	if !animated || y == m.viewport.YOffset() {
		m.anim = scrollAnim{}
		m.viewport.SetYOffset(y)
		return m.observe()
	}

	m.anim = scrollAnim{active: true, pos: float64(m.viewport.YOffset()), target: y}
	return m.scrollFrame(m.scrollGen)
}

func (m *Model) scrollFrame(gen int) tea.Cmd {
	id := m.id
	return tea.Tick(ui.FrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{listID: id, gen: gen}
	})
}

// stepScroll advances an animated scroll by one frame.
func (m *Model) stepScroll(gen int) tea.Cmd {
	if gen != m.scrollGen || !m.anim.active {
		return nil
	}
	a := &m.anim
	target := float64(a.target)
	a.pos, a.vel = m.spring.Update(a.pos, a.vel, target)
	a.frames++

	if (math.Abs(a.pos-target) < 0.5 && math.Abs(a.vel) < 0.5) || a.frames >= maxScrollFrames {
		m.viewport.SetYOffset(m.clampOffset(a.target))
		m.anim = scrollAnim{}
		return m.observe()
	}
	m.viewport.SetYOffset(m.clampOffset(int(math.Round(a.pos))))
	return tea.Batch(m.observe(), m.scrollFrame(gen))
}

// observe reports the current position: it updates the scroll-to-bottom
// affordance, forwards a ScrollEvent and fires end-reached once per content
// size.
func (m *Model) observe() tea.Cmd {
	offset := m.viewport.YOffset()
	toEnd := m.maxOffset() - offset
	if m.opts.Inverted {
		offset, toEnd = m.maxOffset()-offset, offset
	}

	ev := ScrollEvent{
		ListID:         m.id,
		Offset:         offset,
		ContentHeight:  m.lineCount,
		ViewportHeight: m.height,
	}

	// The affordance shows while the list rests at its start.
	m.fabVisible = offset <= 0

	if m.opts.OnScroll != nil {
		m.opts.OnScroll(ev)
	}
	cmds := []tea.Cmd{func() tea.Msg { return ev }}

	threshold := int(m.opts.EndReachedThreshold * float64(m.height))
	if m.opts.EndReachedThreshold > 0 && toEnd <= threshold && m.endReachedAt != m.lineCount {
		m.endReachedAt = m.lineCount
		if m.opts.OnEndReached != nil {
			m.opts.OnEndReached()
		}
		reached := EndReachedMsg{ListID: m.id, Distance: toEnd}
		cmds = append(cmds, func() tea.Msg { return reached })
	}
	return tea.Batch(cmds...)
}

// handleWheel scrolls by the wheel and stops any animated scroll.
func (m *Model) handleWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if !m.mounted {
		return nil
	}
	before := m.viewport.YOffset()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.anim = scrollAnim{}
	m.scrollGen++
	if m.viewport.YOffset() == before {
		return cmd
	}
	return tea.Batch(cmd, m.observe())
}

// scrollBy moves the viewport by delta lines without animation.
func (m *Model) scrollBy(delta int) tea.Cmd {
	return m.scrollTo(m.viewport.YOffset()+delta, false)
}

// ensureVisible scrolls just enough to show the message at index.
func (m *Model) ensureVisible(index int) tea.Cmd {
	r, ok := m.rowForIndex(index)
	if !ok {
		return nil
	}
	top := m.viewport.YOffset()
	switch {
	case r.start < top:
		return m.scrollTo(r.start, false)
	case r.start+r.height > top+m.height:
		return m.scrollTo(r.start+r.height-m.height, false)
	}
	return nil
}
