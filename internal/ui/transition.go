package ui

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"
)

// SlideDistance is how far, in cells, an item travels while fading in or out.
const SlideDistance = 8

// maxTransitionFrames bounds a transition in case the spring never settles.
const maxTransitionFrames = 90

type transition struct {
	exit   bool
	pos    float64
	vel    float64
	frames int
}

func (t *transition) target() float64 {
	if t.exit {
		return 0
	}
	return 1
}

// Transitions drives the fade-and-slide entrance and exit of list items,
// keyed by message id. Positions run from 0 (hidden) to 1 (settled).
type Transitions struct {
	spring harmonica.Spring
	items  map[string]*transition
}

// NewTransitions returns an idle transition set.
func NewTransitions() *Transitions {
	return &Transitions{
		spring: harmonica.NewSpring(harmonica.FPS(60), 7.0, 1.0),
		items:  make(map[string]*transition),
	}
}

// Enter starts the entrance of id.
func (t *Transitions) Enter(id string) {
	t.items[id] = &transition{pos: 0}
}

// Exit starts the exit of id, reversing an entrance in progress.
func (t *Transitions) Exit(id string) {
	if tr, ok := t.items[id]; ok {
		tr.exit = true
		tr.frames = 0
		return
	}
	t.items[id] = &transition{exit: true, pos: 1}
}

// Progress returns the position of id, 1 when it has no transition.
func (t *Transitions) Progress(id string) float64 {
	if tr, ok := t.items[id]; ok {
		return tr.pos
	}
	return 1
}

// Exiting reports whether id is on its way out.
func (t *Transitions) Exiting(id string) bool {
	tr, ok := t.items[id]
	return ok && tr.exit
}

// Active reports whether any transition still needs frames.
func (t *Transitions) Active() bool {
	return len(t.items) > 0
}

// Step advances every transition by one frame and returns the ids whose exit
// just finished. Settled entrances are dropped silently.
func (t *Transitions) Step() []string {
	var gone []string
	for id, tr := range t.items {
		target := tr.target()
		tr.pos, tr.vel = t.spring.Update(tr.pos, tr.vel, target)
		tr.frames++
		settled := math.Abs(tr.pos-target) < 0.01 && math.Abs(tr.vel) < 0.01
		if settled || tr.frames >= maxTransitionFrames {
			delete(t.items, id)
			if tr.exit {
				gone = append(gone, id)
			}
		}
	}
	return gone
}

// ApplyTransition renders a row partway through its transition. Others'
// bubbles slide in from the left, the local user's from the right, and the
// row is faint for the first half.
func ApplyTransition(row string, progress float64, me bool, width int) string {
	if progress >= 1 {
		return row
	}
	progress = math.Max(progress, 0)
	shift := int(math.Round((1 - progress) * SlideDistance))
	faint := progress < 0.5

	lines := strings.Split(row, "\n")
	for i, l := range lines {
		if me {
			l = ansi.Truncate(strings.Repeat(" ", shift)+l, width, "")
		} else {
			l = ansi.TruncateLeft(l, shift, "")
		}
		if faint {
			l = lipgloss.NewStyle().Faint(true).Render(l)
		}
		lines[i] = l
	}
	return strings.Join(lines, "\n")
}
