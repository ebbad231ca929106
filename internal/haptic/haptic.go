// Package haptic gives the chat list a tactile cue when a message arrives.
// Terminals have no vibration motor, so a pulse is rendered as a short beep
// through beeep, scaled by intensity.
package haptic

import (
	"github.com/gen2brain/beeep"
	"github.com/zhubert/chatty/internal/logger"
)

// Type is the intensity of a pulse.
type Type int

const (
	Light Type = iota
	Medium
	Heavy
)

func (t Type) String() string {
	switch t {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Platform names the surface the component is running on.
type Platform string

const (
	PlatformTerminal Platform = "terminal"
	// PlatformWeb is a browser-hosted terminal (xterm.js and friends) where
	// the bell is either swallowed or rendered as a visual flash.
	PlatformWeb Platform = "web"
)

// SupportsHaptics reports whether pulses should be attempted on p.
func (p Platform) SupportsHaptics() bool {
	return p != PlatformWeb
}

// Trigger fires a single pulse.
type Trigger interface {
	Trigger(kind Type)
}

// beepTrigger implements Trigger with beeep.Beep.
type beepTrigger struct {
	beep func(freq float64, duration int) error
}

// NewBeep returns a Trigger that sounds the terminal bell.
func NewBeep() Trigger {
	return &beepTrigger{beep: beeep.Beep}
}

// durations in milliseconds per intensity
var pulseDurations = map[Type]int{
	Light:  40,
	Medium: 80,
	Heavy:  beeep.DefaultDuration,
}

func (b *beepTrigger) Trigger(kind Type) {
	d, ok := pulseDurations[kind]
	if !ok {
		d = beeep.DefaultDuration
	}
	if err := b.beep(beeep.DefaultFreq, d); err != nil {
		logger.WithComponent("haptic").Debug("pulse failed", "kind", kind.String(), "error", err)
	}
}

// Func adapts a plain function to Trigger.
type Func func(kind Type)

// Trigger calls f(kind).
func (f Func) Trigger(kind Type) { f(kind) }

// Nop is a Trigger that does nothing.
var Nop Trigger = Func(func(Type) {})

// Recorder is a Trigger that remembers pulses, for tests and demos.
type Recorder struct {
	Pulses []Type
}

// Trigger records kind.
func (r *Recorder) Trigger(kind Type) {
	r.Pulses = append(r.Pulses, kind)
}

