package demo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatty/internal/app"
	"github.com/zhubert/chatty/internal/config"
	"github.com/zhubert/chatty/internal/haptic"
	"github.com/zhubert/chatty/internal/history"
	"github.com/zhubert/chatty/internal/transcript"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // How long the frame stays on screen
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and typed character
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// PeerDelay is how long the scripted peer types (default: 300ms)
	PeerDelay time.Duration

	// MaxMessages bounds one settle step
	MaxMessages int
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		TypeDelay:   50 * time.Millisecond,
		KeyDelay:    100 * time.Millisecond,
		PeerDelay:   300 * time.Millisecond,
		MaxMessages: 2000,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config  ExecutorConfig
	model   *app.Model
	store   *history.Store
	pending []tea.Cmd
	frames  []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{config: cfg}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.store.Close()

	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		e.executeStep(i, step)
	}

	return e.frames, nil
}

// setup builds a host with an in-memory history and no side effects.
func (e *Executor) setup(scenario *Scenario) error {
	var seed *transcript.Transcript
	if scenario.Transcript != "" {
		t, err := transcript.Parse(scenario.Name, []byte(scenario.Transcript))
		if err != nil {
			return err
		}
		seed = t
	}

	store, err := history.Open("")
	if err != nil {
		return err
	}
	e.store = store

	cfg := config.Default()
	cfg.SetHaptics(false)

	e.model = app.New(cfg, app.Options{
		Version:    "demo",
		Transcript: seed,
		History:    store,
		PeerDelay:  e.config.PeerDelay,
		Clipboard:  func(string) error { return nil },
		Trigger:    haptic.Nop,
	})
	e.send(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

func (e *Executor) executeStep(index int, step Step) {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.send(keyPress(step.Key))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.send(keyPress(string(ch)))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepClick:
		e.send(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.send(tea.MouseReleaseMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})

	case StepSettle:
		e.settle(step.Duration)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation

	case StepCapture:
		e.captureFrame(index, 0)
	}
}

// send delivers msg and queues the returned command.
func (e *Executor) send(msg tea.Msg) {
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	if cmd != nil {
		e.pending = append(e.pending, cmd)
	}
}

// settle runs the queued commands the way the Bubble Tea runtime would,
// each in its own goroutine, feeding their messages back into the model
// until nothing is left or the budget is spent. Commands still running
// when it returns are abandoned.
func (e *Executor) settle(budget time.Duration) {
	msgs := make(chan tea.Msg)
	done := make(chan struct{})
	defer close(done)

	running := 0
	start := func(cmd tea.Cmd) {
		if cmd == nil {
			return
		}
		running++
		go func() {
			select {
			case msgs <- cmd():
			case <-done:
			}
		}()
	}

	for _, cmd := range e.pending {
		start(cmd)
	}
	e.pending = nil

	deadline := time.After(budget)
	for handled := 0; running > 0 && handled < e.config.MaxMessages; {
		select {
		case msg := <-msgs:
			running--
			switch msg := msg.(type) {
			case nil, tea.QuitMsg:
			case tea.BatchMsg:
				for _, cmd := range msg {
					start(cmd)
				}
			default:
				handled++
				result, cmd := e.model.Update(msg)
				e.model = result.(*app.Model)
				start(cmd)
			}
		case <-deadline:
			return
		}
	}
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	})
	e.currentAnnotation = ""
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "space", " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}

	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok && utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
	}

	r, _ := utf8.DecodeRuneInString(key)
	return tea.KeyPressMsg{Code: r, Text: key}
}
