// Package demo drives the chatty host through scripted scenarios and
// captures frames for documentation and presentations. Everything runs
// in-process: an in-memory history, a silent clipboard, and no haptics.
package demo

import (
	"fmt"
	"time"

	"github.com/zhubert/chatty/internal/transcript"
	"github.com/zhubert/chatty/internal/ui"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait holds the current frame for a duration.
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepClick sends a left click followed by a release.
	StepClick
	// StepSettle runs queued commands (timers, animations, the peer's
	// answer) until they go quiet or the duration runs out.
	StepSettle
	// StepCapture captures the current frame.
	StepCapture
	// StepAnnotate adds a caption to the next captured frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	Key        string        // StepKey
	Text       string        // StepTypeText
	Duration   time.Duration // StepWait, StepSettle
	X, Y       int           // StepClick, terminal coordinates
	Annotation string        // StepAnnotate
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int    // Terminal width (default 100)
	Height      int    // Terminal height (default 30)
	Transcript  string // YAML seed conversation, optional
	Steps       []Step
}

// ValidationError describes what is wrong with a scenario.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the scenario can run.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "required"}
	}
	if s.Width < ui.MinTerminalWidth || s.Height < ui.MinTerminalHeight {
		return &ValidationError{Field: "Size", Message: fmt.Sprintf("at least %dx%d", ui.MinTerminalWidth, ui.MinTerminalHeight)}
	}
	if len(s.Steps) == 0 {
		return &ValidationError{Field: "Steps", Message: "at least one step is required"}
	}
	for i, step := range s.Steps {
		if step.Type == StepKey && step.Key == "" {
			return &ValidationError{Field: fmt.Sprintf("Steps[%d]", i), Message: "key step without a key"}
		}
	}
	if s.Transcript != "" {
		if _, err := transcript.Parse(s.Name, []byte(s.Transcript)); err != nil {
			return &ValidationError{Field: "Transcript", Message: err.Error()}
		}
	}
	return nil
}

// Wait creates a step that holds the frame for d.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{Type: StepKey, Key: key}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{Type: StepKey, Key: key, Description: description}
}

// Type creates a typing step.
func Type(text string) Step {
	return Step{Type: StepTypeText, Text: text}
}

// Click creates a click step at terminal coordinates.
func Click(x, y int) Step {
	return Step{Type: StepClick, X: x, Y: y}
}

// Settle runs pending work for at most d.
func Settle(d time.Duration) Step {
	return Step{Type: StepSettle, Duration: d}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}

// Annotate captions the next captured frame.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}
