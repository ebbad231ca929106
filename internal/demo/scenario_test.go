package demo

import (
	"errors"
	"testing"
	"time"
)

func TestScenarioValidate(t *testing.T) {
	valid := func() *Scenario {
		return &Scenario{Name: "ok", Width: 80, Height: 24, Steps: []Step{Capture()}}
	}

	tests := []struct {
		name   string
		modify func(s *Scenario)
		field  string
	}{
		{"valid", func(s *Scenario) {}, ""},
		{"missing name", func(s *Scenario) { s.Name = "" }, "Name"},
		{"too narrow", func(s *Scenario) { s.Width = 10 }, "Size"},
		{"too short", func(s *Scenario) { s.Height = 2 }, "Size"},
		{"no steps", func(s *Scenario) { s.Steps = nil }, "Steps"},
		{"empty key", func(s *Scenario) { s.Steps = []Step{Key("")} }, "Steps[0]"},
		{"bad transcript", func(s *Scenario) { s.Transcript = "messages: [" }, "Transcript"},
		{"good transcript", func(s *Scenario) { s.Transcript = "peer: bob\nmessages:\n  - text: hi\n" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.modify(s)
			err := s.Validate()

			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want Step
	}{
		{"wait", Wait(time.Second), Step{Type: StepWait, Duration: time.Second}},
		{"key", Key("tab"), Step{Type: StepKey, Key: "tab"}},
		{"key with desc", KeyWithDesc("r", "reply"), Step{Type: StepKey, Key: "r", Description: "reply"}},
		{"type", Type("hi"), Step{Type: StepTypeText, Text: "hi"}},
		{"click", Click(3, 4), Step{Type: StepClick, X: 3, Y: 4}},
		{"settle", Settle(time.Second), Step{Type: StepSettle, Duration: time.Second}},
		{"capture", Capture(), Step{Type: StepCapture}},
		{"annotate", Annotate("note"), Step{Type: StepAnnotate, Annotation: "note"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step != tt.want {
				t.Errorf("got %+v, want %+v", tt.step, tt.want)
			}
		})
	}
}
