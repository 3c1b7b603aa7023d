// scenario/definition.go
//
// Scenarios are small scripted sequences played back through the office
// engine: dialogue, narration, tours, project kickoffs, emergency meetings.
// Users drop definitions into .nexus/scenarios/ as YAML files or as Go
// files evaluated by yaegi.

package scenario

import (
	"fmt"
	"strings"
)

// StepKind is the closed set of things a scenario step can do.
type StepKind string

const (
	StepNarration StepKind = "narration"
	StepDialogue  StepKind = "dialogue"
	StepTour      StepKind = "tour"
	StepGreeting  StepKind = "greeting"
	StepProject   StepKind = "project"
	StepMeeting   StepKind = "meeting"
)

// Step is one scripted action. Which fields matter depends on the kind.
type Step struct {
	Kind     StepKind `yaml:"kind"`
	Text     string   `yaml:"text,omitempty"`
	Location string   `yaml:"location,omitempty"`
	Speaker  string   `yaml:"speaker,omitempty"`
	Message  string   `yaml:"message,omitempty"`
	Project  string   `yaml:"project,omitempty"`
	Customer string   `yaml:"customer,omitempty"`
	Topic    string   `yaml:"topic,omitempty"`
}

// Definition is one named scenario.
type Definition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Validate checks the definition is playable.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("scenario: definition missing name")
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("scenario: %s declares no steps", d.Name)
	}
	for i, step := range d.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("scenario: %s step[%d]: %w", d.Name, i, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch StepKind(strings.ToLower(strings.TrimSpace(string(s.Kind)))) {
	case StepNarration:
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("narration step needs text")
		}
	case StepDialogue:
		if strings.TrimSpace(s.Speaker) == "" || strings.TrimSpace(s.Message) == "" {
			return fmt.Errorf("dialogue step needs speaker and message")
		}
	case StepProject:
		if strings.TrimSpace(s.Project) == "" || strings.TrimSpace(s.Customer) == "" {
			return fmt.Errorf("project step needs project and customer")
		}
	case StepMeeting:
		if strings.TrimSpace(s.Topic) == "" {
			return fmt.Errorf("meeting step needs a topic")
		}
	case StepTour, StepGreeting:
		// No fields required.
	default:
		return fmt.Errorf("unknown step kind %q", s.Kind)
	}
	return nil
}

// Normalized returns a copy with kinds lowercased and fields trimmed.
func (d Definition) Normalized() Definition {
	out := Definition{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Steps:       make([]Step, len(d.Steps)),
	}
	for i, step := range d.Steps {
		out.Steps[i] = Step{
			Kind:     StepKind(strings.ToLower(strings.TrimSpace(string(step.Kind)))),
			Text:     strings.TrimSpace(step.Text),
			Location: strings.TrimSpace(step.Location),
			Speaker:  strings.TrimSpace(step.Speaker),
			Message:  strings.TrimSpace(step.Message),
			Project:  strings.TrimSpace(step.Project),
			Customer: strings.TrimSpace(step.Customer),
			Topic:    strings.TrimSpace(step.Topic),
		}
	}
	return out
}
