package scenario

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nexussoft/nexus-office/internal/display"
	"github.com/nexussoft/nexus-office/internal/nexus"
)

func newRunningOffice(t *testing.T) (*nexus.Office, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	office := nexus.New(display.New(display.WithWriter(buf)))
	office.Initialize()
	buf.Reset()
	return office, buf
}

func TestPlayRunsEveryStep(t *testing.T) {
	office, buf := newRunningOffice(t)
	def := Definition{
		Name: "kickoff",
		Steps: []Step{
			{Kind: StepNarration, Text: "*A new week begins*"},
			{Kind: StepDialogue, Location: "Kitchen", Speaker: "Roberto Silva", Message: "Bom dia!"},
			{Kind: StepProject, Project: "Billing Revamp", Customer: "Acme Corp"},
		},
	}
	if err := Play(office, def); err != nil {
		t.Fatalf("play: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"A new week begins", "Roberto Silva", "Billing Revamp", "Acme Corp"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in playback output", want)
		}
	}
	if got := office.Status().ProjectsStarted; got != 1 {
		t.Fatalf("project step should count, got %d", got)
	}
}

func TestPlayRejectsInvalidDefinition(t *testing.T) {
	office, _ := newRunningOffice(t)
	def := Definition{Name: "broken", Steps: []Step{{Kind: "teleport"}}}
	if err := Play(office, def); err == nil {
		t.Fatalf("expected invalid step kind to fail")
	}
}

func TestPlayFailsBeforeInitialize(t *testing.T) {
	office := nexus.New(display.New(display.WithWriter(&bytes.Buffer{})))
	def := Definition{Name: "early", Steps: []Step{{Kind: StepGreeting}}}
	err := Play(office, def)
	if !errors.Is(err, nexus.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
