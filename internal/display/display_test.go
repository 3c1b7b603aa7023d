package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nexussoft/nexus-office/internal/roster"
)

func newBufferedDisplay() (*Display, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(WithWriter(buf), WithWidth(60)), buf
}

func TestEmployeeCardContents(t *testing.T) {
	d, buf := newBufferedDisplay()
	emp := &roster.Employee{
		Name:     "Marcus Chen",
		Role:     "Senior Architecture Lead",
		Team:     roster.TeamArchitecture,
		Skills:   []roster.Skill{roster.SkillArchitecture, roster.SkillPython},
		Quirks:   []string{"Has model trains in office"},
		Location: "Architecture Lead Office",
	}
	d.EmployeeCard(emp)
	out := buf.String()
	for _, want := range []string{"Marcus Chen", "Senior Architecture Lead", "Architecture Lead Office", "Has model trains in office"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in card output:\n%s", want, out)
		}
	}
}

func TestEmployeeCardCapsSkillsAtFour(t *testing.T) {
	d, buf := newBufferedDisplay()
	emp := &roster.Employee{
		Name: "Kevin O'Brien",
		Role: "DevOps Lead",
		Team: roster.TeamDevOps,
		Skills: []roster.Skill{
			roster.SkillDevOps, roster.SkillCloud, roster.SkillSecurity,
			roster.SkillLeadership, roster.SkillPython,
		},
	}
	d.EmployeeCard(emp)
	if strings.Contains(buf.String(), roster.SkillPython.String()) {
		t.Fatalf("fifth skill should not appear on the card")
	}
}

func TestTeamRosterMarksAvailability(t *testing.T) {
	d, buf := newBufferedDisplay()
	free := &roster.Employee{Name: "Free Person", Role: "Tester", Team: roster.TeamQA}
	busy := &roster.Employee{Name: "Busy Person", Role: "Tester", Team: roster.TeamQA, CurrentTask: "triage"}
	d.TeamRoster("QA", []*roster.Employee{free, busy})
	out := buf.String()
	if !strings.Contains(out, "🟢") || !strings.Contains(out, "🔴") {
		t.Fatalf("expected both availability glyphs:\n%s", out)
	}
	if !strings.Contains(out, "(2 members)") {
		t.Fatalf("expected member count:\n%s", out)
	}
}

func TestStatusAndRuleWidth(t *testing.T) {
	d, buf := newBufferedDisplay()
	d.OfficeStatus(47, 40, 7)
	out := buf.String()
	for _, want := range []string{"47", "40", "7", "OFFICE STATUS"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in status output", want)
		}
	}
	buf.Reset()
	d.Separator()
	if !strings.Contains(buf.String(), strings.Repeat("─", 60)) {
		t.Fatalf("separator should honor configured width")
	}
}

func TestAssignmentLineShapes(t *testing.T) {
	d, buf := newBufferedDisplay()
	d.AssignmentLine("Grace Thompson", "Reception", true)
	d.AssignmentLine("Kelly Kapoor", "Reception", false)
	out := buf.String()
	if !strings.Contains(out, "✓") {
		t.Fatalf("expected seated glyph")
	}
	if !strings.Contains(out, "flexible seating") {
		t.Fatalf("expected flexible seating note")
	}
}

func TestDialogueFormat(t *testing.T) {
	d, buf := newBufferedDisplay()
	d.Dialogue("Reception", "Grace Thompson", "Welcome to Nexus!")
	out := buf.String()
	if !strings.Contains(out, "[Reception]") || !strings.Contains(out, "Grace Thompson:") {
		t.Fatalf("unexpected dialogue format:\n%s", out)
	}
}
