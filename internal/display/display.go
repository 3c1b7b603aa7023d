// internal/display/display.go
//
// Terminal presentation for the office simulation. The coordinator hands
// this package structured values (employees, rosters, status counts) and it
// decides layout, color, and glyphs with lipgloss. Nothing here mutates
// simulation state.

package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nexussoft/nexus-office/internal/roster"
)

const defaultLineWidth = 70

// Display renders every visual surface of the simulation to a single writer.
type Display struct {
	out   io.Writer
	width int

	header    lipgloss.Style
	subheader lipgloss.Style
	success   lipgloss.Style
	info      lipgloss.Style
	warning   lipgloss.Style
	errStyle  lipgloss.Style
	dim       lipgloss.Style
	bold      lipgloss.Style
	accent    lipgloss.Style
	banner    lipgloss.Style
}

// Option adjusts a Display at construction time.
type Option func(*Display)

// WithWriter redirects output away from stdout, mainly for tests.
func WithWriter(w io.Writer) Option {
	return func(d *Display) {
		if w != nil {
			d.out = w
		}
	}
}

// WithWidth overrides the rule and banner width.
func WithWidth(width int) Option {
	return func(d *Display) {
		if width > 0 {
			d.width = width
		}
	}
}

// New builds a Display writing to stdout unless overridden.
func New(opts ...Option) *Display {
	d := &Display{
		out:       os.Stdout,
		width:     defaultLineWidth,
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		subheader: lipgloss.NewStyle().Bold(true),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#50C878")),
		info:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7FDBFF")),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166")),
		errStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		dim:       lipgloss.NewStyle().Faint(true),
		bold:      lipgloss.NewStyle().Bold(true),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7FDBFF")),
		banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C77DFF")),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Display) rule(char string) string {
	return strings.Repeat(char, d.width)
}

func (d *Display) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

// Header prints a full-width section header.
func (d *Display) Header(text string) {
	d.printf("\n%s\n", d.header.Render(d.rule("=")))
	d.printf("%s\n", d.header.Render("  "+text))
	d.printf("%s\n\n", d.header.Render(d.rule("=")))
}

// Subheader prints a lighter section break.
func (d *Display) Subheader(text string) {
	d.printf("\n%s\n%s\n", d.subheader.Render(text), d.rule("-"))
}

// Success prints a checked confirmation line.
func (d *Display) Success(text string) {
	d.printf("%s\n", d.success.Render("✓ "+text))
}

// Info prints an informational line.
func (d *Display) Info(text string) {
	d.printf("%s\n", d.info.Render("ℹ "+text))
}

// Warning prints a cautionary line.
func (d *Display) Warning(text string) {
	d.printf("%s\n", d.warning.Render("⚠ "+text))
}

// Error prints a failure line.
func (d *Display) Error(text string) {
	d.printf("%s\n", d.errStyle.Render("✗ "+text))
}

// Narration prints dimmed stage direction.
func (d *Display) Narration(text string) {
	d.printf("\n%s\n", d.dim.Render(text))
}

// Separator prints a dimmed horizontal rule.
func (d *Display) Separator() {
	d.printf("\n%s\n\n", d.dim.Render(d.rule("─")))
}

// Dialogue prints a located line of speech.
func (d *Display) Dialogue(location, speaker, message string) {
	d.printf("\n%s\n", d.dim.Render("["+location+"]"))
	d.printf("%s %s\n", d.bold.Render(speaker+":"), message)
}

// EmployeeCard prints one employee's details. Only the first four skills
// and the first quirk make the card; the rest is directory noise.
func (d *Display) EmployeeCard(emp *roster.Employee) {
	d.printf("\n  %s\n", d.bold.Render(emp.Name))
	d.printf("  Role: %s\n", emp.Role)
	d.printf("  Team: %s\n", d.accent.Render(emp.Team.String()))
	d.printf("  Location: %s\n", emp.Location)
	skills := emp.Skills
	if len(skills) > 4 {
		skills = skills[:4]
	}
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.String()
	}
	d.printf("  Skills: %s\n", strings.Join(names, ", "))
	if len(emp.Quirks) > 0 {
		d.printf("  Quirk: %s\n", d.warning.Render(emp.Quirks[0]))
	}
}

// TeamRoster prints a team section with per-member availability glyphs.
func (d *Display) TeamRoster(teamName string, members []*roster.Employee) {
	d.printf("\n%s (%d members)\n", d.accent.Bold(true).Render(teamName), len(members))
	for _, emp := range members {
		glyph := "🟢"
		if !emp.Available() {
			glyph = "🔴"
		}
		d.printf("  %s %-25s - %s\n", glyph, emp.Name, emp.Role)
	}
}

// OfficeStatus prints the headline staffing counts.
func (d *Display) OfficeStatus(total, available, busy int) {
	d.printf("\n%s\n", d.bold.Render("📊 OFFICE STATUS"))
	d.printf("  Total Employees: %d\n", total)
	d.printf("  Available: %s\n", d.success.Render(fmt.Sprintf("%d", available)))
	d.printf("  Busy: %s\n", d.warning.Render(fmt.Sprintf("%d", busy)))
}

// RoomLine prints one floor-plan entry with occupancy and lead amenities.
func (d *Display) RoomLine(name string, occupants, capacity int, amenities []string) {
	lead := amenities
	if len(lead) > 2 {
		lead = lead[:2]
	}
	occupancy := fmt.Sprintf("%d/%d", occupants, capacity)
	d.printf("  • %-30s [%6s] - %s\n", name, occupancy, strings.Join(lead, ", "))
}

// ConstructionLine prints one build-progress line.
func (d *Display) ConstructionLine(text string) {
	d.printf("  🔨 %s\n", text)
}

// AssignmentLine prints one workspace-assignment result.
func (d *Display) AssignmentLine(name, room string, seated bool) {
	if seated {
		d.printf("    ✓ %-30s → %s\n", name, room)
	} else {
		d.printf("    ⚠ %-30s → %s (room full, flexible seating)\n", name, room)
	}
}

// ProjectBanner prints the new-project announcement block.
func (d *Display) ProjectBanner(projectName, customer string) {
	d.printf("\n%s\n", d.banner.Render(d.rule("=")))
	d.printf("%s\n", d.banner.Render("  📋 PROJECT: "+projectName))
	d.printf("%s\n", d.banner.Render("  👤 CUSTOMER: "+customer))
	d.printf("%s\n\n", d.banner.Render(d.rule("=")))
}

// WelcomeBanner prints the company masthead.
func (d *Display) WelcomeBanner(company, tagline, address string) {
	d.printf("\n%s\n\n", d.banner.Render(d.rule("=")))
	d.printf("%s\n", d.banner.Render(center(company, d.width)))
	d.printf("%s\n\n", d.banner.Render(center(tagline, d.width)))
	d.printf("%s\n", d.dim.Render(center(address, d.width)))
	d.printf("%s\n", d.dim.Render(center("Ready to serve you", d.width)))
	d.printf("\n%s\n\n", d.banner.Render(d.rule("=")))
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}
