// internal/nexus/nexus.go
//
// The Nexus engine coordinates the whole simulation: it builds the office
// layout, materializes the employee roster, seats everyone, and answers
// combined queries. All mutable state lives on the Office value; there are
// no package-level singletons, so tests (and anyone who wants two offices)
// can run independent instances side by side.

package nexus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nexussoft/nexus-office/internal/office"
	"github.com/nexussoft/nexus-office/internal/roster"
)

// ErrNotInitialized is returned by queries and display operations invoked
// before Initialize has run.
var ErrNotInitialized = errors.New("nexus: office not initialized")

// Presenter is the rendering surface the engine talks to. The engine hands
// over structured values; color, layout, and glyphs are the presenter's
// business entirely.
type Presenter interface {
	Header(text string)
	Subheader(text string)
	Success(text string)
	Info(text string)
	Warning(text string)
	Error(text string)
	Narration(text string)
	Separator()
	Dialogue(location, speaker, message string)
	EmployeeCard(emp *roster.Employee)
	TeamRoster(teamName string, members []*roster.Employee)
	OfficeStatus(total, available, busy int)
	RoomLine(name string, occupants, capacity int, amenities []string)
	ConstructionLine(text string)
	AssignmentLine(name, room string, seated bool)
	ProjectBanner(projectName, customer string)
	WelcomeBanner(company, tagline, address string)
}

// ActivityLog receives one line per notable engine event. The logging
// package's file logger satisfies it; tests pass nil.
type ActivityLog interface {
	Printf(format string, args ...any)
}

// Company identifies the firm on the banners.
type Company struct {
	Name    string
	Tagline string
	Floor   int
	Address string
}

// Assignment records one workspace-seating outcome from initialization.
// Failures are reporting detail only; the employee keeps working, just
// without a recorded seat.
type Assignment struct {
	Employee string
	Room     string
	Seated   bool
}

// Report is the status snapshot returned by Status.
type Report struct {
	Initialized     bool
	TotalEmployees  int
	Available       int
	Busy            int
	TotalRooms      int
	TotalCapacity   int
	ProjectsStarted int
}

// Option customizes an Office at construction time.
type Option func(*Office)

// WithLog attaches an activity log.
func WithLog(log ActivityLog) Option {
	return func(o *Office) {
		if log != nil {
			o.log = log
		}
	}
}

// WithCompany overrides the default company identity.
func WithCompany(company Company) Option {
	return func(o *Office) {
		o.company = company
	}
}

// WithFixtures overrides the embedded fixture data, mainly for tests.
func WithFixtures(staff *roster.Roster, layout *office.Layout) Option {
	return func(o *Office) {
		o.fixtureStaff = staff
		o.fixtureLayout = layout
	}
}

// Office is the simulation engine. Mutating operations take the mutex, so
// the TUI's command goroutines cannot race the capacity check or the
// availability rule.
type Office struct {
	mu sync.Mutex

	display Presenter
	log     ActivityLog
	company Company

	fixtureStaff  *roster.Roster
	fixtureLayout *office.Layout

	staff  *roster.Roster
	layout *office.Layout

	initialized     bool
	projectsStarted int
	assignments     []Assignment
}

// New creates an Office that renders through the given presenter. The
// office is empty until Initialize runs.
func New(display Presenter, opts ...Option) *Office {
	o := &Office{
		display: display,
		log:     noopLog{},
		company: Company{
			Name:    "Nexus Software Solutions",
			Tagline: "Professional Software Development Services",
			Floor:   14,
			Address: "Downtown Tech District",
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type noopLog struct{}

func (noopLog) Printf(string, ...any) {}

// Initialize builds the layout, hires the roster, and seats every employee
// in their declared location, in hiring order. A second call is a warning
// no-op; nothing is rebuilt or reseated.
func (o *Office) Initialize() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.initialized {
		o.display.Warning("Office already initialized!")
		o.log.Printf("initialize skipped: already initialized")
		return
	}

	o.display.WelcomeBanner(o.company.Name, o.company.Tagline, fmt.Sprintf("%dth Floor, %s", o.company.Floor, o.company.Address))
	o.display.Header("NEXUS OFFICE INITIALIZATION SEQUENCE")

	o.display.Info("PHASE 1: Office Construction")
	o.layout = o.fixtureLayout
	if o.layout == nil {
		o.layout = office.Default()
	}
	o.narrateConstruction()
	o.log.Printf("constructed %d rooms, capacity %d", o.layout.RoomCount(), o.layout.TotalCapacity())

	o.display.Info("PHASE 2: Employee Initialization")
	o.staff = o.fixtureStaff
	if o.staff == nil {
		o.staff = roster.Default()
	}
	o.display.Success(fmt.Sprintf("Hired and onboarded %d employees", o.staff.Len()))
	o.log.Printf("onboarded %d employees", o.staff.Len())

	o.display.Info("PHASE 3: Workspace Assignment")
	o.assignWorkspaces()

	o.initialized = true
	o.display.Header("✨ NEXUS SOFTWARE SOLUTIONS IS OPERATIONAL ✨")
	o.renderSummary()
	o.log.Printf("initialization complete")
}

var constructionLines = map[string]string{
	"Reception":        "Building reception area with marble desk...",
	"Conference Rooms": "Constructing conference rooms...",
	"Team Pods":        "Setting up team pods with ergonomic furniture...",
	"Private Offices":  "Constructing private offices with floor-to-ceiling windows...",
	"Common Areas":     "Installing common areas and amenities...",
}

func (o *Office) narrateConstruction() {
	for _, cat := range o.layout.Categories() {
		if line, ok := constructionLines[cat.Name]; ok {
			o.display.ConstructionLine(line)
		}
	}
	o.display.ConstructionLine("Installing gigabit ethernet, WiFi 6, and power infrastructure...")
	o.display.ConstructionLine("Setting up climate control and LED lighting systems...")
	o.display.ConstructionLine("Office construction COMPLETE! ✨")
}

// assignWorkspaces seats every employee in their declared location. A full
// or unknown room is logged as flexible seating and the sequence moves on;
// the employee simply has no recorded seat.
func (o *Office) assignWorkspaces() {
	for _, emp := range o.staff.All() {
		seated := o.layout.Assign(emp.Name, emp.Location)
		o.assignments = append(o.assignments, Assignment{
			Employee: emp.Name,
			Room:     emp.Location,
			Seated:   seated,
		})
		o.display.AssignmentLine(emp.Name, emp.Location, seated)
		if !seated {
			o.log.Printf("flexible seating: %s could not be placed in %s", emp.Name, emp.Location)
		}
	}
}

func (o *Office) renderSummary() {
	available := len(o.staff.Available())
	busy := o.staff.Len() - available
	o.display.OfficeStatus(o.staff.Len(), available, busy)

	o.display.Subheader("🏢 Office Layout")
	for _, cat := range o.layout.Categories() {
		o.display.Info(fmt.Sprintf("%s: %d rooms", cat.Name, len(cat.Rooms)))
	}
	o.display.Info(fmt.Sprintf("Total rooms: %d, total capacity: %d", o.layout.RoomCount(), o.layout.TotalCapacity()))

	o.display.Subheader("👥 Team Composition")
	counts := o.staff.TeamCounts()
	for _, team := range roster.AllTeams() {
		if n := counts[team]; n > 0 {
			o.display.Info(fmt.Sprintf("%-25s %2d members", team.String(), n))
		}
	}

	o.display.Separator()
	o.display.Success("All systems operational. Ready for customer projects!")
}

// Initialized reports whether Initialize has completed.
func (o *Office) Initialized() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.initialized
}

// Roster exposes the employee collection once the office is up.
func (o *Office) Roster() (*roster.Roster, error) {
	if !o.Initialized() {
		return nil, ErrNotInitialized
	}
	return o.staff, nil
}

// Layout exposes the room catalogue once the office is up.
func (o *Office) Layout() (*office.Layout, error) {
	if !o.Initialized() {
		return nil, ErrNotInitialized
	}
	return o.layout, nil
}

// Assignments returns the per-employee seating record from initialization.
func (o *Office) Assignments() ([]Assignment, error) {
	if !o.Initialized() {
		return nil, ErrNotInitialized
	}
	return o.assignments, nil
}

// Employee looks an employee up by name, case-insensitively.
func (o *Office) Employee(name string) (*roster.Employee, bool, error) {
	if !o.Initialized() {
		return nil, false, ErrNotInitialized
	}
	emp, ok := o.staff.FindByName(name)
	return emp, ok, nil
}

// Team returns the members of one team in hiring order.
func (o *Office) Team(team roster.Team) ([]*roster.Employee, error) {
	if !o.Initialized() {
		return nil, ErrNotInitialized
	}
	return o.staff.TeamMembers(team), nil
}

// AvailableEmployees returns everyone with no task in flight.
func (o *Office) AvailableEmployees() ([]*roster.Employee, error) {
	if !o.Initialized() {
		return nil, ErrNotInitialized
	}
	return o.staff.Available(), nil
}

// FindExperts returns everyone holding at least one of the given skills.
func (o *Office) FindExperts(skills []roster.Skill) ([]*roster.Employee, error) {
	if !o.Initialized() {
		return nil, ErrNotInitialized
	}
	return o.staff.WithAnySkill(skills), nil
}

// AssignTask hands the named employee a task, marking them busy.
func (o *Office) AssignTask(name, task string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return ErrNotInitialized
	}
	if !o.staff.AssignTask(name, task) {
		return fmt.Errorf("nexus: no employee named %q", name)
	}
	o.log.Printf("task assigned: %s -> %s", name, task)
	return nil
}

// CompleteTask clears the named employee's task and returns it. Completing
// with nothing in flight reports ("", false) and changes nothing.
func (o *Office) CompleteTask(name string) (string, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return "", false, ErrNotInitialized
	}
	done, ok := o.staff.CompleteTask(name)
	if ok {
		o.log.Printf("task completed: %s finished %q", name, done)
	}
	return done, ok, nil
}

// Status returns the current snapshot. It never fails; before
// initialization the report just says so.
func (o *Office) Status() Report {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return Report{}
	}
	available := len(o.staff.Available())
	return Report{
		Initialized:     true,
		TotalEmployees:  o.staff.Len(),
		Available:       available,
		Busy:            o.staff.Len() - available,
		TotalRooms:      o.layout.RoomCount(),
		TotalCapacity:   o.layout.TotalCapacity(),
		ProjectsStarted: o.projectsStarted,
	}
}
