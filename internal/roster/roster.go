// internal/roster/roster.go
//
// The roster owns every employee record at Nexus Software Solutions and
// answers the queries the rest of the system asks of it: who is on a team,
// who is free, who knows what. Mutation is limited to task assignment, which
// keeps the availability rule in one place.

package roster

import "strings"

// Team is a closed classification. Fixture data is validated against this
// set at load time, so team queries cannot silently miss on a typo.
type Team string

const (
	TeamArchitecture    Team = "Architecture"
	TeamFrontend        Team = "Frontend"
	TeamBackend         Team = "Backend"
	TeamQA              Team = "QA"
	TeamDevOps          Team = "DevOps"
	TeamProduct         Team = "Product Management"
	TeamData            Team = "Data Analytics"
	TeamCustomerSuccess Team = "Customer Success"
	TeamExecutive       Team = "Executive"
	TeamSecurity        Team = "Security"
	TeamDesign          Team = "Design"
	TeamIntern          Team = "Intern"
)

// AllTeams returns every team in declaration order. Directory views iterate
// this so team sections always appear in the same order.
func AllTeams() []Team {
	return []Team{
		TeamArchitecture,
		TeamFrontend,
		TeamBackend,
		TeamQA,
		TeamDevOps,
		TeamProduct,
		TeamData,
		TeamCustomerSuccess,
		TeamExecutive,
		TeamSecurity,
		TeamDesign,
		TeamIntern,
	}
}

// ParseTeam resolves a fixture tag to a Team, case-insensitively.
func ParseTeam(value string) (Team, bool) {
	trimmed := strings.TrimSpace(value)
	for _, team := range AllTeams() {
		if strings.EqualFold(string(team), trimmed) {
			return team, true
		}
	}
	return "", false
}

func (t Team) String() string { return string(t) }

// Skill is a closed capability tag, technical and soft skills alike.
type Skill string

const (
	SkillPython        Skill = "Python"
	SkillJavaScript    Skill = "JavaScript"
	SkillTypeScript    Skill = "TypeScript"
	SkillReact         Skill = "React"
	SkillNodeJS        Skill = "Node.js"
	SkillDatabases     Skill = "Databases"
	SkillCloud         Skill = "Cloud Infrastructure"
	SkillSecurity      Skill = "Security"
	SkillTesting       Skill = "Testing"
	SkillDesign        Skill = "Design"
	SkillLeadership    Skill = "Leadership"
	SkillCommunication Skill = "Communication"
	SkillArchitecture  Skill = "Architecture"
	SkillDevOps        Skill = "DevOps"
	SkillDataAnalysis  Skill = "Data Analysis"
	SkillProjectMgmt   Skill = "Project Management"
	SkillUX            Skill = "UX Design"
	SkillUI            Skill = "UI Design"
)

// AllSkills returns every skill in declaration order.
func AllSkills() []Skill {
	return []Skill{
		SkillPython,
		SkillJavaScript,
		SkillTypeScript,
		SkillReact,
		SkillNodeJS,
		SkillDatabases,
		SkillCloud,
		SkillSecurity,
		SkillTesting,
		SkillDesign,
		SkillLeadership,
		SkillCommunication,
		SkillArchitecture,
		SkillDevOps,
		SkillDataAnalysis,
		SkillProjectMgmt,
		SkillUX,
		SkillUI,
	}
}

// ParseSkill resolves a fixture tag to a Skill, case-insensitively.
func ParseSkill(value string) (Skill, bool) {
	trimmed := strings.TrimSpace(value)
	for _, skill := range AllSkills() {
		if strings.EqualFold(string(skill), trimmed) {
			return skill, true
		}
	}
	return "", false
}

func (s Skill) String() string { return string(s) }

// Employee is one Nexus staff record. Traits and quirks are flavor text with
// no behavioral effect. CurrentTask empty means the employee is free;
// availability is derived from that, never stored separately.
type Employee struct {
	Name        string
	Role        string
	Team        Team
	Skills      []Skill
	Traits      []string
	Quirks      []string
	CurrentTask string
	Location    string
}

// Available reports whether the employee has no task in flight.
func (e *Employee) Available() bool {
	return e.CurrentTask == ""
}

// Introduction returns the one-line form used in dialogue and tour output.
func (e *Employee) Introduction() string {
	return e.Name + " - " + e.Role + " (" + e.Team.String() + ")"
}

// CanHelpWith reports whether the employee has at least one of the
// requested skills. An empty request matches nobody.
func (e *Employee) CanHelpWith(required []Skill) bool {
	for _, want := range required {
		for _, have := range e.Skills {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Roster holds the full employee list in hiring order. All query results
// preserve that order.
type Roster struct {
	employees []*Employee
}

// New builds a roster over the given employees. The slice is taken as-is;
// callers normally use Default() for the fixture set.
func New(employees []*Employee) *Roster {
	return &Roster{employees: employees}
}

// Len returns the headcount.
func (r *Roster) Len() int {
	return len(r.employees)
}

// All returns every employee in hiring order.
func (r *Roster) All() []*Employee {
	return r.employees
}

// FindByName looks up an employee by exact name, ignoring case. The fixture
// guarantees names are unique.
func (r *Roster) FindByName(name string) (*Employee, bool) {
	for _, emp := range r.employees {
		if strings.EqualFold(emp.Name, name) {
			return emp, true
		}
	}
	return nil, false
}

// TeamMembers returns everyone on the given team. An unknown tag simply
// matches nobody.
func (r *Roster) TeamMembers(team Team) []*Employee {
	var members []*Employee
	for _, emp := range r.employees {
		if emp.Team == team {
			members = append(members, emp)
		}
	}
	return members
}

// Available returns everyone with no task in flight.
func (r *Roster) Available() []*Employee {
	var free []*Employee
	for _, emp := range r.employees {
		if emp.Available() {
			free = append(free, emp)
		}
	}
	return free
}

// WithAnySkill returns everyone whose skill set intersects the request.
func (r *Roster) WithAnySkill(required []Skill) []*Employee {
	var experts []*Employee
	for _, emp := range r.employees {
		if emp.CanHelpWith(required) {
			experts = append(experts, emp)
		}
	}
	return experts
}

// AssignTask hands the named employee a task, marking them busy. Returns
// false when the employee is unknown.
func (r *Roster) AssignTask(name, task string) bool {
	emp, ok := r.FindByName(name)
	if !ok {
		return false
	}
	emp.CurrentTask = task
	return true
}

// CompleteTask clears the named employee's current task and returns it.
// Completing with nothing in flight is a no-op reported as ("", false).
func (r *Roster) CompleteTask(name string) (string, bool) {
	emp, ok := r.FindByName(name)
	if !ok || emp.CurrentTask == "" {
		return "", false
	}
	done := emp.CurrentTask
	emp.CurrentTask = ""
	return done, true
}

// TeamCounts returns headcount per team for teams that have members,
// keyed for summary reporting.
func (r *Roster) TeamCounts() map[Team]int {
	counts := make(map[Team]int)
	for _, emp := range r.employees {
		counts[emp.Team]++
	}
	return counts
}
