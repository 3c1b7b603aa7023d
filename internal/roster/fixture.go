package roster

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed employees.yaml
var defaultEmployeesYAML []byte

type employeeRecord struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Team     string   `yaml:"team"`
	Skills   []string `yaml:"skills"`
	Traits   []string `yaml:"traits"`
	Quirks   []string `yaml:"quirks"`
	Location string   `yaml:"location"`
}

type rosterDocument struct {
	Employees []employeeRecord `yaml:"employees"`
}

// ParseRosterYAML decodes an employee fixture document and validates every
// team and skill tag against the closed sets.
func ParseRosterYAML(data []byte) (*Roster, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("roster: fixture payload is empty")
	}
	var doc rosterDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("roster: decode fixture: %w", err)
	}
	if len(doc.Employees) == 0 {
		return nil, fmt.Errorf("roster: fixture declares no employees")
	}
	employees := make([]*Employee, 0, len(doc.Employees))
	seen := make(map[string]struct{}, len(doc.Employees))
	for i, rec := range doc.Employees {
		emp, err := rec.materialize()
		if err != nil {
			return nil, fmt.Errorf("roster: employee[%d]: %w", i, err)
		}
		key := normalizeName(emp.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("roster: duplicate employee name %q", emp.Name)
		}
		seen[key] = struct{}{}
		employees = append(employees, emp)
	}
	return New(employees), nil
}

func (rec employeeRecord) materialize() (*Employee, error) {
	if rec.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if rec.Role == "" {
		return nil, fmt.Errorf("%s: missing role", rec.Name)
	}
	team, ok := ParseTeam(rec.Team)
	if !ok {
		return nil, fmt.Errorf("%s: unknown team %q", rec.Name, rec.Team)
	}
	skills := make([]Skill, 0, len(rec.Skills))
	for _, tag := range rec.Skills {
		skill, ok := ParseSkill(tag)
		if !ok {
			return nil, fmt.Errorf("%s: unknown skill %q", rec.Name, tag)
		}
		skills = append(skills, skill)
	}
	return &Employee{
		Name:     rec.Name,
		Role:     rec.Role,
		Team:     team,
		Skills:   skills,
		Traits:   rec.Traits,
		Quirks:   rec.Quirks,
		Location: rec.Location,
	}, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Default materializes the embedded 47-employee fixture. The fixture ships
// inside the binary, so a decode failure is a programming error.
func Default() *Roster {
	r, err := ParseRosterYAML(defaultEmployeesYAML)
	if err != nil {
		panic(fmt.Sprintf("roster: embedded fixture invalid: %v", err))
	}
	return r
}
