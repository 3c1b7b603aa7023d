package scenario

import (
	"fmt"
	"sort"

	"github.com/nexussoft/nexus-office/internal/nexus"
)

// Discover loads every scenario under dir, YAML and Go files alike, sorted
// by scenario name for stable menu ordering.
func Discover(dir string) ([]DefinitionFile, error) {
	yamlDefs, err := LoadDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	goDefs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	defs := append(yamlDefs, goDefs...)
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].Definition.Name < defs[j].Definition.Name
	})
	return defs, nil
}

// Play runs every step of the definition against the office, in order. The
// office must already be initialized; the first failing step stops playback.
func Play(office *nexus.Office, def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	for i, step := range def.Normalized().Steps {
		if err := playStep(office, step); err != nil {
			return fmt.Errorf("scenario: %s step[%d]: %w", def.Name, i, err)
		}
	}
	return nil
}

func playStep(office *nexus.Office, step Step) error {
	switch step.Kind {
	case StepNarration:
		return office.Narrate(step.Text)
	case StepDialogue:
		return office.Say(step.Location, step.Speaker, step.Message)
	case StepTour:
		return office.OfficeTour()
	case StepGreeting:
		return office.ReceptionGreeting()
	case StepProject:
		return office.StartProject(step.Project, step.Customer)
	case StepMeeting:
		return office.EmergencyMeeting(step.Topic)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}
