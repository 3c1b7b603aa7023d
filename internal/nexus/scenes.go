// internal/nexus/scenes.go
//
// Presentational operations: stateless beyond the ProjectsStarted counter,
// they render the office through the presenter. Every one of them fails
// loudly when called before Initialize.

package nexus

import (
	"fmt"
	"strings"

	"github.com/nexussoft/nexus-office/internal/roster"
)

// ShowOfficeLayout renders the floor plan grouped by category, with live
// occupancy counts.
func (o *Office) ShowOfficeLayout() error {
	if !o.Initialized() {
		o.display.Error("Office not initialized yet!")
		return ErrNotInitialized
	}
	o.display.Header(fmt.Sprintf("🏢 %s - OFFICE LAYOUT", strings.ToUpper(o.company.Name)))
	for _, cat := range o.layout.Categories() {
		o.display.Subheader(strings.ToUpper(cat.Name))
		for _, room := range o.layout.CategoryRooms(cat.Name) {
			o.display.RoomLine(room.Name, len(room.Occupants), room.Capacity, room.Amenities)
		}
	}
	o.display.Separator()
	return nil
}

// ShowEmployeeDirectory renders every team's roster in team order.
func (o *Office) ShowEmployeeDirectory() error {
	if !o.Initialized() {
		o.display.Error("Office not initialized yet!")
		return ErrNotInitialized
	}
	o.display.Header("EMPLOYEE DIRECTORY")
	for _, team := range roster.AllTeams() {
		members := o.staff.TeamMembers(team)
		if len(members) > 0 {
			o.display.TeamRoster(team.String(), members)
		}
	}
	return nil
}

// ShowTeam renders one team's member cards.
func (o *Office) ShowTeam(team roster.Team) error {
	if !o.Initialized() {
		o.display.Error("Office not initialized yet!")
		return ErrNotInitialized
	}
	o.display.Header(fmt.Sprintf("%s TEAM", strings.ToUpper(team.String())))
	for _, emp := range o.staff.TeamMembers(team) {
		o.display.EmployeeCard(emp)
	}
	return nil
}

// ReceptionGreeting plays the canned reception line.
func (o *Office) ReceptionGreeting() error {
	if !o.Initialized() {
		o.display.Error("Office not initialized yet!")
		return ErrNotInitialized
	}
	o.display.Dialogue(
		"NEXUS OFFICE - Reception, 9:00 AM",
		"Reception",
		fmt.Sprintf("Good morning, %s, how may I direct your call?", o.company.Name),
	)
	return nil
}

// StartProject announces a new customer project and bumps the project
// counter. No other state changes; the announcement is the whole event.
func (o *Office) StartProject(projectName, customer string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		o.display.Error("Office not initialized yet! Please run Initialize first.")
		return ErrNotInitialized
	}
	o.projectsStarted++
	o.display.ProjectBanner(projectName, customer)
	o.display.Dialogue(
		"Product Director Office",
		"Diana Foster",
		fmt.Sprintf("Excellent! We have a new project: '%s' for %s. Let me gather the team...", projectName, customer),
	)
	o.log.Printf("project started: %q for %s", projectName, customer)
	return nil
}

// EmergencyMeeting summons everyone to The War Room.
func (o *Office) EmergencyMeeting(topic string) error {
	if !o.Initialized() {
		o.display.Error("Office not initialized yet!")
		return ErrNotInitialized
	}
	o.display.Header("🚨 EMERGENCY MEETING 🚨")
	o.display.Narration("*Slack notification pings across the office*")
	o.display.Dialogue(
		"Slack - #general",
		"Diana Foster",
		fmt.Sprintf("@channel Emergency meeting in The War Room NOW. Topic: %s", topic),
	)
	o.display.Narration("*Employees stream toward The War Room, coffee cups in hand*")
	if warRoom, ok := o.layout.Room("The War Room"); ok {
		o.display.Subheader("The War Room - All Hands Meeting")
		o.display.Info(fmt.Sprintf("Capacity: %d (currently packed with %d people)", warRoom.Capacity, o.staff.Len()))
		o.display.Info(fmt.Sprintf("Topic: %s", topic))
	}
	o.log.Printf("emergency meeting: %s", topic)
	return nil
}

// Say renders an arbitrary located line of dialogue. Scenario playback
// uses this for scripted speech.
func (o *Office) Say(location, speaker, message string) error {
	if !o.Initialized() {
		o.display.Error("Office not initialized yet!")
		return ErrNotInitialized
	}
	o.display.Dialogue(location, speaker, message)
	return nil
}

// Narrate renders a line of stage direction.
func (o *Office) Narrate(text string) error {
	if !o.Initialized() {
		o.display.Error("Office not initialized yet!")
		return ErrNotInitialized
	}
	o.display.Narration(text)
	return nil
}

type tourStop struct {
	room        string
	description string
}

var tourStops = []tourStop{
	{"Reception", "The welcoming entrance with marble desk and comfortable seating"},
	{"Frontend Team Pod", "Where Sarah's team crafts beautiful user interfaces"},
	{"Backend Team Pod", "Roberto and team building robust server architecture"},
	{"QA Testing Lab", "Jessica's domain - where bugs come to die"},
	{"DevOps Pod", "Kevin's command center - keeping everything running smoothly"},
	{"Design Studio", "Paulo's creative space with color-calibrated monitors"},
	{"The War Room", "For intense planning sessions and critical decisions"},
	{"Kitchen", "Coffee machines, espresso bar, and snacks - the true heart of any tech company"},
}

// OfficeTour walks the visitor past the usual stops, naming a few of the
// people seated at each one.
func (o *Office) OfficeTour() error {
	if !o.Initialized() {
		o.display.Error("Office not initialized yet!")
		return ErrNotInitialized
	}
	o.display.Header("OFFICE TOUR")
	o.display.Narration(fmt.Sprintf("*Walking through the glass doors onto the %dth floor*", o.company.Floor))
	for _, stop := range tourStops {
		room, ok := o.layout.Room(stop.room)
		if !ok {
			continue
		}
		o.display.Subheader("📍 " + stop.room)
		o.display.Info(stop.description)
		if len(room.Occupants) > 0 {
			here := room.Occupants
			extra := 0
			if len(here) > 3 {
				extra = len(here) - 3
				here = here[:3]
			}
			line := "Currently here: " + strings.Join(here, ", ")
			if extra > 0 {
				line += fmt.Sprintf(" and %d others", extra)
			}
			o.display.Info(line)
		}
	}
	o.display.Separator()
	o.display.Narration("*Tour complete. Floor-to-ceiling windows offer stunning city views*")
	return nil
}
