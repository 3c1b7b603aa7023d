// internal/tui/app.go
//
// The interactive menu for the office simulation. It follows The Elm
// Architecture via bubbletea:
//
// 1. Model: the App struct below
// 2. Update: key and window messages move between menu, prompt, and output
// 3. View: the menu list, a text prompt, or a scrollable output viewport
//
// Engine output is captured in a buffer (the display writes there instead
// of stdout) and shown in the viewport after each action.

package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nexussoft/nexus-office/internal/config"
	"github.com/nexussoft/nexus-office/internal/display"
	"github.com/nexussoft/nexus-office/internal/nexus"
	"github.com/nexussoft/nexus-office/internal/roster"
	"github.com/nexussoft/nexus-office/scenario"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateMenu      appState = iota // main menu
	stateTeamMenu                  // team picker
	stateScenarios                 // scenario picker
	statePrompt                    // collecting text input for an action
	stateOutput                    // showing captured engine output
)

type action int

const (
	actInitialize action = iota
	actLayout
	actDirectory
	actTour
	actTeam
	actReception
	actProject
	actMeeting
	actStatus
	actScenarios
	actQuit
)

type menuItem struct {
	title string
	desc  string
	act   action
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

type teamItem struct {
	team roster.Team
}

func (i teamItem) Title() string       { return i.team.String() }
func (i teamItem) Description() string { return "View the " + i.team.String() + " team" }
func (i teamItem) FilterValue() string { return i.team.String() }

type scenarioItem struct {
	def scenario.DefinitionFile
}

func (i scenarioItem) Title() string { return i.def.Definition.Name }
func (i scenarioItem) Description() string {
	if i.def.Definition.Description != "" {
		return i.def.Definition.Description
	}
	return i.def.Path
}
func (i scenarioItem) FilterValue() string { return i.def.Definition.Name }

// App is the main application model.
type App struct {
	cfg    *config.Config
	office *nexus.Office
	sink   *bytes.Buffer

	state     appState
	menu      list.Model
	teams     list.Model
	scenarios list.Model
	input     textinput.Model
	output    viewport.Model

	// prompt bookkeeping for multi-field actions
	promptAction action
	promptStage  int
	projectName  string

	width  int
	height int
	ready  bool
	err    error
}

// NewApp wires the engine to an in-memory display sink and builds the menu.
func NewApp(cfg *config.Config, office *nexus.Office, sink *bytes.Buffer) *App {
	items := []list.Item{
		menuItem{"Initialize Office", "Build the floor, hire the staff, assign seats", actInitialize},
		menuItem{"Office Layout", "View the complete floor plan", actLayout},
		menuItem{"Employee Directory", "See all 47 employees by team", actDirectory},
		menuItem{"Office Tour", "Take a guided walk around the floor", actTour},
		menuItem{"View Team", "Look at one team's member cards", actTeam},
		menuItem{"Reception", "Hear from the front desk", actReception},
		menuItem{"Start Project", "Kick off a new customer project", actProject},
		menuItem{"Emergency Meeting", "Summon everyone to The War Room", actMeeting},
		menuItem{"Office Status", "Headcount, availability, capacity", actStatus},
		menuItem{"Scenarios", "Play a scripted scenario from .nexus/scenarios", actScenarios},
		menuItem{"Quit", "Leave the building", actQuit},
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = cfg.Office.Company.Name
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	teamItems := make([]list.Item, 0, len(roster.AllTeams()))
	for _, team := range roster.AllTeams() {
		teamItems = append(teamItems, teamItem{team: team})
	}
	teams := list.New(teamItems, list.NewDefaultDelegate(), 0, 0)
	teams.Title = "Teams"
	teams.SetShowStatusBar(false)
	teams.SetFilteringEnabled(false)

	scenarios := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	scenarios.Title = "Scenarios"
	scenarios.SetShowStatusBar(false)
	scenarios.SetFilteringEnabled(false)

	input := textinput.New()
	input.CharLimit = 80

	return &App{
		cfg:       cfg,
		office:    office,
		sink:      sink,
		menu:      menu,
		teams:     teams,
		scenarios: scenarios,
		input:     input,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width, msg.Height-2)
		a.teams.SetSize(msg.Width, msg.Height-2)
		a.scenarios.SetSize(msg.Width, msg.Height-2)
		a.output = viewport.New(msg.Width, msg.Height-3)
		a.ready = true
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "enter":
			item, ok := a.menu.SelectedItem().(menuItem)
			if !ok {
				return a, nil
			}
			return a.runAction(item.act)
		}
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd
	case stateTeamMenu:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc", "q":
			a.state = stateMenu
			return a, nil
		case "enter":
			if item, ok := a.teams.SelectedItem().(teamItem); ok {
				a.err = a.office.ShowTeam(item.team)
				return a.showOutput()
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.teams, cmd = a.teams.Update(msg)
		return a, cmd
	case stateScenarios:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc", "q":
			a.state = stateMenu
			return a, nil
		case "enter":
			if item, ok := a.scenarios.SelectedItem().(scenarioItem); ok {
				a.err = scenario.Play(a.office, item.def.Definition)
				return a.showOutput()
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.scenarios, cmd = a.scenarios.Update(msg)
		return a, cmd
	case statePrompt:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			a.state = stateMenu
			return a, nil
		case "enter":
			return a.submitPrompt()
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	case stateOutput:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc", "q", "enter":
			a.state = stateMenu
			return a, nil
		}
		var cmd tea.Cmd
		a.output, cmd = a.output.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) runAction(act action) (tea.Model, tea.Cmd) {
	a.err = nil
	switch act {
	case actQuit:
		return a, tea.Quit
	case actInitialize:
		a.office.Initialize()
		return a.showOutput()
	case actLayout:
		a.err = a.office.ShowOfficeLayout()
		return a.showOutput()
	case actDirectory:
		a.err = a.office.ShowEmployeeDirectory()
		return a.showOutput()
	case actTour:
		a.err = a.office.OfficeTour()
		return a.showOutput()
	case actTeam:
		a.state = stateTeamMenu
		return a, nil
	case actReception:
		a.err = a.office.ReceptionGreeting()
		return a.showOutput()
	case actStatus:
		a.renderStatus()
		return a.showOutput()
	case actProject:
		return a.startPrompt(actProject, "Project name")
	case actMeeting:
		return a.startPrompt(actMeeting, "Meeting topic")
	case actScenarios:
		defs, err := scenario.Discover(a.cfg.ScenariosDir())
		if err != nil {
			a.err = err
			return a.showOutput()
		}
		if len(defs) == 0 {
			a.err = fmt.Errorf("tui: no scenarios found in %s", a.cfg.ScenariosDir())
			return a.showOutput()
		}
		items := make([]list.Item, len(defs))
		for i, def := range defs {
			items[i] = scenarioItem{def: def}
		}
		a.scenarios.SetItems(items)
		a.state = stateScenarios
		return a, nil
	}
	return a, nil
}

func (a *App) startPrompt(act action, placeholder string) (tea.Model, tea.Cmd) {
	a.promptAction = act
	a.promptStage = 0
	a.projectName = ""
	a.input.Placeholder = placeholder
	a.input.SetValue("")
	a.input.Focus()
	a.state = statePrompt
	return a, textinput.Blink
}

func (a *App) submitPrompt() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(a.input.Value())
	if value == "" {
		return a, nil
	}
	switch a.promptAction {
	case actProject:
		if a.promptStage == 0 {
			a.projectName = value
			a.promptStage = 1
			a.input.Placeholder = "Customer name"
			a.input.SetValue("")
			return a, nil
		}
		a.err = a.office.StartProject(a.projectName, value)
		return a.showOutput()
	case actMeeting:
		a.err = a.office.EmergencyMeeting(value)
		return a.showOutput()
	}
	a.state = stateMenu
	return a, nil
}

func (a *App) renderStatus() {
	report := a.office.Status()
	d := display.New(display.WithWriter(a.sink), display.WithWidth(a.cfg.Office.Display.LineWidth))
	if !report.Initialized {
		d.Error("Office not initialized yet!")
		return
	}
	d.OfficeStatus(report.TotalEmployees, report.Available, report.Busy)
	d.Info(fmt.Sprintf("Total rooms: %d", report.TotalRooms))
	d.Info(fmt.Sprintf("Total capacity: %d", report.TotalCapacity))
	d.Info(fmt.Sprintf("Projects started: %d", report.ProjectsStarted))
}

// showOutput moves to the output screen with whatever the engine just wrote.
func (a *App) showOutput() (tea.Model, tea.Cmd) {
	content := a.sink.String()
	a.sink.Reset()
	if a.err != nil {
		if content != "" {
			content += "\n"
		}
		content += errorStyle.Render(a.err.Error())
	}
	if strings.TrimSpace(content) == "" {
		content = dimStyle.Render("(no output)")
	}
	a.output.SetContent(content)
	a.output.GotoTop()
	a.state = stateOutput
	return a, nil
}

var (
	footerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Opening the office..."
	}
	switch a.state {
	case stateMenu:
		return a.menu.View() + "\n" + footerStyle.Render("  enter: select • q: quit")
	case stateTeamMenu:
		return a.teams.View() + "\n" + footerStyle.Render("  enter: view team • esc: back")
	case stateScenarios:
		return a.scenarios.View() + "\n" + footerStyle.Render("  enter: play • esc: back")
	case statePrompt:
		return fmt.Sprintf("\n  %s\n\n  %s\n\n%s",
			a.input.Placeholder, a.input.View(),
			footerStyle.Render("  enter: confirm • esc: cancel"))
	case stateOutput:
		return a.output.View() + "\n" + footerStyle.Render("  ↑/↓: scroll • esc: back to menu")
	}
	return ""
}
