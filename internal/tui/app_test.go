package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexussoft/nexus-office/internal/config"
	"github.com/nexussoft/nexus-office/internal/display"
	"github.com/nexussoft/nexus-office/internal/nexus"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	sink := &bytes.Buffer{}
	d := display.New(display.WithWriter(sink), display.WithWidth(cfg.Office.Display.LineWidth))
	office := nexus.New(d)
	app := NewApp(cfg, office, sink)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(*App)
}

func pressEnter(t *testing.T, app *App) *App {
	t.Helper()
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(*App)
}

func TestInitializeFromMenu(t *testing.T) {
	app := newTestApp(t)
	if app.state != stateMenu {
		t.Fatalf("expected menu state, got %d", app.state)
	}
	// First menu entry is Initialize Office.
	app = pressEnter(t, app)
	if app.state != stateOutput {
		t.Fatalf("expected output state after initialize, got %d", app.state)
	}
	if !app.office.Initialized() {
		t.Fatalf("expected office to be initialized")
	}
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	if app.state != stateMenu {
		t.Fatalf("esc should return to menu, got %d", app.state)
	}
}

func TestActionsBeforeInitializeShowError(t *testing.T) {
	app := newTestApp(t)
	model, _ := app.runAction(actDirectory)
	app = model.(*App)
	if app.state != stateOutput {
		t.Fatalf("expected output state, got %d", app.state)
	}
	if app.err == nil {
		t.Fatalf("expected not-initialized error to surface")
	}
}

func TestProjectPromptFlow(t *testing.T) {
	app := newTestApp(t)
	app.office.Initialize()
	app.sink.Reset()

	model, _ := app.runAction(actProject)
	app = model.(*App)
	if app.state != statePrompt {
		t.Fatalf("expected prompt state, got %d", app.state)
	}
	app.input.SetValue("Mobile App Fix")
	model, _ = app.submitPrompt()
	app = model.(*App)
	if app.state != statePrompt || app.promptStage != 1 {
		t.Fatalf("expected second prompt stage, got state=%d stage=%d", app.state, app.promptStage)
	}
	app.input.SetValue("TechStartup Inc.")
	model, _ = app.submitPrompt()
	app = model.(*App)
	if app.state != stateOutput {
		t.Fatalf("expected output after customer prompt, got %d", app.state)
	}
	if app.err != nil {
		t.Fatalf("unexpected error: %v", app.err)
	}
	if got := app.office.Status().ProjectsStarted; got != 1 {
		t.Fatalf("expected project counter at 1, got %d", got)
	}
}

func TestScenarioMenuWithEmptyDir(t *testing.T) {
	app := newTestApp(t)
	app.office.Initialize()
	app.sink.Reset()

	model, _ := app.runAction(actScenarios)
	app = model.(*App)
	if app.state != stateOutput {
		t.Fatalf("expected output state for empty scenario dir, got %d", app.state)
	}
	if app.err == nil {
		t.Fatalf("expected a no-scenarios error")
	}
}

func TestStatusActionRendersReport(t *testing.T) {
	app := newTestApp(t)
	app.office.Initialize()
	app.sink.Reset()

	model, _ := app.runAction(actStatus)
	app = model.(*App)
	if app.state != stateOutput {
		t.Fatalf("expected output state, got %d", app.state)
	}
}
