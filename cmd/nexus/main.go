// cmd/nexus/main.go
//
// Entry point for the office simulation.
//
// Flow:
// 1. Ensure the .nexus directory (config, logs, scenarios) exists
// 2. Load configuration and open the activity log
// 3. Default: launch the interactive TUI
//    With -batch: run the initialization sequence straight to stdout,
//    optionally playing a named scenario, then exit

package main

import (
	"bytes"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/nexussoft/nexus-office/internal/config"
	"github.com/nexussoft/nexus-office/internal/display"
	"github.com/nexussoft/nexus-office/internal/logging"
	"github.com/nexussoft/nexus-office/internal/nexus"
	"github.com/nexussoft/nexus-office/internal/tui"
	"github.com/nexussoft/nexus-office/scenario"
)

func main() {
	batch := flag.Bool("batch", false, "run the initialization sequence to stdout and exit")
	scenarioName := flag.String("scenario", "", "with -batch, play the named scenario after initialization")
	flag.Parse()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitNexusDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .nexus directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening activity log: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if *batch {
		runBatch(cfg, log, *scenarioName)
		return
	}

	// Interactive mode: the engine renders into a buffer the TUI drains
	// after each action.
	sink := &bytes.Buffer{}
	d := display.New(display.WithWriter(sink), display.WithWidth(cfg.Office.Display.LineWidth))
	office := nexus.New(d, nexus.WithLog(log), nexus.WithCompany(companyFromConfig(cfg)))

	p := tea.NewProgram(
		tui.NewApp(cfg, office, sink),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runBatch initializes the office straight to stdout, the way the original
// one-shot driver did, and leaves usage hints for the interactive mode.
func runBatch(cfg *config.Config, log *logging.Logger, scenarioName string) {
	d := display.New(display.WithWidth(cfg.Office.Display.LineWidth))
	office := nexus.New(d, nexus.WithLog(log), nexus.WithCompany(companyFromConfig(cfg)))

	office.Initialize()

	if scenarioName != "" {
		defs, err := scenario.Discover(cfg.ScenariosDir())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scenarios: %v\n", err)
			os.Exit(1)
		}
		for _, def := range defs {
			if def.Definition.Name == scenarioName {
				if err := scenario.Play(office, def.Definition); err != nil {
					fmt.Fprintf(os.Stderr, "Error playing scenario: %v\n", err)
					os.Exit(1)
				}
				return
			}
		}
		fmt.Fprintf(os.Stderr, "No scenario named %q in %s\n", scenarioName, cfg.ScenariosDir())
		os.Exit(1)
	}

	d.Header("WHAT WOULD YOU LIKE TO SEE?")
	d.Info("Run nexus without flags for the interactive office menu:")
	d.Info("office layout, employee directory, guided tour, team views,")
	d.Info("reception, projects, emergency meetings, and scenarios.")
	d.Separator()
	d.Info("The office is ready. All employees are at their stations.")
}

func companyFromConfig(cfg *config.Config) nexus.Company {
	return nexus.Company{
		Name:    cfg.Office.Company.Name,
		Tagline: cfg.Office.Company.Tagline,
		Floor:   cfg.Office.Company.Floor,
		Address: cfg.Office.Company.Address,
	}
}
