package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitNexusDirCreatesStructure(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitNexusDir(projectDir); err != nil {
		t.Fatalf("init nexus dir: %v", err)
	}
	for _, dir := range []string{"logs", "scenarios"} {
		if _, err := os.Stat(filepath.Join(projectDir, NexusDir, dir)); err != nil {
			t.Fatalf("expected %s to exist: %v", dir, err)
		}
	}
	if _, err := os.Stat(filepath.Join(projectDir, NexusDir, "config.yaml")); err != nil {
		t.Fatalf("expected seeded config.yaml: %v", err)
	}
}

func TestInitNexusDirKeepsExistingConfig(t *testing.T) {
	projectDir := t.TempDir()
	nexusDir := filepath.Join(projectDir, NexusDir)
	if err := os.MkdirAll(nexusDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := []byte("version: 1\ncompany:\n  name: Custom Co\n")
	if err := os.WriteFile(filepath.Join(nexusDir, "config.yaml"), custom, 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitNexusDir(projectDir); err != nil {
		t.Fatalf("init nexus dir: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(nexusDir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Fatalf("existing config.yaml was overwritten")
	}
}

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Office.Company.Name != "Nexus Software Solutions" {
		t.Fatalf("expected default company name, got %q", cfg.Office.Company.Name)
	}
	if cfg.Office.Company.Floor != 14 {
		t.Fatalf("expected default floor 14, got %d", cfg.Office.Company.Floor)
	}
	if cfg.Office.Display.LineWidth != 70 {
		t.Fatalf("expected default line width 70, got %d", cfg.Office.Display.LineWidth)
	}
}

func TestNewConfigOverlaysPartialYaml(t *testing.T) {
	projectDir := t.TempDir()
	nexusDir := filepath.Join(projectDir, NexusDir)
	if err := os.MkdirAll(nexusDir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := "version: 1\ncompany:\n  name: Vandelay Industries\n  floor: 3\n"
	if err := os.WriteFile(filepath.Join(nexusDir, "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Office.Company.Name != "Vandelay Industries" {
		t.Fatalf("expected overridden name, got %q", cfg.Office.Company.Name)
	}
	if cfg.Office.Company.Floor != 3 {
		t.Fatalf("expected overridden floor, got %d", cfg.Office.Company.Floor)
	}
	// Fields the partial file left unset keep their defaults.
	if cfg.Office.Company.Address != "Downtown Tech District" {
		t.Fatalf("expected default address, got %q", cfg.Office.Company.Address)
	}
	if cfg.Office.Display.LineWidth != 70 {
		t.Fatalf("expected default line width, got %d", cfg.Office.Display.LineWidth)
	}
}

func TestScenarioAndLogDirs(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.LogsDir() != filepath.Join(projectDir, NexusDir, "logs") {
		t.Fatalf("unexpected logs dir: %s", cfg.LogsDir())
	}
	if cfg.ScenariosDir() != filepath.Join(projectDir, NexusDir, "scenarios") {
		t.Fatalf("unexpected scenarios dir: %s", cfg.ScenariosDir())
	}
}
