package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

const goScenarioSource = `package main

func ScenarioDefinitions() ([]map[string]any, error) {
	return []map[string]any{
		{
			"name":        "go-scenario",
			"description": "Declared from a Go file",
			"steps": []map[string]any{
				{"kind": "narration", "text": "*Lights flicker on*"},
				{"kind": "meeting", "topic": "Coffee machine is down"},
			},
		},
	}, nil
}`

func TestLoadGoDefinitionDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go-scenario.go"), []byte(goScenarioSource), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	defs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		t.Fatalf("load go defs: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0].Definition.Name != "go-scenario" {
		t.Fatalf("unexpected name: %+v", defs[0].Definition)
	}
	if len(defs[0].Definition.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(defs[0].Definition.Steps))
	}
}

func TestLoadGoDefinitionDirMissingFunc(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatalf("write broken scenario: %v", err)
	}
	if _, err := LoadGoDefinitionDir(dir); err == nil {
		t.Fatalf("expected error for missing ScenarioDefinitions function")
	}
}

func TestLoadGoDefinitionDirMissing(t *testing.T) {
	defs, err := LoadGoDefinitionDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if defs != nil {
		t.Fatalf("expected no definitions")
	}
}
