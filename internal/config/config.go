// internal/config/config.go
//
// This package handles configuration and the .nexus directory structure.
// Every directory the simulation runs from gets a .nexus/ folder holding
// logs, scenario scripts, and an editable config.yaml.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// NexusDir is the name of the directory we create in each project.
	NexusDir = ".nexus"

	configFilename = "config.yaml"
)

const defaultConfigYAML = `# nexus office configuration
version: 1

company:
  name: Nexus Software Solutions
  tagline: Professional Software Development Services
  floor: 14
  address: Downtown Tech District
  business_hours: "9:00 AM - 6:00 PM"

display:
  line_width: 70
`

// CompanyConfig describes the firm whose office is being simulated.
type CompanyConfig struct {
	Name          string `yaml:"name"`
	Tagline       string `yaml:"tagline"`
	Floor         int    `yaml:"floor"`
	Address       string `yaml:"address"`
	BusinessHours string `yaml:"business_hours"`
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	LineWidth int `yaml:"line_width"`
}

// OfficeConfig models .nexus/config.yaml.
type OfficeConfig struct {
	Version int           `yaml:"version"`
	Company CompanyConfig `yaml:"company"`
	Display DisplayConfig `yaml:"display"`
}

// Config holds the runtime configuration for the simulation.
type Config struct {
	// ProjectDir is the directory the user launched nexus from.
	ProjectDir string

	// NexusProjectDir is ProjectDir/.nexus.
	NexusProjectDir string

	Office OfficeConfig
}

// InitNexusDir creates the .nexus directory structure in the given project
// directory and seeds config.yaml with defaults when missing.
//
// Structure created:
// .nexus/
// ├── logs/        <- simulation activity log
// └── scenarios/   <- user-authored scenario scripts (yaml or go)
func InitNexusDir(projectDir string) error {
	nexusDir := filepath.Join(projectDir, NexusDir)

	dirs := []string{
		filepath.Join(nexusDir, "logs"),
		filepath.Join(nexusDir, "scenarios"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}

	return ensureOfficeConfig(filepath.Join(nexusDir, configFilename))
}

func ensureOfficeConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}

// NewConfig loads configuration for the given project directory, applying
// the embedded defaults for anything config.yaml leaves unset.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:      projectDir,
		NexusProjectDir: filepath.Join(projectDir, NexusDir),
		Office:          defaultOfficeConfig(),
	}
	if err := cfg.loadOfficeConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultOfficeConfig() OfficeConfig {
	var office OfficeConfig
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &office); err != nil {
		panic(fmt.Sprintf("config: embedded default config invalid: %v", err))
	}
	return office
}

func (c *Config) loadOfficeConfig() error {
	path := filepath.Join(c.NexusProjectDir, configFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var office OfficeConfig
	if err := yaml.Unmarshal(data, &office); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.Office = mergeOfficeConfig(c.Office, office)
	return nil
}

// mergeOfficeConfig overlays loaded values onto the defaults so a partial
// config.yaml still yields a fully populated configuration.
func mergeOfficeConfig(base, loaded OfficeConfig) OfficeConfig {
	if loaded.Version != 0 {
		base.Version = loaded.Version
	}
	if loaded.Company.Name != "" {
		base.Company.Name = loaded.Company.Name
	}
	if loaded.Company.Tagline != "" {
		base.Company.Tagline = loaded.Company.Tagline
	}
	if loaded.Company.Floor != 0 {
		base.Company.Floor = loaded.Company.Floor
	}
	if loaded.Company.Address != "" {
		base.Company.Address = loaded.Company.Address
	}
	if loaded.Company.BusinessHours != "" {
		base.Company.BusinessHours = loaded.Company.BusinessHours
	}
	if loaded.Display.LineWidth > 0 {
		base.Display.LineWidth = loaded.Display.LineWidth
	}
	return base
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.NexusProjectDir, "logs")
}

// ScenariosDir returns the path to the scenario scripts directory.
func (c *Config) ScenariosDir() string {
	return filepath.Join(c.NexusProjectDir, "scenarios")
}
