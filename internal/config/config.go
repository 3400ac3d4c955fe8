// Package config loads tool settings from an optional YAML file and applies
// defaults for anything left unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the project directory when no explicit
// config path is given.
const DefaultFileName = ".pytestgen.yaml"

// Config holds the tool settings. Zero values mean "use the default".
type Config struct {
	// OutputDir is where generated tests are written. Relative paths are
	// resolved against the project directory.
	OutputDir string `yaml:"output_dir"`
	// ReportDir is where test reports are read from and written to.
	ReportDir string `yaml:"report_dir"`
	// Excludes are path fragments skipped during analysis. When set they
	// replace the built-in exclusions rather than extending them.
	Excludes []string `yaml:"excludes"`
	// Framework forces the GUI framework instead of detecting it, for
	// projects whose imports are too indirect for the heuristics.
	Framework string `yaml:"framework"`
	// DashboardPort is the preferred dashboard port.
	DashboardPort int `yaml:"dashboard_port"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		OutputDir:     "tests",
		ReportDir:     "test_reports",
		DashboardPort: 8080,
	}
}

// Load reads settings from path, layered over the defaults. Unknown keys are
// ignored so configs stay compatible across versions.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "tests"
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "test_reports"
	}
	if cfg.DashboardPort == 0 {
		cfg.DashboardPort = 8080
	}
	return cfg, nil
}

// Discover loads the config for a project: an explicit path when given,
// otherwise the project-local default file if present, otherwise defaults.
func Discover(explicitPath, projectDir string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	local := filepath.Join(projectDir, DefaultFileName)
	if _, err := os.Stat(local); err == nil {
		return Load(local)
	}
	return Default(), nil
}

// ResolveDir resolves a possibly relative config directory against base.
func ResolveDir(dir, base string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
