// Package config loads optional YAML configuration shared by the runlog
// tools. Missing config files are not an error: defaults apply, and
// command-line flags always win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all runlog configuration.
type Config struct {
	Crop   CropConfig   `yaml:"crop"`
	Report ReportConfig `yaml:"report"`
}

// CropConfig sets the default crop window for castcrop.
type CropConfig struct {
	Begin float64 `yaml:"begin"`
	End   float64 `yaml:"end"`
}

// ReportConfig sets the default presentation for benchreport.
type ReportConfig struct {
	Format string `yaml:"format"` // auto, markdown, or term
	Wrap   int    `yaml:"wrap"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Crop:   CropConfig{Begin: 14, End: 41.5},
		Report: ReportConfig{Format: "auto"},
	}
}

// Load reads configuration from path, merged over the defaults. When path
// is empty the default location is tried instead, and its absence is fine;
// an explicitly requested file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultPath() string {
	if path := os.Getenv("RUNLOG_CONFIG"); path != "" {
		return path
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "runlog", "config.yaml")
}
