// Package config loads the gensmith.json project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the gensmith.json configuration file.
type Config struct {
	Name     string   `json:"name"`
	Schema   string   `json:"schema"`
	Document string   `json:"document"`
	Package  string   `json:"package"`
	Targets  []string `json:"targets"`

	Output OutputConfig `json:"output"`
	Dev    DevConfig    `json:"dev"`
}

// OutputConfig controls where generated files land.
type OutputConfig struct {
	Dir string `json:"dir"`
}

// DevConfig configures the watch-mode file patterns.
type DevConfig struct {
	Watch   []string `json:"watch"`
	Exclude []string `json:"exclude"`
}

// Load finds and loads gensmith.json starting from the current directory
// and walking up to the filesystem root. It returns the config and the
// directory it was found in.
func Load() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return loadFromDir(dir)
}

// LoadFromPath loads gensmith.json from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Schema == "" {
		c.Schema = "./schema.gql"
	}
	if c.Package == "" {
		c.Package = "types"
	}
	if len(c.Targets) == 0 {
		c.Targets = []string{"go"}
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "./generated"
	}
	if len(c.Dev.Watch) == 0 {
		c.Dev.Watch = []string{"*.gql", "**/*.gql", "*.json", "**/*.json", "*.tmpl", "**/*.tmpl"}
	}
	if len(c.Dev.Exclude) == 0 {
		c.Dev.Exclude = []string{"generated/", ".git/", "node_modules/"}
	}
}

func loadFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "gensmith.json")
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := LoadFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return cfg, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("no gensmith.json found in %s or any parent directory", startDir)
}
