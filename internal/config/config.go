// Package config loads the tool configuration from config.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	ClaudeCLICommand string   `yaml:"claude_cli_command"`
	Paths            Paths    `yaml:"paths"`
	Defaults         Defaults `yaml:"defaults"`
}

// Paths locates the working directories and files, relative to the
// directory config.yaml lives in unless absolute.
type Paths struct {
	Examples    string `yaml:"examples"`
	Contexts    string `yaml:"contexts"`
	StyleGuide  string `yaml:"style_guide"`
	Output      string `yaml:"output"`
	Inspiration string `yaml:"inspiration"`
}

// Defaults holds prompt defaults for manual generation.
type Defaults struct {
	TargetAudience string `yaml:"target_audience"`
	ToneGuidance   string `yaml:"tone_guidance"`
	MaxLength      int    `yaml:"max_length"`
}

// Default returns the configuration used when a field is absent from the
// file.
func Default() *Config {
	return &Config{
		ClaudeCLICommand: "claude",
		Paths: Paths{
			Examples:    "examples",
			Contexts:    "contexts",
			StyleGuide:  "style_guide.md",
			Output:      "output",
			Inspiration: "inspiration",
		},
		Defaults: Defaults{
			TargetAudience: "professional audience",
			ToneGuidance:   "professional but personable",
			MaxLength:      2000,
		},
	}
}

// Load reads a config file, filling missing fields from Default. A
// missing file is an error; the tool cannot run unconfigured.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file %s not found", path)
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.ClaudeCLICommand == "" {
		cfg.ClaudeCLICommand = "claude"
	}
	if cfg.Defaults.MaxLength <= 0 {
		cfg.Defaults.MaxLength = 2000
	}
	return cfg, nil
}
