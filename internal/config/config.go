// Copyright wtf-go. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

// Package config loads the inspector's optional configuration. Sources, in
// increasing precedence: built-in defaults, an optional YAML file, WTF_*
// environment variables. Loading never fails: unreadable files and invalid
// values leave the defaults in place.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Color controls colored output: "auto", "always" or "never".
	Color string `yaml:"color"`
	// MaxDepth bounds search traversal and nested short descriptions.
	MaxDepth int `yaml:"max-depth"`
	// ShortWidth caps the display width of single-line descriptions.
	ShortWidth int `yaml:"short-width"`
	// PrettyThreshold is the rendered length at which map pretty-printing
	// gives way to per-key summaries.
	PrettyThreshold int `yaml:"pretty-threshold"`
	// SampleBudget bounds wall-clock time spent sampling a sequence when
	// generating scaffold code.
	SampleBudget time.Duration `yaml:"sample-budget"`
	// Quiet discards all non-error output.
	Quiet bool `yaml:"quiet"`
}

func Default() Config {
	return Config{
		Color:           "auto",
		MaxDepth:        42,
		ShortWidth:      100,
		PrettyThreshold: 300,
		SampleBudget:    2 * time.Second,
	}
}

// Load builds the configuration from environment (entries of the os.Environ
// form already split into a map) and the config file, if one exists.
func Load(environment map[string]string) Config {
	cfg := Default()
	if data, err := os.ReadFile(filePath(environment)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			cfg = Default()
		}
	}
	applyEnv(&cfg, environment)
	return cfg
}

func filePath(environment map[string]string) string {
	if p, ok := environment["WTF_CONFIG"]; ok {
		return p
	}
	home := environment["XDG_CONFIG_HOME"]
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(h, ".config")
		}
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, "wtf", "config.yaml")
}

func applyEnv(cfg *Config, environment map[string]string) {
	if v, ok := environment["WTF_COLOR"]; ok {
		cfg.Color = v
	}
	if v, ok := environment["WTF_MAX_DEPTH"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxDepth = n
		}
	}
	if v, ok := environment["WTF_SHORT_WIDTH"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShortWidth = n
		}
	}
	if v, ok := environment["WTF_PRETTY_THRESHOLD"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PrettyThreshold = n
		}
	}
	if v, ok := environment["WTF_SAMPLE_BUDGET"]; ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SampleBudget = d
		}
	}
	if v, ok := environment["WTF_QUIET"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Quiet = b
		}
	}
}
