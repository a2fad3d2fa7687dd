// Package config loads the shared HCL configuration for the
// command-line tools.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ToolConfig represents the complete tool configuration
type ToolConfig struct {
	Stats StatsSettings `hcl:"stats,block"`
	UI    UISettings    `hcl:"ui,block"`
}

// StatsSettings contains defaults for distribution runs
type StatsSettings struct {
	Iterations uint64 `hcl:"iterations,optional"`
	Workers    int    `hcl:"workers,optional"`
	Seed       int64  `hcl:"seed,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Color    bool   `hcl:"color,optional"`
}

// Default returns the default tool configuration
func Default() *ToolConfig {
	return &ToolConfig{
		Stats: StatsSettings{
			Iterations: 1000000,
			Workers:    0, // one per CPU
			Seed:       12345,
		},
		UI: UISettings{
			LogLevel: "info",
			LogFile:  "",
			Color:    false,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields
// the defaults.
func Load(filename string) (*ToolConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg ToolConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()
	if cfg.Stats.Iterations == 0 {
		cfg.Stats.Iterations = defaults.Stats.Iterations
	}
	if cfg.Stats.Seed == 0 {
		cfg.Stats.Seed = defaults.Stats.Seed
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}

	return &cfg, nil
}
