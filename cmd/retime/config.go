package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "RETIME_"

// appConfig holds everything resolvable via defaults/retime.yaml/env,
// before positional CLI arguments (which always win) are applied.
type appConfig struct {
	InputFilepath  string `koanf:"input_filepath"`
	ControlSteps   int64  `koanf:"control_steps"`
	ClockPeriod    int64  `koanf:"clock_period"`
	OutputFilepath string `koanf:"output_filepath"`
	LogLevel       string `koanf:"log_level"`
	LogFile        string `koanf:"log_file"`
}

// loadConfig resolves appConfig from, in ascending precedence: built-in
// defaults, an optional retime.yaml in the working directory,
// RETIME_* environment variables. Positional CLI arguments are layered
// on top by the caller after this returns (§6.3's "additive" config
// layers, per SPEC_FULL.md §11).
func loadConfig(configPath string) (*appConfig, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"input_filepath":  "",
		"control_steps":   1,
		"clock_period":    0,
		"output_filepath": "",
		"log_level":       "info",
		"log_file":        "",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("retime: loading config defaults: %w", err)
	}

	if configPath == "" {
		configPath = "retime.yaml"
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("retime: loading %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("retime: loading environment: %w", err)
	}

	var cfg appConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("retime: unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// defaultOutputPath implements §6.3's "output/<input-basename>" rule.
func defaultOutputPath(inputFilepath string) string {
	return filepath.Join("output", filepath.Base(inputFilepath))
}
