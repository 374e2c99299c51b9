/*
File    : go-tiny/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the optional go-tiny.toml configuration used by
// the unified driver and the REPL. The four plain stage drivers take no
// configuration at all: their contract is fixed to positional
// arguments only.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the file looked up in the working directory; the
// home-directory fallback is the same name with a leading dot.
const ConfigFileName = "go-tiny.toml"

// Config holds the tunable settings of the toolchain.
type Config struct {
	// VM settings
	VM struct {
		StackSize int `toml:"stack_size"` // evaluation-stack capacity
	} `toml:"vm"`

	// REPL settings
	Repl struct {
		Prompt      string `toml:"prompt"`       // prompt shown to the user
		ColorOutput bool   `toml:"color_output"` // colored banner/errors
	} `toml:"repl"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.VM.StackSize = 1000
	cfg.Repl.Prompt = "tiny >>> "
	cfg.Repl.ColorOutput = true
	return cfg
}

// Load reads the first configuration file found, searching the working
// directory and then the user's home directory. A missing file is not
// an error: the defaults apply. A file that exists but does not parse
// is reported, with the defaults kept.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, ok := findConfigFile()
	if !ok {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if cfg.VM.StackSize <= 0 {
		cfg.VM.StackSize = DefaultConfig().VM.StackSize
	}
	if cfg.Repl.Prompt == "" {
		cfg.Repl.Prompt = DefaultConfig().Repl.Prompt
	}
	return cfg, nil
}

// findConfigFile locates go-tiny.toml in the working directory or
// .go-tiny.toml in the home directory.
func findConfigFile() (string, bool) {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, true
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, "."+ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
