/*
File    : go-tiny/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

// TestDefaultConfig verifies the built-in defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.VM.StackSize != 1000 {
		t.Errorf("default stack size: %d", cfg.VM.StackSize)
	}
	if cfg.Repl.Prompt != "tiny >>> " || !cfg.Repl.ColorOutput {
		t.Errorf("default repl settings: %+v", cfg.Repl)
	}
}

// TestDecode verifies the values of a config file decode over the
// defaults.
func TestDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "[vm]\nstack_size = 5000\n\n[repl]\nprompt = \">> \"\ncolor_output = false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if cfg.VM.StackSize != 5000 {
		t.Errorf("stack_size not applied: %d", cfg.VM.StackSize)
	}
	if cfg.Repl.Prompt != ">> " || cfg.Repl.ColorOutput {
		t.Errorf("repl settings not applied: %+v", cfg.Repl)
	}
}
