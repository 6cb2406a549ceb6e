package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Color != "auto" {
		t.Errorf("default color = %q, want %q", cfg.Color, "auto")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `{
			"registry": "chain.json",
			"seed": 7,
			"indent": true,
			"color": "never",
			"verbose": true
		}`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Registry != "chain.json" {
			t.Errorf("registry = %q, want %q", cfg.Registry, "chain.json")
		}
		if cfg.Seed != 7 {
			t.Errorf("seed = %d, want 7", cfg.Seed)
		}
		if !cfg.Indent || !cfg.Verbose {
			t.Error("indent/verbose flags not loaded")
		}
		if cfg.Color != "never" {
			t.Errorf("color = %q, want %q", cfg.Color, "never")
		}
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `{"registry": "chain.yaml"}`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Color != "auto" {
			t.Errorf("color = %q, want the %q default", cfg.Color, "auto")
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		path := writeConfig(t, `{"color": "sometimes"}`)
		_, err := Load(path)
		if err == nil {
			t.Fatal("Load accepted an invalid color")
		}
		if !strings.Contains(err.Error(), "sometimes") {
			t.Errorf("error %q does not name the bad value", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeConfig(t, `{`)
		if _, err := Load(path); err == nil {
			t.Fatal("Load accepted malformed JSON")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Fatal("Load of a missing file did not fail")
		}
	})
}

func TestValidate(t *testing.T) {
	for _, color := range []string{"", "auto", "always", "never"} {
		cfg := Config{Color: color}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate rejected color %q: %v", color, err)
		}
	}
	cfg := Config{Color: "rainbow"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted an unknown color")
	}
}
