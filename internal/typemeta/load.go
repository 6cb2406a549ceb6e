package typemeta

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

// Load reads a registry file, dispatching on the file extension:
// .yaml/.yml are parsed as YAML, everything else as JSON.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open registry: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadJSON(f)
	}
}

// LoadJSON parses a registry from JSON.
func LoadJSON(r io.Reader) (*Registry, error) {
	var reg Registry
	if err := json.UnmarshalRead(r, &reg); err != nil {
		return nil, fmt.Errorf("could not parse registry JSON: %w", err)
	}
	return &reg, nil
}

// LoadYAML parses a registry from YAML.
func LoadYAML(r io.Reader) (*Registry, error) {
	var reg Registry
	if err := yaml.NewDecoder(r).Decode(&reg); err != nil {
		return nil, fmt.Errorf("could not parse registry YAML: %w", err)
	}
	return &reg, nil
}

// WriteJSON serializes the registry as JSON, optionally indented.
func (r *Registry) WriteJSON(w io.Writer, indent bool) error {
	opts := []json.Options{json.Deterministic(true)}
	if indent {
		opts = append(opts, jsontext.WithIndent("  "))
	}
	if err := json.MarshalWrite(w, r, opts...); err != nil {
		return fmt.Errorf("could not serialize registry: %w", err)
	}
	return nil
}
