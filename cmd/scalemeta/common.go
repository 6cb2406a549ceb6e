package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/scalemeta/scalemeta/internal/config"
	"github.com/scalemeta/scalemeta/internal/diagnostic"
	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// newLogger builds the run-scoped logger. Every line of one invocation
// carries the same run ID, which makes interleaved output from scripted
// runs attributable.
func newLogger(verbose bool) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("run_id", uuid.NewString())
}

// loadConfig loads the config file at path, or the default file if path is
// empty and one exists, or the built-in defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.Load(config.DefaultFileName)
	}
	cfg := config.DefaultConfig()
	return &cfg, nil
}

// loadRegistry loads and validates a registry file. Validation findings are
// printed to stderr; errors make the load fail.
func loadRegistry(log *logrus.Entry, path string) (*typemeta.Registry, error) {
	if path == "" {
		return nil, fmt.Errorf("no registry file given (use --registry or set it in %s)", config.DefaultFileName)
	}

	reg, err := typemeta.Load(path)
	if err != nil {
		return nil, err
	}
	log.WithField("types", reg.Len()).Debug("loaded registry")

	collector := diagnostic.NewCollector(false, false)
	reg.Validate(collector)
	if out := collector.FormatAll(); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
	if collector.HasErrors() {
		return nil, fmt.Errorf("registry %s is malformed: %s", path, collector.Summary())
	}
	return reg, nil
}

// useColor decides whether to emit ANSI colors for the given mode
// ("auto", "always", "never").
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

const (
	ansiReset = "\x1b[0m"
	ansiCyan  = "\x1b[36m"
	ansiDim   = "\x1b[2m"
)

// colorize wraps s in the given ANSI code when enabled.
func colorize(s, code string, enabled bool) string {
	if !enabled || s == "" {
		return s
	}
	return code + s + ansiReset
}
