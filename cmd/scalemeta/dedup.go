package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scalemeta/scalemeta/internal/dedupe"
	"github.com/scalemeta/scalemeta/internal/diagnostic"
)

// runDedup makes colliding type paths unique and reports every rename.
// With --write, the rewritten registry is saved as JSON.
func runDedup(args []string) int {
	dedupFlags := flag.NewFlagSet("dedup", flag.ExitOnError)

	var (
		registryPath string
		configPath   string
		writePath    string
		verbose      bool
	)

	dedupFlags.StringVar(&registryPath, "registry", "", "Registry file (.json, .yaml, or .yml)")
	dedupFlags.StringVar(&configPath, "config", "", "Path to scalemeta config file")
	dedupFlags.StringVar(&writePath, "write", "", "Write the deduplicated registry to this file as JSON")
	dedupFlags.BoolVar(&verbose, "verbose", false, "Enable debug logging")

	dedupFlags.Usage = func() {
		fmt.Println("Usage: scalemeta dedup [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		dedupFlags.PrintDefaults()
	}

	dedupFlags.Parse(args)

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if registryPath == "" {
		registryPath = cfg.Registry
	}

	log := newLogger(verbose || cfg.Verbose)
	reg, err := loadRegistry(log, registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	renames := dedupe.EnsureUniquePaths(reg)
	log.WithField("renames", len(renames)).Debug("deduplicated type paths")

	collector := diagnostic.NewCollector(false, false)
	for _, r := range renames {
		collector.Info(diagnostic.CategoryRenamedPath, int64(r.ID), r.From,
			fmt.Sprintf("renamed to %s", r.To))
	}
	if out := collector.FormatAll(); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
	if len(renames) == 0 {
		fmt.Fprintln(os.Stderr, "all type paths already unique")
	}

	if writePath != "" {
		f, err := os.Create(writePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
		if err := reg.WriteJSON(f, true); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		log.WithField("path", writePath).Debug("wrote deduplicated registry")
	}
	return 0
}
