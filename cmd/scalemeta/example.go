package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scalemeta/scalemeta/internal/example"
	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// runExample prints a deterministic example value for one registry type.
func runExample(args []string) int {
	exFlags := flag.NewFlagSet("example", flag.ExitOnError)

	var (
		registryPath string
		configPath   string
		typeID       int64
		seed         uint64
		indent       bool
		verbose      bool
	)

	exFlags.StringVar(&registryPath, "registry", "", "Registry file (.json, .yaml, or .yml)")
	exFlags.StringVar(&configPath, "config", "", "Path to scalemeta config file")
	exFlags.Int64Var(&typeID, "id", -1, "Registry ID of the type to generate an example for")
	exFlags.Uint64Var(&seed, "seed", 0, "Seed for deterministic pseudo-random generation")
	exFlags.BoolVar(&indent, "indent", false, "Pretty-print the JSON output")
	exFlags.BoolVar(&verbose, "verbose", false, "Enable debug logging")

	exFlags.Usage = func() {
		fmt.Println("Usage: scalemeta example [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		exFlags.PrintDefaults()
	}

	exFlags.Parse(args)

	if typeID < 0 {
		fmt.Fprintln(os.Stderr, "error: --id is required")
		return 1
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if registryPath == "" {
		registryPath = cfg.Registry
	}
	if seed == 0 {
		seed = cfg.Seed
	}

	log := newLogger(verbose || cfg.Verbose)
	reg, err := loadRegistry(log, registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	out, err := example.JSON(reg, typemeta.TypeID(typeID), seed, indent || cfg.Indent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Println(out)
	return 0
}
