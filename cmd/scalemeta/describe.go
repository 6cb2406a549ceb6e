package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scalemeta/scalemeta/internal/describe"
	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// runDescribe prints a readable description of one registry type.
func runDescribe(args []string) int {
	descFlags := flag.NewFlagSet("describe", flag.ExitOnError)

	var (
		registryPath string
		configPath   string
		typeID       int64
		format       bool
		verbose      bool
	)

	descFlags.StringVar(&registryPath, "registry", "", "Registry file (.json, .yaml, or .yml)")
	descFlags.StringVar(&configPath, "config", "", "Path to scalemeta config file")
	descFlags.Int64Var(&typeID, "id", -1, "Registry ID of the type to describe")
	descFlags.BoolVar(&format, "format", false, "Indent the description across multiple lines")
	descFlags.BoolVar(&verbose, "verbose", false, "Enable debug logging")

	descFlags.Usage = func() {
		fmt.Println("Usage: scalemeta describe [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		descFlags.PrintDefaults()
	}

	descFlags.Parse(args)

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

	log := newLogger(verbose || cfg.Verbose)
	reg, err := loadRegistry(log, registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	id := typemeta.TypeID(typeID)
	var out string
	if format {
		out, err = describe.FormattedDescription(reg, id)
	} else {
		out, err = describe.Description(reg, id)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Println(out)
	return 0
}
