package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// runList prints every registry type as an id/kind/path table, ordered by
// path using locale-neutral collation so related declarations group
// together regardless of byte-level casing.
func runList(args []string) int {
	listFlags := flag.NewFlagSet("list", flag.ExitOnError)

	var (
		registryPath string
		configPath   string
		colorMode    string
		verbose      bool
	)

	listFlags.StringVar(&registryPath, "registry", "", "Registry file (.json, .yaml, or .yml)")
	listFlags.StringVar(&configPath, "config", "", "Path to scalemeta config file")
	listFlags.StringVar(&colorMode, "color", "", "Color output: auto, always, never")
	listFlags.BoolVar(&verbose, "verbose", false, "Enable debug logging")

	listFlags.Usage = func() {
		fmt.Println("Usage: scalemeta list [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		listFlags.PrintDefaults()
	}

	listFlags.Parse(args)

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if registryPath == "" {
		registryPath = cfg.Registry
	}
	if colorMode == "" {
		colorMode = cfg.Color
	}

	log := newLogger(verbose || cfg.Verbose)
	reg, err := loadRegistry(log, registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	type row struct {
		id   typemeta.TypeID
		kind typemeta.Kind
		path string
	}
	rows := make([]row, 0, reg.Len())
	for _, pt := range reg.Types {
		rows = append(rows, row{
			id:   pt.ID,
			kind: pt.Type.Def.Kind(),
			path: pt.Type.Path.String(),
		})
	}

	coll := collate.New(language.Und)
	sort.SliceStable(rows, func(i, j int) bool {
		if c := coll.CompareString(rows[i].path, rows[j].path); c != 0 {
			return c < 0
		}
		return rows[i].id < rows[j].id
	})

	color := useColor(colorMode)
	for _, r := range rows {
		path := r.path
		if path == "" {
			path = colorize("(prelude)", ansiDim, color)
		} else {
			path = colorize(path, ansiCyan, color)
		}
		fmt.Printf("%6d  %-12s %s\n", r.id, r.kind, path)
	}
	return 0
}
