package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		printUsage()
		return 1
	}

	switch os.Args[1] {
	case "list":
		return runList(os.Args[2:])
	case "describe":
		return runDescribe(os.Args[2:])
	case "example":
		return runExample(os.Args[2:])
	case "dedup":
		return runDedup(os.Args[2:])
	case "--version", "-v":
		fmt.Println("scalemeta", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("scalemeta - inspect, deduplicate, and derive representations from portable type registries")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  scalemeta list [flags]        List registry types")
	fmt.Println("  scalemeta describe [flags]    Print a readable description of one type")
	fmt.Println("  scalemeta example [flags]     Generate a deterministic example value for one type")
	fmt.Println("  scalemeta dedup [flags]       Make colliding type paths unique")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Common Flags:")
	fmt.Println("  --registry <path>      Registry file (.json, .yaml, or .yml)")
	fmt.Println("  --config <path>        Path to scalemeta.config.json")
	fmt.Println("  --verbose              Enable debug logging")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  scalemeta list --registry metadata.json")
	fmt.Println("  scalemeta describe --registry metadata.json --id 42 --format")
	fmt.Println("  scalemeta example --registry metadata.json --id 42 --seed 7 --indent")
	fmt.Println("  scalemeta dedup --registry metadata.json --write deduped.json")
	fmt.Println()
}
