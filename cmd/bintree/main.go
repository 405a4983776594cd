// Package main provides the entry point for the bintree CLI.
package main

import (
	"fmt"
	"io"
	"os"
)

// Output destinations, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	exitCode := run(os.Args)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(stdout)
		return 1
	}

	switch args[1] {
	case "depth":
		return depthCmd(args[2:])
	case "maxsum":
		return maxSumCmd(args[2:])
	case "next":
		return nextCmd(args[2:])
	case "cousins":
		return cousinsCmd(args[2:])
	case "lca":
		return lcaCmd(args[2:])
	case "print":
		return printCmd(args[2:])
	case "encode":
		return encodeCmd(args[2:])
	case "config":
		return configCmd(args[2:])
	case "version":
		return versionCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[1])
		fmt.Fprintln(stderr, "Run 'bintree help' for usage.")
		return 1
	}
}
