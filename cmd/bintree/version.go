package main

import (
	"flag"
	"fmt"
	"runtime"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "0.1.0"
	commit    = "unknown"
	buildDate = "unknown"
)

// versionCmd handles the version command.
func versionCmd(args []string) int {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(stderr)

	short := fs.Bool("short", false, "Show only version number")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printVersionUsage(stdout)
		return 0
	}

	if *short {
		fmt.Fprintln(stdout, version)
		return 0
	}

	fmt.Fprintf(stdout, "bintree version %s\n", version)
	fmt.Fprintf(stdout, "  Commit:     %s\n", commit)
	fmt.Fprintf(stdout, "  Built:      %s\n", buildDate)
	fmt.Fprintf(stdout, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)

	return 0
}
