package main

import (
	"flag"
	"fmt"

	"github.com/KilimcininKorOglu/bintree/internal/config"
)

// configCmd handles the config command.
func configCmd(args []string) int {
	if len(args) == 0 {
		printConfigUsage(stdout)
		return 0
	}

	if args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printConfigUsage(stdout)
		return 0
	}

	switch args[0] {
	case "init":
		return configInitCmd(args[1:])
	case "validate":
		return configValidateCmd(args[1:])
	case "show":
		return configShowCmd(args[1:])
	default:
		fmt.Fprintf(stderr, "Unknown config subcommand: %s\n", args[0])
		fmt.Fprintln(stderr, "Run 'bintree config help' for usage.")
		return 1
	}
}

// configInitCmd prints the default configuration.
func configInitCmd(args []string) int {
	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	fs.SetOutput(stderr)

	format := fs.String("format", "yaml", "Output format: yaml, json")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		fmt.Fprintln(stdout, "Generate default configuration")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Usage:")
		fmt.Fprintln(stdout, "  bintree config init [-format yaml|json]")
		return 0
	}

	return writeConfig(config.DefaultConfig(), config.Format(*format))
}

// configValidateCmd validates a configuration file.
func configValidateCmd(args []string) int {
	fs := flag.NewFlagSet("config validate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "Path to configuration file")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		fmt.Fprintln(stdout, "Validate configuration file")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Usage:")
		fmt.Fprintln(stdout, "  bintree config validate -config <path>")
		return 0
	}

	if *configFile == "" {
		fmt.Fprintln(stderr, "Error: -config is required")
		return 1
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		reportConfigErrors(errs)
		return 1
	}

	fmt.Fprintln(stdout, "Configuration is valid")
	return 0
}

// configShowCmd prints the effective configuration after defaults and
// environment overrides are applied.
func configShowCmd(args []string) int {
	fs := flag.NewFlagSet("config show", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "Path to configuration file")
	format := fs.String("format", "yaml", "Output format: yaml, json")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		fmt.Fprintln(stdout, "Show effective configuration")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Usage:")
		fmt.Fprintln(stdout, "  bintree config show [-config <path>] [-format yaml|json]")
		return 0
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	return writeConfig(cfg, config.Format(*format))
}

func writeConfig(cfg *config.Config, format config.Format) int {
	data, err := config.Marshal(cfg, format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	stdout.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(stdout)
	}
	return 0
}
