package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/KilimcininKorOglu/bintree/internal/bintree"
	"github.com/KilimcininKorOglu/bintree/internal/config"
	"github.com/KilimcininKorOglu/bintree/internal/logging"
)

var errNoTree = errors.New("no tree given: use -tree or set tree in the config file")

// treeFlags holds the flags shared by every command that reads a tree.
type treeFlags struct {
	fs         *flag.FlagSet
	tree       *string
	configFile *string
	help       *bool
	helpLong   *bool
}

func newTreeFlags(name string) *treeFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return &treeFlags{
		fs:         fs,
		tree:       fs.String("tree", "", "Tree in pre-order encoding"),
		configFile: fs.String("config", "", "Path to configuration file"),
		help:       fs.Bool("h", false, "Show help message"),
		helpLong:   fs.Bool("help", false, "Show help message"),
	}
}

// parse parses args and reports whether help was requested.
func (f *treeFlags) parse(args []string) (helpRequested bool, err error) {
	if err := f.fs.Parse(args); err != nil {
		return false, err
	}
	return *f.help || *f.helpLong, nil
}

// isSet reports whether the named flag was given on the command line.
func (f *treeFlags) isSet(name string) bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// session is the loaded state a query command works with.
type session struct {
	cfg    *config.Config
	logger logging.Logger
	tree   *bintree.Tree[int64]
}

// loadConfig loads the configuration file, if any, then applies environment overrides.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	config.ApplyEnvOverrides(cfg)
	return cfg, nil
}

// reportConfigErrors prints validation errors on stderr.
func reportConfigErrors(errs []error) {
	fmt.Fprintln(stderr, "Configuration errors:")
	for _, e := range errs {
		fmt.Fprintf(stderr, "  - %s\n", e)
	}
}

// newLogger builds the command logger. Standard streams go through the
// package-level writers; any other output is a file path.
func newLogger(cfg config.LogConfig) logging.Logger {
	level, format := logging.ParseLevel(cfg.Level), logging.ParseFormat(cfg.Format)
	switch cfg.Output {
	case "", "stderr":
		return logging.NewWriter(stderr, level, format)
	case "stdout":
		return logging.NewWriter(stdout, level, format)
	}
	return logging.New(logging.Config{
		Level:  cfg.Level,
		Format: cfg.Format,
		Output: cfg.Output,
	})
}

// open loads and validates configuration, then decodes the tree for the
// command. Errors are reported on stderr. The caller closes s.logger.
func (f *treeFlags) open() (*session, bool) {
	cfg, err := loadConfig(*f.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return nil, false
	}
	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		reportConfigErrors(errs)
		return nil, false
	}

	logger := newLogger(cfg.Logging).WithFields("command", f.fs.Name())

	encoded := *f.tree
	if encoded == "" {
		encoded = cfg.Tree
	}
	if encoded == "" {
		logger.Close()
		fmt.Fprintf(stderr, "Error: %v\n", errNoTree)
		return nil, false
	}

	start := time.Now()
	tree, err := bintree.Deserialize[int64](encoded)
	if err != nil {
		logger.Error("decode failed", "error", err)
		logger.Close()
		fmt.Fprintf(stderr, "Error decoding tree: %v\n", err)
		return nil, false
	}
	logger.Debug("tree decoded",
		"nodes", tree.Size(),
		"duration_us", time.Since(start).Microseconds(),
	)

	return &session{cfg: cfg, logger: logger, tree: tree}, true
}
