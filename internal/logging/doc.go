// Package logging provides structured logging for the bintree tools.
//
// # Overview
//
// The logging package provides a small structured logging interface with:
//
//   - Four log levels (debug, info, warn, error)
//   - Text and JSON output formats
//   - Field-based contextual logging
//
// # Creating a Logger
//
// Create a logger with configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// Or write to any io.Writer:
//
//	logger := logging.NewWriter(os.Stderr, logging.LevelInfo, logging.FormatText)
//
// A logger writing to a file path owns the file; close it when done:
//
//	logger := logging.New(logging.Config{Output: "/var/log/bintree.log"})
//	defer logger.Close()
//
// # Structured Logging
//
// Add key-value pairs to log entries:
//
//	logger.Debug("tree decoded",
//	    "nodes", tree.Size(),
//	    "duration_us", 12,
//	)
//
// Text output sorts fields by key:
//
//	2026-10-19T10:30:00Z [debug] tree decoded duration_us=12 nodes=5
//
// JSON output:
//
//	{"ts":"2026-10-19T10:30:00Z","level":"debug","msg":"tree decoded","nodes":5,"duration_us":12}
//
// # Contextual Fields
//
// Create loggers with persistent fields:
//
//	cmdLogger := logger.WithFields("command", "depth")
//	cmdLogger.Info("query complete") // includes command=depth
package logging
