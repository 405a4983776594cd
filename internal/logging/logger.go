package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level. Unknown strings map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format represents the log output format.
type Format int

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs logs in JSON format.
	FormatJSON
)

// ParseFormat parses a string into a Format. Unknown strings map to FormatText.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Logger is the interface for structured logging.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
	// WithFields returns a new logger with the given fields.
	WithFields(keysAndValues ...interface{}) Logger
	// Close releases the log file opened by New. Loggers derived with
	// WithFields share the file, so closing any of them closes it.
	Close() error
}

// Config holds the logger configuration.
type Config struct {
	Level  string
	Format string
	Output string
}

// logger is the default implementation of Logger.
// Child loggers share the parent's mutex so writes to one output never interleave.
type logger struct {
	level  Level
	format Format
	output io.Writer
	fields map[string]interface{}
	mu     *sync.Mutex
	now    func() time.Time
	file   *os.File
}

// New creates a new Logger with the given configuration.
// Output is "stdout", "stderr" (the default) or a file path; a file that
// cannot be opened falls back to stderr.
func New(cfg Config) Logger {
	var output io.Writer
	switch cfg.Output {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			output = os.Stderr
			break
		}
		l := NewWriter(f, ParseLevel(cfg.Level), ParseFormat(cfg.Format)).(*logger)
		l.file = f
		return l
	}

	return NewWriter(output, ParseLevel(cfg.Level), ParseFormat(cfg.Format))
}

// NewWriter creates a Logger that writes to w. Close does not close w.
func NewWriter(w io.Writer, level Level, format Format) Logger {
	return &logger{
		level:  level,
		format: format,
		output: w,
		fields: make(map[string]interface{}),
		mu:     &sync.Mutex{},
		now:    time.Now,
	}
}

// Debug logs a debug message.
func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs an info message.
func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message.
func (l *logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs an error message.
func (l *logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LevelError, msg, keysAndValues...)
}

// WithFields returns a new logger with the given fields.
func (l *logger) WithFields(keysAndValues ...interface{}) Logger {
	child := l.clone()
	addPairs(child.fields, keysAndValues)
	return child
}

// Close closes the log file opened by New, if any.
func (l *logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.output = io.Discard
	return err
}

func (l *logger) clone() *logger {
	fields := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		fields: fields,
		mu:     l.mu,
		now:    l.now,
		file:   l.file,
	}
}

// addPairs copies key-value pairs into dst. Non-string keys and a dangling
// final key are ignored.
func addPairs(dst map[string]interface{}, keysAndValues []interface{}) {
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			dst[key] = keysAndValues[i+1]
		}
	}
}

// log writes a log entry.
func (l *logger) log(level Level, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}

	fields := make(map[string]interface{}, len(l.fields)+len(keysAndValues)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	addPairs(fields, keysAndValues)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			fields[k] = err.Error()
		}
	}

	ts := l.now().UTC().Format(time.RFC3339)

	var line string
	if l.format == FormatJSON {
		line = formatJSON(ts, level, msg, fields)
	} else {
		line = formatText(ts, level, msg, fields)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.output, line)
}

func formatJSON(ts string, level Level, msg string, fields map[string]interface{}) string {
	entry := make(map[string]interface{}, len(fields)+3)
	for k, v := range fields {
		entry[k] = v
	}
	entry["ts"] = ts
	entry["level"] = level.String()
	entry["msg"] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"ts":%q,"level":"error","msg":"failed to marshal log entry"}`, ts)
	}
	return string(data)
}

func formatText(ts string, level Level, msg string, fields map[string]interface{}) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s", ts, level, msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, fields[k])
	}
	return sb.String()
}
