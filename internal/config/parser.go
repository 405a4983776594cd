package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser errors.
var (
	ErrFileNotFound      = errors.New("configuration file not found")
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)

// Format identifies a configuration file encoding.
type Format string

// Supported configuration formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadConfig loads configuration from a file path. The format follows the
// file extension; environment variables are substituted before parsing and
// defaults fill anything the file leaves out.
func LoadConfig(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data, format)
}

// ParseConfig parses configuration data in the given format.
func ParseConfig(data []byte, format Format) (*Config, error) {
	data = substituteEnvVars(data)

	// Start with defaults so missing keys keep their default values
	config := DefaultConfig()

	switch format {
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return config, nil
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return config, nil
}

// Marshal encodes the configuration in the given format.
func Marshal(config *Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(config)
	case FormatJSON:
		return json.MarshalIndent(config, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment variable values.
func substituteEnvVars(data []byte) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		content := string(match[2 : len(match)-1])

		if idx := strings.Index(content, ":-"); idx != -1 {
			if val := os.Getenv(content[:idx]); val != "" {
				return []byte(val)
			}
			return []byte(content[idx+2:])
		}

		return []byte(os.Getenv(content))
	})
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern BINTREE_<SECTION>_<KEY>.
func ApplyEnvOverrides(config *Config) {
	if v := os.Getenv("BINTREE_TREE"); v != "" {
		config.Tree = v
	}

	if v := os.Getenv("BINTREE_LOGGING_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("BINTREE_LOGGING_FORMAT"); v != "" {
		config.Logging.Format = v
	}
	if v := os.Getenv("BINTREE_LOGGING_OUTPUT"); v != "" {
		config.Logging.Output = v
	}

	if v := os.Getenv("BINTREE_RENDER_NULL_MARKER"); v != "" {
		config.Render.NullMarker = v
	}
}
