// Package config provides configuration loading and validation for the bintree CLI.
package config

// Config holds the complete CLI configuration.
type Config struct {
	// Tree is the pre-order encoding used when no -tree flag is given.
	Tree    string       `yaml:"tree" json:"tree"`
	Logging LogConfig    `yaml:"logging" json:"logging"`
	Render  RenderConfig `yaml:"render" json:"render"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`
}

// RenderConfig holds tree drawing configuration.
type RenderConfig struct {
	Horizontal bool   `yaml:"horizontal" json:"horizontal"`
	NullMarker string `yaml:"nullMarker" json:"nullMarker"`
}
