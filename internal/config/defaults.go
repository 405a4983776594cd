package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Tree: "",
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Render: RenderConfig{
			Horizontal: false,
			NullMarker: "·",
		},
	}
}
