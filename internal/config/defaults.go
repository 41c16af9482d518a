package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the base for
// every load and as the final fallback if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		UI: UIConfig{
			FPS:       60,
			Color:     true,
			HoldTicks: 6,
		},
		Server: ServerConfig{
			Address:            ":23234",
			HostKey:            "",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for tooling
// that wants to show or write out a starter config.
func DefaultYAML() []byte {
	return defaultYAML
}
