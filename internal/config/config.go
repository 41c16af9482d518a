// Package config provides YAML-based platform configuration. Only
// presentation and server settings live here; the simulation's rules are
// compile-time constants and deliberately not configurable.
package config

// Config is the root of the invaders platform configuration.
type Config struct {
	UI     UIConfig     `yaml:"ui"`
	Server ServerConfig `yaml:"server"`
}

// UIConfig tunes the local terminal presentation.
type UIConfig struct {
	// FPS is the simulation tick rate.
	FPS int `yaml:"fps"`

	// Color enables styled output. Plain runes otherwise.
	Color bool `yaml:"color"`

	// HoldTicks is how many ticks a direction key stays "held" after its
	// last press or repeat. Terminals report no key releases, so the
	// platform synthesizes the release when this window expires.
	HoldTicks int `yaml:"hold_ticks"`
}

// ServerConfig tunes the SSH server started by `invaders serve`.
type ServerConfig struct {
	// Address is the host:port to listen on.
	Address string `yaml:"address"`

	// HostKey is the path to the host key file.
	// Empty means auto-generate under ~/.invaders.
	HostKey string `yaml:"host_key"`

	// IdleTimeoutMinutes closes idle sessions after this many minutes.
	IdleTimeoutMinutes int `yaml:"idle_timeout_minutes"`
}
