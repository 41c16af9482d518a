package core

// RuntimeConfig is the configuration handed to the game at initialization.
// It describes the environment, not the rules: simulation constants are
// fixed at build time.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in cells
	ScreenH  int // Terminal height in cells
	TickRate int // Simulation ticks per second
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the per-tick status the platform reads back after a step.
type GameState struct {
	Score    int
	Lives    int
	GameOver bool // Terminal, either victory or defeat
	Victory  bool // Only meaningful when GameOver is true
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
