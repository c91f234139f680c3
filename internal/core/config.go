package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the board and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Viewport width in characters
	ScreenH int   // Viewport height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}
