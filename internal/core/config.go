package core

// DefaultTickRate is the simulation rate, one 20 ms base tick per frame.
const DefaultTickRate = 50

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 50)
	Seed      int64 // RNG seed for deterministic gameplay
	HighScore int   // Best score loaded from storage before the game starts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickMillis returns the duration of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 20
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score        int  // Current score
	GameOver     bool // Whether the game has ended
	Paused       bool // Whether the game is paused
	NewHighScore bool // Set once the game is over and Score beat the stored high score
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
