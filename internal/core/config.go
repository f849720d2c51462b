package core

// RuntimeConfig carries the per-run settings a front-end hands to the game.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells (ignored by the desktop window)
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the front-end picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a front-end needs after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State     GameState
	Flapped   bool // A flap impulse was applied this tick
	Scored    int  // Pipes passed this tick
	Crashed   bool // This tick ended the run
	Restarted bool // This tick reset the run
}
