package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// Status is what a game reports to the platform after each tick.
type Status struct {
	Moves  int  // Legal pours made so far
	Won    bool // Every tube is empty or sorted
	Paused bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	Status Status
}
