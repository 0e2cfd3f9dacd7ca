package core

// RuntimeConfig contains configuration passed to the game front ends.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time
	}
}

// Round is the top-level state of a game session.
type Round int

const (
	RoundSplash Round = iota
	RoundPlaying
	RoundGameOver
)

// String returns the lowercase name of the round state.
func (r Round) String() string {
	switch r {
	case RoundSplash:
		return "splash"
	case RoundPlaying:
		return "playing"
	case RoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something notable that happened during a tick.
// Front ends use events for logging; the game never depends on them.
type Event int

const (
	EventRoundStarted Event = iota + 1 // Splash or game over confirmed
	EventRestarted                     // Manual restart while playing
	EventPickup                        // Pickup collected
	EventBoostStarted                  // Turbo activated
	EventBoostEnded                    // Turbo deactivated
	EventTimeout                       // Countdown ran out, game over next tick
	EventGameOver                      // Round entered game over
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventRoundStarted:
		return "round_started"
	case EventRestarted:
		return "restarted"
	case EventPickup:
		return "pickup"
	case EventBoostStarted:
		return "boost_started"
	case EventBoostEnded:
		return "boost_ended"
	case EventTimeout:
		return "timeout"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the externally visible state after a tick.
type GameState struct {
	Round         Round   // Current round state
	Score         int     // Pickups collected this round
	TimeRemaining float64 // Countdown fraction in [0, 1]
	Boosting      bool    // Whether the turbo is active
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // Quit was requested; the front end must stop
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
