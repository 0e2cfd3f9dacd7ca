// Package config provides YAML-based game configuration loading,
// difficulty presets and startup validation for Pizza Rush.
package config

// PizzaConfig contains all configuration for the game.
type PizzaConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Speed     SpeedConfig     `yaml:"speed"`
	Timers    TimersConfig    `yaml:"timers"`
	Placement PlacementConfig `yaml:"placement"`
	Turbo     TurboConfig     `yaml:"turbo"`
	Text      TextConfig      `yaml:"text"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// PlayfieldConfig defines the logical play area. Every entity is a square
// of SpriteSize units.
type PlayfieldConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	SpriteSize int `yaml:"sprite_size"`
}

// PlayerConfig defines where the player appears on every round reset.
type PlayerConfig struct {
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// SpeedConfig defines movement per tick in logical units.
type SpeedConfig struct {
	Base  int `yaml:"base"`
	Boost int `yaml:"boost"`
}

// TimersConfig defines the game clocks, all in milliseconds.
type TimersConfig struct {
	PickupTimeoutMs int64 `yaml:"pickup_timeout_ms"`
	BoostDurationMs int64 `yaml:"boost_duration_ms"`
	BoostCooldownMs int64 `yaml:"boost_cooldown_ms"` // Measured from activation
}

// PlacementConfig defines the exclusion zone around the player when a
// new pickup is placed: min(Base + (score/Every)*Step, Max).
type PlacementConfig struct {
	BaseExclusion int `yaml:"base_exclusion"`
	ExclusionStep int `yaml:"exclusion_step"`
	StepEvery     int `yaml:"step_every"`
	MaxExclusion  int `yaml:"max_exclusion"`
	MaxAttempts   int `yaml:"max_attempts"`
}

// TurboConfig defines the automatic turbo milestones: the next threshold is
// score + Offset + rand[0, Spread].
type TurboConfig struct {
	Offset int `yaml:"offset"`
	Spread int `yaml:"spread"`
}

// TextConfig holds the static text shown on the splash and game over gates.
type TextConfig struct {
	SplashTitle      string `yaml:"splash_title"`
	SplashSubtitle   string `yaml:"splash_subtitle"`
	GameOverTitle    string `yaml:"game_over_title"`
	GameOverSubtitle string `yaml:"game_over_subtitle"`
}

// TerminalConfig defines how the logical playfield maps onto terminal cells.
type TerminalConfig struct {
	CellWidth  int   `yaml:"cell_width"`  // Logical units per column
	CellHeight int   `yaml:"cell_height"` // Logical units per row
	HoldMs     int64 `yaml:"hold_ms"`     // How long a key press counts as held
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TimeoutForPreset returns the pickup timeout for a difficulty preset.
// Unknown presets return 0.
func TimeoutForPreset(preset DifficultyPreset) int64 {
	switch preset {
	case DifficultyEasy:
		return 3000
	case DifficultyNormal:
		return 2000
	case DifficultyHard:
		return 1500
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *PizzaConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	timeout := TimeoutForPreset(preset)
	if timeout == 0 {
		return &UnknownPresetError{Preset: string(preset)}
	}
	cfg.Timers.PickupTimeoutMs = timeout
	return nil
}
