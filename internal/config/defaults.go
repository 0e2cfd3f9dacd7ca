package config

import (
	_ "embed"
)

//go:embed defaults/pizza.yaml
var defaultPizzaYAML []byte

// DefaultPizzaConfig returns the default configuration.
// It mirrors defaults/pizza.yaml and is used when the embedded file cannot be parsed.
func DefaultPizzaConfig() PizzaConfig {
	return PizzaConfig{
		Playfield: PlayfieldConfig{
			Width:      480,
			Height:     320,
			SpriteSize: 64,
		},
		Player: PlayerConfig{
			SpawnX: 60,
			SpawnY: 100,
		},
		Speed: SpeedConfig{
			Base:  25,
			Boost: 45,
		},
		Timers: TimersConfig{
			PickupTimeoutMs: 2000,
			BoostDurationMs: 1000,
			BoostCooldownMs: 5000,
		},
		Placement: PlacementConfig{
			BaseExclusion: 20,
			ExclusionStep: 20,
			StepEvery:     30,
			MaxExclusion:  180,
			MaxAttempts:   10000,
		},
		Turbo: TurboConfig{
			Offset: 30,
			Spread: 10,
		},
		Text: TextConfig{
			SplashTitle:      "Game Start!",
			SplashSubtitle:   "Press Enter to start",
			GameOverTitle:    "Game Over",
			GameOverSubtitle: "Press Enter to restart",
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			HoldMs:     150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPizzaYAML
}
