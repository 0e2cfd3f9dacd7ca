package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pizza-rush/internal/core"
	"github.com/vovakirdan/pizza-rush/internal/game"
	"github.com/vovakirdan/pizza-rush/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Pizza Rush in a desktop window.

Controls:
  WASD/Arrows      - Move
  E                - Turbo
  A/Enter/Space    - Start / continue
  R                - Restart the round
  Q/Esc            - Quit

Examples:
  pizzarush window
  pizzarush window --fps 30 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	rt, err := runtimeConfig(cfg.Playfield.Width, cfg.Playfield.Height)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty,
		"timeout_ms", cfg.Timers.PickupTimeoutMs)

	g := game.New(cfg, core.NewRandom(rt.Seed))
	return window.Run(g, rt, core.NewMonotonicClock(), logger)
}
