package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pizza-rush/internal/core"
	"github.com/vovakirdan/pizza-rush/internal/game"
	"github.com/vovakirdan/pizza-rush/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Pizza Rush in the terminal.

Controls:
  WASD/Arrows  - Move
  E            - Turbo
  Enter/Space  - Start / continue
  R            - Restart the round
  Q/Esc        - Quit

Terminals report key presses rather than key state, so a direction stays
held for a short moment after each press (terminal.hold_ms in the config).

Examples:
  pizzarush play
  pizzarush play --difficulty easy
  pizzarush play --config ./my-pizza.yaml --log-file pizza.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size; the model re-reads it on resize
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt, err := runtimeConfig(width, height)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty,
		"timeout_ms", cfg.Timers.PickupTimeoutMs)

	g := game.New(cfg, core.NewRandom(rt.Seed))
	if err := tui.Run(g, cfg, rt, core.NewMonotonicClock(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
