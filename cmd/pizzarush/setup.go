package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pizza-rush/internal/config"
	"github.com/vovakirdan/pizza-rush/internal/core"
)

// applyEnv fills flags that were not given on the command line from the
// environment and an optional .env file.
func applyEnv(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("config") && env.ConfigPath != "" {
		flagConfig = env.ConfigPath
	}
	if !flags.Changed("difficulty") && env.Difficulty != "" {
		flagDifficulty = string(env.Difficulty)
	}
	if !flags.Changed("seed") && env.HasSeed {
		flagSeed = env.Seed
	}
	return nil
}

// loadConfig resolves, adjusts and validates the game configuration.
func loadConfig() (config.PizzaConfig, config.Source, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.PizzaConfig{}, "", err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.PizzaConfig{}, "", err
	}
	if err := cfg.Validate(); err != nil {
		return config.PizzaConfig{}, "", err
	}
	return cfg, source, nil
}

// runtimeConfig builds the runtime settings shared by the front ends.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, nil
}

// newLogger creates the application logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close function must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pizzarush",
		Level:           level,
	})
	return logger, closeFn, nil
}
