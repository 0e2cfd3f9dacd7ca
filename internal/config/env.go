package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvConfigPath = "PIZZA_CONFIG"
	EnvDifficulty = "PIZZA_DIFFICULTY"
	EnvSeed       = "PIZZA_SEED"
)

// EnvOverrides holds settings taken from the environment.
// Empty fields were not set.
type EnvOverrides struct {
	ConfigPath string
	Difficulty DifficultyPreset
	Seed       int64
	HasSeed    bool
}

// LoadEnv loads the given dotenv files (".env" when none are given) into the
// process environment and returns the overrides found there. Missing files
// are not an error; variables already set in the environment win.
func LoadEnv(files ...string) (EnvOverrides, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return EnvOverrides{}, fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return readEnv()
}

func readEnv() (EnvOverrides, error) {
	var env EnvOverrides
	env.ConfigPath = os.Getenv(EnvConfigPath)
	env.Difficulty = DifficultyPreset(os.Getenv(EnvDifficulty))

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return EnvOverrides{}, fmt.Errorf("config: invalid %s %q: %w", EnvSeed, raw, err)
		}
		env.Seed = seed
		env.HasSeed = true
	}
	return env, nil
}
