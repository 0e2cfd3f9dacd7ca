package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvDifficulty, "")
	t.Setenv(EnvSeed, "")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadEnv() with a missing file failed: %v", err)
	}
	if env.ConfigPath != "" || env.Difficulty != "" || env.HasSeed {
		t.Errorf("Expected no overrides, got %+v", env)
	}
}

func TestLoadEnvFromFile(t *testing.T) {
	// Registered so t.Setenv restores them after godotenv writes
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvDifficulty, "")
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvConfigPath)
	os.Unsetenv(EnvDifficulty)
	os.Unsetenv(EnvSeed)

	path := filepath.Join(t.TempDir(), "test.env")
	content := "PIZZA_CONFIG=/tmp/pizza.yaml\nPIZZA_DIFFICULTY=hard\nPIZZA_SEED=99\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if env.ConfigPath != "/tmp/pizza.yaml" {
		t.Errorf("ConfigPath = %q", env.ConfigPath)
	}
	if env.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", env.Difficulty)
	}
	if !env.HasSeed || env.Seed != 99 {
		t.Errorf("Seed = %d (set %v), expected 99", env.Seed, env.HasSeed)
	}
}

func TestLoadEnvProcessWins(t *testing.T) {
	t.Setenv(EnvDifficulty, "easy")
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvSeed, "")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PIZZA_DIFFICULTY=hard\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if env.Difficulty != DifficultyEasy {
		t.Errorf("Process environment should win, got %q", env.Difficulty)
	}
}

func TestLoadEnvInvalidSeed(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")

	if _, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("LoadEnv() should reject a non-numeric seed")
	}
}
