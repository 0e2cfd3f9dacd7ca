package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/pizza-rush/internal/config"
)

// resetFlags restores flag defaults left over from earlier runs.
func resetFlags() {
	flagFPS, flagSeed = 60, 0
	flagConfig, flagDifficulty = "", ""
	flagLogLevel, flagLogFile = "info", ""
	flagDefaults = false

	clearChanged := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(clearChanged)
	configCmd.Flags().VisitAll(clearChanged)
}

// execute runs the root command with fresh flag values and a clean environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvDifficulty, "")
	t.Setenv(config.EnvSeed, "")
	t.Chdir(t.TempDir())

	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config --defaults failed: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Errorf("config --defaults should print the embedded file, got:\n%s", out)
	}
}

func TestConfigEffective(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "# source: embedded") {
		t.Errorf("Expected embedded source, got:\n%s", out)
	}
	if !strings.Contains(out, "pickup_timeout_ms: 1500") {
		t.Errorf("Hard preset should set a 1500ms timeout, got:\n%s", out)
	}
}

func TestConfigDifficultyFromEnv(t *testing.T) {
	t.Setenv(config.EnvDifficulty, "easy")
	t.Chdir(t.TempDir())

	resetFlags()
	if err := applyEnv(configCmd, nil); err != nil {
		t.Fatalf("applyEnv() error: %v", err)
	}
	if flagDifficulty != "easy" {
		t.Errorf("flagDifficulty = %q, expected easy", flagDifficulty)
	}
}

func TestConfigUnknownDifficulty(t *testing.T) {
	_, err := execute(t, "config", "--difficulty", "insane")

	var presetErr *config.UnknownPresetError
	if !errors.As(err, &presetErr) {
		t.Errorf("Expected UnknownPresetError, got %v", err)
	}
}

func TestInvalidFPS(t *testing.T) {
	flagFPS = 0
	if _, err := runtimeConfig(80, 24); err == nil {
		t.Error("Expected an error for --fps 0")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	flagLogLevel, flagLogFile = "loud", ""
	if _, _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("Expected an error for an unknown log level")
	}

	flagLogLevel = "debug"
	var buf bytes.Buffer
	logger, closeLog, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	defer closeLog()

	logger.Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("Debug output missing: %q", buf.String())
	}
}
