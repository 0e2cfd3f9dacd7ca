package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

// SourceEmbedded marks the built-in defaults.
const SourceEmbedded Source = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.pizzarush/pizza.yaml -> ./configs/pizza.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (PizzaConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PizzaConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PizzaConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, Source(customPath), nil
	}

	candidates := []string{}
	if userCfgPath := userConfigPath("pizza.yaml"); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", "pizza.yaml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return PizzaConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, Source(path), nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPizzaYAML)
	if err != nil {
		return DefaultPizzaConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (PizzaConfig, error) {
	cfg := DefaultPizzaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PizzaConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg PizzaConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pizzarush", filename)
}
