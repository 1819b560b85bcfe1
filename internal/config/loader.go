package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in every config directory.
const ConfigFile = "forestrun.yaml"

// LoadForestRun loads Forest Run configuration.
// Search order: customPath -> ~/.forestrun/configs/forestrun.yaml -> ./configs/forestrun.yaml -> embedded default
//
// Files are layered over the defaults, so a file only needs the keys it changes.
// A broken custom path is an error; broken files found by searching are skipped.
func LoadForestRun(customPath string) (ForestRunConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultForestRunConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultForestRunConfig()
	if err := yaml.Unmarshal(defaultForestRunYAML, &cfg); err != nil {
		return DefaultForestRunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// EmbeddedDefault returns the embedded default file, for `config init`-style dumps.
func EmbeddedDefault() []byte {
	return append([]byte(nil), defaultForestRunYAML...)
}

// UserConfigPath returns where a user config file is searched for, or "" if
// there is no home directory.
func UserConfigPath() string {
	return userConfigPath(ConfigFile)
}

// tryLoad reads and parses path over the defaults. It reports false when the
// file is missing or malformed.
func tryLoad(path string) (ForestRunConfig, bool) {
	cfg := DefaultForestRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".forestrun", "configs", filename)
}

// ApplyForestRunPreset modifies the config based on a difficulty preset.
func ApplyForestRunPreset(cfg *ForestRunConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.StartingLives = 5
		cfg.Rules.InvulnerabilityMs = 2000
		cfg.Hazard.Smoothing = 0.05
	case DifficultyHard:
		cfg.Rules.StartingLives = 2
		cfg.Hazard.Smoothing = 0.15
	}
}
