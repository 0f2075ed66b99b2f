package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDash loads the Delhi Dash configuration and validates it.
// Search order: customPath -> ~/.dash/configs/dash.yaml -> ./configs/dash.yaml -> embedded default.
// Files only need to list the keys they override; everything else keeps its default.
func LoadDash(customPath string) (DashConfig, error) {
	cfg, err := loadDash(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadDash(customPath string) (DashConfig, error) {
	cfg := DefaultDashConfig()

	// Try custom path first
	if customPath != "" {
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
	if userCfgPath := userConfigPath("dash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultDashConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dash.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultDashConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDashYAML, &cfg); err != nil {
		return DefaultDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dash", "configs", filename)
}

// ApplyDashPreset modifies the speed ramp based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyDashPreset(cfg *DashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.IncrementPerSecond /= 2
	case DifficultyHard:
		// Start past the double-spawn threshold so paired obstacles appear at once
		start := cfg.Spawn.DoubleSpawnSpeed
		if start < cfg.Speed.Initial {
			start = cfg.Speed.Initial
		}
		if start > cfg.Speed.Max {
			start = cfg.Speed.Max
		}
		cfg.Speed.Initial = start
	case DifficultyFixed:
		cfg.Speed.IncrementPerSecond = 0
	}
}
