package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRingshot loads the ringshot tuning configuration.
// Search order: customPath -> ~/.ringshot/configs/ringshot.yaml -> ./configs/ringshot.yaml -> embedded default
//
// Files only need to name the values they change; everything else keeps the
// built-in default.
func LoadRingshot(customPath string) (RingshotConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRingshotConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRingshot(data)
		if err != nil {
			return DefaultRingshotConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ringshot.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRingshot(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "ringshot.yaml")); err == nil {
		if cfg, err := parseRingshot(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRingshot(defaultRingshotYAML)
	if err != nil {
		return DefaultRingshotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRingshot decodes YAML over the hardcoded defaults and validates the result.
func parseRingshot(data []byte) (RingshotConfig, error) {
	cfg := DefaultRingshotConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ringshot", "configs", filename)
}
