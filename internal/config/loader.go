package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local config directories.
const FileName = "hexletters.yaml"

// LoadHexLetters loads the hexletters configuration.
// Search order: customPath -> ~/.hexletters/configs/hexletters.yaml -> ./configs/hexletters.yaml -> embedded default
// Files found along the way are layered over the defaults, so partial files are fine.
func LoadHexLetters(customPath string) (HexConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HexConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return HexConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (HexConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HexConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HexConfig{}, err
	}
	return cfg, nil
}

// Default returns the embedded default config, or the hardcoded one if the embed fails to parse.
func Default() HexConfig {
	var cfg HexConfig
	if err := yaml.Unmarshal(defaultHexYAML, &cfg); err != nil {
		return DefaultHexConfig()
	}
	return cfg
}

// Marshal renders cfg as YAML.
func Marshal(cfg HexConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexletters", "configs", filename)
}
