package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in Load's source result.
const SourceEmbedded = "embedded"

// LocalConfigPath is the project-local config location, relative to the working directory.
const LocalConfigPath = "configs/flappy.yaml"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.flappy/config.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded over the defaults, so they only need to name the values they change.
// A custom path that cannot be read or parsed is an error; the other locations are skipped
// when missing or malformed.
func Load(customPath string) (FlappyConfig, string, error) {
	if customPath != "" {
		path := expandHome(customPath)
		cfg, err := loadFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, cfg.Validate()
	}

	candidates := []string{userConfigPath(), LocalConfigPath}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, cfg.Validate()
		}
	}

	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// Parse decodes YAML over the default configuration.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultFlappyConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns ~/.flappy/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "config.yaml")
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
