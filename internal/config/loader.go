package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Demo identifiers used for config file names.
const (
	ShooterID = "shooter"
	ClickID   = "click"
	CatchID   = "catch"
	RunJumpID = "runjump"
	MazeID    = "maze"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.arcade-demos/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load(ShooterID, customPath, defaultShooterYAML, DefaultShooterConfig)
}

// LoadClick loads the click configuration.
func LoadClick(customPath string) (ClickConfig, error) {
	return load(ClickID, customPath, defaultClickYAML, DefaultClickConfig)
}

// LoadCatch loads the catch configuration.
func LoadCatch(customPath string) (CatchConfig, error) {
	return load(CatchID, customPath, defaultCatchYAML, DefaultCatchConfig)
}

// LoadRunJump loads the run-and-jump configuration.
func LoadRunJump(customPath string) (RunJumpConfig, error) {
	return load(RunJumpID, customPath, defaultRunJumpYAML, DefaultRunJumpConfig)
}

// LoadMaze loads the maze levels. A file without levels is rejected.
func LoadMaze(customPath string) (MazeConfig, error) {
	cfg, err := load(MazeID, customPath, defaultMazeYAML, DefaultMazeConfig)
	if err != nil {
		return cfg, err
	}
	if len(cfg.Levels) == 0 {
		return DefaultMazeConfig(), fmt.Errorf("config: maze config has no levels")
	}
	return cfg, nil
}

// load resolves a demo config. A custom path must exist and parse; the other
// locations are skipped silently when missing or invalid. Values absent from a
// file keep the hardcoded defaults.
func load[T any](id, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range SearchPaths(id, "") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// SearchPaths lists the files a demo config is read from, most specific
// first. With a custom path that is the only entry.
func SearchPaths(id, customPath string) []string {
	if customPath != "" {
		return []string{customPath}
	}
	filename := id + ".yaml"
	paths := make([]string, 0, 2)
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// UserConfigDir returns ~/.arcade-demos/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade-demos", "configs")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
