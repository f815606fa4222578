package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// overlay points at the live config values so a YAML document only replaces
// the fields it names. Entries of keyed maps (enemy or fire types) are
// replaced whole.
type overlay struct {
	Window     *Config           `yaml:"window"`
	Player     *PlayerConfig     `yaml:"player"`
	Enemy      *EnemyConfig      `yaml:"enemy"`
	Fire       *FireConfig       `yaml:"fire"`
	Level      *LevelConfig      `yaml:"level"`
	Corruption *CorruptionConfig `yaml:"corruption"`
	Screens    *ScreenConfig     `yaml:"screens"`
	Audio      *AudioConfig      `yaml:"audio"`
	Sound      *SoundConfig      `yaml:"sound"`
	Debug      *DebugConfig      `yaml:"debug"`
}

// LoadOverrides applies a YAML overlay on top of the built-in defaults.
// Search order: customPath -> ~/.perfidia/config.yaml -> ./configs/config.yaml.
// It returns the path that was applied, or "" when no file was found.
// A missing custom path is an error; missing default locations are not.
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		if err := applyFile(customPath); err != nil {
			return "", err
		}
		return customPath, nil
	}

	for _, p := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "config.yaml")} {
		if p == "" {
			continue
		}
		err := applyFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return p, nil
	}
	return "", nil
}

// Apply overlays a YAML document onto the live config values.
func Apply(data []byte) error {
	o := overlay{
		Window:     C,
		Player:     &Player,
		Enemy:      &Enemy,
		Fire:       &Fire,
		Level:      &Level,
		Corruption: &Corruption,
		Screens:    &Screen,
		Audio:      &Audio,
		Sound:      &Sound,
		Debug:      &Debug,
	}
	return yaml.Unmarshal(data, &o)
}

func applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".perfidia", filename)
}
