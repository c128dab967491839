// Package settings loads the configuration of a dice session.
//
// Values are resolved in order: defaults from package meta, an optional YAML
// file, then ROYALUR_* environment variables.
package settings

import (
	"fmt"
	"os"

	"royalur/dice"
	"royalur/meta"
	"royalur/rules"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ROYALUR_"

// Settings configures which dice are rolled and how.
type Settings struct {
	Dice       dice.DiceType `yaml:"dice" env:"DICE"`
	Seed       uint64        `yaml:"seed" env:"SEED"` // 0 draws a random seed
	Rolls      int           `yaml:"rolls" env:"ROLLS"`
	Goroutines int           `yaml:"goroutines" env:"GOROUTINES"`
	OutputDir  string        `yaml:"output_dir" env:"OUTPUT_DIR"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	dt, err := dice.ParseDiceType(meta.DICE_TYPE)
	if err != nil {
		panic(fmt.Sprintf("default dice type: %v", err))
	}
	return Settings{
		Dice:       dt,
		Rolls:      meta.ROLLS,
		Goroutines: meta.GO_ROUTINES,
		OutputDir:  meta.OUTPUT_DIR,
	}
}

// Load resolves the settings. path may be empty to skip the YAML file.
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse settings file %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&s, env.Options{Prefix: envPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the settings describe a runnable session.
func (s Settings) Validate() error {
	if !s.Dice.Valid() {
		return fmt.Errorf("%w: unknown dice type %d", rules.ErrInvalidArgument, int(s.Dice))
	}
	if s.Rolls <= 0 {
		return fmt.Errorf("%w: rolls must be positive: %d", rules.ErrInvalidArgument, s.Rolls)
	}
	if s.Goroutines <= 0 {
		return fmt.Errorf("%w: goroutines must be positive: %d", rules.ErrInvalidArgument, s.Goroutines)
	}
	if s.OutputDir == "" {
		return fmt.Errorf("%w: output dir must be set", rules.ErrInvalidArgument)
	}
	return nil
}

// Marshal renders the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
