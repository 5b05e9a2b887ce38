// Package config loads the optional YAML settings file for the hanoi CLI.
//
// A missing path yields Default(). Values from the file are layered over the
// defaults and then checked with go-playground/validator struct tags.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// configValidate is shared; validator.Validate caches struct metadata.
var configValidate = validator.New()

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Game   GameConfig   `yaml:"game"`
	Solver SolverConfig `yaml:"solver"`
	UI     UIConfig     `yaml:"ui"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// GameConfig bounds the disk count offered by the interactive game.
type GameConfig struct {
	MinDisks int `yaml:"min_disks" validate:"gte=1"`
	MaxDisks int `yaml:"max_disks" validate:"gtefield=MinDisks,lte=20"`
}

type SolverConfig struct {
	// MaxDisks caps solve requests; the 3-peg output doubles per disk.
	MaxDisks int  `yaml:"max_disks" validate:"gte=1,lte=30"`
	Verify   bool `yaml:"verify"`
}

type UIConfig struct {
	// Plain forces the line-mode game even on a terminal.
	Plain bool `yaml:"plain"`
}

func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Game:   GameConfig{MinDisks: 3, MaxDisks: 9},
		Solver: SolverConfig{MaxDisks: 20},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	return configValidate.Struct(c)
}

// CheckDisks reports whether n is a playable disk count.
func (g GameConfig) CheckDisks(n int) error {
	if n < g.MinDisks || n > g.MaxDisks {
		return fmt.Errorf("disk count %d outside %d-%d", n, g.MinDisks, g.MaxDisks)
	}
	return nil
}
