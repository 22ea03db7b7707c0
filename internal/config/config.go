// internal/config/config.go
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds environment-variable defaults for the CLI flags.
// Precedence: flag > environment > built-in default.
type Config struct {
	Seed       int64  `env:"EXAMGEN_SEED" env-default:"42"`
	Title      string `env:"EXAMGEN_TITLE"`
	StartIndex int    `env:"EXAMGEN_START_INDEX" env-default:"1"`
}

// Load reads defaults from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	if cfg.StartIndex < 1 {
		return Config{}, fmt.Errorf("config: EXAMGEN_START_INDEX must be ≥ 1, got %d", cfg.StartIndex)
	}
	return cfg, nil
}
