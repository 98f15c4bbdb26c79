package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Playground is the environment configuration of cmd/playground. Command
// line flags override it.
type Playground struct {
	Level     string  `env:"CHARACTERCORE_LEVEL" envDefault:"sandbox"`
	PrefabDir string  `env:"CHARACTERCORE_PREFABS" envDefault:"prefabs"`
	Debug     bool    `env:"CHARACTERCORE_DEBUG"`
	Watch     bool    `env:"CHARACTERCORE_WATCH"`
	Zoom      float64 `env:"CHARACTERCORE_ZOOM" envDefault:"40"`
}

func LoadPlayground() (Playground, error) {
	var cfg Playground
	if err := env.Parse(&cfg); err != nil {
		return Playground{}, fmt.Errorf("config: parse env: %w", err)
	}
	if cfg.Zoom <= 0 {
		return Playground{}, fmt.Errorf("config: invalid zoom %g", cfg.Zoom)
	}
	return cfg, nil
}
