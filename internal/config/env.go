package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds process settings read from the environment. CLI flags take
// precedence over these.
type Env struct {
	ConfigDir string `env:"HEXSIM_CONFIG" envDefault:"assets"`
	Workers   int    `env:"HEXSIM_WORKERS" envDefault:"8"`
	Seed      int64  `env:"HEXSIM_SEED" envDefault:"12345"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// DotEnv is set when a .env file was found and applied.
	DotEnv bool `env:"-"`
}

// LoadEnv applies an optional .env file (or the given files) and parses
// the environment.
func LoadEnv(files ...string) (*Env, error) {
	loaded := godotenv.Load(files...) == nil
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	e.DotEnv = loaded
	return &e, nil
}
