// Package config reads logging settings from the environment.
//
//	APP_ENV        "production" turns decoration off by default (default: development)
//	LOG_DECORATE   true, false or auto; auto decorates only when stdout is a terminal
//	LOG_COLOR_TTL  how long an identifier keeps its color (default: 30m)
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
)

// Production is the APP_ENV value that disables decoration by default
const Production = "production"

// ErrInvalidDecorate is returned when LOG_DECORATE is not true, false or auto
var ErrInvalidDecorate = errors.New("config: LOG_DECORATE must be true, false or auto")

// Config holds logging settings
type Config struct {
	Env      string        `env:"APP_ENV" envDefault:"development"`
	Decorate string        `env:"LOG_DECORATE"`
	ColorTTL time.Duration `env:"LOG_COLOR_TTL" envDefault:"30m"`
}

// isTerminal is a variable to allow overriding TTY detection in tests
var isTerminal = func(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Load parses the process environment
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given environment instead of the process one
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the Decorate override
func (c Config) Validate() error {
	switch strings.ToLower(c.Decorate) {
	case "", "true", "false", "auto":
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidDecorate, c.Decorate)
	}
}

// DecorateOutput resolves whether output should carry color codes.
// An explicit LOG_DECORATE wins; otherwise output is decorated unless
// APP_ENV is production.
func (c Config) DecorateOutput() bool {
	switch strings.ToLower(c.Decorate) {
	case "true":
		return true
	case "false":
		return false
	case "auto":
		return isTerminal(os.Stdout)
	default:
		return c.Env != Production
	}
}
