// Package config resolves the process configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrNoUsername is returned when no username is available from any source.
var ErrNoUsername = errors.New("no GitHub username provided: pass one as an argument or set GITHUB_USERNAME")

// Config holds every environment-driven setting, read once at startup and
// passed into the pipeline explicitly.
type Config struct {
	Username   string `env:"GITHUB_USERNAME"`
	RepoOwner  string `env:"GITHUB_REPOSITORY_OWNER"`
	Token      string `env:"GITHUB_TOKEN"`
	OutputPath string `env:"OUTPUT_PATH" envDefault:"docs/stats.svg"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ResolveUsername picks the username to profile: an explicit argument wins,
// then GITHUB_USERNAME, then GITHUB_REPOSITORY_OWNER.
func (c Config) ResolveUsername(arg string) (string, error) {
	switch {
	case arg != "":
		return arg, nil
	case c.Username != "":
		return c.Username, nil
	case c.RepoOwner != "":
		return c.RepoOwner, nil
	}
	return "", ErrNoUsername
}
