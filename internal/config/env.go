// Package config loads CLI defaults from the environment and batch plans from
// YAML files. The study and figure packages never read configuration
// themselves; everything they need is passed explicitly.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds flag defaults read from the environment.
type Env struct {
	SourceRoot   string `env:"EOSARCHIVE_SOURCE_ROOT"`
	EOSRoot      string `env:"EOSARCHIVE_EOS_ROOT"`
	AnalysisKind string `env:"EOSARCHIVE_ANALYSIS_KIND" envDefault:"tune_scan"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns the flag defaults of the current environment.
func LoadEnv() (Env, error) {
	var e Env
	err := ParseEnv(&e)
	return e, err
}
