// Package config loads per-program settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Window holds the display knobs shared by both programs.
type Window struct {
	Scale int `env:"SCALE" envDefault:"2"`
	TPS   int `env:"TPS" envDefault:"60"`
}

// ParseWindow loads Window settings using the given variable prefix,
// e.g. "CALC_" reads CALC_SCALE and CALC_TPS.
func ParseWindow(prefix string) (Window, error) {
	var w Window
	if err := env.ParseWithOptions(&w, env.Options{Prefix: prefix}); err != nil {
		return Window{}, fmt.Errorf("parse env: %w", err)
	}
	return w, nil
}
