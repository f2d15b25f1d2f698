//go:build !js
// +build !js

package main

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// Config is read from the environment; command flags override it.
type Config struct {
	Addr      string `env:"RECITAL_ADDR" envDefault:":8080"`
	StaticDir string `env:"RECITAL_STATIC" envDefault:"."`
	StatePath string `env:"RECITAL_STATE"`
	LogLevel  string `env:"RECITAL_LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "recital",
		ReportTimestamp: true,
	}), nil
}
