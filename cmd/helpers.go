package cmd

import (
	"fmt"
	"time"

	"github.com/boxlite-labs/boxlite/internal/config"
	"github.com/boxlite-labs/boxlite/internal/desktop"
	"github.com/boxlite-labs/boxlite/internal/sandbox"
)

// loadConfig returns the effective configuration: values from --config over
// the built-in defaults.
func loadConfig() (config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Load(flagConfig)
}

// newDesktop builds a Desktop for the box targeted by --box.
func newDesktop() (*desktop.Desktop, error) {
	if flagBox == "" {
		return nil, fmt.Errorf("--box is required")
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	timeout := cfg.ExecTimeout()
	if flagTimeout > 0 {
		timeout = time.Duration(flagTimeout) * time.Second
	}
	runner := sandbox.NewCLIRunner(flagBox, cfg.Env, timeout)
	return desktop.New(runner, cfg), nil
}
