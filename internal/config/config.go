// Package config holds the per-box configuration captured at construction
// time: resource parameters, display geometry, and readiness polling knobs.
// Precedence is caller flag > config file > built-in default.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in defaults, used when neither the config file nor the caller
// provides a value.
const (
	DefaultCPUs          = 2
	DefaultMemoryMiB     = 2048
	DefaultDisplayWidth  = 1024
	DefaultDisplayHeight = 768
	DefaultWindowManager = "mutter"
	DefaultReadyTimeout  = 60 * time.Second
	DefaultRetryDelay    = 1 * time.Second
	DefaultExecTimeout   = 30 * time.Second
)

// PortForward maps a host port to a guest port.
type PortForward struct {
	Host  int `yaml:"host"`
	Guest int `yaml:"guest"`
}

// Config describes a desktop box. It is read once at construction and never
// mutated afterwards; action methods only read from it.
type Config struct {
	// Resource parameters, applied when the box is created.
	CPUs      int               `yaml:"cpus"`
	MemoryMiB int               `yaml:"memory_mib"`
	Env       map[string]string `yaml:"env"`
	Ports     []PortForward     `yaml:"ports"`

	// Display geometry of the desktop inside the box. Screenshot dimensions
	// are reported from these values, not measured from captured images.
	DisplayWidth  int `yaml:"display_width"`
	DisplayHeight int `yaml:"display_height"`

	// WindowManager is the process name whose presence marks the desktop
	// as ready.
	WindowManager string `yaml:"window_manager"`

	// Durations are YAML strings like "60s"; use the accessor methods.
	RawReadyTimeout string `yaml:"ready_timeout"`
	RawRetryDelay   string `yaml:"retry_delay"`
	RawExecTimeout  string `yaml:"exec_timeout"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		CPUs:          DefaultCPUs,
		MemoryMiB:     DefaultMemoryMiB,
		DisplayWidth:  DefaultDisplayWidth,
		DisplayHeight: DefaultDisplayHeight,
		WindowManager: DefaultWindowManager,
	}
}

// Load reads a YAML config file on top of the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.CPUs <= 0 {
		cfg.CPUs = DefaultCPUs
	}
	if cfg.MemoryMiB <= 0 {
		cfg.MemoryMiB = DefaultMemoryMiB
	}
	if cfg.DisplayWidth <= 0 {
		cfg.DisplayWidth = DefaultDisplayWidth
	}
	if cfg.DisplayHeight <= 0 {
		cfg.DisplayHeight = DefaultDisplayHeight
	}
	if cfg.WindowManager == "" {
		cfg.WindowManager = DefaultWindowManager
	}
	return cfg, nil
}

// ReadyTimeout returns the configured readiness timeout or the default.
func (c *Config) ReadyTimeout() time.Duration {
	return c.duration(c.RawReadyTimeout, DefaultReadyTimeout)
}

// RetryDelay returns the configured probe retry delay or the default.
func (c *Config) RetryDelay() time.Duration {
	return c.duration(c.RawRetryDelay, DefaultRetryDelay)
}

// ExecTimeout returns the per-execution channel timeout or the default.
func (c *Config) ExecTimeout() time.Duration {
	return c.duration(c.RawExecTimeout, DefaultExecTimeout)
}

func (c *Config) duration(raw string, def time.Duration) time.Duration {
	if raw != "" {
		d, err := time.ParseDuration(raw)
		if err == nil && d != 0 {
			return d
		}
	}
	return def
}
