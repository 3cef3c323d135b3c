package cmd

import (
	"github.com/boxlite-labs/boxlite/internal/config"
	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// ConfigResult is the effective configuration with durations resolved.
type ConfigResult struct {
	CPUs          int                  `yaml:"cpus"            json:"cpus"`
	MemoryMiB     int                  `yaml:"memory_mib"      json:"memory_mib"`
	DisplayWidth  int                  `yaml:"display_width"   json:"display_width"`
	DisplayHeight int                  `yaml:"display_height"  json:"display_height"`
	WindowManager string               `yaml:"window_manager"  json:"window_manager"`
	ReadyTimeout  string               `yaml:"ready_timeout"   json:"ready_timeout"`
	RetryDelay    string               `yaml:"retry_delay"     json:"retry_delay"`
	ExecTimeout   string               `yaml:"exec_timeout"    json:"exec_timeout"`
	Env           map[string]string    `yaml:"env,omitempty"   json:"env,omitempty"`
	Ports         []config.PortForward `yaml:"ports,omitempty" json:"ports,omitempty"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective box configuration",
	Long:  "Print the configuration after merging the config file over the built-in defaults.",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return output.Print(ConfigResult{
		CPUs:          cfg.CPUs,
		MemoryMiB:     cfg.MemoryMiB,
		DisplayWidth:  cfg.DisplayWidth,
		DisplayHeight: cfg.DisplayHeight,
		WindowManager: cfg.WindowManager,
		ReadyTimeout:  cfg.ReadyTimeout().String(),
		RetryDelay:    cfg.RetryDelay().String(),
		ExecTimeout:   cfg.ExecTimeout().String(),
		Env:           cfg.Env,
		Ports:         cfg.Ports,
	})
}
