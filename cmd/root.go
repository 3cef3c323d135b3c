package cmd

import (
	"fmt"
	"os"

	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/boxlite-labs/boxlite/internal/version"
	"github.com/spf13/cobra"
)

var (
	flagBox     string
	flagConfig  string
	flagFormat  string
	flagTimeout int
)

var rootCmd = &cobra.Command{
	Use:   "boxlite-desktop",
	Short: "Drive the desktop inside a boxlite sandbox",
	Long: "Control a sandboxed desktop environment: synthetic mouse and keyboard input,\n" +
		"screenshots, and readiness checks, executed inside the box through the boxlite CLI.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().StringVar(&flagBox, "box", "", "Target box name or ID")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a box config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "Per-command execution timeout in seconds (default: configured exec_timeout)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		switch flagFormat {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", flagFormat)
		}
		return nil
	}
}
