package cmd

import (
	"fmt"
	"time"

	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// WaitResult is the output of the wait command.
type WaitResult struct {
	OK       bool   `yaml:"ok"                 json:"ok"`
	Action   string `yaml:"action"             json:"action"`
	Elapsed  string `yaml:"elapsed"            json:"elapsed"`
	TimedOut bool   `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait until the desktop is ready",
	Long:  "Poll the box until the window manager is running and the display has the configured geometry, or until the timeout elapses.",
	RunE:  runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().Int("timeout", 0, "Max seconds to wait (default: configured ready_timeout)")
	waitCmd.Flags().Int("interval", 0, "Probe interval in milliseconds (default: configured retry_delay)")
}

func runWait(cmd *cobra.Command, args []string) error {
	d, err := newDesktop()
	if err != nil {
		return err
	}

	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")

	cfg := d.Config()
	timeout := cfg.ReadyTimeout()
	if cmd.Flags().Changed("timeout") {
		timeout = time.Duration(timeoutSec) * time.Second
	}
	interval := cfg.RetryDelay()
	if cmd.Flags().Changed("interval") {
		interval = time.Duration(intervalMs) * time.Millisecond
	}

	start := time.Now()
	waitErr := d.WaitUntilReadyFor(cmd.Context(), timeout, interval)
	elapsed := fmt.Sprintf("%.1fs", time.Since(start).Seconds())

	if waitErr != nil {
		// Print the result, then return the error for a non-zero exit code.
		_ = output.Print(WaitResult{OK: false, Action: "wait", Elapsed: elapsed, TimedOut: true})
		return waitErr
	}
	return output.Print(WaitResult{OK: true, Action: "wait", Elapsed: elapsed})
}
