package cmd

import (
	"fmt"

	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// KeyResult is the output of a successful key command.
type KeyResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Key    string `yaml:"key"    json:"key"`
}

var keyCmd = &cobra.Command{
	Use:   "key <sequence>",
	Short: "Press a key combination",
	Long:  "Press a key combination, e.g. \"ctrl+shift+t\", \"alt+F4\", or \"Return\". The sequence is passed to the injection tool verbatim.",
	Args:  cobra.ExactArgs(1),
	RunE:  runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	sequence := args[0]
	if sequence == "" {
		return fmt.Errorf("key sequence must not be empty")
	}

	d, err := newDesktop()
	if err != nil {
		return err
	}
	if err := d.Key(cmd.Context(), sequence); err != nil {
		return err
	}
	return output.Print(KeyResult{OK: true, Action: "key", Key: sequence})
}
