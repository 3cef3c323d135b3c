package cmd

import (
	"fmt"

	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// TypeResult is the output of a successful type command.
type TypeResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Text   string `yaml:"text"   json:"text"`
}

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Type text into the focused element",
	Long:  "Type text into whatever currently has keyboard focus. Text can be passed as a positional argument or via --text.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type (alternative to positional arg)")
}

func runType(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	// Positional arg overrides --text flag.
	if len(args) > 0 {
		text = args[0]
	}
	if text == "" {
		return fmt.Errorf("specify --text or a positional text argument")
	}

	d, err := newDesktop()
	if err != nil {
		return err
	}
	if err := d.TypeText(cmd.Context(), text); err != nil {
		return err
	}
	return output.Print(TypeResult{OK: true, Action: "type", Text: text})
}
