package cmd

import (
	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// CursorResult is the output of the cursor command.
type CursorResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
}

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Query the current cursor position",
	RunE:  runCursor,
}

func init() {
	rootCmd.AddCommand(cursorCmd)
}

func runCursor(cmd *cobra.Command, args []string) error {
	d, err := newDesktop()
	if err != nil {
		return err
	}
	pos, err := d.CursorPosition(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(CursorResult{OK: true, Action: "cursor", X: pos.X, Y: pos.Y})
}
