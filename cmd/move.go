package cmd

import (
	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// MoveResult is the output of a successful move command.
type MoveResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move the mouse cursor",
	Long:  "Move the mouse cursor to absolute screen coordinates inside the box.",
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().Int("x", 0, "Target X screen coordinate")
	moveCmd.Flags().Int("y", 0, "Target Y screen coordinate")
}

func runMove(cmd *cobra.Command, args []string) error {
	d, err := newDesktop()
	if err != nil {
		return err
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	if err := d.MoveMouse(cmd.Context(), x, y); err != nil {
		return err
	}
	return output.Print(MoveResult{OK: true, Action: "move", X: x, Y: y})
}
