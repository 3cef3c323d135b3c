package cmd

import (
	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// DragResult is the output of a successful drag command.
type DragResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	FromX  int    `yaml:"from_x" json:"from_x"`
	FromY  int    `yaml:"from_y" json:"from_y"`
	ToX    int    `yaml:"to_x"   json:"to_x"`
	ToY    int    `yaml:"to_y"   json:"to_y"`
}

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag from one point to another",
	Long:  "Press the left button at the start coordinates and release it at the end coordinates.",
	RunE:  runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	dragCmd.Flags().Int("from-x", 0, "Start X coordinate")
	dragCmd.Flags().Int("from-y", 0, "Start Y coordinate")
	dragCmd.Flags().Int("to-x", 0, "End X coordinate")
	dragCmd.Flags().Int("to-y", 0, "End Y coordinate")
}

func runDrag(cmd *cobra.Command, args []string) error {
	d, err := newDesktop()
	if err != nil {
		return err
	}
	fromX, _ := cmd.Flags().GetInt("from-x")
	fromY, _ := cmd.Flags().GetInt("from-y")
	toX, _ := cmd.Flags().GetInt("to-x")
	toY, _ := cmd.Flags().GetInt("to-y")

	if err := d.Drag(cmd.Context(), fromX, fromY, toX, toY); err != nil {
		return err
	}
	return output.Print(DragResult{
		OK: true, Action: "drag",
		FromX: fromX, FromY: fromY, ToX: toX, ToY: toY,
	})
}
