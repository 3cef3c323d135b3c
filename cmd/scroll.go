package cmd

import (
	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// ScrollResult is the output of a successful scroll command.
type ScrollResult struct {
	OK        bool   `yaml:"ok"        json:"ok"`
	Action    string `yaml:"action"    json:"action"`
	Direction string `yaml:"direction" json:"direction"`
	Amount    int    `yaml:"amount"    json:"amount"`
}

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll at a screen position",
	Long:  "Move the cursor to the given coordinates and scroll up, down, left, or right.",
	RunE:  runScroll,
}

func init() {
	rootCmd.AddCommand(scrollCmd)
	scrollCmd.Flags().String("direction", "", "Scroll direction: up, down, left, right")
	scrollCmd.Flags().Int("amount", 3, "Number of scroll clicks")
	scrollCmd.Flags().Int("x", 0, "Scroll at this X coordinate")
	scrollCmd.Flags().Int("y", 0, "Scroll at this Y coordinate")
	_ = scrollCmd.MarkFlagRequired("direction")
}

func runScroll(cmd *cobra.Command, args []string) error {
	direction, _ := cmd.Flags().GetString("direction")
	amount, _ := cmd.Flags().GetInt("amount")
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	d, err := newDesktop()
	if err != nil {
		return err
	}
	if err := d.Scroll(cmd.Context(), x, y, direction, amount); err != nil {
		return err
	}
	return output.Print(ScrollResult{OK: true, Action: "scroll", Direction: direction, Amount: amount})
}
