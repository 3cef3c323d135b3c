package cmd

import (
	"context"
	"fmt"

	"github.com/boxlite-labs/boxlite/internal/desktop"
	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// ClickResult is the output of a successful click command.
type ClickResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Button string `yaml:"button" json:"button"`
	Count  int    `yaml:"count"  json:"count"`
}

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at the current cursor position",
	Long:  "Click a mouse button at the current cursor position. Use `move` first to position the cursor.",
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click (left button)")
	clickCmd.Flags().Bool("triple", false, "Triple-click (left button)")
}

func runClick(cmd *cobra.Command, args []string) error {
	button, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")
	triple, _ := cmd.Flags().GetBool("triple")

	if double && triple {
		return fmt.Errorf("--double and --triple are mutually exclusive")
	}
	if (double || triple) && button != "left" {
		return fmt.Errorf("multi-click is only supported for the left button")
	}
	btn, err := desktop.ParseMouseButton(button)
	if err != nil {
		return err
	}

	d, err := newDesktop()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	count := 1
	var clickErr error
	switch {
	case double:
		count = 2
		clickErr = d.DoubleClick(ctx)
	case triple:
		count = 3
		clickErr = d.TripleClick(ctx)
	default:
		clickErr = singleClick(ctx, d, btn)
	}
	if clickErr != nil {
		return clickErr
	}
	return output.Print(ClickResult{OK: true, Action: "click", Button: button, Count: count})
}

func singleClick(ctx context.Context, d *desktop.Desktop, btn desktop.MouseButton) error {
	switch btn {
	case desktop.ButtonRight:
		return d.RightClick(ctx)
	case desktop.ButtonMiddle:
		return d.MiddleClick(ctx)
	default:
		return d.LeftClick(ctx)
	}
}
