package cmd

import (
	"github.com/boxlite-labs/boxlite/internal/output"
	"github.com/spf13/cobra"
)

// ScreenSizeResult is the output of the screen-size command.
type ScreenSizeResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
}

var screenSizeCmd = &cobra.Command{
	Use:   "screen-size",
	Short: "Query the live display geometry",
	RunE:  runScreenSize,
}

func init() {
	rootCmd.AddCommand(screenSizeCmd)
}

func runScreenSize(cmd *cobra.Command, args []string) error {
	d, err := newDesktop()
	if err != nil {
		return err
	}
	size, err := d.ScreenSize(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(ScreenSizeResult{
		OK: true, Action: "screen-size",
		Width: size.Width, Height: size.Height,
	})
}
