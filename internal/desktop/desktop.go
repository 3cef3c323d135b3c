// Package desktop is the automation control layer for a sandboxed desktop.
// It translates logical peripheral actions into injection-tool commands
// executed through a sandbox.Executor, parses their textual output into
// typed results, and reports failures as a closed set of typed errors
// (ExecutionError, TimeoutError, ParseError).
package desktop

import (
	"context"
	"fmt"

	"github.com/boxlite-labs/boxlite/internal/config"
	"github.com/boxlite-labs/boxlite/internal/sandbox"
)

// Coordinate is an on-screen point.
type Coordinate struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// ScreenSize is the desktop's display geometry.
type ScreenSize struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Desktop drives the desktop inside one box. The configuration is captured
// at construction and read-only afterwards; the executor is the only
// collaborator. Methods are safe to call sequentially from one caller;
// concurrent callers are not serialized here.
type Desktop struct {
	exec sandbox.Executor
	cfg  config.Config
}

// New returns a Desktop over the given execution channel.
func New(exec sandbox.Executor, cfg config.Config) *Desktop {
	return &Desktop{exec: exec, cfg: cfg}
}

// Config returns the configuration captured at construction.
func (d *Desktop) Config() config.Config {
	return d.cfg
}

// run executes one composed command and classifies its outcome. A non-zero
// exit becomes an ExecutionError labeled with the logical action name.
func (d *Desktop) run(ctx context.Context, action string, argv []string) (sandbox.ExecResult, error) {
	res, err := d.exec.Execute(ctx, argv)
	if err != nil {
		return res, err
	}
	if res.ExitCode != 0 {
		return res, &ExecutionError{Action: action, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}

// MoveMouse moves the cursor to absolute screen coordinates.
func (d *Desktop) MoveMouse(ctx context.Context, x, y int) error {
	_, err := d.run(ctx, "moveMouse()", moveArgs(x, y))
	return err
}

func (d *Desktop) click(ctx context.Context, action string, button MouseButton, repeat int) error {
	_, err := d.run(ctx, action, clickArgs(button, repeat))
	return err
}

// LeftClick clicks the left button at the current cursor position.
func (d *Desktop) LeftClick(ctx context.Context) error {
	return d.click(ctx, "leftClick()", ButtonLeft, 1)
}

// RightClick clicks the right button at the current cursor position.
func (d *Desktop) RightClick(ctx context.Context) error {
	return d.click(ctx, "rightClick()", ButtonRight, 1)
}

// MiddleClick clicks the middle button at the current cursor position.
func (d *Desktop) MiddleClick(ctx context.Context) error {
	return d.click(ctx, "middleClick()", ButtonMiddle, 1)
}

// DoubleClick performs a left double click as one gesture.
func (d *Desktop) DoubleClick(ctx context.Context) error {
	return d.click(ctx, "doubleClick()", ButtonLeft, 2)
}

// TripleClick performs a left triple click as one gesture.
func (d *Desktop) TripleClick(ctx context.Context) error {
	return d.click(ctx, "tripleClick()", ButtonLeft, 3)
}

// Drag presses the left button at (x0,y0) and releases it at (x1,y1),
// pausing between synthetic events so the injection tool does not coalesce
// them into a no-op.
func (d *Desktop) Drag(ctx context.Context, x0, y0, x1, y1 int) error {
	for _, step := range dragSteps(x0, y0, x1, y1) {
		if _, err := d.run(ctx, "drag()", step.argv); err != nil {
			return err
		}
		if step.settleAfter > 0 {
			sleep(step.settleAfter)
		}
	}
	return nil
}

// CursorPosition queries the current cursor coordinates.
func (d *Desktop) CursorPosition(ctx context.Context) (Coordinate, error) {
	res, err := d.run(ctx, "cursorPosition()", cursorArgs())
	if err != nil {
		return Coordinate{}, err
	}
	return parseCursorPosition(res.Stdout)
}

// TypeText types the text into the focused element.
func (d *Desktop) TypeText(ctx context.Context, text string) error {
	_, err := d.run(ctx, "typeText()", typeArgs(text))
	return err
}

// Key presses a key combination, e.g. "ctrl+shift+t" or "Return". The
// sequence is passed to the injection tool verbatim.
func (d *Desktop) Key(ctx context.Context, sequence string) error {
	_, err := d.run(ctx, "key()", keyArgs(sequence))
	return err
}

// Scroll moves the cursor to (x,y) and scrolls amount wheel clicks in the
// given direction (up, down, left, right; case-insensitive). An invalid
// direction is rejected before any command is executed.
func (d *Desktop) Scroll(ctx context.Context, x, y int, direction string, amount int) error {
	button, err := ParseScrollDirection(direction)
	if err != nil {
		return err
	}
	if _, err := d.run(ctx, "scroll()", moveArgs(x, y)); err != nil {
		return err
	}
	_, err = d.run(ctx, "scroll()", scrollArgs(button, amount))
	return err
}

// ScreenSize queries the live display geometry from the desktop.
func (d *Desktop) ScreenSize(ctx context.Context) (ScreenSize, error) {
	res, err := d.run(ctx, "getScreenSize()", displayGeometryArgs())
	if err != nil {
		return ScreenSize{}, err
	}
	return parseScreenSize(res.Stdout)
}

// geometryString is the expected `getdisplaygeometry` output for the
// configured display, used by the readiness predicate.
func (d *Desktop) geometryString() string {
	return fmt.Sprintf("%d %d", d.cfg.DisplayWidth, d.cfg.DisplayHeight)
}
