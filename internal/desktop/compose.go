package desktop

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// injectTool is the input-injection tool inside the box. All peripheral
// actions compile down to invocations of it.
const injectTool = "xdotool"

// interClickDelayMs is the pause between repeated clicks so that double and
// triple clicks register as one gesture instead of independent clicks.
const interClickDelayMs = 100

// dragSettleDelay is the pause after the button press and after the move to
// the drag target. Without it the injection tool can coalesce rapid
// move+button events into a no-op drag.
const dragSettleDelay = 100 * time.Millisecond

// MouseButton is a mouse button in the injection tool's numbering.
type MouseButton int

const (
	ButtonLeft   MouseButton = 1
	ButtonMiddle MouseButton = 2
	ButtonRight  MouseButton = 3
)

// ParseMouseButton converts a flag value to a MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	default:
		return ButtonLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// scrollButtons maps scroll directions to the injection tool's wheel
// button numbers.
var scrollButtons = map[string]MouseButton{
	"up":    4,
	"down":  5,
	"left":  6,
	"right": 7,
}

// ParseScrollDirection validates a scroll direction, case-insensitively.
// An unknown direction is a programmer error reported before any command is
// composed or executed.
func ParseScrollDirection(s string) (MouseButton, error) {
	if b, ok := scrollButtons[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("invalid scroll direction %q (expected up, down, left, or right)", s)
}

func moveArgs(x, y int) []string {
	return []string{injectTool, "mousemove", strconv.Itoa(x), strconv.Itoa(y)}
}

// clickArgs composes a single click command. repeat > 1 adds the fixed
// inter-click delay so the gesture registers as a multi-click.
func clickArgs(button MouseButton, repeat int) []string {
	args := []string{injectTool, "click"}
	if repeat > 1 {
		args = append(args,
			"--repeat", strconv.Itoa(repeat),
			"--delay", strconv.Itoa(interClickDelayMs))
	}
	return append(args, strconv.Itoa(int(button)))
}

// typeArgs passes text after an explicit "--" so that text beginning with a
// dash is never interpreted as a flag.
func typeArgs(text string) []string {
	return []string{injectTool, "type", "--", text}
}

// keyArgs passes the key combination through verbatim; the injection tool's
// own modifier syntax is authoritative.
func keyArgs(sequence string) []string {
	return []string{injectTool, "key", sequence}
}

// scrollArgs composes a wheel-button click repeated amount times. The
// direction must already be validated via ParseScrollDirection.
func scrollArgs(button MouseButton, amount int) []string {
	if amount < 1 {
		amount = 1
	}
	args := []string{injectTool, "click"}
	if amount > 1 {
		args = append(args, "--repeat", strconv.Itoa(amount))
	}
	return append(args, strconv.Itoa(int(button)))
}

func cursorArgs() []string {
	return []string{injectTool, "getmouselocation", "--shell"}
}

func displayGeometryArgs() []string {
	return []string{injectTool, "getdisplaygeometry"}
}

// dragStep is one command of a drag sequence, optionally followed by a
// settle delay before the next step.
type dragStep struct {
	argv        []string
	settleAfter time.Duration
}

// dragSteps composes the fixed drag sequence: move to start, press, settle,
// move to end, settle, release.
func dragSteps(x0, y0, x1, y1 int) []dragStep {
	return []dragStep{
		{argv: moveArgs(x0, y0)},
		{argv: []string{injectTool, "mousedown", strconv.Itoa(int(ButtonLeft))}, settleAfter: dragSettleDelay},
		{argv: moveArgs(x1, y1), settleAfter: dragSettleDelay},
		{argv: []string{injectTool, "mouseup", strconv.Itoa(int(ButtonLeft))}},
	}
}
