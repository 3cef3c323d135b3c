package desktop

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/boxlite-labs/boxlite/internal/config"
	"github.com/boxlite-labs/boxlite/internal/sandbox"
)

// fakeExecutor records every argv and answers from a handler. The default
// handler reports success with empty output.
type fakeExecutor struct {
	calls   [][]string
	handler func(argv []string) (sandbox.ExecResult, error)
}

func (f *fakeExecutor) Execute(_ context.Context, argv []string) (sandbox.ExecResult, error) {
	f.calls = append(f.calls, argv)
	if f.handler != nil {
		return f.handler(argv)
	}
	return sandbox.ExecResult{}, nil
}

func okOutput(stdout string) func([]string) (sandbox.ExecResult, error) {
	return func([]string) (sandbox.ExecResult, error) {
		return sandbox.ExecResult{Stdout: stdout}, nil
	}
}

func newTestDesktop(handler func([]string) (sandbox.ExecResult, error)) (*Desktop, *fakeExecutor) {
	fake := &fakeExecutor{handler: handler}
	return New(fake, config.Default()), fake
}

func TestMoveMouse_ComposedCommand(t *testing.T) {
	d, fake := newTestDesktop(nil)
	if err := d.MoveMouse(context.Background(), 100, 250); err != nil {
		t.Fatalf("MoveMouse: %v", err)
	}
	want := [][]string{{"xdotool", "mousemove", "100", "250"}}
	if !reflect.DeepEqual(fake.calls, want) {
		t.Errorf("calls = %v, want %v", fake.calls, want)
	}
}

func TestClick_NonZeroExitCarriesActionNameAndStderr(t *testing.T) {
	d, _ := newTestDesktop(func([]string) (sandbox.ExecResult, error) {
		return sandbox.ExecResult{ExitCode: 1, Stderr: "cannot open display :0"}, nil
	})

	err := d.LeftClick(context.Background())
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("error = %T (%v), want *ExecutionError", err, err)
	}
	if execErr.Action != "leftClick()" {
		t.Errorf("Action = %q, want %q", execErr.Action, "leftClick()")
	}
	if execErr.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", execErr.ExitCode)
	}
	if execErr.Stderr != "cannot open display :0" {
		t.Errorf("Stderr = %q, want captured stderr verbatim", execErr.Stderr)
	}
}

func TestClick_ActionNames(t *testing.T) {
	tests := []struct {
		name   string
		invoke func(*Desktop) error
		action string
	}{
		{"right", func(d *Desktop) error { return d.RightClick(context.Background()) }, "rightClick()"},
		{"middle", func(d *Desktop) error { return d.MiddleClick(context.Background()) }, "middleClick()"},
		{"double", func(d *Desktop) error { return d.DoubleClick(context.Background()) }, "doubleClick()"},
		{"triple", func(d *Desktop) error { return d.TripleClick(context.Background()) }, "tripleClick()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDesktop(func([]string) (sandbox.ExecResult, error) {
				return sandbox.ExecResult{ExitCode: 2, Stderr: "boom"}, nil
			})
			err := tt.invoke(d)
			var execErr *ExecutionError
			if !errors.As(err, &execErr) {
				t.Fatalf("error = %T, want *ExecutionError", err)
			}
			if execErr.Action != tt.action {
				t.Errorf("Action = %q, want %q", execErr.Action, tt.action)
			}
		})
	}
}

func TestDoubleClick_SingleGesture(t *testing.T) {
	d, fake := newTestDesktop(nil)
	if err := d.DoubleClick(context.Background()); err != nil {
		t.Fatalf("DoubleClick: %v", err)
	}
	want := [][]string{{"xdotool", "click", "--repeat", "2", "--delay", "100", "1"}}
	if !reflect.DeepEqual(fake.calls, want) {
		t.Errorf("calls = %v, want one multi-click command %v", fake.calls, want)
	}
}

func TestScroll_InvalidDirectionNeverExecutes(t *testing.T) {
	d, fake := newTestDesktop(nil)
	err := d.Scroll(context.Background(), 10, 10, "sideways", 3)
	if err == nil {
		t.Fatal("expected validation error for invalid direction")
	}
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		t.Errorf("validation failure must not be an ExecutionError, got %v", err)
	}
	if len(fake.calls) != 0 {
		t.Errorf("execute called %d times, want 0", len(fake.calls))
	}
}

func TestScroll_MovesThenScrolls(t *testing.T) {
	d, fake := newTestDesktop(nil)
	if err := d.Scroll(context.Background(), 30, 40, "Down", 5); err != nil {
		t.Fatalf("Scroll: %v", err)
	}
	want := [][]string{
		{"xdotool", "mousemove", "30", "40"},
		{"xdotool", "click", "--repeat", "5", "5"},
	}
	if !reflect.DeepEqual(fake.calls, want) {
		t.Errorf("calls = %v, want %v", fake.calls, want)
	}
}

func TestTypeText_PassedAfterSeparator(t *testing.T) {
	d, fake := newTestDesktop(nil)
	if err := d.TypeText(context.Background(), "--help me"); err != nil {
		t.Fatalf("TypeText: %v", err)
	}
	want := [][]string{{"xdotool", "type", "--", "--help me"}}
	if !reflect.DeepEqual(fake.calls, want) {
		t.Errorf("calls = %v, want %v", fake.calls, want)
	}
}

func TestCursorPosition(t *testing.T) {
	d, _ := newTestDesktop(okOutput("X=12\nY=34\nSCREEN=0\nWINDOW=77594628\n"))
	got, err := d.CursorPosition(context.Background())
	if err != nil {
		t.Fatalf("CursorPosition: %v", err)
	}
	if got != (Coordinate{X: 12, Y: 34}) {
		t.Errorf("CursorPosition = %+v, want (12, 34)", got)
	}
}

func TestCursorPosition_UndecodableOutput(t *testing.T) {
	d, _ := newTestDesktop(okOutput("no coordinates here\n"))
	_, err := d.CursorPosition(context.Background())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T (%v), want *ParseError", err, err)
	}
}

func TestCursorPosition_ExitFailureBeatsParsing(t *testing.T) {
	d, _ := newTestDesktop(func([]string) (sandbox.ExecResult, error) {
		return sandbox.ExecResult{ExitCode: 1, Stdout: "X=12\nY=34\n", Stderr: "x11 gone"}, nil
	})
	_, err := d.CursorPosition(context.Background())
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("error = %T, want *ExecutionError when exit code is non-zero", err)
	}
	if execErr.Action != "cursorPosition()" {
		t.Errorf("Action = %q, want cursorPosition()", execErr.Action)
	}
}

func TestScreenSize(t *testing.T) {
	d, _ := newTestDesktop(okOutput("1024 768\n"))
	got, err := d.ScreenSize(context.Background())
	if err != nil {
		t.Fatalf("ScreenSize: %v", err)
	}
	if got != (ScreenSize{Width: 1024, Height: 768}) {
		t.Errorf("ScreenSize = %+v, want 1024x768", got)
	}
}

func TestDrag_OrderAndSettles(t *testing.T) {
	var slept int
	origSleep := sleep
	sleep = func(d time.Duration) { slept++ }
	defer func() { sleep = origSleep }()

	d, fake := newTestDesktop(nil)
	if err := d.Drag(context.Background(), 10, 10, 50, 50); err != nil {
		t.Fatalf("Drag: %v", err)
	}
	want := [][]string{
		{"xdotool", "mousemove", "10", "10"},
		{"xdotool", "mousedown", "1"},
		{"xdotool", "mousemove", "50", "50"},
		{"xdotool", "mouseup", "1"},
	}
	if !reflect.DeepEqual(fake.calls, want) {
		t.Errorf("calls = %v, want %v", fake.calls, want)
	}
	if slept != 2 {
		t.Errorf("settle delays = %d, want 2", slept)
	}
}

func TestDrag_StopsOnFirstFailure(t *testing.T) {
	origSleep := sleep
	sleep = func(time.Duration) {}
	defer func() { sleep = origSleep }()

	d, fake := newTestDesktop(func(argv []string) (sandbox.ExecResult, error) {
		if argv[1] == "mousedown" {
			return sandbox.ExecResult{ExitCode: 1, Stderr: "press failed"}, nil
		}
		return sandbox.ExecResult{}, nil
	})
	err := d.Drag(context.Background(), 0, 0, 5, 5)
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("error = %T, want *ExecutionError", err)
	}
	if execErr.Action != "drag()" {
		t.Errorf("Action = %q, want drag()", execErr.Action)
	}
	if len(fake.calls) != 2 {
		t.Errorf("execute called %d times after failure, want 2", len(fake.calls))
	}
}

func TestCaptureScreenshot_DimensionsFromConfig(t *testing.T) {
	payload := "aGVsbG8gZGVza3RvcA=="
	fake := &fakeExecutor{handler: okOutput(payload + "\n")}

	cfg := config.Default()
	cfg.DisplayWidth = 1920
	cfg.DisplayHeight = 1080
	d := New(fake, cfg)

	shot, err := d.CaptureScreenshot(context.Background())
	if err != nil {
		t.Fatalf("CaptureScreenshot: %v", err)
	}
	if shot.Data != payload {
		t.Errorf("Data = %q, want trimmed payload %q", shot.Data, payload)
	}
	if shot.Width != 1920 || shot.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want configured 1920x1080", shot.Width, shot.Height)
	}
	if shot.Format != "png" {
		t.Errorf("Format = %q, want png", shot.Format)
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	transport := fmt.Errorf("channel closed")
	d, _ := newTestDesktop(func([]string) (sandbox.ExecResult, error) {
		return sandbox.ExecResult{}, transport
	})
	err := d.MoveMouse(context.Background(), 1, 2)
	if !errors.Is(err, transport) {
		t.Errorf("error = %v, want wrapped transport error", err)
	}
}
