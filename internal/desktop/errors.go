package desktop

import (
	"fmt"
	"strings"
	"time"
)

// The control layer reports exactly three failure kinds. Each is a distinct
// type so callers can handle them exhaustively with errors.As; parameter
// validation failures are plain errors and never reach the channel.

// ExecutionError reports a command that ran inside the box and exited
// non-zero. Action is the logical action name (e.g. "leftClick()"), never
// the composed argv, so messages stay stable across injection-tool changes.
type ExecutionError struct {
	Action   string
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("%s failed with exit code %d", e.Action, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// TimeoutError reports that the desktop did not become ready within the
// configured deadline.
type TimeoutError struct {
	Elapsed time.Duration
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("desktop not ready after %s (timeout %s)",
		e.Elapsed.Round(time.Millisecond), e.Timeout)
}

// ParseError reports command output that could not be decoded into the
// expected structure. Output carries an excerpt of the raw text.
type ParseError struct {
	Output string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse command output: %q", e.Output)
}

// maxExcerpt caps the raw output carried inside a ParseError.
const maxExcerpt = 256

func newParseError(raw string) *ParseError {
	if len(raw) > maxExcerpt {
		raw = raw[:maxExcerpt] + "..."
	}
	return &ParseError{Output: raw}
}
