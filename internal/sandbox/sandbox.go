// Package sandbox is the execution channel into a box: it runs an argv
// inside the guest and returns the exit code and captured output. Command
// failure is signaled through ExitCode only; the error return is reserved
// for transport problems (binary missing, context expired).
package sandbox

import "context"

// ExecResult is the immutable outcome of one command execution.
type ExecResult struct {
	RunID    string // unique identifier for this execution
	ExitCode int    // process exit code, 0 on success
	Stdout   string // captured stdout (may be truncated)
	Stderr   string // captured stderr (may be truncated)
}

// Executor runs a command inside the box. Implementations must be safe to
// call repeatedly; this layer assumes but does not enforce that concurrent
// executions are serialized correctly by the channel.
type Executor interface {
	Execute(ctx context.Context, argv []string) (ExecResult, error)
}
