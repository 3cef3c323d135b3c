package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"time"

	"github.com/google/uuid"
)

// MaxOutput caps captured stdout/stderr per execution. Screenshot payloads
// are base64 PNGs of a full desktop, so the cap is generous.
const MaxOutput = 16 << 20 // 16 MB

// CLIRunner executes commands inside a box through the boxlite CLI:
// `boxlite exec [--env K=V]... BOX -- argv...`.
type CLIRunner struct {
	Box     string            // box name or ID
	Env     map[string]string // extra environment for every execution
	Timeout time.Duration     // per-execution timeout (0 = none)

	// Command is the CLI invocation prefix, overridable for tests.
	Command []string
}

// NewCLIRunner returns a runner targeting the named box.
func NewCLIRunner(box string, env map[string]string, timeout time.Duration) *CLIRunner {
	return &CLIRunner{
		Box:     box,
		Env:     env,
		Timeout: timeout,
		Command: []string{"boxlite", "exec"},
	}
}

// Execute runs argv inside the box and captures its output. A non-zero exit
// from the guest command is not an error; it is reported via ExitCode.
func (r *CLIRunner) Execute(ctx context.Context, argv []string) (ExecResult, error) {
	if len(argv) == 0 {
		return ExecResult{}, fmt.Errorf("empty argv")
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	full := r.buildArgv(argv)
	cmd := exec.CommandContext(ctx, full[0], full[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitWriter{buf: &stdout, limit: MaxOutput}
	cmd.Stderr = &limitWriter{buf: &stderr, limit: MaxOutput}

	runErr := cmd.Run()

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return ExecResult{}, fmt.Errorf("executing %s: %w", full[0], runErr)
		}
	}

	return ExecResult{
		RunID:    uuid.New().String(),
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// buildArgv assembles the full host-side command line. Env flags are emitted
// in sorted key order so composed commands are deterministic.
func (r *CLIRunner) buildArgv(argv []string) []string {
	full := append([]string{}, r.Command...)

	keys := make([]string, 0, len(r.Env))
	for k := range r.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		full = append(full, "--env", k+"="+r.Env[k])
	}

	if r.Box != "" {
		full = append(full, r.Box)
	}
	full = append(full, "--")
	return append(full, argv...)
}

// limitWriter writes up to limit bytes to buf, then silently discards the
// rest while still reporting full writes to avoid short-write errors.
type limitWriter struct {
	buf   *bytes.Buffer
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		return len(p), nil
	}
	if len(p) > remaining {
		w.buf.Write(p[:remaining])
		return len(p), nil
	}
	return w.buf.Write(p)
}
