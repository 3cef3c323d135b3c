package desktop

import (
	"context"
	"strings"
	"time"
)

// sleep and now are stubbed in tests to keep polling deterministic.
var (
	sleep = time.Sleep
	now   = time.Now
)

// probeArgs composes the readiness probe: list the window-manager process
// and print the display geometry in one shell invocation. The exit code
// follows the last command, so a desktop without a display fails the probe.
func (d *Desktop) probeArgs() []string {
	return []string{"sh", "-c", "pgrep -l " + d.cfg.WindowManager + "; " + injectTool + " getdisplaygeometry"}
}

// ready is the success predicate over the probe's stdout: the window-manager
// process marker must be present and the geometry must match the configured
// display exactly.
func (d *Desktop) ready(stdout string) bool {
	return strings.Contains(stdout, d.cfg.WindowManager) &&
		strings.Contains(stdout, d.geometryString())
}

// WaitUntilReady polls the desktop with the configured timeout and retry
// delay until the window manager is up and the display has the expected
// geometry.
func (d *Desktop) WaitUntilReady(ctx context.Context) error {
	return d.WaitUntilReadyFor(ctx, d.cfg.ReadyTimeout(), d.cfg.RetryDelay())
}

// WaitUntilReadyFor polls until ready or until timeout elapses, in which
// case it returns a TimeoutError. A non-positive timeout fails on the first
// deadline check without probing. Probe failures of any kind (transport
// error, non-zero exit, unexpected output) are transient: they only cause
// another iteration after the retry delay, never an error. There is no
// early-exit path; a probe that never satisfies the predicate exhausts the
// full timeout.
func (d *Desktop) WaitUntilReadyFor(ctx context.Context, timeout, retryDelay time.Duration) error {
	start := now()
	for {
		if elapsed := now().Sub(start); elapsed > timeout {
			return &TimeoutError{Elapsed: elapsed, Timeout: timeout}
		}
		res, err := d.exec.Execute(ctx, d.probeArgs())
		if err == nil && res.ExitCode == 0 && d.ready(res.Stdout) {
			return nil
		}
		sleep(retryDelay)
	}
}
