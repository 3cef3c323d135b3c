package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.CPUs != DefaultCPUs {
		t.Errorf("CPUs = %d, want %d", cfg.CPUs, DefaultCPUs)
	}
	if cfg.DisplayWidth != 1024 || cfg.DisplayHeight != 768 {
		t.Errorf("display = %dx%d, want 1024x768", cfg.DisplayWidth, cfg.DisplayHeight)
	}
	if cfg.WindowManager != "mutter" {
		t.Errorf("WindowManager = %q, want %q", cfg.WindowManager, "mutter")
	}
	if cfg.ReadyTimeout() != DefaultReadyTimeout {
		t.Errorf("ReadyTimeout = %s, want %s", cfg.ReadyTimeout(), DefaultReadyTimeout)
	}
	if cfg.RetryDelay() != DefaultRetryDelay {
		t.Errorf("RetryDelay = %s, want %s", cfg.RetryDelay(), DefaultRetryDelay)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "box.yaml")
	content := `
cpus: 4
memory_mib: 4096
display_width: 1920
display_height: 1080
window_manager: xfwm4
ready_timeout: 90s
retry_delay: 250ms
env:
  LANG: en_US.UTF-8
ports:
  - host: 5900
    guest: 5900
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CPUs != 4 || cfg.MemoryMiB != 4096 {
		t.Errorf("resources = %d cpus / %d MiB, want 4 / 4096", cfg.CPUs, cfg.MemoryMiB)
	}
	if cfg.DisplayWidth != 1920 || cfg.DisplayHeight != 1080 {
		t.Errorf("display = %dx%d, want 1920x1080", cfg.DisplayWidth, cfg.DisplayHeight)
	}
	if cfg.WindowManager != "xfwm4" {
		t.Errorf("WindowManager = %q, want xfwm4", cfg.WindowManager)
	}
	if cfg.ReadyTimeout() != 90*time.Second {
		t.Errorf("ReadyTimeout = %s, want 90s", cfg.ReadyTimeout())
	}
	if cfg.RetryDelay() != 250*time.Millisecond {
		t.Errorf("RetryDelay = %s, want 250ms", cfg.RetryDelay())
	}
	if cfg.Env["LANG"] != "en_US.UTF-8" {
		t.Errorf("Env[LANG] = %q, want en_US.UTF-8", cfg.Env["LANG"])
	}
	if len(cfg.Ports) != 1 || cfg.Ports[0].Host != 5900 || cfg.Ports[0].Guest != 5900 {
		t.Errorf("Ports = %+v, want one 5900:5900 forward", cfg.Ports)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "box.yaml")
	if err := os.WriteFile(path, []byte("display_width: 1280\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DisplayWidth != 1280 {
		t.Errorf("DisplayWidth = %d, want 1280", cfg.DisplayWidth)
	}
	if cfg.DisplayHeight != DefaultDisplayHeight {
		t.Errorf("DisplayHeight = %d, want default %d", cfg.DisplayHeight, DefaultDisplayHeight)
	}
	if cfg.CPUs != DefaultCPUs {
		t.Errorf("CPUs = %d, want default %d", cfg.CPUs, DefaultCPUs)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDuration_BadValueFallsBack(t *testing.T) {
	cfg := Default()
	cfg.RawReadyTimeout = "not-a-duration"
	if cfg.ReadyTimeout() != DefaultReadyTimeout {
		t.Errorf("ReadyTimeout = %s, want default %s", cfg.ReadyTimeout(), DefaultReadyTimeout)
	}
}
