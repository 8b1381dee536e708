package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Durations.Work != 1500 {
		t.Errorf("Durations.Work = %d, want 1500", cfg.Durations.Work)
	}
	if cfg.Durations.ShortBreak != 300 {
		t.Errorf("Durations.ShortBreak = %d, want 300", cfg.Durations.ShortBreak)
	}
	if cfg.Durations.LongBreak != 900 {
		t.Errorf("Durations.LongBreak = %d, want 900", cfg.Durations.LongBreak)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if !cfg.Notify.Desktop || !cfg.Notify.Bell {
		t.Error("expected desktop and bell notifications enabled by default")
	}
	if cfg.IntervalDurations() != models.DefaultDurations() {
		t.Errorf("IntervalDurations = %+v, want defaults", cfg.IntervalDurations())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.Theme, DefaultTheme)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cfg.Durations.Work != 1500 {
		t.Errorf("Durations.Work = %d, want default", cfg.Durations.Work)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":::invalid:::yaml{{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load(invalid) expected error, got nil")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `durations:
  short_break: 2
  long_break: -5
logging:
  level: LOUD
notify:
  bell: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Durations.ShortBreak != 2 {
		t.Errorf("ShortBreak = %d, want 2", cfg.Durations.ShortBreak)
	}
	if cfg.Durations.LongBreak != 900 {
		t.Errorf("LongBreak = %d, want default 900", cfg.Durations.LongBreak)
	}
	if cfg.Durations.Work != 1500 {
		t.Errorf("Work = %d, want default 1500", cfg.Durations.Work)
	}
	if cfg.Logging.Level != LogLevelInfo {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Notify.Bell {
		t.Error("Notify.Bell = true, want false")
	}
	if !cfg.Notify.Desktop {
		t.Error("Notify.Desktop should keep its default")
	}
	if got := cfg.IntervalDurations().ShortBreak; got != 2*time.Second {
		t.Errorf("IntervalDurations().ShortBreak = %s, want 2s", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Durations.Work = 3000
	cfg.Theme = "dracula"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Durations.Work != 3000 || loaded.Theme != "dracula" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.Notify.Timeout != NotifyTimeout {
		t.Errorf("Notify.Timeout = %s, want %s", loaded.Notify.Timeout, NotifyTimeout)
	}
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, AppName, ConfigFileName)
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}
