package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("missing file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Partial(t *testing.T) {
	path := writeConfig(t, `{"extent": 64, "log_level": "debug"}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	want := &Config{LogLevel: "debug", Extent: 64, MarkerRadius: 5, SnapshotScale: 1}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := writeConfig(t, `{"extent": `)
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `{"extent": 64}`)
	t.Setenv(EnvPath, path)
	t.Setenv(EnvExtent, " 40 ")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Extent != 40 {
		t.Errorf("Extent: got %d, want 40", cfg.Extent)
	}
	lvl, err := cfg.Level()
	if err != nil || lvl != slog.LevelWarn {
		t.Errorf("Level: got %v, %v; want WARN", lvl, err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{"zero extent", `{"extent": 0}`, nil},
		{"negative radius", `{"marker_radius": -2}`, nil},
		{"zero scale", `{"snapshot_scale": 0}`, nil},
		{"huge scale", `{"snapshot_scale": 1e9}`, nil},
		{"bad level", `{"log_level": "loud"}`, nil},
		{"non-numeric extent", `{}`, map[string]string{EnvExtent: "tall"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPath, writeConfig(t, tt.body))
			t.Setenv(EnvExtent, "")
			t.Setenv(EnvLogLevel, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := &Config{LogLevel: "error", Extent: 12, MarkerRadius: 3, SnapshotScale: 2}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("saved config mismatch (-want +got):\n%s", diff)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := (&Config{LogLevel: tt.in}).Level()
		if err != nil || got != tt.want {
			t.Errorf("Level(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
