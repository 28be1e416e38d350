package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Viewer.Wireframe {
		t.Error("expected wireframe to be false by default")
	}
	if !cfg.Viewer.Specular {
		t.Error("expected specular to be true by default")
	}
	if cfg.Viewer.MoveSpeed != 2.5 {
		t.Errorf("expected move speed 2.5, got %f", cfg.Viewer.MoveSpeed)
	}
	if cfg.Viewer.DragSensitivity != 0.005 {
		t.Errorf("expected drag sensitivity 0.005, got %f", cfg.Viewer.DragSensitivity)
	}
	if !cfg.Viewer.WatchFiles {
		t.Error("expected watch_files to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `graphics:
  width: 640
  height: 480
viewer:
  wireframe: true
  move_speed: 5.0
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 640 || cfg.Graphics.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Viewer.Wireframe {
		t.Error("wireframe not loaded from file")
	}
	if cfg.Viewer.MoveSpeed != 5.0 {
		t.Errorf("move speed = %f, want 5.0", cfg.Viewer.MoveSpeed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Logging.Level)
	}

	// Fields absent from the file keep their defaults.
	if !cfg.Viewer.Specular {
		t.Error("specular default lost during merge")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Viewer.Bounds = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}

	if loaded.Graphics.Width != 800 {
		t.Errorf("width = %d, want 800", loaded.Graphics.Width)
	}
	if !loaded.Viewer.Bounds {
		t.Error("bounds toggle lost in round trip")
	}
}
