package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Framebuffer.Width != 426 || cfg.Framebuffer.Height != 240 {
		t.Errorf("default framebuffer %dx%d, want 426x240", cfg.Framebuffer.Width, cfg.Framebuffer.Height)
	}
	if cfg.Effect.Type == "" {
		t.Error("default effect type missing")
	}
	if cfg.Theme.Name == "" {
		t.Error("default theme name missing")
	}
	if cfg.Derived.FBWidth32 != 426 {
		t.Errorf("derived fb width = %v", cfg.Derived.FBWidth32)
	}
}

func TestLoadUserOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("effect:\n  type: vortex\nframebuffer:\n  width: 320\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Effect.Type != "vortex" {
		t.Errorf("effect = %q, want override", cfg.Effect.Type)
	}
	if cfg.Framebuffer.Width != 320 {
		t.Errorf("fb width = %d, want 320", cfg.Framebuffer.Width)
	}
	// Keys absent from the user file keep embedded defaults.
	if cfg.Framebuffer.Height != 240 {
		t.Errorf("fb height = %d, want default 240", cfg.Framebuffer.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Effect.Type != cfg.Effect.Type || loaded.Theme.Name != cfg.Theme.Name {
		t.Error("round-tripped config differs")
	}
}
