package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Editor.CharLimit != nil || cfg.Editor.Theme != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[editor]\nlimit = 280\ninclude-spaces = false\ntheme = \"dark\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Editor.CharLimit == nil || *cfg.Editor.CharLimit != 280 {
		t.Fatalf("unexpected limit: %v", cfg.Editor.CharLimit)
	}
	if cfg.Editor.IncludeSpaces == nil || *cfg.Editor.IncludeSpaces {
		t.Fatalf("expected include-spaces=false")
	}
	if cfg.Editor.Theme == nil || *cfg.Editor.Theme != "dark" {
		t.Fatalf("unexpected theme: %v", cfg.Editor.Theme)
	}
	if cfg.Editor.History != nil {
		t.Fatalf("expected history to be unset")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor]\nlimt = 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "editor.limt") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "tuistat", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "tuistat", "tuistat.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
