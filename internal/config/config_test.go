package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFileIsEmpty(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Crack.Top != nil || cfg.Crack.Table != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigParsesCrackSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[crack]\ntop = 10\ntable = \"spanish\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Crack.Top == nil || *cfg.Crack.Top != 10 {
		t.Fatalf("unexpected top: %+v", cfg.Crack.Top)
	}
	if cfg.Crack.Table == nil || *cfg.Crack.Table != "spanish" {
		t.Fatalf("unexpected table: %+v", cfg.Crack.Table)
	}
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[crack\ntop = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestResolveTablePath(t *testing.T) {
	if got := ResolveTablePath(""); got != "" {
		t.Fatalf("empty ref should stay empty, got %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "fr.toml")
	if got := ResolveTablePath(abs); got != abs {
		t.Fatalf("absolute path should pass through, got %q", got)
	}
	got := ResolveTablePath("spanish")
	if filepath.Base(got) != "spanish.toml" {
		t.Fatalf("bare name should gain .toml, got %q", got)
	}
	if !strings.HasPrefix(got, DefaultTableDir()) {
		t.Fatalf("bare name should resolve inside tables dir, got %q", got)
	}
}
