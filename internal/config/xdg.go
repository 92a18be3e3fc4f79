// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "decaesar", "config.toml")
}

// DefaultTableDir returns the directory where custom frequency tables are
// looked up when a bare name is configured instead of a path.
func DefaultTableDir() string {
	return filepath.Join(XDGConfigHome(), "decaesar", "tables")
}

// ResolveTablePath expands a configured table reference: absolute and
// relative paths are used as-is, a bare name resolves inside the tables dir
// with a .toml suffix.
func ResolveTablePath(ref string) string {
	if ref == "" {
		return ""
	}
	if filepath.IsAbs(ref) || filepath.Base(ref) != ref {
		return ref
	}
	if filepath.Ext(ref) == ".toml" {
		return filepath.Join(DefaultTableDir(), ref)
	}
	return filepath.Join(DefaultTableDir(), ref+".toml")
}
