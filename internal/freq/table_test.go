package freq

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTableRoundTrip(t *testing.T) {
	path := writeTable(t, englishTOML())
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table != English {
		t.Fatalf("loaded table differs from English")
	}
}

func TestLoadTableMissingLetter(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(englishTOML()), "\n")
	path := writeTable(t, strings.Join(lines[:len(lines)-1], "\n"))
	if _, err := LoadTable(path); err == nil {
		t.Fatalf("expected error for missing letter")
	}
}

func TestLoadTableBadKey(t *testing.T) {
	path := writeTable(t, englishTOML()+"\nxx = 1.0\n")
	if _, err := LoadTable(path); err == nil {
		t.Fatalf("expected error for multi-letter key")
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	return path
}

func englishTOML() string {
	var b strings.Builder
	for i, v := range English {
		fmt.Fprintf(&b, "%c = %v\n", 'a'+i, v)
	}
	return b.String()
}
