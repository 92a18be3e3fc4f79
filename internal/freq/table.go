// Package freq provides letter-frequency counting and chi-squared scoring
// against a reference distribution.
package freq

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/decaesar/internal/caesar"
)

// Tolerance for the table percentages summing to 100.
const sumTolerance = 0.5

// Table maps each letter A-Z to its expected frequency in percent. Tables
// are built once and passed to the scorer explicitly, never read as ambient
// state.
type Table [caesar.AlphabetSize]float64

// English holds standard English prose letter frequencies in percent.
var English = Table{
	8.167, 1.492, 2.782, 4.253, 12.702, 2.228, 2.015, // A-G
	6.094, 6.966, 0.153, 0.772, 4.025, 2.406, 6.749, // H-N
	7.507, 1.929, 0.095, 5.987, 6.327, 9.056, 2.758, // O-U
	0.978, 2.361, 0.150, 1.974, 0.074, // V-Z
}

// Validate checks that every letter has a positive frequency and that the
// table sums to approximately 100 percent.
func (t Table) Validate() error {
	sum := 0.0
	for i, v := range t {
		if v <= 0 {
			return fmt.Errorf("letter %c must have a positive frequency, got %v", 'A'+i, v)
		}
		sum += v
	}
	if math.Abs(sum-100) > sumTolerance {
		return fmt.Errorf("frequencies must sum to ~100%%, got %.3f", sum)
	}
	return nil
}

// LoadTable reads a reference table from a TOML file mapping letters to
// percentages, e.g. `e = 12.702`. All 26 letters must be present and the
// table must validate.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return Table{}, fmt.Errorf("table path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read table: %w", err)
	}
	raw := map[string]float64{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Table{}, fmt.Errorf("failed to decode table: %w", err)
	}

	var t Table
	seen := [caesar.AlphabetSize]bool{}
	for key, value := range raw {
		idx, ok := letterIndex(key)
		if !ok {
			return Table{}, fmt.Errorf("invalid table key %q: expected a single letter", key)
		}
		if seen[idx] {
			return Table{}, fmt.Errorf("duplicate table key %q", key)
		}
		seen[idx] = true
		t[idx] = value
	}
	for i, ok := range seen {
		if !ok {
			return Table{}, fmt.Errorf("table is missing letter %c", 'A'+i)
		}
	}
	if err := t.Validate(); err != nil {
		return Table{}, fmt.Errorf("invalid table %s: %w", path, err)
	}
	return t, nil
}

func letterIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch ch := key[0]; {
	case ch >= 'a' && ch <= 'z':
		return int(ch - 'a'), true
	case ch >= 'A' && ch <= 'Z':
		return int(ch - 'A'), true
	}
	return 0, false
}
