package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/decaesar/internal/freq"
	"github.com/verte-zerg/decaesar/internal/model"
)

func TestAnalyzePopulatesResults(t *testing.T) {
	m := NewModel(model.Config{TopN: 5}, freq.English)
	if !m.editing {
		t.Fatalf("new model should start in editor")
	}
	m.analyze("Khoor, Zruog!\n")
	if m.editing {
		t.Fatalf("analyze should leave editor mode")
	}
	if m.ciphertext != "Khoor, Zruog!" {
		t.Fatalf("trailing newline should be dropped, got %q", m.ciphertext)
	}
	if len(m.ranking.Candidates) != 5 {
		t.Fatalf("expected 5 candidates, got %d", len(m.ranking.Candidates))
	}
	if len(m.ranking.Guesses) == 0 {
		t.Fatalf("expected heuristic guesses")
	}
}

func TestViewResultsShowsBestGuess(t *testing.T) {
	m := NewModel(model.Config{TopN: 5}, freq.English)
	m.analyze("Khoor, Zruog!")
	out := m.View()
	if !strings.Contains(out, "Best guess: shift") {
		t.Fatalf("expected best guess line in view:\n%s", out)
	}
	if !strings.Contains(out, "Ranking") {
		t.Fatalf("expected nav tabs in view")
	}
}

func TestLetterMapContentEmpty(t *testing.T) {
	if got := letterMapContent(nil); got != "No alphabetic characters found in ciphertext." {
		t.Fatalf("unexpected empty content: %q", got)
	}
}

func TestLetterMapContentFormat(t *testing.T) {
	guesses := []model.Guess{{Cipher: 'O', Target: 'E', Shift: 16, Plaintext: "xyz"}}
	got := letterMapContent(guesses)
	if !strings.Contains(got, "Map O -> E  (shift 16)") {
		t.Fatalf("unexpected content: %q", got)
	}
	if !strings.Contains(got, "    xyz") {
		t.Fatalf("expected indented plaintext: %q", got)
	}
}

func TestScoreCell(t *testing.T) {
	if got := scoreCell(math.Inf(1)); got != "inf" {
		t.Fatalf("expected inf, got %q", got)
	}
	if got := scoreCell(3.14159); got != "3.14" {
		t.Fatalf("unexpected score cell: %q", got)
	}
}

func TestBestLine(t *testing.T) {
	line := bestLine(model.Candidate{Shift: 23, Score: 18.5, Plaintext: "Hello, World!"})
	for _, want := range []string{"shift 23", "18.50", "Hello, World!"} {
		if !strings.Contains(line, want) {
			t.Fatalf("best line missing %q: %q", want, line)
		}
	}
}
