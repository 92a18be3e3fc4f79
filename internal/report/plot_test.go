package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/decaesar/internal/caesar"
)

func TestPlotLetterSeries(t *testing.T) {
	observed := make([]float64, caesar.AlphabetSize)
	expected := make([]float64, caesar.AlphabetSize)
	observed[4] = 20
	expected[4] = 12.7
	var buf bytes.Buffer
	err := PlotLetterSeries(&buf, "Letter Frequencies", []Series{
		{Name: "Observed", Values: observed},
		{Name: "Expected", Values: expected},
	}, 4, false)
	if err != nil {
		t.Fatalf("PlotLetterSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Letter Frequencies") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		t.Fatalf("expected letter axis in output")
	}
	if !strings.Contains(out, "20.0%") {
		t.Fatalf("expected shared-scale max label in output:\n%s", out)
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// title + 4 chart rows + letter axis + legend
	if len(lines) < 7 {
		t.Fatalf("expected at least 7 lines, got %d", len(lines))
	}
}

func TestPlotLetterSeriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotLetterSeries(&buf, "x", nil, 4, false); err != nil {
		t.Fatalf("PlotLetterSeries failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty series")
	}
}

func TestPlotLetterSeriesAllZero(t *testing.T) {
	values := make([]float64, caesar.AlphabetSize)
	var buf bytes.Buffer
	err := PlotLetterSeries(&buf, "Flat", []Series{{Name: "Observed", Values: values}}, 4, false)
	if err != nil {
		t.Fatalf("PlotLetterSeries failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Flat") {
		t.Fatalf("expected title for all-zero series")
	}
}
