// Package report renders cracking results as plain text.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/verte-zerg/decaesar/internal/caesar"
	"github.com/verte-zerg/decaesar/internal/freq"
	"github.com/verte-zerg/decaesar/internal/model"
)

// RenderBruteForce prints all 26 shifted candidates, one per line. Shift 0
// is the ciphertext itself.
func RenderBruteForce(w io.Writer, ciphertext string) error {
	for shift, candidate := range caesar.Shifts(ciphertext) {
		if _, err := fmt.Fprintf(w, "Shift %2d: %s\n", shift, candidate); err != nil {
			return err
		}
	}
	return nil
}

// RenderRanking prints both cracking strategies and the best automatic guess.
func RenderRanking(w io.Writer, r model.Ranking) error {
	if _, err := fmt.Fprintln(w, "Most-Frequent-Letter Candidates"); err != nil {
		return err
	}
	if len(r.Guesses) == 0 {
		if _, err := fmt.Fprintln(w, "No alphabetic characters found in ciphertext."); err != nil {
			return err
		}
	} else {
		headers := []string{"#", "Map", "Shift", "Plaintext"}
		rows := make([][]string, 0, len(r.Guesses))
		for i, g := range r.Guesses {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%c -> %c", g.Cipher, g.Target),
				fmt.Sprintf("%d", g.Shift),
				g.Plaintext,
			})
		}
		if err := writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 2: true})); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Chi-Squared Ranking (lower = more English-like)"); err != nil {
		return err
	}
	headers := []string{"#", "Shift", "Chi2", "Plaintext"}
	rows := make([][]string, 0, len(r.Candidates))
	for i, c := range r.Candidates {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", c.Shift),
			formatScore(c.Score),
			c.Plaintext,
		})
	}
	if err := writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 1: true, 2: true})); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	best, ok := r.Best()
	if !ok {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Best automatic guess: shift %d (chi2=%s)\n", best.Shift, formatScore(best.Score)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, best.Plaintext); err != nil {
		return err
	}
	return nil
}

// RenderFrequencies prints the observed letter distribution next to the
// reference table, as a braille chart followed by a per-letter table.
func RenderFrequencies(w io.Writer, counts freq.Counts, expected freq.Table, height int, forceColor bool) error {
	observed := make([]float64, caesar.AlphabetSize)
	reference := make([]float64, caesar.AlphabetSize)
	for i := 0; i < caesar.AlphabetSize; i++ {
		observed[i] = counts.Percent(i)
		reference[i] = expected[i]
	}
	err := PlotLetterSeries(w, "Letter Frequencies", []Series{
		{Name: "Observed", Values: observed},
		{Name: "Expected", Values: reference},
	}, height, forceColor)
	if err != nil {
		return err
	}

	headers := []string{"Letter", "Count", "Observed", "Expected"}
	rows := make([][]string, 0, caesar.AlphabetSize)
	for i := 0; i < caesar.AlphabetSize; i++ {
		rows = append(rows, []string{
			string(rune('A' + i)),
			fmt.Sprintf("%d", counts.Letters[i]),
			fmt.Sprintf("%.2f%%", observed[i]),
			fmt.Sprintf("%.2f%%", reference[i]),
		})
	}
	if err := writeLines(w, formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true})); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total letters: %d\n", counts.Total); err != nil {
		return err
	}
	return nil
}

func formatScore(score float64) string {
	if math.IsInf(score, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", score)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
