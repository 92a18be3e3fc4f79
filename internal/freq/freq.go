// Package freq provides letter-frequency counting and chi-squared scoring
// against a reference distribution.
package freq

import (
	"math"
	"sort"

	"github.com/verte-zerg/decaesar/internal/caesar"
)

// Guard against a malformed table with a zero expected count.
const epsilon = 1e-9

// Counts holds observed letter counts for A-Z plus the total letter count.
// Non-letters are never counted; the buckets always sum to Total.
type Counts struct {
	Letters [caesar.AlphabetSize]int
	Total   int

	// Rune index of the first occurrence of each letter, -1 if absent.
	// Used to break frequency ties the way the ciphertext presents them.
	first [caesar.AlphabetSize]int
}

// Count tallies the ASCII letters of text case-insensitively. Text with no
// letters yields zero counts and Total == 0, which is not an error here.
func Count(text string) Counts {
	var c Counts
	for i := range c.first {
		c.first[i] = -1
	}
	pos := 0
	for _, r := range text {
		var idx int
		switch {
		case r >= 'a' && r <= 'z':
			idx = int(r - 'a')
		case r >= 'A' && r <= 'Z':
			idx = int(r - 'A')
		default:
			pos++
			continue
		}
		if c.first[idx] < 0 {
			c.first[idx] = pos
		}
		c.Letters[idx]++
		c.Total++
		pos++
	}
	return c
}

// ByFrequency returns the observed letters (count > 0) as uppercase bytes,
// most frequent first. Equal counts keep first-appearance order, so the
// result is deterministic for a given text.
func (c Counts) ByFrequency() []byte {
	letters := make([]byte, 0, caesar.AlphabetSize)
	for i, n := range c.Letters {
		if n > 0 {
			letters = append(letters, byte('A'+i))
		}
	}
	sort.SliceStable(letters, func(i, j int) bool {
		a := letters[i] - 'A'
		b := letters[j] - 'A'
		if c.Letters[a] != c.Letters[b] {
			return c.Letters[a] > c.Letters[b]
		}
		fa, fb := c.first[a], c.first[b]
		if fa < 0 || fb < 0 {
			return letters[i] < letters[j]
		}
		return fa < fb
	})
	return letters
}

// Percent returns the observed relative frequency of letter index i (0 = A)
// as a percentage of Total, or 0 when the text had no letters.
func (c Counts) Percent(i int) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Letters[i]) / float64(c.Total) * 100
}

// ChiSquared compares observed counts against an expected percentage table
// and returns the chi-squared statistic; lower means closer to the reference
// language. Text with no letters has no meaningful statistic and scores
// positive infinity.
func ChiSquared(c Counts, expected Table) float64 {
	if c.Total == 0 {
		return math.Inf(1)
	}
	score := 0.0
	for i := 0; i < caesar.AlphabetSize; i++ {
		exp := expected[i] * float64(c.Total) / 100.0
		if exp <= 0 {
			exp = epsilon
		}
		diff := float64(c.Letters[i]) - exp
		score += diff * diff / exp
	}
	return score
}
