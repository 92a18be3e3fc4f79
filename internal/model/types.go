// Package model defines shared data structures.
package model

// Config defines crack settings after merging flags and config file.
type Config struct {
	TopN      int
	TablePath string
}

// Guess is a most-frequent-letter mapping hypothesis: "the ciphertext letter
// Cipher stands for the English letter Target", and the plaintext that shift
// would produce.
type Guess struct {
	Cipher    byte
	Target    byte
	Shift     int
	Plaintext string
}

// Candidate is one fully shifted decryption with its chi-squared score.
// Lower Score means closer to the reference language; +Inf marks a text with
// no letters to score.
type Candidate struct {
	Shift     int
	Score     float64
	Plaintext string
}

// Ranking bundles the results of both cracking strategies.
type Ranking struct {
	Guesses    []Guess
	Candidates []Candidate
}

// Best returns the lowest-scoring candidate, the automatic guess surfaced by
// the presentation layer. ok is false only for an empty ranking.
func (r Ranking) Best() (Candidate, bool) {
	if len(r.Candidates) == 0 {
		return Candidate{}, false
	}
	return r.Candidates[0], true
}
