// Package analysis ranks candidate decryptions of a Caesar ciphertext.
package analysis

import (
	"sort"

	"github.com/verte-zerg/decaesar/internal/caesar"
	"github.com/verte-zerg/decaesar/internal/freq"
	"github.com/verte-zerg/decaesar/internal/model"
)

// DefaultTopN is how many chi-squared candidates are reported by default.
const DefaultTopN = 6

// GuessCap bounds the most-frequent-letter hypotheses so many distinct
// ciphertext letters times ten targets cannot explode. The cap is checked
// after each ciphertext letter's full target list, so truncation lands on a
// letter boundary.
const GuessCap = 20

// commonTargets lists frequent English letters in priority order for the
// letter-mapping heuristic.
var commonTargets = []byte("ETAOINSRHL")

// Rank runs both cracking strategies on ciphertext: the most-frequent-letter
// mapping heuristic and the chi-squared ranking of all 26 shifts, truncated
// to topN. Candidates with no letters score +Inf and stay in the ranking in
// shift order rather than being dropped.
func Rank(ciphertext string, table freq.Table, topN int) model.Ranking {
	return model.Ranking{
		Guesses:    MostFrequentGuesses(ciphertext),
		Candidates: ChiSquaredRanking(ciphertext, table, topN),
	}
}

// MostFrequentGuesses maps the most frequent ciphertext letters onto common
// English letters and records the shift and plaintext each mapping implies.
// A ciphertext without letters yields no guesses.
func MostFrequentGuesses(ciphertext string) []model.Guess {
	counts := freq.Count(ciphertext)
	if counts.Total == 0 {
		return nil
	}

	var guesses []model.Guess
	mapped := map[[2]byte]struct{}{}
	for _, cipher := range counts.ByFrequency() {
		for _, target := range commonTargets {
			key := [2]byte{cipher, target}
			if _, ok := mapped[key]; ok {
				continue
			}
			mapped[key] = struct{}{}
			shift := (int(target) - int(cipher) + caesar.AlphabetSize) % caesar.AlphabetSize
			guesses = append(guesses, model.Guess{
				Cipher:    cipher,
				Target:    target,
				Shift:     shift,
				Plaintext: caesar.Shift(ciphertext, shift),
			})
		}
		if len(guesses) >= GuessCap {
			break
		}
	}
	return guesses
}

// ChiSquaredRanking scores every one of the 26 shifts against the reference
// table and returns the best topN in ascending score order. topN <= 0 means
// all 26.
func ChiSquaredRanking(ciphertext string, table freq.Table, topN int) []model.Candidate {
	candidates := make([]model.Candidate, 0, caesar.AlphabetSize)
	for shift, plaintext := range caesar.Shifts(ciphertext) {
		candidates = append(candidates, model.Candidate{
			Shift:     shift,
			Score:     freq.ChiSquared(freq.Count(plaintext), table),
			Plaintext: plaintext,
		})
	}
	// Stable so equal scores (all +Inf for letterless input) keep shift order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	if topN > 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
