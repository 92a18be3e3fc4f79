// Package caesar implements the Caesar shift transform and its enumeration.
package caesar

import (
	"iter"
	"strings"
)

// AlphabetSize is the number of letters in the Latin alphabet.
const AlphabetSize = 26

// ShiftRune shifts a letter forward by shift positions within its own case,
// wrapping at the end of the alphabet. Any integer shift is accepted and
// reduced mod 26; non-letter runes are returned unchanged.
func ShiftRune(r rune, shift int) rune {
	s := rune(normalize(shift))
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+s)%AlphabetSize
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+s)%AlphabetSize
	}
	return r
}

// Shift applies ShiftRune to every rune of text, preserving order, length,
// case, and non-letter characters.
func Shift(text string, shift int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(ShiftRune(r, shift))
	}
	return b.String()
}

// Shifts enumerates all 26 candidate decryptions of ciphertext, in shift
// order 0..25. The sequence is finite and can be re-iterated; each iteration
// yields identical pairs for identical input.
func Shifts(ciphertext string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for s := 0; s < AlphabetSize; s++ {
			if !yield(s, Shift(ciphertext, s)) {
				return
			}
		}
	}
}

// Normalize shift into [0, 26) so negative keys work.
func normalize(shift int) int {
	s := shift % AlphabetSize
	if s < 0 {
		s += AlphabetSize
	}
	return s
}
