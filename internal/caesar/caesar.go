package caesar

import (
	"iter"
	"strings"
)

// AlphabetSize is the number of letters in the Latin alphabet.
const AlphabetSize = 26

// Normalize reduces shift into [0, AlphabetSize) using a floored modulo.
func Normalize(shift int) int {
	s := shift % AlphabetSize
	if s < 0 {
		s += AlphabetSize
	}
	return s
}

// ShiftChar rotates a single Latin letter by shift positions within its case.
// shift must already be in [0, AlphabetSize). Other runes are returned as-is.
func ShiftChar(r rune, shift int) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+rune(shift))%AlphabetSize
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+rune(shift))%AlphabetSize
	default:
		return r
	}
}

// Encrypt shifts every Latin letter in text forward by shift positions.
func Encrypt(text string, shift int) string {
	s := Normalize(shift)
	if s == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	// Ranging over bytes keeps invalid UTF-8 intact; letters are ASCII only.
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 0x80 {
			b.WriteByte(byte(ShiftChar(rune(c), s)))
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}

// Decrypt reverses Encrypt for the same shift.
func Decrypt(text string, shift int) string {
	return Encrypt(text, -shift)
}

// Candidate is a single brute-force guess: the text decrypted with Shift.
type Candidate struct {
	Shift int
	Text  string
}

// BruteForce yields (shift, Encrypt(text, -shift)) for every shift in
// 0..AlphabetSize-1 in ascending order. text is assumed to be ciphertext.
// The sequence is lazy and may be ranged over any number of times.
func BruteForce(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for s := 0; s < AlphabetSize; s++ {
			if !yield(s, Encrypt(text, -s)) {
				return
			}
		}
	}
}

// Candidates collects BruteForce into a slice indexed by shift.
func Candidates(text string) []Candidate {
	out := make([]Candidate, 0, AlphabetSize)
	for s, c := range BruteForce(text) {
		out = append(out, Candidate{Shift: s, Text: c})
	}
	return out
}
