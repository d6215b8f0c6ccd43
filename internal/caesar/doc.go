// Package caesar implements the classical Caesar substitution cipher.
//
// Latin letters are rotated within their own case by a fixed shift; every
// other character (digits, punctuation, whitespace, non-Latin letters) is
// passed through unchanged. All functions are pure and safe for concurrent use.
//
// Primary API
//
//   - func Encrypt(text string, shift int) string
//   - func Decrypt(text string, shift int) string
//   - func BruteForce(text string) iter.Seq2[int, string]  (all 26 keys, ascending)
//   - func Apply(mode Mode, text string, shift int) string
//
// Any integer shift is accepted; it is reduced with a floored modulo, so
// Encrypt(s, -1) == Encrypt(s, 25).
package caesar
