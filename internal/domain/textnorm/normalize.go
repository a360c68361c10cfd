// Package textnorm makes raw Vietnamese document text comparable and
// searchable. It repairs known font-corruption signatures (TCVN3, VNI,
// mojibake), folds diacritics to base Latin letters, and canonicalizes
// case, punctuation, and whitespace into one deterministic form.
//
// All keyword matching in this repository operates on the output of
// Normalize. Normalize is total: it never fails on any UTF-8 input. It is
// also idempotent, with one known exception: characters whose lowercase form
// is itself a font-repair key (ẞ → ß, a TCVN3 byte) shift again on a second
// pass. See the note beside fontRepairs.
//
// All functions are safe for concurrent use by multiple goroutines; the
// package holds only immutable tables built at init.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer is a stateless value type exposing the normalization pipeline.
// The zero value is ready to use; it exists so callers can inject the
// pipeline as a dependency rather than reach for package globals.
type Normalizer struct{}

// New returns a ready-to-use Normalizer.
func New() Normalizer { return Normalizer{} }

// FixFontErrors repairs known Vietnamese font-encoding corruption.
// Replacements are applied longest pattern first in a single pass;
// anything outside the repair table passes through unchanged.
func FixFontErrors(s string) string {
	if s == "" {
		return ""
	}
	return fontRepairer.Replace(s)
}

// RemoveDiacritics converts Vietnamese diacritic letters to their base Latin
// form. Two stages: a direct translation table for all precomposed Vietnamese
// letters, then a Unicode canonical-decomposition pass that strips any
// remaining combining marks. The second stage handles decomposed input and
// non-Vietnamese combining diacritics uniformly.
func RemoveDiacritics(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if base, ok := diacriticFolds[r]; ok {
			b.WriteRune(base)
		} else {
			b.WriteRune(r)
		}
	}

	// NFD exposes combining marks (category Mn) so they can be removed;
	// NFC recomposes whatever survives. Built per call: a transform chain
	// carries state and cannot be shared across goroutines.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripMarks, b.String())
	if err != nil {
		// transform.String does not fail for these transformers, but fall
		// back to the table-translated text rather than dropping input.
		return b.String()
	}
	return out
}

// Normalize runs the full canonicalization pipeline:
//
//  1. font-error repair (case-specific, so it runs before lowercasing)
//  2. lowercase
//  3. đ/Đ → d (a distinct letter in Vietnamese orthography, folded before
//     the generic diacritic pass so both paths agree)
//  4. diacritic folding
//  5. every non-letter/digit/space rune becomes a single space
//  6. whitespace runs collapse to one space, leading/trailing trimmed
//
// The result contains only lowercase letters, digits, and single spaces.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = FixFontErrors(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "đ", "d")
	s = strings.ReplaceAll(s, "Đ", "d")
	s = RemoveDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Normalize applies the full pipeline. See the package-level Normalize.
func (Normalizer) Normalize(s string) string { return Normalize(s) }

// FixFontErrors repairs font corruption. See the package-level FixFontErrors.
func (Normalizer) FixFontErrors(s string) string { return FixFontErrors(s) }

// RemoveDiacritics folds diacritics. See the package-level RemoveDiacritics.
func (Normalizer) RemoveDiacritics(s string) string { return RemoveDiacritics(s) }
