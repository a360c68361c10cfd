package keyword

import (
	"strings"
	"unicode/utf8"

	"github.com/lamvt/vietminer/internal/domain/textnorm"
)

// Joiners that documents use instead of spaces inside compound terms.
// "viet qr" is routinely written vietqr, viet-qr, viet_qr, or viet.qr.
var joiners = []string{"-", "_", "."}

// Variants returns the match forms for a keyword: the normalized keyword
// plus, when it contains internal spaces, the no-space and joiner-delimited
// spellings. Returns nil when the normalized keyword is shorter than two
// runes — too short to match safely, so the caller must treat it as
// never-matching. The no-space form is included only when it is at least
// three runes, preventing degenerate collisions from two-letter compounds.
func Variants(kw string) []string {
	normalized := textnorm.Normalize(kw)
	if utf8.RuneCountInString(normalized) < 2 {
		return nil
	}
	if !strings.Contains(normalized, " ") {
		return []string{normalized}
	}

	variants := []string{normalized}
	if noSpace := strings.ReplaceAll(normalized, " ", ""); utf8.RuneCountInString(noSpace) >= 3 {
		variants = append(variants, noSpace)
	}
	for _, j := range joiners {
		variants = append(variants, strings.ReplaceAll(normalized, " ", j))
	}
	return variants
}
