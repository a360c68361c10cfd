package keyword

import (
	"sort"

	"github.com/lamvt/vietminer/internal/ports"
)

// Matcher counts occurrences of one keyword's variant set in normalized text.
// It is a pure function of the keyword, so callers may cache matchers keyed
// by keyword text across analyses.
//
// Word boundaries: normalized text contains only lowercase letters, digits,
// and single spaces, so "not adjacent to [a-z0-9]" is the boundary rule.
// Go's regexp has no lookaround assertions; the equivalent here is a raw
// multi-pattern scan followed by explicit neighbor-byte inspection.
type Matcher struct {
	keyword  string
	variants []string
	scanner  ports.TextScanner // nil when the variant set is empty: never matches
}

// NewMatcher compiles the keyword's variants with the given scanner builder.
// A keyword whose variant set is empty yields a matcher that never matches;
// that is a defined outcome, not an error.
func NewMatcher(kw string, build ports.ScannerBuilder) *Matcher {
	variants := Variants(kw)
	m := &Matcher{keyword: kw, variants: variants}
	if len(variants) > 0 {
		m.scanner = build(variants)
	}
	return m
}

// Keyword returns the raw keyword this matcher was built for.
func (m *Matcher) Keyword() string { return m.keyword }

// Variants returns the compiled variant set.
func (m *Matcher) Variants() []string { return m.variants }

// Count returns the number of non-overlapping, leftmost occurrences of any
// variant in normalized text. Candidates with a lowercase letter or digit
// directly before or after are rejected, so "ngan" never counts inside
// "nganh". Among candidates starting at the same offset the longest wins.
func (m *Matcher) Count(normalized string) int {
	if m.scanner == nil || normalized == "" {
		return 0
	}

	matches := m.scanner.Scan(normalized)
	if len(matches) == 0 {
		return 0
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End > matches[j].End
	})

	count, next := 0, 0
	for _, mt := range matches {
		if mt.Start < next {
			continue
		}
		if !boundaryOK(normalized, mt.Start, mt.End) {
			continue
		}
		count++
		next = mt.End
	}
	return count
}

// boundaryOK rejects matches whose immediate neighbor is a lowercase ASCII
// letter or digit. Multi-byte runes never collide with this class, so a
// byte-level check is exact on UTF-8 text.
func boundaryOK(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
