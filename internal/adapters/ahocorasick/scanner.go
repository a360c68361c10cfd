// Package ahocorasick implements ports.TextScanner with an Aho-Corasick
// automaton from petar-dambovaliev/aho-corasick. One pass over the content
// finds every occurrence of every pattern in O(n + m + z), independent of
// how many variants a keyword compiles to.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/lamvt/vietminer/internal/ports"
)

// Scanner wraps a DFA automaton over a fixed pattern set.
type Scanner struct {
	automaton aho.AhoCorasick
	patterns  []string
}

// NewScanner builds a scanner from literal patterns. It satisfies
// ports.ScannerBuilder. Patterns are matched byte-exact; the keyword layer
// normalizes case before building.
func NewScanner(patterns []string) ports.TextScanner {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	p := make([]string, len(patterns))
	copy(p, patterns)
	return &Scanner{
		automaton: builder.Build(p),
		patterns:  p,
	}
}

// Scan returns every match, including overlapping ones, with byte offsets.
// The keyword matcher applies boundary and non-overlap rules on top.
func (s *Scanner) Scan(content string) []ports.ScanMatch {
	iter := s.automaton.IterOverlappingByte([]byte(content))
	var matches []ports.ScanMatch
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, ports.ScanMatch{
			Pattern: m.Pattern(),
			Start:   m.Start(),
			End:     m.End(),
		})
	}
	return matches
}

// PatternCount returns the number of patterns in the automaton.
func (s *Scanner) PatternCount() int {
	return len(s.patterns)
}
