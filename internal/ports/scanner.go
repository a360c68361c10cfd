// Package ports defines the interfaces (contracts) that adapters must
// implement. These are the boundaries of the hexagonal architecture: domain
// logic depends only on these interfaces, never on concrete implementations.
package ports

// ScanMatch is one pattern occurrence with byte offsets into the scanned text.
type ScanMatch struct {
	Pattern int // index into the pattern set the scanner was built from
	Start   int // byte offset, inclusive
	End     int // byte offset, exclusive
}

// TextScanner finds every occurrence, including overlapping ones, of a fixed
// pattern set in text. Patterns are matched literally (no metacharacters),
// so no escaping is required of the caller. The keyword matcher layers its
// own word-boundary and non-overlap rules on top of the raw offsets.
type TextScanner interface {
	// Scan returns all matches ordered by start offset. Returns nil when
	// nothing matches.
	Scan(content string) []ScanMatch
}

// ScannerBuilder compiles a pattern set into a TextScanner. Building is
// expected to be cheap enough to run once per keyword per analysis; callers
// may memoize since the result is a pure function of the pattern set.
type ScannerBuilder func(patterns []string) TextScanner
