package keyword

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lamvt/vietminer/internal/domain/textnorm"
	"github.com/lamvt/vietminer/internal/ports"
)

const (
	// batchThreshold is the normalized rune length above which Analyze
	// switches to chunked batch mode. A single scan over multi-hundred-KB
	// normalized text is the only unbounded cost in the engine; chunking
	// bounds it.
	batchThreshold = 100_000

	// batchChunkRunes is the rune length of each non-overlapping batch
	// chunk. A keyword occurrence split by a chunk boundary is lost; with
	// chunks this large that is an accepted approximation, not a
	// correctness violation.
	batchChunkRunes = 100_000
)

// Analyzer counts a keyword map against document text. Once configured it is
// safe for concurrent use: Analyze never mutates analyzer state.
type Analyzer struct {
	norm      textnorm.Normalizer
	build     ports.ScannerBuilder
	log       *zap.Logger
	threshold int
	chunk     int
}

// NewAnalyzer returns an Analyzer using the given scanner builder.
// A nil logger disables logging.
func NewAnalyzer(build ports.ScannerBuilder, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		norm:      textnorm.New(),
		build:     build,
		log:       log,
		threshold: batchThreshold,
		chunk:     batchChunkRunes,
	}
}

// SetBatchSize overrides the batch threshold and chunk length. Values at or
// below zero keep the defaults. Call before the analyzer is shared.
func (a *Analyzer) SetBatchSize(threshold, chunk int) {
	if threshold > 0 {
		a.threshold = threshold
	}
	if chunk > 0 {
		a.chunk = chunk
	}
}

// Analyze normalizes text once and counts every keyword in it.
//
// The returned Counts omit zero-count keywords; GroupCounts are recomputed
// from the keyword counts. A keyword whose compilation or matching fails is
// logged and skipped — one pathological keyword never aborts the batch.
// Analyze is total: it returns empty counts for empty input and never
// panics on any UTF-8 text.
func (a *Analyzer) Analyze(text string, keywords Map) (Counts, GroupCounts) {
	counts := make(Counts)
	if text == "" || len(keywords) == 0 {
		return counts, make(GroupCounts)
	}

	normalized := a.norm.Normalize(text)
	runeLen := utf8.RuneCountInString(normalized)

	chunks := []string{normalized}
	if runeLen > a.threshold {
		chunks = splitRunes(normalized, a.chunk)
		a.log.Info("large document, switching to chunked analysis",
			zap.Int("normalized_runes", runeLen),
			zap.Int("chunks", len(chunks)))
	}

	for kw := range keywords {
		n, err := a.countKeyword(kw, chunks)
		if err != nil {
			a.log.Warn("keyword skipped", zap.String("keyword", kw), zap.Error(err))
			continue
		}
		if n > 0 {
			counts[kw] = n
		}
	}

	a.log.Info("analysis complete",
		zap.Int("input_chars", len(text)),
		zap.Int("normalized_runes", runeLen),
		zap.Int("keywords", len(keywords)),
		zap.Int("keywords_found", len(counts)),
		zap.Int("total_matches", counts.Total()))

	return counts, keywords.GroupTotals(counts)
}

// countKeyword compiles one keyword and sums its matches over the chunks.
// Chunks are non-overlapping slices of already-normalized text, so summing
// per-chunk counts is safe. Any panic from pathological keyword content is
// converted to an error so the caller can skip just that keyword.
func (a *Analyzer) countKeyword(kw string, chunks []string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("matching %q: %v", kw, r)
		}
	}()

	m := NewMatcher(kw, a.build)
	for _, chunk := range chunks {
		n += m.Count(chunk)
	}
	return n, nil
}

// splitRunes partitions s into consecutive substrings of at most size runes.
// Substrings share the backing array of s; nothing is copied.
func splitRunes(s string, size int) []string {
	if size <= 0 || s == "" {
		return []string{s}
	}
	var chunks []string
	start, runes := 0, 0
	for i := range s {
		if runes == size {
			chunks = append(chunks, s[start:i])
			start, runes = i, 0
		}
		runes++
	}
	return append(chunks, s[start:])
}
