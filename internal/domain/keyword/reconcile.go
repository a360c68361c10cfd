package keyword

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lamvt/vietminer/internal/domain/textnorm"
	"github.com/lamvt/vietminer/internal/ports"
)

// DefaultMinSourceRunes is the normalized length below which a text source
// is treated as a failed extraction rather than a legitimately empty
// document, and excluded from reconciliation.
const DefaultMinSourceRunes = 50

// Reconciler merges keyword counts across redundant extraction sources.
//
// Independent extraction methods applied to one physical document recover
// overlapping but non-identical text: OCR re-reads pages the native layer
// already covered. Summing counts across sources would multiply true
// occurrences by the number of redundant passes, so the reconciler analyzes
// each source separately and keeps, per keyword, the maximum count any
// single source produced — capturing keywords only one source saw without
// inflating frequencies.
type Reconciler struct {
	analyzer *Analyzer
	norm     textnorm.Normalizer
	minRunes int
	log      *zap.Logger
}

// NewReconciler returns a Reconciler with the default minimum source length.
// A nil logger disables logging.
func NewReconciler(analyzer *Analyzer, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{
		analyzer: analyzer,
		norm:     textnorm.New(),
		minRunes: DefaultMinSourceRunes,
		log:      log,
	}
}

// SetMinSourceRunes overrides the minimum normalized source length.
// Values below zero are treated as zero (keep every non-empty source).
func (r *Reconciler) SetMinSourceRunes(n int) {
	if n < 0 {
		n = 0
	}
	r.minRunes = n
}

// Reconcile analyzes every valid source independently and merges the
// per-source counts by keyword maximum. Sources shorter than the minimum
// normalized length are skipped as non-extractions. Zero surviving sources
// is a valid state — a scan nothing could read — and yields empty counts,
// not an error. GroupCounts are recomputed from the merged keyword counts.
func (r *Reconciler) Reconcile(sources []ports.TextSource, keywords Map) (Counts, GroupCounts) {
	merged := make(Counts)
	if len(sources) == 0 || len(keywords) == 0 {
		return merged, make(GroupCounts)
	}

	analyzed, rawTotal := 0, 0
	for _, src := range sources {
		if utf8.RuneCountInString(r.norm.Normalize(src.Text)) < r.minRunes {
			r.log.Debug("source below minimum length, skipped",
				zap.String("method", src.Method),
				zap.Int("chars", len(src.Text)))
			continue
		}

		counts, _ := r.analyzer.Analyze(src.Text, keywords)
		analyzed++
		rawTotal += counts.Total()
		for kw, n := range counts {
			if n > merged[kw] {
				merged[kw] = n
			}
		}
	}

	if analyzed > 0 {
		r.log.Info("sources reconciled",
			zap.Int("sources", analyzed),
			zap.Int("unique_keywords", len(merged)),
			zap.Int("merged_total", merged.Total()),
			zap.Int("duplicates_avoided", rawTotal-merged.Total()))
	}

	return merged, keywords.GroupTotals(merged)
}
