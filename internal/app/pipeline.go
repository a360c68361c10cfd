// Package app wires the extraction, analysis and storage layers into the
// document processing pipeline behind the CLI.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lamvt/vietminer/internal/domain/keyword"
	"github.com/lamvt/vietminer/internal/domain/textnorm"
	"github.com/lamvt/vietminer/internal/ports"
)

const (
	// minTextRunes is the normalized length below which the embedded text
	// layer is considered unusable (scanned PDF, image-only document).
	minTextRunes = 100

	// Quality probing is skipped above this size; very large extractions
	// are near-certainly genuine text layers.
	maxProbeRunes = 200_000

	// minVietnameseRatio is the smallest share of common Vietnamese words
	// a genuine extraction of a Vietnamese document is expected to carry.
	minVietnameseRatio = 0.05

	// minOCRRunes is the normalized length an OCR reading must reach to be
	// admitted as an extra source.
	minOCRRunes = 100
)

// vietnameseVocab holds diacritic-folded forms of very common Vietnamese
// words, used to estimate whether an extraction produced real text or
// encoding garbage. Matching is by containment, so fused compounds like
// "nganhang" still register.
var vietnameseVocab = []string{"ngan", "hang", "tai", "chinh", "dich", "vu"}

// Pipeline processes document files end to end: extract, escalate to OCR or
// vision when extraction quality is poor, reconcile sources, persist.
type Pipeline struct {
	extractor ports.Extractor
	recon     *keyword.Reconciler
	store     ports.Storage
	ocr       ports.OCREngine
	vision    ports.VisionReader
	norm      textnorm.Normalizer
	keywords  keyword.Map
	log       *zap.Logger
}

// NewPipeline assembles a pipeline. store, ocr and vision may be nil; a nil
// store skips persistence, nil engines disable the corresponding escalation.
func NewPipeline(extractor ports.Extractor, recon *keyword.Reconciler, keywords keyword.Map,
	store ports.Storage, ocr ports.OCREngine, vision ports.VisionReader, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		extractor: extractor,
		recon:     recon,
		store:     store,
		ocr:       ocr,
		vision:    vision,
		keywords:  keywords,
		log:       log,
	}
}

// ProcessFile analyzes one document and returns its result. The result is
// persisted when a store is configured.
func (p *Pipeline) ProcessFile(path string) (*ports.DocumentResult, error) {
	sources, err := p.extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}

	primary := p.primaryText(sources)
	ocrRan := false
	if reason := p.extractionDefect(primary); reason != "" {
		p.log.Info("extraction quality poor",
			zap.String("file", filepath.Base(path)),
			zap.String("reason", reason))
		sources = p.appendOCR(path, sources)
		ocrRan = true
	}

	counts, groups := p.recon.Reconcile(sources, p.keywords)

	// A document with no hits at all may simply be unreadable to the text
	// layer; try the escalation engines before concluding it is empty.
	if counts.Total() == 0 {
		if !ocrRan {
			if extended := p.appendOCR(path, sources); len(extended) > len(sources) {
				sources = extended
				counts, groups = p.recon.Reconcile(sources, p.keywords)
			}
		}
		if counts.Total() == 0 && p.vision != nil {
			if extended := p.appendVision(path, sources); len(extended) > len(sources) {
				sources = extended
				counts, groups = p.recon.Reconcile(sources, p.keywords)
			}
		}
	}

	result := &ports.DocumentResult{
		File:          filepath.Base(path),
		KeywordCounts: counts,
		GroupCounts:   groups,
		TotalKeywords: counts.Total(),
		TextLength:    utf8.RuneCountInString(p.primaryText(sources)),
		SourceCount:   len(sources),
		AnalyzedAt:    time.Now().Unix(),
	}

	if p.store != nil {
		if err := p.store.SaveResult(result); err != nil {
			return nil, fmt.Errorf("save result for %s: %w", result.File, err)
		}
	}

	p.log.Info("document processed",
		zap.String("file", result.File),
		zap.Int("total_keywords", result.TotalKeywords),
		zap.Int("sources", result.SourceCount))
	return result, nil
}

// ProcessDir analyzes every supported file directly under dir, sorted by
// name. Files that fail are logged and skipped so one bad document does not
// abort a batch.
func (p *Pipeline) ProcessDir(dir string) ([]*ports.DocumentResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var results []*ports.DocumentResult
	for _, entry := range entries {
		if entry.IsDir() || !p.extractor.Supports(filepath.Ext(entry.Name())) {
			continue
		}
		res, err := p.ProcessFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			p.log.Warn("skipping file", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
	return results, nil
}

// primaryText returns the longest normalized source, the best proxy for what
// the document's text layer actually yielded.
func (p *Pipeline) primaryText(sources []ports.TextSource) string {
	best := ""
	for _, src := range sources {
		if n := p.norm.Normalize(src.Text); utf8.RuneCountInString(n) > utf8.RuneCountInString(best) {
			best = n
		}
	}
	return best
}

// extractionDefect inspects normalized primary text and names the defect that
// warrants OCR escalation, or returns "" when the extraction looks sound.
func (p *Pipeline) extractionDefect(normalized string) string {
	n := utf8.RuneCountInString(normalized)
	if n < minTextRunes {
		return "text too short"
	}
	if n < maxProbeRunes && vietnameseRatio(normalized) < minVietnameseRatio {
		return "low vietnamese word ratio"
	}
	return ""
}

// vietnameseRatio is the share of words in normalized text that contain a
// common-vocabulary probe string.
func vietnameseRatio(normalized string) float64 {
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return 0
	}
	hits := 0
	for _, w := range words {
		for _, v := range vietnameseVocab {
			if strings.Contains(w, v) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(words))
}

// appendOCR runs the OCR engine on path and appends its reading when it
// produced enough normalized text to be worth reconciling.
func (p *Pipeline) appendOCR(path string, sources []ports.TextSource) []ports.TextSource {
	if p.ocr == nil {
		return sources
	}
	text, err := p.ocr.Recognize(path)
	if err != nil {
		p.log.Warn("ocr failed", zap.String("file", filepath.Base(path)), zap.Error(err))
		return sources
	}
	if utf8.RuneCountInString(p.norm.Normalize(text)) <= minOCRRunes {
		return sources
	}
	return append(sources, ports.TextSource{Method: "ocr", Text: text})
}

// appendVision runs the vision reader on path and appends any non-empty text.
func (p *Pipeline) appendVision(path string, sources []ports.TextSource) []ports.TextSource {
	text, err := p.vision.Read(path)
	if err != nil {
		p.log.Warn("vision read failed", zap.String("file", filepath.Base(path)), zap.Error(err))
		return sources
	}
	if strings.TrimSpace(text) == "" {
		return sources
	}
	return append(sources, ports.TextSource{Method: "vision", Text: text})
}
