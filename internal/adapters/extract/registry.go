// Package extract pulls plain text out of document files.
//
// A Registry dispatches on file extension to format-specific extractors and
// implements ports.Extractor. Each extractor returns one or more TextSources
// tagged with the extraction method, so the reconciliation layer can merge
// alternative readings of the same file without double counting.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/lamvt/vietminer/internal/ports"
)

// extractFunc reads one file and returns the text sources it produced.
type extractFunc func(path string) ([]ports.TextSource, error)

// Registry routes files to extractors by lowercase extension (with dot).
type Registry struct {
	byExt map[string]extractFunc
	log   *zap.Logger
}

// NewRegistry builds a registry with the built-in extractors registered.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{byExt: make(map[string]extractFunc), log: log}

	r.byExt[".pdf"] = extractPDF
	for _, ext := range []string{".docx", ".odt", ".rtf"} {
		r.byExt[ext] = extractOffice
	}
	for _, ext := range []string{".html", ".htm", ".xml"} {
		r.byExt[ext] = extractHTML
	}
	for _, ext := range []string{".txt", ".md", ".csv"} {
		r.byExt[ext] = extractPlain
	}
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".tif"} {
		r.byExt[ext] = extractImage
	}
	return r
}

// Supports reports whether the registry has an extractor for ext.
// ext may be given with or without the leading dot.
func (r *Registry) Supports(ext string) bool {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	_, ok := r.byExt[strings.ToLower(ext)]
	return ok
}

// Extract runs the extractor registered for the file's extension.
func (r *Registry) Extract(path string) ([]ports.TextSource, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}

	sources, err := fn(path)
	if err != nil {
		return nil, err
	}
	r.log.Debug("extracted text",
		zap.String("file", filepath.Base(path)),
		zap.Int("sources", len(sources)))
	return sources, nil
}

// extractPlain reads the file verbatim. Encoding repair happens downstream
// in the normalizer, so legacy-codepage text is passed through untouched.
func extractPlain(path string) ([]ports.TextSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return []ports.TextSource{{Method: "plain", Text: string(data)}}, nil
}

// extractImage yields an empty text layer: images carry no extractable text
// themselves. The pipeline's quality heuristic sees the empty source and
// escalates to the OCR and vision engines when they are configured.
func extractImage(path string) ([]ports.TextSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", filepath.Base(path), err)
	}
	return []ports.TextSource{{Method: "image"}}, nil
}
