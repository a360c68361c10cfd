package ports

// TextSource is one independently produced text extraction of a document.
// Several sources for the same document commonly overlap: a native text
// layer, an alternate parser pass, OCR, and vision output may all re-read
// the same pages. The reconciler merges their counts by per-keyword maximum
// for exactly that reason.
type TextSource struct {
	Method string // provenance tag, e.g. "native", "ocr", "vision"
	Text   string
}

// Extractor turns a document file into zero or more text sources.
// Implementations live in internal/adapters/extract.
type Extractor interface {
	// Extract returns the text sources recovered from the file, in the
	// order they were produced. An unreadable file is an error; a readable
	// file with no recoverable text returns an empty slice and nil error.
	Extract(path string) ([]TextSource, error)

	// Supports reports whether files with this extension (leading dot,
	// lowercase) can be handled.
	Supports(ext string) bool
}

// OCREngine recognizes text in scanned or image-only documents. The engine
// itself (model, preprocessing) is an external capability; the pipeline only
// consumes its text. A nil OCREngine means the capability is disabled.
type OCREngine interface {
	Recognize(path string) (string, error)
}

// VisionReader extracts text from a document using a vision-capable AI
// service. Prompting and transport are outside this repository; the pipeline
// treats it as an opaque text producer. A nil VisionReader means the
// capability is disabled.
type VisionReader interface {
	Read(path string) (string, error)
}
