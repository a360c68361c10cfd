package ports

// DocumentResult is the persisted outcome of analyzing one document.
// Counts are sparse: keywords and groups with zero occurrences are omitted.
type DocumentResult struct {
	File          string         `json:"file"`
	KeywordCounts map[string]int `json:"keyword_counts"`
	GroupCounts   map[int]int    `json:"group_counts"`
	TotalKeywords int            `json:"total_keywords"` // sum of KeywordCounts
	TextLength    int            `json:"text_length"`    // longest source, normalized runes
	SourceCount   int            `json:"source_count"`   // extraction sources produced, including escalations
	AnalyzedAt    int64          `json:"analyzed_at"`    // unix seconds
}

// Storage persists per-document analysis results. Writes must be
// transactional: a crash mid-write must not corrupt previously committed
// results. Concurrent reads are safe; writes are serialized by the adapter.
type Storage interface {
	// SaveResult persists the result for a document, overwriting any prior
	// result stored under the same file name.
	SaveResult(res *DocumentResult) error

	// LoadResult retrieves the stored result for a file.
	// Returns nil, nil if none exists.
	LoadResult(file string) (*DocumentResult, error)

	// ListResults returns all stored results ordered by file name.
	ListResults() ([]*DocumentResult, error)

	// DeleteResult removes the stored result for a file.
	// Idempotent: deleting a nonexistent result is not an error.
	DeleteResult(file string) error
}
