// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). Analysis results live in a single "results" bucket keyed by file
// name, with JSON values. Writes are transactional — a crash mid-write cannot
// corrupt previously committed results.
package bbolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/lamvt/vietminer/internal/ports"
)

var bucketResults = []byte("results")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// resultJSON is the JSON-serializable form of ports.DocumentResult.
// JSON map keys must be strings, so int group IDs are encoded as decimal
// strings and decoded on the way back out.
type resultJSON struct {
	File          string         `json:"file"`
	KeywordCounts map[string]int `json:"keyword_counts"`
	GroupCounts   map[string]int `json:"group_counts"`
	TotalKeywords int            `json:"total_keywords"`
	TextLength    int            `json:"text_length"`
	SourceCount   int            `json:"source_count"`
	AnalyzedAt    int64          `json:"analyzed_at"`
}

func encodeResult(res *ports.DocumentResult) ([]byte, error) {
	rj := resultJSON{
		File:          res.File,
		KeywordCounts: res.KeywordCounts,
		GroupCounts:   make(map[string]int, len(res.GroupCounts)),
		TotalKeywords: res.TotalKeywords,
		TextLength:    res.TextLength,
		SourceCount:   res.SourceCount,
		AnalyzedAt:    res.AnalyzedAt,
	}
	for gid, n := range res.GroupCounts {
		rj.GroupCounts[strconv.Itoa(gid)] = n
	}
	return json.Marshal(rj)
}

func decodeResult(data []byte) (*ports.DocumentResult, error) {
	var rj resultJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}

	res := &ports.DocumentResult{
		File:          rj.File,
		KeywordCounts: rj.KeywordCounts,
		GroupCounts:   make(map[int]int, len(rj.GroupCounts)),
		TotalKeywords: rj.TotalKeywords,
		TextLength:    rj.TextLength,
		SourceCount:   rj.SourceCount,
		AnalyzedAt:    rj.AnalyzedAt,
	}
	for k, n := range rj.GroupCounts {
		gid, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("parse group key %q: %w", k, err)
		}
		res.GroupCounts[gid] = n
	}
	return res, nil
}

// SaveResult persists one document's analysis, overwriting any previous
// result for the same file.
func (s *Store) SaveResult(res *ports.DocumentResult) error {
	if res == nil {
		return fmt.Errorf("nil result")
	}
	if res.File == "" {
		return fmt.Errorf("result has no file name")
	}

	data, err := encodeResult(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketResults)
		if err != nil {
			return err
		}
		return b.Put([]byte(res.File), data)
	})
}

// LoadResult retrieves the stored result for a file.
// Returns nil, nil when the file has never been analyzed.
func (s *Store) LoadResult(file string) (*ports.DocumentResult, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketResults)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(file)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return decodeResult(data)
}

// ListResults returns all stored results sorted by file name.
func (s *Store) ListResults() ([]*ports.DocumentResult, error) {
	var results []*ports.DocumentResult

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketResults)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			res, err := decodeResult(v)
			if err != nil {
				return err
			}
			results = append(results, res)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
	return results, nil
}

// DeleteResult removes the stored result for a file.
// Idempotent: deleting an unknown file is not an error.
func (s *Store) DeleteResult(file string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketResults)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(file))
	})
}
