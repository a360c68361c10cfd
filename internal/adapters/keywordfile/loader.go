// Package keywordfile parses user-supplied keyword lists into a keyword.Map.
// Two layouts are accepted:
//
//   - plain text / markdown: one entry per line, either
//     "GroupID | kw1, kw2, ..." or a bare keyword (group 0).
//     Blank lines and lines starting with '#' are skipped.
//   - CSV: a Group column and a Keyword(s) column, located by header name
//     when a header row is present, otherwise columns 0 and 1. Semicolon
//     delimiters are detected and retried automatically.
//
// The core engine never parses files itself; this adapter sits at the input
// boundary and hands it an immutable Map.
package keywordfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lamvt/vietminer/internal/domain/keyword"
)

// Load parses the keyword file at path into a Map and the highest group ID
// seen. Duplicate keywords keep the last mapping. Rows that cannot be parsed
// are skipped rather than failing the whole load.
func Load(path string) (keyword.Map, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read keyword file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSV(string(data))
	default:
		kws := parseLines(string(data))
		return kws, maxGroup(kws), nil
	}
}

// parseLines handles the "Group | keywords" plain-text layout.
func parseLines(data string) keyword.Map {
	kws := make(keyword.Map)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		group := 0
		keywords := line
		if before, after, found := strings.Cut(line, "|"); found {
			group = parseGroup(before)
			keywords = after
		}
		addKeywords(kws, keywords, group)
	}
	return kws
}

func parseCSV(data string) (keyword.Map, int, error) {
	rows, err := readCSV(data, ',')
	if err != nil || looksSingleColumn(rows) {
		// Regional spreadsheet exports commonly use semicolons.
		if alt, altErr := readCSV(data, ';'); altErr == nil && !looksSingleColumn(alt) {
			rows, err = alt, nil
		}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("parse csv: %w", err)
	}

	kws := make(keyword.Map)
	groupCol, kwCol, start := locateColumns(rows)
	for _, row := range rows[start:] {
		if len(row) == 0 {
			continue
		}
		if len(row) == 1 {
			addKeywords(kws, row[0], 0)
			continue
		}
		if groupCol >= len(row) || kwCol >= len(row) {
			continue
		}
		addKeywords(kws, row[kwCol], parseGroup(row[groupCol]))
	}
	return kws, maxGroup(kws), nil
}

func readCSV(data string, sep rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

// looksSingleColumn reports whether every row has one field containing a
// semicolon — the signature of a semicolon-delimited file read with commas.
func looksSingleColumn(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		if len(row) != 1 || !strings.Contains(row[0], ";") {
			return false
		}
	}
	return true
}

// locateColumns returns the group and keyword column indices, and the row
// index data starts at (1 when a header row was recognized).
func locateColumns(rows [][]string) (groupCol, kwCol, start int) {
	groupCol, kwCol = 0, 1
	if len(rows) == 0 {
		return
	}
	for i, cell := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "group":
			groupCol, start = i, 1
		case "keyword", "keywords":
			kwCol, start = i, 1
		}
	}
	return
}

// parseGroup extracts the first run of digits from a group cell, so "Group 3"
// and "3" both parse to 3. Anything without digits is group 0.
func parseGroup(s string) int {
	digits := strings.Builder{}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// addKeywords splits a comma-separated keyword cell into entries.
func addKeywords(kws keyword.Map, cell string, group int) {
	for _, kw := range strings.Split(cell, ",") {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		kws[kw] = group
	}
}

func maxGroup(kws keyword.Map) int {
	max := 0
	for _, g := range kws {
		if g > max {
			max = g
		}
	}
	return max
}
