package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/lamvt/vietminer/internal/domain/keyword"
	"github.com/lamvt/vietminer/internal/ports"
)

// WriteReports renders three CSV reports into dir:
//
//	keywords.csv      per-file count of every keyword
//	groups.csv        per-file total per keyword group
//	standardized.csv  group totals rescaled to 0-100 within each file,
//	                  where 100 marks that file's dominant group
//
// Keyword columns appear in sorted order so diffs between runs are stable.
func WriteReports(results []*ports.DocumentResult, keywords keyword.Map, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	if err := writeKeywordReport(results, keywords, filepath.Join(dir, "keywords.csv")); err != nil {
		return err
	}
	if err := writeGroupReport(results, keywords, filepath.Join(dir, "groups.csv"), false); err != nil {
		return err
	}
	return writeGroupReport(results, keywords, filepath.Join(dir, "standardized.csv"), true)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func sortedKeywords(keywords keyword.Map) []string {
	kws := make([]string, 0, len(keywords))
	for kw := range keywords {
		kws = append(kws, kw)
	}
	sort.Strings(kws)
	return kws
}

func sortedGroups(keywords keyword.Map) []int {
	seen := make(map[int]bool)
	for _, g := range keywords {
		seen[g] = true
	}
	groups := make([]int, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}
	sort.Ints(groups)
	return groups
}

func writeKeywordReport(results []*ports.DocumentResult, keywords keyword.Map, path string) error {
	kws := sortedKeywords(keywords)

	rows := make([][]string, 0, len(results)+1)
	header := append([]string{"file"}, kws...)
	rows = append(rows, append(header, "total"))

	for _, res := range results {
		row := make([]string, 0, len(kws)+2)
		row = append(row, res.File)
		for _, kw := range kws {
			row = append(row, strconv.Itoa(res.KeywordCounts[kw]))
		}
		row = append(row, strconv.Itoa(res.TotalKeywords))
		rows = append(rows, row)
	}
	return writeCSV(path, rows)
}

func writeGroupReport(results []*ports.DocumentResult, keywords keyword.Map, path string, standardized bool) error {
	groups := sortedGroups(keywords)

	rows := make([][]string, 0, len(results)+1)
	header := []string{"file"}
	for _, g := range groups {
		header = append(header, "group_"+strconv.Itoa(g))
	}
	rows = append(rows, header)

	for _, res := range results {
		row := []string{res.File}
		maxCount := 0
		for _, n := range res.GroupCounts {
			if n > maxCount {
				maxCount = n
			}
		}
		for _, g := range groups {
			n := res.GroupCounts[g]
			if standardized {
				score := 0.0
				if maxCount > 0 {
					score = float64(n) / float64(maxCount) * 100
				}
				row = append(row, strconv.FormatFloat(score, 'f', 2, 64))
			} else {
				row = append(row, strconv.Itoa(n))
			}
		}
		rows = append(rows, row)
	}
	return writeCSV(path, rows)
}
