package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamvt/vietminer/internal/ports"
)

func TestScanReportsByteOffsets(t *testing.T) {
	s := NewScanner([]string{"ngan hang"})

	matches := s.Scan("ngan hang va ngan hang")
	require.Len(t, matches, 2)
	assert.Equal(t, ports.ScanMatch{Pattern: 0, Start: 0, End: 9}, matches[0])
	assert.Equal(t, ports.ScanMatch{Pattern: 0, Start: 13, End: 22}, matches[1])
}

func TestScanReportsOverlaps(t *testing.T) {
	s := NewScanner([]string{"ngan", "ngan hang"})

	matches := s.Scan("ngan hang")
	require.Len(t, matches, 2)

	patterns := []int{matches[0].Pattern, matches[1].Pattern}
	assert.ElementsMatch(t, []int{0, 1}, patterns)
}

func TestScanNoMatches(t *testing.T) {
	s := NewScanner([]string{"tin dung"})

	assert.Empty(t, s.Scan("tai lieu khong lien quan"))
	assert.Empty(t, s.Scan(""))
}
