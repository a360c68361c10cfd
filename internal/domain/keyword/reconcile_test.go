package keyword

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lamvt/vietminer/internal/ports"
)

func newTestReconciler(minRunes int) *Reconciler {
	r := NewReconciler(newTestAnalyzer(), nil)
	r.SetMinSourceRunes(minRunes)
	return r
}

func TestReconcile_MaxNotSum(t *testing.T) {
	r := newTestReconciler(0)

	sources := []ports.TextSource{
		{Method: "native", Text: "ngân hàng ngân hàng"},
		{Method: "ocr", Text: "ngân hàng"},
	}
	counts, groups := r.Reconcile(sources, Map{"ngân hàng": 0})

	assert.Equal(t, 2, counts["ngân hàng"], "maximum across sources, never the sum")
	assert.Equal(t, GroupCounts{0: 2}, groups)
}

func TestReconcile_CapturesKeywordOnlyOneSourceSaw(t *testing.T) {
	r := newTestReconciler(0)

	sources := []ports.TextSource{
		{Method: "native", Text: "van ban khong lien quan"},
		{Method: "alt", Text: "mot doan khac cung khong lien quan"},
		{Method: "ocr", Text: "mobile banking xuất hiện"},
	}
	counts, _ := r.Reconcile(sources, Map{"mobile banking": 0})

	assert.Equal(t, Counts{"mobile banking": 1}, counts)
}

func TestReconcile_ShortSourcesFiltered(t *testing.T) {
	r := newTestReconciler(DefaultMinSourceRunes)

	// Both sources normalize well under 50 runes: treated as failed
	// extractions, not as zero-keyword documents.
	sources := []ports.TextSource{
		{Method: "native", Text: "ngân hàng"},
		{Method: "ocr", Text: "xx"},
	}
	counts, groups := r.Reconcile(sources, Map{"ngân hàng": 0})
	assert.Empty(t, counts)
	assert.Empty(t, groups)
}

func TestReconcile_DefaultThresholdWithFullSources(t *testing.T) {
	r := newTestReconciler(DefaultMinSourceRunes)

	filler := strings.Repeat("báo cáo thường niên của tổ chức ", 4)
	sources := []ports.TextSource{
		{Method: "native", Text: filler + "ngân hàng ngân hàng"},
		{Method: "ocr", Text: filler + "ngân hàng"},
	}
	counts, groups := r.Reconcile(sources, Map{"ngân hàng": 7})

	assert.Equal(t, 2, counts["ngân hàng"])
	assert.Equal(t, GroupCounts{7: 2}, groups)
}

func TestReconcile_EmptySources(t *testing.T) {
	r := newTestReconciler(DefaultMinSourceRunes)

	counts, groups := r.Reconcile(nil, Map{"ngân hàng": 0})
	assert.Empty(t, counts)
	assert.Empty(t, groups)

	counts, groups = r.Reconcile([]ports.TextSource{{Method: "native", Text: ""}}, Map{"ngân hàng": 0})
	assert.Empty(t, counts)
	assert.Empty(t, groups)
}

func TestReconcile_GroupsRecomputedFromMergedCounts(t *testing.T) {
	r := newTestReconciler(0)

	kws := Map{"ngân hàng": 1, "tín dụng": 1}
	sources := []ports.TextSource{
		{Method: "native", Text: "ngân hàng tín dụng tín dụng"},
		{Method: "ocr", Text: "ngân hàng ngân hàng tín dụng"},
	}
	counts, groups := r.Reconcile(sources, kws)

	// Per-keyword maxima come from different sources.
	assert.Equal(t, 2, counts["ngân hàng"])
	assert.Equal(t, 2, counts["tín dụng"])
	// Group total is the sum of merged maxima (4), not the per-source
	// group maxima (3) and not the cross-source sum (6).
	assert.Equal(t, GroupCounts{1: 4}, groups)
}
