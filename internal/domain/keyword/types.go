// Package keyword implements the flexible keyword-matching engine: variant
// generation, boundary-guarded counting, per-keyword/per-group aggregation,
// and reconciliation of counts across redundant extraction sources.
//
// All matching operates on text canonicalized by internal/domain/textnorm.
// Every operation is a deterministic function of its inputs; the package
// owns no mutable state beyond injected dependencies.
package keyword

// Map assigns each raw keyword, exactly as authored, to a reporting group.
// Group 0 is the ungrouped default. A Map is built once per analysis session
// and treated as immutable while analyses run.
type Map map[string]int

// Counts maps keyword to occurrence count. Zero-count keywords are omitted.
type Counts map[string]int

// GroupCounts maps group ID to the summed counts of its keywords.
type GroupCounts map[int]int

// Total returns the sum of all keyword counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// GroupTotals sums keyword counts into per-group totals using this Map's
// keyword-to-group assignment. Keywords missing from the Map fall into
// group 0. GroupCounts are always recomputed from keyword counts this way —
// never merged or summed independently — so the invariant
// groups[g] == sum(counts[k] for k assigned to g) holds exactly.
func (m Map) GroupTotals(counts Counts) GroupCounts {
	groups := make(GroupCounts)
	for kw, n := range counts {
		groups[m[kw]] += n
	}
	return groups
}
