/*
Package search implements the in-memory discovery engine for the utility
catalog.

The engine layers several deterministic matching passes (exact, word-index,
n-gram, fuzzy) over inverted indices built from the catalog, merges per-tool
scores, applies personalization boosts (recency, favorites, featured), and
produces ranked results and typed suggestions. No I/O happens on the query
path; preference persistence goes through an injected prefs.KV.
*/
package search

import "github.com/utilsearch/utilsearch/internal/catalog"

// Result is a single ranked search hit.
type Result struct {
	// Tool is the matched catalog record.
	Tool catalog.Tool `json:"tool"`

	// Score is the final relevance score after boosts.
	Score float64 `json:"score"`

	// MatchedFields lists the distinct match reasons that contributed,
	// e.g. "id", "name", "keyword", "name_fuzzy".
	MatchedFields []string `json:"matchedFields"`
}

// SuggestionType classifies a suggestion entry.
type SuggestionType string

// Suggestion types, in display priority order.
const (
	SuggestionUtility  SuggestionType = "utility"
	SuggestionCategory SuggestionType = "category"
	SuggestionKeyword  SuggestionType = "keyword"
)

// Suggestion is a lightweight typed hint surfaced while the user types.
// Uniqueness key is (Type, Text).
type Suggestion struct {
	Type SuggestionType `json:"type"`
	Text string         `json:"text"`

	// Tool is set for utility suggestions only.
	Tool *catalog.Tool `json:"tool,omitempty"`
}

// typeOrder ranks suggestion types for tie-breaking and dedup passes.
func typeOrder(t SuggestionType) int {
	switch t {
	case SuggestionUtility:
		return 0
	case SuggestionCategory:
		return 1
	default:
		return 2
	}
}

// DedupeSuggestions removes duplicate (type, text) entries, keeping the
// first occurrence. Output is grouped by type (utility, then category, then
// keyword), preserving the input's relative order within each group.
func DedupeSuggestions(in []Suggestion) []Suggestion {
	type key struct {
		t    SuggestionType
		text string
	}
	seen := make(map[key]bool, len(in))
	out := make([]Suggestion, 0, len(in))

	for _, want := range []SuggestionType{SuggestionUtility, SuggestionCategory, SuggestionKeyword} {
		for _, s := range in {
			if s.Type != want {
				continue
			}
			k := key{s.Type, s.Text}
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, s)
		}
	}
	return out
}
