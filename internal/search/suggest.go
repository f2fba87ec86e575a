package search

import (
	"math"
	"sort"
	"strings"
)

// backfillScore is the fixed low score given to featured tools padded into
// an underfilled suggestion list.
const backfillScore = 0.3

// fuzzySuggestionWeight discounts fuzzy-matched keyword and category
// candidates below every containment tier.
const fuzzySuggestionWeight = 0.8

type scoredSuggestion struct {
	Suggestion
	score float64
}

// Suggestions derives a capped, deduplicated, type-ordered list of
// suggestions for an incremental query: top search hits as utility entries,
// plus keyword and category candidates ranked by the same containment
// tiering, with featured backfill for short noisy queries.
func (e *Engine) Suggestions(query string) []Suggestion {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	e.mu.RLock()
	idx := e.idx
	opts := e.opts
	e.mu.RUnlock()

	type key struct {
		t    SuggestionType
		text string
	}
	seen := make(map[key]bool)
	var list []scoredSuggestion

	add := func(s Suggestion, score float64) {
		k := key{s.Type, s.Text}
		if seen[k] {
			return
		}
		seen[k] = true
		list = append(list, scoredSuggestion{Suggestion: s, score: score})
	}

	results := e.Search(query)
	for i := 0; i < len(results) && i < opts.UtilitySuggestions; i++ {
		tool := results[i].Tool
		add(Suggestion{Type: SuggestionUtility, Text: tool.Name, Tool: &tool}, results[i].Score)
	}

	for _, kw := range idx.keywordVocab {
		score, ok := candidateScore(q, kw)
		if !ok {
			continue
		}
		// A keyword already visible inside a utility suggestion ("json"
		// next to "JSON Formatter") adds nothing.
		if coveredByUtility(list, kw) {
			continue
		}
		add(Suggestion{Type: SuggestionKeyword, Text: kw}, score)
	}

	for _, c := range idx.Categories() {
		name := string(c)
		score, ok := candidateScore(q, Normalize(name))
		if !ok {
			continue
		}
		add(Suggestion{Type: SuggestionCategory, Text: name}, score)
	}

	// Short queries are often mid-typo; pad with featured tools so the
	// dropdown never goes empty.
	if len(list) < opts.BackfillThreshold && len(q) <= opts.BackfillQueryLen {
		for _, id := range idx.sortedIDs() {
			if len(list) >= opts.BackfillThreshold {
				break
			}
			tool := idx.byID[id]
			if !tool.Featured {
				continue
			}
			add(Suggestion{Type: SuggestionUtility, Text: tool.Name, Tool: &tool}, backfillScore)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if math.Abs(a.score-b.score) >= scoreEpsilon {
			return a.score > b.score
		}
		if typeOrder(a.Type) != typeOrder(b.Type) {
			return typeOrder(a.Type) < typeOrder(b.Type)
		}
		if len(a.Text) != len(b.Text) {
			return len(a.Text) < len(b.Text)
		}
		return a.Text < b.Text
	})

	if len(list) > opts.SuggestionLimit {
		list = list[:opts.SuggestionLimit]
	}

	out := make([]Suggestion, len(list))
	for i, s := range list {
		out[i] = s.Suggestion
	}
	return out
}

// candidateScore tiers a normalized candidate against the normalized query:
// exact, prefix, containment, then fuzzy fallback.
func candidateScore(q, candidate string) (float64, bool) {
	switch {
	case candidate == q:
		return 1.0, true
	case strings.HasPrefix(candidate, q):
		return 0.9, true
	case strings.Contains(candidate, q):
		return 0.85, true
	}
	if score, ok := matchScore(q, candidate); ok {
		return score * fuzzySuggestionWeight, true
	}
	return 0, false
}

// coveredByUtility reports whether the keyword already appears inside an
// accepted utility suggestion's text.
func coveredByUtility(list []scoredSuggestion, keyword string) bool {
	for _, s := range list {
		if s.Type != SuggestionUtility {
			continue
		}
		if strings.Contains(Normalize(s.Text), keyword) {
			return true
		}
	}
	return false
}
