package search

import (
	"sort"
	"strings"

	"github.com/utilsearch/utilsearch/internal/catalog"
)

// Scored is the pre-boost match state for a single tool: the best raw score
// seen across passes and the distinct match-reason tags that contributed.
type Scored struct {
	Score  float64
	Fields []string
}

// Strategy produces raw match scores for a query. The engine owns index
// lifecycle, boosts, sorting, and suggestions; strategies only decide which
// tools match and how strongly. Swapping the strategy changes matching
// behavior without subclassing the engine.
type Strategy interface {
	// Rebuild prepares the strategy for a new catalog snapshot. idx is the
	// engine's freshly built index; strategies that keep their own
	// structures (e.g. BM25) rebuild them from tools.
	Rebuild(idx *Index, tools []catalog.Tool) error

	// Match scores the normalized query against the catalog. The returned
	// map is keyed by tool id; ids absent from the map did not match.
	Match(idx *Index, query string) map[string]*Scored
}

// Pass multipliers for the heuristic strategy. Exact-field hits are pushed
// above 1.0 so they always outrank partial matches.
const (
	idExactBoost    = 1.3
	idContainsBoost = 1.2

	nameExactBoost    = 1.25
	namePrefixBoost   = 1.2
	nameContainsBoost = 1.15

	keywordExactBoost  = 1.1
	keywordPrefixBoost = 1.05

	nameWordScore = 0.8
	descWordScore = 0.7
	ngramScore    = 0.65

	// Fuzzy fallback kicks in for tools unmatched or scored below this.
	fuzzyThreshold = 0.7

	fuzzyNameWeight    = 0.9
	fuzzyKeywordWeight = 0.85
	fuzzyDescWeight    = 0.75
)

// heuristicStrategy is the default matcher: layered exact, word-index,
// n-gram, and fuzzy passes over the engine's inverted indices.
type heuristicStrategy struct{}

// NewHeuristicStrategy returns the default deterministic matching strategy.
func NewHeuristicStrategy() Strategy {
	return &heuristicStrategy{}
}

func (s *heuristicStrategy) Rebuild(idx *Index, tools []catalog.Tool) error {
	// Stateless: everything lives in the engine's index.
	return nil
}

func (s *heuristicStrategy) Match(idx *Index, query string) map[string]*Scored {
	q := Normalize(query)
	if q == "" || idx.Size() == 0 {
		return nil
	}
	qWords := Tokenize(q)

	m := matchState{idx: idx, hits: make(map[string]*Scored)}

	m.matchExact(q)
	m.matchMultiWord(q)
	m.matchWordIndices(qWords)
	m.matchNGrams(q)
	m.matchFuzzy(q)

	return m.hits
}

type matchState struct {
	idx  *Index
	hits map[string]*Scored
}

// add merges a pass result: score is kept at the maximum seen, match tags
// accumulate without duplicates.
func (m *matchState) add(id, field string, score float64) {
	s, ok := m.hits[id]
	if !ok {
		m.hits[id] = &Scored{Score: score, Fields: []string{field}}
		return
	}
	if score > s.Score {
		s.Score = score
	}
	for _, f := range s.Fields {
		if f == field {
			return
		}
	}
	s.Fields = append(s.Fields, field)
}

// matchExact runs the id, name, and keyword passes for the whole query.
func (m *matchState) matchExact(q string) {
	for _, id := range m.idx.sortedIDs() {
		t := m.idx.byID[id]
		normID := Normalize(id)
		switch {
		case normID == q:
			m.add(id, "id", 1.0*idExactBoost)
		case strings.Contains(normID, q):
			m.add(id, "id", 0.95*idContainsBoost)
		}

		name := Normalize(t.Name)
		switch {
		case name == q:
			m.add(id, "name", 1.0*nameExactBoost)
		case strings.HasPrefix(name, q):
			m.add(id, "name", 0.95*namePrefixBoost)
		case strings.Contains(name, q):
			m.add(id, "name", 0.9*nameContainsBoost)
		}

		for _, kw := range t.Keywords {
			norm := Normalize(kw)
			switch {
			case norm == q:
				m.add(id, "keyword", 1.0*keywordExactBoost)
			case strings.HasPrefix(norm, q):
				m.add(id, "keyword", 0.9*keywordPrefixBoost)
			case strings.Contains(norm, q):
				m.add(id, "keyword", 0.85)
			}
		}
	}
}

// matchMultiWord scores tools by the fraction of query words present in
// their name or description. Only strong coverage (≥70%) counts.
func (m *matchState) matchMultiWord(q string) {
	words := significantWords(q)
	if len(words) < 2 {
		return
	}

	for _, id := range m.idx.sortedIDs() {
		t := m.idx.byID[id]
		name := Normalize(t.Name)
		desc := Normalize(t.Description)

		nameHits, descHits := 0, 0
		for _, w := range words {
			if strings.Contains(name, w) {
				nameHits++
			}
			if strings.Contains(desc, w) {
				descHits++
			}
		}

		nameFrac := float64(nameHits) / float64(len(words))
		descFrac := float64(descHits) / float64(len(words))
		switch {
		case nameFrac >= 0.7:
			m.add(id, "name", 0.7+0.2*nameFrac)
		case descFrac >= 0.7:
			m.add(id, "description", 0.6+0.15*descFrac)
		}
	}
}

// matchWordIndices looks each significant query word up in the name and
// description word indices.
func (m *matchState) matchWordIndices(qWords []string) {
	for _, w := range qWords {
		for id := range m.idx.nameWords[w] {
			m.add(id, "name", nameWordScore)
		}
		for id := range m.idx.descWords[w] {
			m.add(id, "description", descWordScore)
		}
	}
}

// matchNGrams looks the query's 3-4 character fragments up in the n-gram
// index, catching partial and misspelled words.
func (m *matchState) matchNGrams(q string) {
	if len(q) < ngramMin {
		return
	}
	for _, g := range NGrams(q, ngramMin, ngramMax) {
		for id := range m.idx.ngramIndex[g] {
			m.add(id, "ngram", ngramScore)
		}
	}
}

// matchFuzzy is the fallback pass for tools the earlier passes missed or
// matched weakly: full fuzzy scoring against name, description, and each
// keyword, weighted by field reliability.
func (m *matchState) matchFuzzy(q string) {
	for _, id := range m.idx.sortedIDs() {
		if s, ok := m.hits[id]; ok && s.Score >= fuzzyThreshold {
			continue
		}
		t := m.idx.byID[id]

		if score, ok := matchScore(q, t.Name); ok {
			m.add(id, "name_fuzzy", score*fuzzyNameWeight)
		}
		if score, ok := matchScore(q, t.Description); ok {
			m.add(id, "description_fuzzy", score*fuzzyDescWeight)
		}
		for _, kw := range t.Keywords {
			if score, ok := matchScore(q, kw); ok {
				m.add(id, "keyword_fuzzy", score*fuzzyKeywordWeight)
			}
		}
	}
}

// sortFields orders match tags for stable output.
func sortFields(fields []string) []string {
	out := make([]string, len(fields))
	copy(out, fields)
	sort.Strings(out)
	return out
}
