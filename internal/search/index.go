package search

import (
	"sort"
	"strings"

	"github.com/utilsearch/utilsearch/internal/catalog"
)

// Index holds the inverted indices derived from one catalog snapshot. An
// Index is immutable once built; rebuilds produce a fresh value that the
// engine swaps in atomically.
type Index struct {
	byID map[string]catalog.Tool

	nameWords map[string]map[string]bool
	descWords map[string]map[string]bool

	// keywordIndex maps normalized keywords (and sub-words of multi-word
	// keywords) to tool ids.
	keywordIndex  map[string]map[string]bool
	categoryIndex map[catalog.Category]map[string]bool

	// ngramIndex covers names and keywords only; descriptions are too noisy
	// for fragment matching.
	ngramIndex map[string]map[string]bool

	// keywordVocab is the sorted list of full normalized keywords, used as
	// the candidate pool for keyword suggestions.
	keywordVocab []string
}

// buildIndex constructs all indices for the given catalog in one pass.
func buildIndex(tools []catalog.Tool) *Index {
	idx := &Index{
		byID:          make(map[string]catalog.Tool, len(tools)),
		nameWords:     make(map[string]map[string]bool),
		descWords:     make(map[string]map[string]bool),
		keywordIndex:  make(map[string]map[string]bool),
		categoryIndex: make(map[catalog.Category]map[string]bool),
		ngramIndex:    make(map[string]map[string]bool),
	}

	vocab := make(map[string]bool)

	for _, t := range tools {
		idx.byID[t.ID] = t

		if t.Category != "" {
			addPosting(idx.categoryIndex, t.Category, t.ID)
		}

		for _, w := range Tokenize(t.Name) {
			addPosting(idx.nameWords, w, t.ID)
		}
		for _, w := range Tokenize(t.Description) {
			addPosting(idx.descWords, w, t.ID)
		}

		gramSeen := make(map[string]bool)
		for _, g := range NGrams(t.Name, ngramMin, ngramMax) {
			gramSeen[g] = true
		}

		for _, kw := range t.Keywords {
			norm := Normalize(kw)
			if norm == "" {
				continue
			}
			addPosting(idx.keywordIndex, norm, t.ID)
			vocab[norm] = true

			if strings.Contains(norm, " ") {
				for _, sub := range Tokenize(norm) {
					addPosting(idx.keywordIndex, sub, t.ID)
				}
			}
			for _, g := range NGrams(kw, ngramMin, ngramMax) {
				gramSeen[g] = true
			}
		}

		for g := range gramSeen {
			addPosting(idx.ngramIndex, g, t.ID)
		}
	}

	idx.keywordVocab = make([]string, 0, len(vocab))
	for kw := range vocab {
		idx.keywordVocab = append(idx.keywordVocab, kw)
	}
	sort.Strings(idx.keywordVocab)

	return idx
}

func addPosting[K comparable](m map[K]map[string]bool, key K, id string) {
	set, ok := m[key]
	if !ok {
		set = make(map[string]bool)
		m[key] = set
	}
	set[id] = true
}

// Size returns the number of indexed tools.
func (idx *Index) Size() int {
	return len(idx.byID)
}

// Categories returns the categories that have at least one tool, in the
// catalog's display order.
func (idx *Index) Categories() []catalog.Category {
	var out []catalog.Category
	for _, c := range catalog.Categories {
		if len(idx.categoryIndex[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// sortedIDs returns every indexed id in lexical order. Matching passes
// iterate in this order so results are deterministic run to run.
func (idx *Index) sortedIDs() []string {
	ids := make([]string, 0, len(idx.byID))
	for id := range idx.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
