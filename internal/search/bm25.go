package search

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/utilsearch/utilsearch/internal/catalog"
)

// BM25Strategy is the full-text alternative to the heuristic matcher,
// backed by an in-memory Bleve index. It trades the heuristic passes'
// hand-tuned tiering for BM25 term ranking, which scales better once the
// catalog grows past a few hundred records.
//
// Scores are min-max normalized into (0, 1] so the engine's boost and tie
// handling behave the same under either strategy.
type BM25Strategy struct {
	mu    sync.RWMutex
	index bleve.Index
	limit int
}

// NewBM25Strategy creates an unpopulated strategy. limit caps how many
// candidates one query may return; zero means a sensible default.
func NewBM25Strategy(limit int) *BM25Strategy {
	if limit <= 0 {
		limit = 50
	}
	return &BM25Strategy{limit: limit}
}

func bm25Mapping() mapping.IndexMapping {
	toolMapping := bleve.NewDocumentMapping()
	toolMapping.AddFieldMappingsAt("name", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("description", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("keywords", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", toolMapping)
	return indexMapping
}

// Rebuild replaces the Bleve index with one built from tools. The previous
// index keeps serving queries until the swap.
func (s *BM25Strategy) Rebuild(_ *Index, tools []catalog.Tool) error {
	index, err := bleve.NewMemOnly(bm25Mapping())
	if err != nil {
		return fmt.Errorf("failed to create bleve index: %w", err)
	}

	batch := index.NewBatch()
	for _, t := range tools {
		doc := map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
			"keywords":    strings.Join(t.Keywords, " "),
		}
		if err := batch.Index(t.ID, doc); err != nil {
			index.Close()
			return fmt.Errorf("failed to index tool %s: %w", t.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return fmt.Errorf("failed to batch index tools: %w", err)
	}

	s.mu.Lock()
	old := s.index
	s.index = index
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// Match runs a fuzzy match query and returns normalized per-tool scores
// tagged "fulltext". Query failures degrade to no matches; the engine
// treats that the same as an unmatched query.
func (s *BM25Strategy) Match(_ *Index, query string) map[string]*Scored {
	s.mu.RLock()
	index := s.index
	s.mu.RUnlock()
	if index == nil || strings.TrimSpace(query) == "" {
		return nil
	}

	matchQuery := bleve.NewMatchQuery(query)
	matchQuery.SetFuzziness(1)
	req := bleve.NewSearchRequestOptions(matchQuery, s.limit, 0, false)

	res, err := index.Search(req)
	if err != nil || len(res.Hits) == 0 {
		return nil
	}

	maxScore := res.Hits[0].Score
	minScore := res.Hits[len(res.Hits)-1].Score

	out := make(map[string]*Scored, len(res.Hits))
	for _, hit := range res.Hits {
		score := 1.0
		if maxScore > minScore {
			// Rescale into (0,1] keeping the weakest hit above zero.
			score = 0.1 + 0.9*(hit.Score-minScore)/(maxScore-minScore)
		}
		out[hit.ID] = &Scored{Score: score, Fields: []string{"fulltext"}}
	}
	return out
}

// Close releases the underlying index.
func (s *BM25Strategy) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index != nil {
		err := s.index.Close()
		s.index = nil
		return err
	}
	return nil
}
