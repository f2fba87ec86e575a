package search

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/utilsearch/utilsearch/internal/catalog"
	"github.com/utilsearch/utilsearch/internal/prefs"
)

// ErrOptionsImmutable is returned by UpdateOptions. Matching options are
// fixed at construction; silently accepting new options without reindexing
// would leave the engine serving stale behavior, so the call fails loudly.
// Construct a new engine to change options.
var ErrOptionsImmutable = errors.New("search: options are fixed at construction, create a new engine instead")

// Persistence keys under which preference state is stored.
const (
	recentKey    = "utilsearch.recent"
	favoritesKey = "utilsearch.favorites"
)

// scoreEpsilon is the tie window: results whose scores differ by less than
// this are ordered alphabetically by name, then by id.
const scoreEpsilon = 0.001

// Options are the tunable ranking parameters. The boost constants are
// empirical defaults carried over from production tuning, not invariants.
type Options struct {
	// FeaturedBoost multiplies scores of featured tools.
	FeaturedBoost float64

	// FavoriteBoost multiplies scores of favorited tools.
	FavoriteBoost float64

	// RecencyBoost is the maximum recency bump: the most recently used tool
	// is multiplied by 1+RecencyBoost, decaying linearly to 1 for the
	// oldest tracked position.
	RecencyBoost float64

	// MaxRecent caps the recently-used list.
	MaxRecent int

	// UtilitySuggestions is how many top search results become utility
	// suggestions.
	UtilitySuggestions int

	// SuggestionLimit caps the total suggestion list.
	SuggestionLimit int

	// BackfillThreshold and BackfillQueryLen control featured backfill:
	// when fewer than BackfillThreshold suggestions exist and the query is
	// at most BackfillQueryLen characters, featured tools pad the list.
	BackfillThreshold int
	BackfillQueryLen  int
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		FeaturedBoost:      1.05,
		FavoriteBoost:      1.04,
		RecencyBoost:       0.03,
		MaxRecent:          10,
		UtilitySuggestions: 7,
		SuggestionLimit:    10,
		BackfillThreshold:  8,
		BackfillQueryLen:   4,
	}
}

// Engine is the catalog search engine. Construct one with New and share it;
// all methods are safe for concurrent use.
type Engine struct {
	mu       sync.RWMutex
	opts     Options
	strategy Strategy
	store    prefs.KV
	observer Observer

	idx       *Index
	recent    []string
	favorites []string
}

// EngineOption configures an Engine at construction.
type EngineOption func(*Engine)

// WithOptions overrides the default ranking parameters.
func WithOptions(opts Options) EngineOption {
	return func(e *Engine) { e.opts = opts }
}

// WithStrategy swaps the matching strategy. The default is the heuristic
// strategy; BM25Strategy is the full-text alternative for larger catalogs.
func WithStrategy(s Strategy) EngineOption {
	return func(e *Engine) { e.strategy = s }
}

// WithStore sets the preference store. Defaults to an in-memory store.
func WithStore(kv prefs.KV) EngineOption {
	return func(e *Engine) { e.store = kv }
}

// WithObserver sets the event observer. Defaults to LogObserver.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) { e.observer = o }
}

// New builds an engine over the given catalog. The catalog is validated,
// indexed, and persisted preference state is loaded; corrupt or missing
// state degrades to empty rather than failing.
func New(tools []catalog.Tool, options ...EngineOption) (*Engine, error) {
	if err := catalog.Validate(tools); err != nil {
		return nil, err
	}

	e := &Engine{
		opts:     DefaultOptions(),
		strategy: NewHeuristicStrategy(),
		store:    prefs.NewMemoryKV(),
		observer: LogObserver{},
	}
	for _, opt := range options {
		opt(e)
	}

	e.idx = buildIndex(tools)
	if err := e.strategy.Rebuild(e.idx, tools); err != nil {
		return nil, err
	}

	e.recent = e.loadIDList(recentKey, "load recent")
	if len(e.recent) > e.opts.MaxRecent {
		e.recent = e.recent[:e.opts.MaxRecent]
	}
	e.favorites = e.loadIDList(favoritesKey, "load favorites")

	return e, nil
}

// loadIDList reads a persisted JSON id list, treating missing or corrupt
// values as empty state.
func (e *Engine) loadIDList(key, op string) []string {
	raw, ok, err := e.store.Get(key)
	if err != nil {
		e.observer.StorageError(op, err)
		return nil
	}
	if !ok {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		e.observer.StorageError(op, err)
		return nil
	}
	return ids
}

// saveIDList persists a JSON id list, swallowing failures.
func (e *Engine) saveIDList(key, op string, ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		e.observer.StorageError(op, err)
		return
	}
	if err := e.store.Set(key, string(data)); err != nil {
		e.observer.StorageError(op, err)
	}
}

// Search runs all matching passes for query and returns results ranked by
// boosted relevance. Empty or whitespace-only queries return no results.
func (e *Engine) Search(query string) []Result {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	e.mu.RLock()
	idx := e.idx
	strategy := e.strategy
	opts := e.opts
	recentPos := make(map[string]int, len(e.recent))
	for i, id := range e.recent {
		recentPos[id] = i
	}
	favorite := make(map[string]bool, len(e.favorites))
	for _, id := range e.favorites {
		favorite[id] = true
	}
	e.mu.RUnlock()

	matches := strategy.Match(idx, q)
	if len(matches) == 0 {
		return nil
	}

	// Assemble in sorted id order: map iteration order would leak into the
	// final ordering wherever the comparator ties.
	ids := make([]string, 0, len(matches))
	for id := range matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		m := matches[id]
		tool, ok := idx.byID[id]
		if !ok {
			continue
		}

		score := m.Score
		if tool.Featured {
			score *= opts.FeaturedBoost
		}
		if pos, ok := recentPos[id]; ok && opts.MaxRecent > 0 {
			score *= 1 + opts.RecencyBoost*float64(opts.MaxRecent-pos)/float64(opts.MaxRecent)
		}
		if favorite[id] {
			score *= opts.FavoriteBoost
		}

		results = append(results, Result{
			Tool:          tool,
			Score:         score,
			MatchedFields: sortFields(m.Fields),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if math.Abs(results[i].Score-results[j].Score) < scoreEpsilon {
			if results[i].Tool.Name != results[j].Tool.Name {
				return results[i].Tool.Name < results[j].Tool.Name
			}
			return results[i].Tool.ID < results[j].Tool.ID
		}
		return results[i].Score > results[j].Score
	})

	return results
}

// AddRecent moves id to the front of the recently-used list, deduplicating
// case-insensitively and truncating to the configured cap. The updated list
// is persisted.
func (e *Engine) AddRecent(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := make([]string, 0, len(e.recent)+1)
	kept = append(kept, id)
	for _, existing := range e.recent {
		if strings.EqualFold(existing, id) {
			continue
		}
		kept = append(kept, existing)
	}
	if len(kept) > e.opts.MaxRecent {
		kept = kept[:e.opts.MaxRecent]
	}
	e.recent = kept

	e.saveIDList(recentKey, "save recent", e.recent)
}

// ToggleFavorite adds id to the favorites if absent and removes it if
// present, returning the new state (true = now favorited).
func (e *Engine) ToggleFavorite(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, existing := range e.favorites {
		if existing == id {
			e.favorites = append(e.favorites[:i], e.favorites[i+1:]...)
			e.saveIDList(favoritesKey, "save favorites", e.favorites)
			return false
		}
	}
	e.favorites = append(e.favorites, id)
	e.saveIDList(favoritesKey, "save favorites", e.favorites)
	return true
}

// RecentIDs returns the recently-used ids, most recent first. Ids no longer
// in the catalog are included; use RecentTools for resolved records.
func (e *Engine) RecentIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, len(e.recent))
	copy(out, e.recent)
	return out
}

// FavoriteIDs returns the favorited ids in toggle order.
func (e *Engine) FavoriteIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, len(e.favorites))
	copy(out, e.favorites)
	return out
}

// RecentTools resolves the recently-used list to catalog records, silently
// dropping ids that no longer exist.
func (e *Engine) RecentTools() []catalog.Tool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.resolveLocked(e.recent)
}

// FavoriteTools resolves the favorites to catalog records, silently
// dropping ids that no longer exist.
func (e *Engine) FavoriteTools() []catalog.Tool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.resolveLocked(e.favorites)
}

func (e *Engine) resolveLocked(ids []string) []catalog.Tool {
	var out []catalog.Tool
	for _, id := range ids {
		if t, ok := e.idx.byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// ClearHistory empties both the recently-used list and the favorites, and
// removes their persisted state.
func (e *Engine) ClearHistory() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.recent = nil
	e.favorites = nil

	if err := e.store.Delete(recentKey); err != nil {
		e.observer.StorageError("clear recent", err)
	}
	if err := e.store.Delete(favoritesKey); err != nil {
		e.observer.StorageError("clear favorites", err)
	}
}

// UpdateCatalog replaces the indexed catalog. Indices are rebuilt in full
// and swapped atomically; preference state is untouched. An empty catalog
// is valid and yields empty results.
func (e *Engine) UpdateCatalog(tools []catalog.Tool) error {
	if err := catalog.Validate(tools); err != nil {
		return err
	}

	idx := buildIndex(tools)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.strategy.Rebuild(idx, tools); err != nil {
		return err
	}
	e.idx = idx
	return nil
}

// UpdateOptions always returns ErrOptionsImmutable. See the error's doc for
// why this fails loudly instead of silently ignoring the new options.
func (e *Engine) UpdateOptions(Options) error {
	return ErrOptionsImmutable
}

// Categories returns the categories present in the current catalog.
func (e *Engine) Categories() []catalog.Category {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.Categories()
}

// Size returns the number of indexed tools.
func (e *Engine) Size() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.Size()
}
