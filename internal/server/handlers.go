package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/utilsearch/utilsearch/internal/search"
)

// Handlers holds the HTTP handlers for the search API.
type Handlers struct {
	engine *search.Engine
}

// NewHandlers creates the handler set around an engine.
func NewHandlers(engine *search.Engine) *Handlers {
	return &Handlers{engine: engine}
}

func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing query parameter 'q'"})
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	results := h.engine.Search(query)
	if len(results) > limit {
		results = results[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
		"total":   len(results),
	})
}

func (h *Handlers) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing query parameter 'q'"})
		return
	}

	suggestions := h.engine.Suggestions(query)
	writeJSON(w, http.StatusOK, map[string]any{
		"query":       query,
		"suggestions": suggestions,
		"total":       len(suggestions),
	})
}

type idRequest struct {
	ID string `json:"id"`
}

func (h *Handlers) HandleRecent(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"ids":   h.engine.RecentIDs(),
			"tools": h.engine.RecentTools(),
		})
	case http.MethodPost:
		var req idRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body must be {\"id\": \"...\"}"})
			return
		}
		h.engine.AddRecent(req.ID)
		writeJSON(w, http.StatusOK, map[string]any{"ids": h.engine.RecentIDs()})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (h *Handlers) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"ids":   h.engine.FavoriteIDs(),
			"tools": h.engine.FavoriteTools(),
		})
	case http.MethodPost:
		var req idRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body must be {\"id\": \"...\"}"})
			return
		}
		favorited := h.engine.ToggleFavorite(req.ID)
		writeJSON(w, http.StatusOK, map[string]any{
			"id":        req.ID,
			"favorited": favorited,
		})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"toolCount":  h.engine.Size(),
		"categories": h.engine.Categories(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
