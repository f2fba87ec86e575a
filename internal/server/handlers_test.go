package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/utilsearch/utilsearch/internal/catalog"
	"github.com/utilsearch/utilsearch/internal/search"
)

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	engine, err := search.New(catalog.Builtin(), search.WithObserver(search.NopObserver{}))
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return NewHandlers(engine)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestHandleSearch(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=json", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := decodeBody(t, rec)
	if body["query"] != "json" {
		t.Errorf("query = %v", body["query"])
	}
	if total, _ := body["total"].(float64); total < 1 {
		t.Errorf("total = %v, want >= 1", body["total"])
	}
}

func TestHandleSearchMissingQuery(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleSearchLimit(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=e&limit=2", nil)
	rec := httptest.NewRecorder()
	h.HandleSearch(rec, req)

	body := decodeBody(t, rec)
	results, _ := body["results"].([]any)
	if len(results) > 2 {
		t.Errorf("got %d results, want <= 2", len(results))
	}
}

func TestHandleSuggest(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=json", nil)
	rec := httptest.NewRecorder()
	h.HandleSuggest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if total, _ := body["total"].(float64); total < 1 {
		t.Errorf("total = %v, want >= 1", body["total"])
	}
}

func TestHandleRecent(t *testing.T) {
	h := newTestHandlers(t)

	post := httptest.NewRequest(http.MethodPost, "/api/recent",
		strings.NewReader(`{"id": "json-formatter"}`))
	rec := httptest.NewRecorder()
	h.HandleRecent(rec, post)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", rec.Code)
	}

	get := httptest.NewRequest(http.MethodGet, "/api/recent", nil)
	rec = httptest.NewRecorder()
	h.HandleRecent(rec, get)

	body := decodeBody(t, rec)
	ids, _ := body["ids"].([]any)
	if len(ids) != 1 || ids[0] != "json-formatter" {
		t.Errorf("ids = %v, want [json-formatter]", ids)
	}
}

func TestHandleRecentBadBody(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recent", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.HandleRecent(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleFavoritesToggle(t *testing.T) {
	h := newTestHandlers(t)

	toggle := func() map[string]any {
		req := httptest.NewRequest(http.MethodPost, "/api/favorites",
			strings.NewReader(`{"id": "json-formatter"}`))
		rec := httptest.NewRecorder()
		h.HandleFavorites(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		return decodeBody(t, rec)
	}

	if body := toggle(); body["favorited"] != true {
		t.Errorf("first toggle favorited = %v, want true", body["favorited"])
	}
	if body := toggle(); body["favorited"] != false {
		t.Errorf("second toggle favorited = %v, want false", body["favorited"])
	}
}

func TestHandleRecentMethodNotAllowed(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/recent", nil)
	rec := httptest.NewRecorder()
	h.HandleRecent(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHandleStatus(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	h.HandleStatus(rec, req)

	body := decodeBody(t, rec)
	if count, _ := body["toolCount"].(float64); count < 1 {
		t.Errorf("toolCount = %v, want >= 1", body["toolCount"])
	}
	if cats, _ := body["categories"].([]any); len(cats) == 0 {
		t.Errorf("categories = %v, want non-empty", body["categories"])
	}
}
