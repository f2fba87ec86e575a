/*
Package server exposes the search engine over a small JSON HTTP API for
hosts that embed utilsearch behind a web UI.

Routes:

	GET  /api/search?q=&limit=   ranked results
	GET  /api/suggest?q=         typed suggestions
	GET  /api/recent             recently used tools
	POST /api/recent             {"id": "..."} marks a tool as used
	GET  /api/favorites          favorited tools
	POST /api/favorites          {"id": "..."} toggles a favorite
	GET  /api/status             catalog size and categories
*/
package server

import (
	"net/http"

	"github.com/utilsearch/utilsearch/internal/search"
)

// New builds an http.Server serving the search API on the given port.
func New(port string, engine *search.Engine) *http.Server {
	h := NewHandlers(engine)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", h.HandleSearch)
	mux.HandleFunc("/api/suggest", h.HandleSuggest)
	mux.HandleFunc("/api/recent", h.HandleRecent)
	mux.HandleFunc("/api/favorites", h.HandleFavorites)
	mux.HandleFunc("/api/status", h.HandleStatus)

	return &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}
}
