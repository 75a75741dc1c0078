package handlers

import (
	"net/http"

	"github.com/terrascope/foodweb/internal/session"
)

// NewRouter registers every API route on a fresh mux.
func NewRouter(store *session.Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", HealthHandler)
	mux.HandleFunc("/analyze", AnalyzeHandler)

	mux.HandleFunc("GET /datasets", DatasetsHandler)
	mux.HandleFunc("GET /datasets/{id}", DatasetHandler)

	NewSessionHandler(store).Register(mux)

	return mux
}
