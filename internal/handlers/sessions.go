package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/terrascope/foodweb/internal/analyzer"
	"github.com/terrascope/foodweb/internal/ecosystem"
	"github.com/terrascope/foodweb/internal/models"
	"github.com/terrascope/foodweb/internal/parser"
	"github.com/terrascope/foodweb/internal/session"
)

type CreateSessionRequest struct {
	EcosystemType string `json:"ecosystem_type,omitempty" validate:"max=64"`
	Sample        string `json:"sample,omitempty" validate:"max=16"`
}

type SpeciesRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Category string `json:"category" validate:"required"`
}

type EdgeRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type SessionResponse struct {
	ID        string        `json:"id"`
	CreatedAt string        `json:"created_at"`
	Graph     *models.Graph `json:"graph"`
}

type InferResponse struct {
	Added []models.Edge `json:"added"`
	Graph *models.Graph `json:"graph"`
}

// SessionHandler serves the session-scoped graph API. Every graph access
// goes through session.Session.Do, which serializes it.
type SessionHandler struct {
	store *session.Store
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /sessions", h.Create)
	mux.HandleFunc("GET /sessions/{id}", h.Get)
	mux.HandleFunc("DELETE /sessions/{id}", h.Delete)

	mux.HandleFunc("POST /sessions/{id}/species", h.AddSpecies)
	mux.HandleFunc("PUT /sessions/{id}/species/{name}", h.RenameSpecies)
	mux.HandleFunc("DELETE /sessions/{id}/species/{name}", h.RemoveSpecies)
	mux.HandleFunc("DELETE /sessions/{id}/species", h.Clear)

	mux.HandleFunc("POST /sessions/{id}/edges", h.AddEdge)
	mux.HandleFunc("POST /sessions/{id}/infer", h.Infer)
	mux.HandleFunc("GET /sessions/{id}/analysis", h.Analysis)
	mux.HandleFunc("POST /sessions/{id}/dataset", h.LoadDataset)
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeRequest(r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	g := ecosystem.New()
	if req.Sample != "" {
		ds, err := parser.Sample(req.Sample)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if g, err = parser.Load(ds); err != nil {
			writeError(w, r, err)
			return
		}
	}

	if req.EcosystemType != "" {
		g.EcosystemType = req.EcosystemType
	}

	sess, err := h.store.Create(g)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "session created", "session", sess.ID, "species", g.Len())

	h.respondSession(w, r, http.StatusCreated, sess)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondSession(w, r, http.StatusOK, sess)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) AddSpecies(w http.ResponseWriter, r *http.Request) {
	var req SpeciesRequest
	if err := decodeRequest(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := ecosystem.ParseCategory(req.Category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.mutate(w, r, http.StatusCreated, func(g *ecosystem.Graph) error {
		return g.AddSpecies(req.Name, category)
	})
}

func (h *SessionHandler) RenameSpecies(w http.ResponseWriter, r *http.Request) {
	var req SpeciesRequest
	if err := decodeRequest(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := ecosystem.ParseCategory(req.Category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.mutate(w, r, http.StatusOK, func(g *ecosystem.Graph) error {
		return g.RenameSpecies(r.PathValue("name"), req.Name, category)
	})
}

func (h *SessionHandler) RemoveSpecies(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, http.StatusOK, func(g *ecosystem.Graph) error {
		return g.RemoveSpecies(r.PathValue("name"))
	})
}

func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, http.StatusOK, func(g *ecosystem.Graph) error {
		g.Clear()
		return nil
	})
}

func (h *SessionHandler) AddEdge(w http.ResponseWriter, r *http.Request) {
	var req EdgeRequest
	if err := decodeRequest(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	h.mutate(w, r, http.StatusOK, func(g *ecosystem.Graph) error {
		return g.AddEdge(req.From, req.To)
	})
}

func (h *SessionHandler) Infer(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var response InferResponse
	_ = sess.Do(func(g *ecosystem.Graph) error {
		response.Added = parser.BuildEdges(analyzer.InferRelationships(g))
		response.Graph = parser.BuildGraph(g)
		return nil
	})

	slog.DebugContext(r.Context(), "relationships inferred", "session", sess.ID, "added", len(response.Added))

	writeJSON(w, r, http.StatusOK, response)
}

func (h *SessionHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var analysis models.Analysis
	_ = sess.Do(func(g *ecosystem.Graph) error {
		analysis = parser.BuildAnalysis(analyzer.Analyze(g))
		return nil
	})

	writeJSON(w, r, http.StatusOK, analysis)
}

// LoadDataset replaces the session graph with a sample (?sample=<id>) or the
// dataset document in the body. The old graph survives any failure.
func (h *SessionHandler) LoadDataset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var ds *models.Dataset
	if id := r.URL.Query().Get("sample"); id != "" {
		ds, err = parser.Sample(id)
	} else {
		var body []byte
		body, err = io.ReadAll(r.Body)
		if err != nil {
			err = fmt.Errorf("%w: failed to read body: %w", errBadRequest, err)
		} else {
			ds, err = parser.ParseDataset(body)
		}
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	g, err := parser.Load(ds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sess.Replace(g)

	h.respondSession(w, r, http.StatusOK, sess)
}

func (h *SessionHandler) mutate(w http.ResponseWriter, r *http.Request, status int, fn func(g *ecosystem.Graph) error) {
	sess, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var snapshot *models.Graph
	err = sess.Do(func(g *ecosystem.Graph) error {
		if err := fn(g); err != nil {
			return err
		}
		snapshot = parser.BuildGraph(g)
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, status, snapshot)
}

func (h *SessionHandler) respondSession(w http.ResponseWriter, r *http.Request, status int, sess *session.Session) {
	response := SessionResponse{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
	}

	_ = sess.Do(func(g *ecosystem.Graph) error {
		response.Graph = parser.BuildGraph(g)
		return nil
	})

	writeJSON(w, r, status, response)
}
