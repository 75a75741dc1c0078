package handlers

import (
	"io"
	"net/http"

	"github.com/terrascope/foodweb/internal/analyzer"
	"github.com/terrascope/foodweb/internal/models"
	"github.com/terrascope/foodweb/internal/parser"
)

type AnalyzeResponse struct {
	Graph    *models.Graph   `json:"graph"`
	Analysis models.Analysis `json:"analysis"`
	Inferred []models.Edge   `json:"inferred"`
}

// AnalyzeHandler builds a throwaway graph from the dataset in the request
// body, infers relationships unless ?infer=false, and returns the snapshot
// with its balance analysis.
func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	defer r.Body.Close()

	ds, err := parser.ParseDataset(body)
	if err != nil {
		http.Error(w, "Invalid dataset: "+err.Error(), http.StatusBadRequest)
		return
	}

	g, err := parser.Load(ds)
	if err != nil {
		http.Error(w, "Invalid dataset: "+err.Error(), http.StatusBadRequest)
		return
	}

	response := AnalyzeResponse{Inferred: []models.Edge{}}
	if r.URL.Query().Get("infer") != "false" {
		response.Inferred = parser.BuildEdges(analyzer.InferRelationships(g))
	}

	response.Graph = parser.BuildGraph(g)
	response.Analysis = parser.BuildAnalysis(analyzer.Analyze(g))

	writeJSON(w, r, http.StatusOK, response)
}

// DatasetsHandler lists the built-in sample datasets.
func DatasetsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, parser.Samples())
}

// DatasetHandler returns one built-in sample dataset by id.
func DatasetHandler(w http.ResponseWriter, r *http.Request) {
	ds, err := parser.Sample(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, r, http.StatusOK, ds)
}
