package parser

import (
	"slices"

	"github.com/terrascope/foodweb/internal/analyzer"
	"github.com/terrascope/foodweb/internal/ecosystem"
	"github.com/terrascope/foodweb/internal/models"
)

// BuildGraph converts g into its wire snapshot. Nodes and edges keep the
// graph's insertion order.
func BuildGraph(g *ecosystem.Graph) *models.Graph {
	graph := &models.Graph{
		EcosystemType: g.EcosystemType,
		Nodes:         make([]models.Node, 0, g.Len()),
		Edges:         BuildEdges(slices.Collect(g.Edges())),
	}

	for name, category := range g.Species() {
		graph.Nodes = append(graph.Nodes, models.Node{
			ID:       name,
			Category: category.String(),
		})
	}

	graph.Stats = buildStats(g)

	return graph
}

func buildStats(g *ecosystem.Graph) *models.Stats {
	counts := g.Counts()

	return &models.Stats{
		TotalNodes: g.Len(),
		TotalEdges: g.EdgeCount(),
		SpeciesByCategory: map[string]int{
			ecosystem.Producer.String():   counts.Producers,
			ecosystem.Herbivore.String():  counts.Herbivores,
			ecosystem.Carnivore.String():  counts.Carnivores,
			ecosystem.Decomposer.String(): counts.Decomposers,
		},
	}
}

func BuildEdges(edges []ecosystem.Edge) []models.Edge {
	out := make([]models.Edge, 0, len(edges))
	for _, edge := range edges {
		out = append(out, models.Edge{
			Source: edge.From,
			Target: edge.To,
			Type:   string(edge.Origin),
		})
	}
	return out
}

func BuildAnalysis(result analyzer.Result) models.Analysis {
	analysis := models.Analysis{
		Findings:    make([]models.Finding, 0, len(result.Findings)),
		HasWarnings: result.HasWarnings,
		Counts: models.Counts{
			Producers:   result.Counts.Producers,
			Herbivores:  result.Counts.Herbivores,
			Carnivores:  result.Counts.Carnivores,
			Decomposers: result.Counts.Decomposers,
		},
	}

	for _, f := range result.Findings {
		analysis.Findings = append(analysis.Findings, models.Finding{
			Code:    string(f.Code),
			Message: f.Message,
		})
	}

	return analysis
}
