// Package models defines the wire structures exchanged with clients.
// It includes graph snapshots, analysis results and dataset documents.
package models

type Graph struct {
	EcosystemType string `json:"ecosystem_type"`
	Nodes         []Node `json:"nodes"`
	Edges         []Edge `json:"edges"`
	Stats         *Stats `json:"stats,omitempty"`
}

type Node struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

// Edge points from the consumed species to its consumer. Type is either
// "explicit" or "inferred".
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

type Stats struct {
	TotalNodes        int            `json:"total_nodes"`
	TotalEdges        int            `json:"total_edges"`
	SpeciesByCategory map[string]int `json:"species_by_category,omitempty"`
}
