// Package analyzer reads a trophic graph to fill in feeding relationships
// implied by category membership and to evaluate population balance.
package analyzer

import (
	"github.com/terrascope/foodweb/internal/ecosystem"
)

// InferRelationships adds the edges implied by trophic role:
//
//   - every producer is eaten by every herbivore
//   - every herbivore is eaten by every carnivore
//   - every species other than itself is eaten by every decomposer
//
// Existing edges are left as they are, so running it again adds nothing.
// The returned edges are the ones this call created, in creation order.
func InferRelationships(g *ecosystem.Graph) []ecosystem.Edge {
	producers := g.SpeciesIn(ecosystem.Producer)
	herbivores := g.SpeciesIn(ecosystem.Herbivore)
	carnivores := g.SpeciesIn(ecosystem.Carnivore)
	decomposers := g.SpeciesIn(ecosystem.Decomposer)

	var added []ecosystem.Edge
	link := func(from, to string) {
		ok, err := g.Link(from, to, ecosystem.OriginInferred)
		if err != nil {
			// Both names were just read from g.
			panic("analyzer: inference on unknown species: " + err.Error())
		}
		if ok {
			added = append(added, ecosystem.Edge{From: from, To: to, Origin: ecosystem.OriginInferred})
		}
	}

	for _, herb := range herbivores {
		for _, prod := range producers {
			link(prod, herb)
		}
	}

	for _, carn := range carnivores {
		for _, herb := range herbivores {
			link(herb, carn)
		}
	}

	for _, deco := range decomposers {
		for other := range g.Species() {
			if other != deco {
				link(other, deco)
			}
		}
	}

	return added
}
