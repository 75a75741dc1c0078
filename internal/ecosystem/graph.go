// Package ecosystem holds the trophic graph: a registry of species keyed by
// name, each tagged with a Category, and the directed feeding edges between
// them. An edge A->B means B consumes A, so edges follow the flow of energy
// from prey or substrate to consumer.
//
// # Identity
//
// Species are stored under stable internal ids. Edges reference ids, never
// names, so renaming a species is a field update plus an index update and
// cannot lose edges.
//
// # Ordering
//
// Species, per-category slices and edges are all kept in insertion order so
// that iteration, inference and snapshots are deterministic.
//
// # Thread Safety
//
// Graph is NOT safe for concurrent use. The owner (one session or request)
// must serialize mutations; see the session package.
package ecosystem

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// DefaultEcosystemType is the tag given to a new graph.
const DefaultEcosystemType = "Terrestrial"

// Origin records how an edge came to exist.
type Origin string

const (
	OriginExplicit Origin = "explicit"
	OriginInferred Origin = "inferred"
)

// Edge is a directed feeding relationship: To consumes From.
type Edge struct {
	From   string
	To     string
	Origin Origin
}

// Counts are species tallies per category.
type Counts struct {
	Producers   int
	Herbivores  int
	Carnivores  int
	Decomposers int
}

func (c Counts) Total() int {
	return c.Producers + c.Herbivores + c.Carnivores + c.Decomposers
}

type speciesID uint64

type species struct {
	name     string
	category Category
}

type edgeKey struct {
	from, to speciesID
}

// Graph is the trophic graph. The zero value is not usable; call New.
type Graph struct {
	// EcosystemType is descriptive metadata ("Terrestrial", "Aquatic", ...).
	// It never affects inference or analysis.
	EcosystemType string

	nextID     speciesID
	species    map[speciesID]*species
	ids        map[string]speciesID
	order      []speciesID
	byCategory map[Category][]speciesID
	edges      []edgeKey
	origins    map[edgeKey]Origin
}

func New() *Graph {
	g := &Graph{EcosystemType: DefaultEcosystemType}
	g.reset()
	return g
}

func (g *Graph) reset() {
	g.nextID = 0
	g.species = make(map[speciesID]*species)
	g.ids = make(map[string]speciesID)
	g.order = nil
	g.byCategory = make(map[Category][]speciesID, len(Categories))
	g.edges = nil
	g.origins = make(map[edgeKey]Origin)
}

// AddSpecies registers a new species with no edges.
func (g *Graph) AddSpecies(name string, category Category) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	if !category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	if _, exists := g.ids[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	g.nextID++
	id := g.nextID

	g.species[id] = &species{name: name, category: category}
	g.ids[name] = id
	g.order = append(g.order, id)
	g.byCategory[category] = append(g.byCategory[category], id)

	return nil
}

// RemoveSpecies deletes a species together with every edge touching it.
func (g *Graph) RemoveSpecies(name string) error {
	id, err := g.lookup(name)
	if err != nil {
		return err
	}

	s := g.species[id]

	g.edges = slices.DeleteFunc(g.edges, func(k edgeKey) bool {
		if k.from == id || k.to == id {
			delete(g.origins, k)
			return true
		}
		return false
	})

	g.byCategory[s.category] = removeID(g.byCategory[s.category], id)
	g.order = removeID(g.order, id)
	delete(g.ids, s.name)
	delete(g.species, id)

	return nil
}

// RenameSpecies changes the name and category of a species in one step.
// Renaming onto a name held by a different species fails with
// ErrDuplicateName and leaves the graph untouched.
func (g *Graph) RenameSpecies(oldName, newName string, category Category) error {
	id, err := g.lookup(oldName)
	if err != nil {
		return err
	}

	newName, err = normalizeName(newName)
	if err != nil {
		return err
	}

	if !category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	if other, exists := g.ids[newName]; exists && other != id {
		return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}

	s := g.species[id]

	delete(g.ids, s.name)
	g.ids[newName] = id
	s.name = newName

	if s.category != category {
		g.byCategory[s.category] = removeID(g.byCategory[s.category], id)
		g.byCategory[category] = insertID(g.byCategory[category], id)
		s.category = category
	}

	return nil
}

// AddEdge adds an explicit edge from -> to. Adding an edge that already
// exists is a no-op, except that an inferred edge is promoted to explicit.
func (g *Graph) AddEdge(from, to string) error {
	_, err := g.Link(from, to, OriginExplicit)
	return err
}

// Link adds the edge from -> to with the given origin and reports whether a
// new edge was created.
func (g *Graph) Link(from, to string, origin Origin) (bool, error) {
	fromID, err := g.lookup(from)
	if err != nil {
		return false, err
	}

	toID, err := g.lookup(to)
	if err != nil {
		return false, err
	}

	k := edgeKey{from: fromID, to: toID}
	if existing, ok := g.origins[k]; ok {
		if origin == OriginExplicit && existing != OriginExplicit {
			g.origins[k] = OriginExplicit
		}
		return false, nil
	}

	g.edges = append(g.edges, k)
	g.origins[k] = origin

	return true, nil
}

func (g *Graph) HasEdge(from, to string) bool {
	fromID, ok := g.ids[strings.TrimSpace(from)]
	if !ok {
		return false
	}

	toID, ok := g.ids[strings.TrimSpace(to)]
	if !ok {
		return false
	}

	_, ok = g.origins[edgeKey{from: fromID, to: toID}]
	return ok
}

// Clear removes every species and edge. EcosystemType is kept.
func (g *Graph) Clear() {
	g.reset()
}

// Species yields every (name, category) pair in insertion order. The
// sequence can be ranged over any number of times.
func (g *Graph) Species() iter.Seq2[string, Category] {
	return func(yield func(string, Category) bool) {
		for _, id := range g.order {
			s := g.species[id]
			if !yield(s.name, s.category) {
				return
			}
		}
	}
}

// Edges yields every edge in insertion order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, k := range g.edges {
			e := Edge{
				From:   g.species[k.from].name,
				To:     g.species[k.to].name,
				Origin: g.origins[k],
			}
			if !yield(e) {
				return
			}
		}
	}
}

// SpeciesIn returns the names in one category, ordered by insertion.
func (g *Graph) SpeciesIn(category Category) []string {
	ids := g.byCategory[category]
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, g.species[id].name)
	}
	return names
}

func (g *Graph) Category(name string) (Category, bool) {
	id, ok := g.ids[strings.TrimSpace(name)]
	if !ok {
		return "", false
	}
	return g.species[id].category, true
}

func (g *Graph) Has(name string) bool {
	_, ok := g.ids[strings.TrimSpace(name)]
	return ok
}

func (g *Graph) Counts() Counts {
	return Counts{
		Producers:   len(g.byCategory[Producer]),
		Herbivores:  len(g.byCategory[Herbivore]),
		Carnivores:  len(g.byCategory[Carnivore]),
		Decomposers: len(g.byCategory[Decomposer]),
	}
}

func (g *Graph) Len() int {
	return len(g.order)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

func (g *Graph) lookup(name string) (speciesID, error) {
	name = strings.TrimSpace(name)
	id, ok := g.ids[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return id, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	return name, nil
}

// ids are allocated monotonically, so id order is insertion order and the
// index slices stay sorted.
func insertID(ids []speciesID, id speciesID) []speciesID {
	i, found := slices.BinarySearch(ids, id)
	if found {
		return ids
	}
	return slices.Insert(ids, i, id)
}

func removeID(ids []speciesID, id speciesID) []speciesID {
	i, found := slices.BinarySearch(ids, id)
	if !found {
		return ids
	}
	return slices.Delete(ids, i, i+1)
}
