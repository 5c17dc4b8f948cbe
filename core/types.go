// Package core: Graph type, sentinel errors, and the NewGraph constructor.
//
// The Graph stores taxa in a map keyed by id and keeps two adjacency
// structures (predecessor and successor id sets) so that both directions of
// a genealogy edge are O(1) to walk. muTaxa guards the taxa map; muAdj
// guards both adjacency maps and the edge counter.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyTaxonID indicates that the provided taxon id is the empty string.
	ErrEmptyTaxonID = errors.New("core: taxon id is empty")

	// ErrTaxonNotFound indicates an operation referenced a non-existent taxon.
	ErrTaxonNotFound = errors.New("core: taxon not found")

	// ErrSelfLoop indicates a genealogy edge from a taxon to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is an attributed directed graph of taxa.
//
// Edges run ancestor → descendant and carry no payload. A pair of taxa is
// connected by at most one edge, and self-loops are rejected.
type Graph struct {
	muTaxa sync.RWMutex // guards taxa
	muAdj  sync.RWMutex // guards succ, pred, edgeCount

	taxa map[string]Attrs // taxon id → attribute map

	succ map[string]map[string]struct{} // parent id → child id set
	pred map[string]map[string]struct{} // child id → parent id set

	edgeCount int
}

// NewGraph creates an empty phylogeny graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		taxa: make(map[string]Attrs),
		succ: make(map[string]map[string]struct{}),
		pred: make(map[string]map[string]struct{}),
	}
}
