// Package core: taxon, edge, and attribute operations on the Graph.

package core

import "sort"

// AddTaxon inserts a taxon with the given id and an empty attribute map.
// Returns ErrEmptyTaxonID if id is empty.
// If the taxon already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddTaxon(id string) error {
	if id == "" {
		return ErrEmptyTaxonID
	}
	g.muTaxa.Lock()
	defer g.muTaxa.Unlock()

	if _, exists := g.taxa[id]; exists {
		return nil // no-op for existing taxon
	}
	g.taxa[id] = make(Attrs)

	g.muAdj.Lock()
	g.ensureAdj(id)
	g.muAdj.Unlock()

	return nil
}

// AddTaxonWithAttrs inserts a taxon along with an initial attribute map.
// The map is copied; the caller keeps ownership of attrs. If the taxon
// already exists, the given attributes are merged over its existing ones.
// Complexity: O(len(attrs)) amortized.
func (g *Graph) AddTaxonWithAttrs(id string, attrs Attrs) error {
	if err := g.AddTaxon(id); err != nil {
		return err
	}
	g.muTaxa.Lock()
	defer g.muTaxa.Unlock()
	for k, v := range attrs {
		g.taxa[id][k] = v
	}
	return nil
}

// HasTaxon reports whether a taxon with the given id exists.
// Complexity: O(1).
func (g *Graph) HasTaxon(id string) bool {
	if id == "" {
		return false
	}
	g.muTaxa.RLock()
	defer g.muTaxa.RUnlock()
	_, exists := g.taxa[id]

	return exists
}

// TaxonIDs returns all taxon ids in sorted order.
// Complexity: O(V log V).
func (g *Graph) TaxonIDs() []string {
	g.muTaxa.RLock()
	defer g.muTaxa.RUnlock()
	ids := make([]string, 0, len(g.taxa))
	for id := range g.taxa {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// TaxonCount returns the number of taxa. O(1).
func (g *Graph) TaxonCount() int {
	g.muTaxa.RLock()
	defer g.muTaxa.RUnlock()

	return len(g.taxa)
}

// EdgeCount returns the number of genealogy edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// SetAttr stores an attribute value on the given taxon.
// Returns ErrTaxonNotFound if the taxon does not exist.
// Complexity: O(1) amortized.
func (g *Graph) SetAttr(id, key string, v Value) error {
	g.muTaxa.Lock()
	defer g.muTaxa.Unlock()
	attrs, ok := g.taxa[id]
	if !ok {
		return ErrTaxonNotFound
	}
	attrs[key] = v

	return nil
}

// Attr reads one attribute from the given taxon. present reports whether the
// key exists on the taxon; err is ErrTaxonNotFound when the taxon is absent.
// Complexity: O(1).
func (g *Graph) Attr(id, key string) (v Value, present bool, err error) {
	g.muTaxa.RLock()
	defer g.muTaxa.RUnlock()
	attrs, ok := g.taxa[id]
	if !ok {
		return Value{}, false, ErrTaxonNotFound
	}
	v, present = attrs[key]

	return v, present, nil
}

// HasAttr reports whether the taxon exists and carries the given key.
// Complexity: O(1).
func (g *Graph) HasAttr(id, key string) bool {
	g.muTaxa.RLock()
	defer g.muTaxa.RUnlock()
	attrs, ok := g.taxa[id]
	if !ok {
		return false
	}
	_, present := attrs[key]

	return present
}

// Attrs returns an independent copy of the taxon's attribute map.
// Returns ErrTaxonNotFound if the taxon does not exist.
// Complexity: O(len(attrs)).
func (g *Graph) Attrs(id string) (Attrs, error) {
	g.muTaxa.RLock()
	defer g.muTaxa.RUnlock()
	attrs, ok := g.taxa[id]
	if !ok {
		return nil, ErrTaxonNotFound
	}

	return attrs.Clone(), nil
}

// AddEdge records a genealogy edge parent → child, adding either endpoint if
// missing. Adding an existing edge is a no-op.
// Returns ErrEmptyTaxonID or ErrSelfLoop on invalid input.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(parent, child string) error {
	if parent == "" || child == "" {
		return ErrEmptyTaxonID
	}
	if parent == child {
		return ErrSelfLoop
	}
	// Ensure both endpoints exist (idempotent).
	if err := g.AddTaxon(parent); err != nil {
		return err
	}
	if err := g.AddTaxon(child); err != nil {
		return err
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if _, dup := g.succ[parent][child]; dup {
		return nil // no-op for existing edge
	}
	g.succ[parent][child] = struct{}{}
	g.pred[child][parent] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge parent → child exists.
// Complexity: O(1).
func (g *Graph) HasEdge(parent, child string) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.succ[parent][child]

	return ok
}

// Parents returns the ids of the taxon's direct ancestors, sorted.
// Returns ErrTaxonNotFound if the taxon does not exist.
// Complexity: O(d log d).
func (g *Graph) Parents(id string) ([]string, error) {
	return g.adjacent(id, true)
}

// Children returns the ids of the taxon's direct descendants, sorted.
// Returns ErrTaxonNotFound if the taxon does not exist.
// Complexity: O(d log d).
func (g *Graph) Children(id string) ([]string, error) {
	return g.adjacent(id, false)
}

// InDegree returns the number of direct ancestors of id.
// Complexity: O(1).
func (g *Graph) InDegree(id string) (int, error) {
	return g.degree(id, true)
}

// OutDegree returns the number of direct descendants of id.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	return g.degree(id, false)
}

// adjacent collects one side of the adjacency for id, sorted for
// reproducible iteration.
func (g *Graph) adjacent(id string, incoming bool) ([]string, error) {
	if !g.HasTaxon(id) {
		return nil, ErrTaxonNotFound
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	set := g.succ[id]
	if incoming {
		set = g.pred[id]
	}
	out := make([]string, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

func (g *Graph) degree(id string, incoming bool) (int, error) {
	if !g.HasTaxon(id) {
		return 0, ErrTaxonNotFound
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	if incoming {
		return len(g.pred[id]), nil
	}

	return len(g.succ[id]), nil
}

// ensureAdj makes both adjacency entries for id non-nil.
// Callers must hold muAdj.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.succ[id]; !ok {
		g.succ[id] = make(map[string]struct{})
	}
	if _, ok := g.pred[id]; !ok {
		g.pred[id] = make(map[string]struct{})
	}
}
