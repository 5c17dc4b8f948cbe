// Package core: independent graph copies (induced subgraph and clone).

package core

// Subgraph returns the node-induced subgraph over exactly the given ids as an
// independent copy: attribute maps are deep-copied and only edges with both
// endpoints in ids are kept, preserving their direction.
// Returns ErrTaxonNotFound if any id is absent from g.
// Complexity: O(V' + E') over the kept taxa and their edges.
func (g *Graph) Subgraph(ids []string) (*Graph, error) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !g.HasTaxon(id) {
			return nil, ErrTaxonNotFound
		}
		keep[id] = struct{}{}
	}

	out := NewGraph()

	g.muTaxa.RLock()
	for id := range keep {
		out.taxa[id] = g.taxa[id].Clone()
	}
	g.muTaxa.RUnlock()

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	for id := range keep {
		out.ensureAdj(id)
		for child := range g.succ[id] {
			if _, kept := keep[child]; !kept {
				continue
			}
			out.ensureAdj(child)
			out.succ[id][child] = struct{}{}
			out.pred[child][id] = struct{}{}
			out.edgeCount++
		}
	}

	return out, nil
}

// Clone returns a deep copy of the whole graph: taxa, attributes, and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	// TaxonIDs snapshots under the taxa lock; Subgraph over the full id set
	// cannot miss.
	out, _ := g.Subgraph(g.TaxonIDs())

	return out
}
