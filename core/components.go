// Package core: weakly-connected component decomposition.

package core

import "sort"

// WeaklyConnectedComponents finds all components of the graph when edge
// direction is ignored. Components are returned in discovery order, seeded
// by sorted taxon ids; each component's member ids are sorted.
//
// Time: O(V + E). Memory: O(V).
func (g *Graph) WeaklyConnectedComponents() [][]string {
	ids := g.TaxonIDs()

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	var comps [][]string
	for _, start := range ids {
		if _, ok := seen[start]; ok {
			continue
		}
		// BFS over the undirected view to collect the component.
		queue := []string{start}
		seen[start] = struct{}{}
		var comp []string
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := range g.succ[u] {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
			for v := range g.pred[u] {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}

// IsWeaklyConnected reports whether the graph forms a single component when
// edge direction is ignored. The empty graph has zero components, so it is
// not weakly connected.
// Complexity: O(V + E).
func (g *Graph) IsWeaklyConnected() bool {
	return len(g.WeaklyConnectedComponents()) == 1
}
