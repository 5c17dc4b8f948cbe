package topology

import (
	"sort"

	"github.com/evolab/phylo/core"
)

// IsAsexual reports whether every taxon has at most one direct ancestor.
// Complexity: O(V).
func IsAsexual(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	for _, id := range g.TaxonIDs() {
		in, err := g.InDegree(id)
		if err != nil {
			return false, err
		}
		if in > 1 {
			return false, nil
		}
	}
	return true, nil
}

// IsAsexualLineage reports whether g is a single unbranched chain from one
// root to one tip: the graph is asexual, has exactly one root, and the walk
// from that root via the unique successor at each step reaches a taxon with
// no successor after visiting every taxon in the graph.
// Complexity: O(V).
func IsAsexualLineage(g *core.Graph) (bool, error) {
	asexual, err := IsAsexual(g)
	if err != nil {
		return false, err
	}
	if !asexual {
		return false, nil
	}
	roots, err := RootIDs(g)
	if err != nil {
		return false, err
	}
	if len(roots) != 1 {
		return false, nil
	}
	cur := roots[0]
	visited := 1
	for {
		children, err := g.Children(cur)
		if err != nil {
			return false, err
		}
		if len(children) > 1 {
			return false, nil
		}
		if len(children) == 0 {
			break
		}
		cur = children[0]
		visited++
	}
	// Off-chain taxa disqualify the graph even when the chain itself is clean.
	return visited == g.TaxonCount(), nil
}

// HasSingleRoot reports whether all of g's taxa trace to one connected
// ancestry, i.e. the graph is a single weakly-connected component.
// Complexity: O(V + E).
func HasSingleRoot(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	return g.IsWeaklyConnected(), nil
}

// RootIDs returns the ids of all taxa with no recorded ancestor, sorted.
// Complexity: O(V).
func RootIDs(g *core.Graph) ([]string, error) {
	return zeroDegreeIDs(g, true)
}

// Roots returns all root taxa as Taxon value objects with independent
// attribute copies, in id order.
// Complexity: O(V + total attributes copied).
func Roots(g *core.Graph) ([]Taxon, error) {
	return zeroDegreeTaxa(g, true)
}

// NumRoots returns the number of taxa with no recorded ancestor.
// Complexity: O(V).
func NumRoots(g *core.Graph) (int, error) {
	ids, err := RootIDs(g)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// LeafTaxaIDs returns the ids of all taxa with no recorded descendant,
// sorted.
// Complexity: O(V).
func LeafTaxaIDs(g *core.Graph) ([]string, error) {
	return zeroDegreeIDs(g, false)
}

// LeafTaxa returns all leaf taxa as Taxon value objects with independent
// attribute copies, in id order.
// Complexity: O(V + total attributes copied).
func LeafTaxa(g *core.Graph) ([]Taxon, error) {
	return zeroDegreeTaxa(g, false)
}

// NumIndependentPhylogenies returns the number of weakly-connected
// components in g. This differs from NumRoots whenever one component holds
// more than one root (sexual merges or anomalous data).
// Complexity: O(V + E).
func NumIndependentPhylogenies(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	return len(g.WeaklyConnectedComponents()), nil
}

// IndependentPhylogenies decomposes g into its weakly-connected components,
// each returned as an independent copy sharing no state with g or with each
// other. Components are ordered by descending taxon count; ties keep the
// discovery order of the decomposition.
// Complexity: O(V + E).
func IndependentPhylogenies(g *core.Graph) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	comps := g.WeaklyConnectedComponents()
	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })

	out := make([]*core.Graph, 0, len(comps))
	for _, comp := range comps {
		sub, err := g.Subgraph(comp)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// zeroDegreeIDs collects taxa with zero predecessors (roots) or zero
// successors (leaves); ids come out sorted because TaxonIDs is sorted.
func zeroDegreeIDs(g *core.Graph, incoming bool) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []string
	for _, id := range g.TaxonIDs() {
		deg, err := degree(g, id, incoming)
		if err != nil {
			return nil, err
		}
		if deg == 0 {
			out = append(out, id)
		}
	}
	return out, nil
}

func zeroDegreeTaxa(g *core.Graph, incoming bool) ([]Taxon, error) {
	ids, err := zeroDegreeIDs(g, incoming)
	if err != nil {
		return nil, err
	}
	out := make([]Taxon, 0, len(ids))
	for _, id := range ids {
		attrs, err := g.Attrs(id)
		if err != nil {
			return nil, err
		}
		out = append(out, Taxon{ID: id, Attrs: attrs})
	}
	return out, nil
}

func degree(g *core.Graph, id string, incoming bool) (int, error) {
	if incoming {
		return g.InDegree(id)
	}
	return g.OutDegree(id)
}
