package lineage

import (
	"fmt"

	"github.com/evolab/phylo/core"
	"github.com/evolab/phylo/topology"
)

// ExtractAsexual extracts the ancestral lineage of the given taxon from an
// asexual phylogeny: the walk follows the unique predecessor at each step
// until a root is reached, and the visited taxa are returned as an induced,
// independent subgraph copy with edges running root → … → taxon.
//
// Returns ErrTaxonNotFound if taxonID is absent and ErrNotAsexual if any
// taxon in g has more than one ancestor.
// Complexity: O(V) for the asexuality check + O(depth of chain) for the walk.
func ExtractAsexual(g *core.Graph, taxonID string) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasTaxon(taxonID) {
		return nil, fmt.Errorf("%w: %q", ErrTaxonNotFound, taxonID)
	}
	asexual, err := topology.IsAsexual(g)
	if err != nil {
		return nil, err
	}
	if !asexual {
		return nil, ErrNotAsexual
	}

	ids := []string{taxonID}
	cur := taxonID
	for {
		parents, err := g.Parents(cur)
		if err != nil {
			return nil, err
		}
		if len(parents) == 0 {
			break // reached the root
		}
		cur = parents[0]
		ids = append(ids, cur)
	}

	return g.Subgraph(ids)
}
