// Package lineage: count metrics over a verified asexual lineage.

package lineage

import (
	"fmt"
	"strings"

	"github.com/evolab/phylo/core"
	"github.com/evolab/phylo/topology"
)

// Length returns the number of taxa on the lineage.
// Returns ErrNotAsexualLineage unless lin is a single unbranched chain.
func Length(lin *core.Graph) (int, error) {
	if err := requireLineage(lin); err != nil {
		return 0, err
	}
	return lin.TaxonCount(), nil
}

// NumStateChanges returns the number of discrete states along the lineage,
// where state-ness is the ordered projection of attrList. A chain whose
// projection never changes has one state.
// Complexity: O(length of chain · len(attrList)).
func NumStateChanges(lin *core.Graph, attrList []string) (int, error) {
	if err := requireLineage(lin); err != nil {
		return 0, err
	}
	if err := requireAttrs(lin, attrList); err != nil {
		return 0, err
	}
	count := 0
	var open []core.Value
	err := walkChain(lin, func(id string) error {
		proj, err := projection(lin, id, attrList)
		if err != nil {
			return err
		}
		if open == nil || !projectionsEqual(proj, open) {
			open = proj
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// NumUniqueStates returns the number of distinct projections seen along the
// lineage. Unlike NumStateChanges, revisiting an earlier state does not
// count twice.
// Complexity: O(length of chain · len(attrList)).
func NumUniqueStates(lin *core.Graph, attrList []string) (int, error) {
	if err := requireLineage(lin); err != nil {
		return 0, err
	}
	if err := requireAttrs(lin, attrList); err != nil {
		return 0, err
	}
	seen := make(map[string]struct{})
	err := walkChain(lin, func(id string) error {
		proj, err := projection(lin, id, attrList)
		if err != nil {
			return err
		}
		seen[projectionKey(proj)] = struct{}{}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(seen), nil
}

// MutationAccumulation sums each numeric mutation-count attribute down the
// chain, root to tip. With skipRoot the root's contribution is omitted,
// for runs where the ancestor's counts are seeded rather than observed.
// Returns ErrNonNumericAttribute if any taxon holds a non-numeric value for
// a mutation attribute.
// Complexity: O(length of chain · len(mutationAttrs)).
func MutationAccumulation(lin *core.Graph, mutationAttrs []string, skipRoot bool) (map[string]float64, error) {
	if err := requireLineage(lin); err != nil {
		return nil, err
	}
	if err := requireAttrs(lin, mutationAttrs); err != nil {
		return nil, err
	}
	acc := make(map[string]float64, len(mutationAttrs))
	for _, attr := range mutationAttrs {
		acc[attr] = 0
	}
	first := true
	err := walkChain(lin, func(id string) error {
		if first && skipRoot {
			first = false
			return nil
		}
		first = false
		for _, attr := range mutationAttrs {
			v, _, err := lin.Attr(id, attr)
			if err != nil {
				return err
			}
			f, ok := v.Float64()
			if !ok {
				return fmt.Errorf("%w: %q on taxon %q", ErrNonNumericAttribute, attr, id)
			}
			acc[attr] += f
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// requireLineage rejects graphs that are not a single unbranched chain.
func requireLineage(lin *core.Graph) error {
	if lin == nil {
		return ErrGraphNil
	}
	isLineage, err := topology.IsAsexualLineage(lin)
	if err != nil {
		return err
	}
	if !isLineage {
		return ErrNotAsexualLineage
	}
	return nil
}

// requireAttrs rejects lineages where any attr is not universal.
func requireAttrs(lin *core.Graph, attrs []string) error {
	universal, err := topology.AllHaveAttributes(lin, attrs)
	if err != nil {
		return err
	}
	if !universal {
		return fmt.Errorf("lineage: %w: attributes %q are not universal along the lineage",
			topology.ErrMissingAttribute, attrs)
	}
	return nil
}

// walkChain visits every taxon of a verified lineage in root→tip order.
func walkChain(lin *core.Graph, visit func(id string) error) error {
	roots, err := topology.RootIDs(lin)
	if err != nil {
		return err
	}
	cur := roots[0]
	for {
		if err := visit(cur); err != nil {
			return err
		}
		children, err := lin.Children(cur)
		if err != nil {
			return err
		}
		if len(children) == 0 {
			return nil
		}
		cur = children[0]
	}
}

// projectionKey renders a projection as an injective map key. The kind
// prefix keeps Num(5) and Str("5") distinct, and quoting escapes the
// separator byte out of text payloads so no two projections share a key.
func projectionKey(proj []core.Value) string {
	var b strings.Builder
	for i, v := range proj {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		fmt.Fprintf(&b, "%d:%q", v.Kind(), v.String())
	}
	return b.String()
}
