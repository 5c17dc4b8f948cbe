package lineage

import (
	"fmt"

	"github.com/evolab/phylo/core"
	"github.com/evolab/phylo/topology"
)

// AbstractAsexual compresses an asexual lineage into its minimal sequence of
// states. State-ness is the ordered projection of attrList: walking the chain
// root→tip, each taxon whose projection equals the open state's NodeState
// merges into it (updating the state's destruction time when tracked);
// otherwise the state closes and a new one opens with the next sequential id.
//
// Origin and destruction time tracking are decided independently, by whether
// the corresponding attribute is present on every taxon of the lineage.
//
// Returns ErrNotAsexualLineage unless lin is a single unbranched chain, a
// wrapped topology.ErrMissingAttribute if any taxon lacks an attrList entry,
// and ErrReservedAttribute if attrList names state bookkeeping attributes.
// Complexity: O(length of chain · len(attrList)).
func AbstractAsexual(lin *core.Graph, attrList []string, opts ...Option) (*AbstractLineage, error) {
	if lin == nil {
		return nil, ErrGraphNil
	}
	isLineage, err := topology.IsAsexualLineage(lin)
	if err != nil {
		return nil, err
	}
	if !isLineage {
		return nil, ErrNotAsexualLineage
	}
	// Reserved names are rejected before universality: they label abstract
	// states, so the source taxa are not expected to carry them.
	for _, attr := range attrList {
		if attr == StateIDAttr || attr == NodeStateAttr || attr == MembersAttr {
			return nil, fmt.Errorf("%w: %q", ErrReservedAttribute, attr)
		}
	}
	universal, err := topology.AllHaveAttributes(lin, attrList)
	if err != nil {
		return nil, err
	}
	if !universal {
		return nil, fmt.Errorf("lineage: %w: attributes %q are not universal along the lineage",
			topology.ErrMissingAttribute, attrList)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	trackOrigin, err := topology.AllHaveAttribute(lin, o.OriginAttr)
	if err != nil {
		return nil, err
	}
	trackDestruction, err := topology.AllHaveAttribute(lin, o.DestructionAttr)
	if err != nil {
		return nil, err
	}

	roots, err := topology.RootIDs(lin)
	if err != nil {
		return nil, err
	}

	out := &AbstractLineage{
		TracksOrigin:      trackOrigin,
		TracksDestruction: trackDestruction,
	}

	// Open state 0 from the root, then consume the chain tipward.
	cur := roots[0]
	open, err := openState(lin, cur, 0, attrList, o, trackOrigin, trackDestruction)
	if err != nil {
		return nil, err
	}
	for {
		children, err := lin.Children(cur)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			break // chain tip consumed
		}
		cur = children[0]

		proj, err := projection(lin, cur, attrList)
		if err != nil {
			return nil, err
		}
		if projectionsEqual(proj, open.NodeState) {
			// Same state: merge the taxon; the last member's destruction
			// time dominates.
			attrs, err := lin.Attrs(cur)
			if err != nil {
				return nil, err
			}
			open.Members[cur] = attrs
			if trackDestruction {
				open.DestructionTime = attrs[o.DestructionAttr]
			}
			continue
		}
		// Projection changed: close the open state, open the next one.
		out.States = append(out.States, open)
		open, err = openState(lin, cur, len(out.States), attrList, o, trackOrigin, trackDestruction)
		if err != nil {
			return nil, err
		}
	}
	out.States = append(out.States, open)

	return out, nil
}

// openState builds a fresh State from one taxon: projection, per-attribute
// values, time bookkeeping, and a singleton Members map.
func openState(lin *core.Graph, taxonID string, stateID int, attrList []string,
	o Options, trackOrigin, trackDestruction bool) (State, error) {

	attrs, err := lin.Attrs(taxonID)
	if err != nil {
		return State{}, err
	}
	st := State{
		ID:        stateID,
		NodeState: make([]core.Value, 0, len(attrList)),
		Attrs:     make(core.Attrs, len(attrList)),
		Members:   map[string]core.Attrs{taxonID: attrs},
	}
	for _, attr := range attrList {
		st.NodeState = append(st.NodeState, attrs[attr])
		st.Attrs[attr] = attrs[attr]
	}
	if trackOrigin {
		st.OriginTime = attrs[o.OriginAttr]
	}
	if trackDestruction {
		st.DestructionTime = attrs[o.DestructionAttr]
	}
	return st, nil
}

// projection computes the ordered attrList projection for one taxon.
func projection(lin *core.Graph, taxonID string, attrList []string) ([]core.Value, error) {
	attrs, err := lin.Attrs(taxonID)
	if err != nil {
		return nil, err
	}
	out := make([]core.Value, 0, len(attrList))
	for _, attr := range attrList {
		out = append(out, attrs[attr])
	}
	return out, nil
}

func projectionsEqual(a, b []core.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
