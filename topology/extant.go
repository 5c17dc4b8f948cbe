package topology

import "github.com/evolab/phylo/core"

// ExtantTaxaIDs returns the ids of all taxa alive at the reference time,
// sorted. With no WithTime option the reference is the present: every taxon
// whose destruction attribute equals the not-destroyed sentinel is selected,
// irrespective of origin. The destruction attribute is validated on every
// call; the origin attribute only when WithTime was supplied.
// Complexity: O(V).
func ExtantTaxaIDs(g *core.Graph, opts ...Option) ([]string, error) {
	o, err := buildExtantOptions(g, opts)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, id := range g.TaxonIDs() {
		ok, err := alive(g, id, o)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// ExtantTaxa is the Taxon-valued variant of ExtantTaxaIDs: each selected
// taxon is returned with an independent copy of its attribute map.
func ExtantTaxa(g *core.Graph, opts ...Option) ([]Taxon, error) {
	ids, err := ExtantTaxaIDs(g, opts...)
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

// buildExtantOptions applies opts, surfaces recorded option errors, and runs
// the attribute validations the filter depends on.
func buildExtantOptions(g *core.Graph, opts []Option) (ExtantOptions, error) {
	if g == nil {
		return ExtantOptions{}, ErrGraphNil
	}
	o := DefaultExtantOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return ExtantOptions{}, o.err
	}
	if err := ValidateDestructionTime(g, o.DestructionAttr); err != nil {
		return ExtantOptions{}, err
	}
	if o.Bounded {
		if err := ValidateOriginTime(g, o.OriginAttr); err != nil {
			return ExtantOptions{}, err
		}
	}
	return o, nil
}

// alive implements the liveness predicate: not destroyed by the reference
// time, and already originated when the reference is bounded.
func alive(g *core.Graph, id string, o ExtantOptions) (bool, error) {
	destruction, _, err := g.Attr(id, o.DestructionAttr)
	if err != nil {
		return false, err
	}
	if !o.Bounded {
		return destruction.Equal(o.NotDestroyed), nil
	}
	if !destruction.Equal(o.NotDestroyed) && destruction.Compare(o.Time) <= 0 {
		return false, nil // destroyed at or before the reference time
	}
	origin, _, err := g.Attr(id, o.OriginAttr)
	if err != nil {
		return false, err
	}

	return origin.Less(o.Time), nil
}
