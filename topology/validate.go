package topology

import (
	"fmt"

	"github.com/evolab/phylo/core"
)

// AllHaveAttribute reports whether every taxon in g carries the given
// attribute. An empty graph vacuously satisfies any attribute.
// Complexity: O(V).
func AllHaveAttribute(g *core.Graph, attr string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	for _, id := range g.TaxonIDs() {
		if !g.HasAttr(id, attr) {
			return false, nil
		}
	}
	return true, nil
}

// AllHaveAttributes reports whether every taxon carries every attribute in
// attrs.
// Complexity: O(V · len(attrs)).
func AllHaveAttributes(g *core.Graph, attrs []string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	for _, attr := range attrs {
		ok, err := AllHaveAttribute(g, attr)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// ValidateAttributes fails with ErrMissingAttribute, naming the first
// offending attribute, unless every taxon carries every given attribute.
func ValidateAttributes(g *core.Graph, attrs ...string) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, attr := range attrs {
		ok, err := AllHaveAttribute(g, attr)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingAttribute, attr)
		}
	}
	return nil
}

// ValidateDestructionTime checks that every taxon carries the destruction
// attribute. An empty attr selects DefaultDestructionAttr.
func ValidateDestructionTime(g *core.Graph, attr string) error {
	if attr == "" {
		attr = DefaultDestructionAttr
	}
	return ValidateAttributes(g, attr)
}

// ValidateOriginTime checks that every taxon carries the origin attribute.
// An empty attr selects DefaultOriginAttr.
func ValidateOriginTime(g *core.Graph, attr string) error {
	if attr == "" {
		attr = DefaultOriginAttr
	}
	return ValidateAttributes(g, attr)
}
