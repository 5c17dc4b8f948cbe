// Package topology defines errors, defaults, the Taxon value object, and
// extant-filter options.
package topology

import (
	"errors"
	"fmt"

	"github.com/evolab/phylo/core"
)

// Conventional attribute names for temporal queries.
const (
	// DefaultOriginAttr is the attribute holding a taxon's time of appearance.
	DefaultOriginAttr = "origin_time"

	// DefaultDestructionAttr is the attribute holding a taxon's time of
	// destruction, or the not-destroyed sentinel.
	DefaultDestructionAttr = "destruction_time"
)

// Sentinel errors for topology queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("topology: graph is nil")

	// ErrMissingAttribute is returned when a required attribute is absent
	// from at least one taxon.
	ErrMissingAttribute = errors.New("topology: attribute missing from at least one taxon")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("topology: invalid option supplied")
)

// Taxon pairs a taxon id with an independent copy of its attribute map.
// Queries build these fresh; mutating one never touches the source graph.
type Taxon struct {
	ID    string
	Attrs core.Attrs
}

// Option configures the extant-taxa filter via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the query is invoked.
type Option func(*ExtantOptions)

// ExtantOptions holds parameters for the extant-taxa filter.
type ExtantOptions struct {
	// Time is the reference time. Meaningful only when Bounded is true;
	// otherwise the filter selects taxa alive at the present.
	Time core.Value

	// Bounded reports whether a reference time was supplied.
	Bounded bool

	// NotDestroyed is the sentinel marking a taxon as still alive.
	NotDestroyed core.Value

	// DestructionAttr names the destruction-time attribute.
	DestructionAttr string

	// OriginAttr names the origin-time attribute.
	OriginAttr string

	// internal error recorded during option parsing
	err error
}

// DefaultExtantOptions returns the filter defaults: the present as reference
// time, core.None() as the not-destroyed sentinel, and the conventional
// attribute names.
func DefaultExtantOptions() ExtantOptions {
	return ExtantOptions{
		NotDestroyed:    core.None(),
		DestructionAttr: DefaultDestructionAttr,
		OriginAttr:      DefaultOriginAttr,
	}
}

// WithTime bounds the filter at reference time t: selected taxa must
// originate strictly before t and be destroyed strictly after it (or not at
// all). Without this option the filter selects every not-yet-destroyed
// taxon, irrespective of origin.
func WithTime(t core.Value) Option {
	return func(o *ExtantOptions) {
		o.Time = t
		o.Bounded = true
	}
}

// WithNotDestroyed overrides the sentinel that marks a taxon as still alive.
func WithNotDestroyed(v core.Value) Option {
	return func(o *ExtantOptions) { o.NotDestroyed = v }
}

// WithDestructionAttr overrides the destruction-time attribute name.
// An empty name is invalid.
func WithDestructionAttr(name string) Option {
	return func(o *ExtantOptions) {
		if name == "" {
			o.err = fmt.Errorf("%w: destruction attribute name is empty", ErrOptionViolation)
			return
		}
		o.DestructionAttr = name
	}
}

// WithOriginAttr overrides the origin-time attribute name.
// An empty name is invalid.
func WithOriginAttr(name string) Option {
	return func(o *ExtantOptions) {
		if name == "" {
			o.err = fmt.Errorf("%w: origin attribute name is empty", ErrOptionViolation)
			return
		}
		o.OriginAttr = name
	}
}
