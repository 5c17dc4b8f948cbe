// Package lineage defines errors, options, and the abstract-lineage result
// types.
package lineage

import (
	"errors"
	"fmt"

	"github.com/evolab/phylo/core"
	"github.com/evolab/phylo/topology"
)

// Attribute names reserved by lineage abstraction for state bookkeeping.
const (
	StateIDAttr   = "state_id"
	NodeStateAttr = "node_state"
	MembersAttr   = "members"
)

// Sentinel errors for lineage operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("lineage: graph is nil")

	// ErrTaxonNotFound is returned when the starting taxon id is absent.
	ErrTaxonNotFound = errors.New("lineage: taxon not found in phylogeny")

	// ErrNotAsexual is returned when an operation requiring in-degree ≤ 1
	// everywhere meets a branching ancestry.
	ErrNotAsexual = errors.New("lineage: phylogeny is not asexual")

	// ErrNotAsexualLineage is returned when the graph is not a single
	// unbranched root-to-tip chain.
	ErrNotAsexualLineage = errors.New("lineage: graph is not an unbranched asexual lineage")

	// ErrReservedAttribute is returned when the caller's attribute list
	// collides with a state bookkeeping name.
	ErrReservedAttribute = errors.New("lineage: attribute name is reserved for abstract states")

	// ErrNonNumericAttribute is returned when a mutation-count attribute
	// holds a non-numeric value.
	ErrNonNumericAttribute = errors.New("lineage: attribute value is not numeric")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lineage: invalid option supplied")
)

// Option configures lineage abstraction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the operation is invoked.
type Option func(*Options)

// Options holds the attribute names used for state time bookkeeping.
type Options struct {
	// OriginAttr names the origin-time attribute.
	OriginAttr string

	// DestructionAttr names the destruction-time attribute.
	DestructionAttr string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the conventional attribute names.
func DefaultOptions() Options {
	return Options{
		OriginAttr:      topology.DefaultOriginAttr,
		DestructionAttr: topology.DefaultDestructionAttr,
	}
}

// WithOriginAttr overrides the origin-time attribute name.
// An empty name is invalid.
func WithOriginAttr(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: origin attribute name is empty", ErrOptionViolation)
			return
		}
		o.OriginAttr = name
	}
}

// WithDestructionAttr overrides the destruction-time attribute name.
// An empty name is invalid.
func WithDestructionAttr(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: destruction attribute name is empty", ErrOptionViolation)
			return
		}
		o.DestructionAttr = name
	}
}

// State is one node of an abstract lineage: a run of consecutive taxa whose
// projections over the chosen attribute list are identical.
type State struct {
	// ID is the 0-based position of the state on the chain.
	ID int

	// NodeState is the ordered projection of the attribute list over the
	// state's first member; it is the equality key that closed the run.
	NodeState []core.Value

	// Attrs maps each chosen attribute to its value in this state.
	Attrs core.Attrs

	// OriginTime is the origin time of the state's first member.
	// Meaningful only when the lineage tracks origin times.
	OriginTime core.Value

	// DestructionTime is the destruction time of the state's last member.
	// Meaningful only when the lineage tracks destruction times.
	DestructionTime core.Value

	// Members maps each member taxon id to an independent copy of that
	// taxon's full original attribute map. Never empty.
	Members map[string]core.Attrs
}

// AbstractLineage is the compressed form of a lineage. States are in chain
// order: state k's sole successor is state k+1.
type AbstractLineage struct {
	// States holds the chain, ids contiguous from 0.
	States []State

	// TracksOrigin reports whether every taxon on the source lineage carried
	// the origin-time attribute.
	TracksOrigin bool

	// TracksDestruction reports whether every taxon on the source lineage
	// carried the destruction-time attribute.
	TracksDestruction bool
}

// Len returns the number of states.
func (a *AbstractLineage) Len() int { return len(a.States) }
