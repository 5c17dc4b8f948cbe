// Package lineage extracts and compresses ancestral lineages from asexual
// phylogenies held in a core.Graph.
//
// What
//
//   - ExtractAsexual walks backward from a taxon, following the unique
//     predecessor at each step until a root is reached, and returns the
//     induced root→…→taxon chain as an independent graph copy.
//   - AbstractAsexual compresses such a chain into a minimal sequence of
//     states: consecutive taxa whose values over a caller-chosen attribute
//     list are identical collapse into one state. The result is an
//     AbstractLineage whose States slice is the chain in order — state k's
//     sole successor is state k+1, ids are contiguous from 0, and every
//     original taxon appears in exactly one state's Members map.
//   - Metrics over a lineage: Length, NumStateChanges, NumUniqueStates, and
//     MutationAccumulation (sums of numeric per-step mutation counts).
//
// State bookkeeping
//
//	A state's NodeState is the ordered projection of the attribute list over
//	its first member and serves as the equality key. When origin and
//	destruction times are tracked (present on every taxon of the lineage,
//	checked independently for each), a state records the origin time of its
//	first member and the destruction time of its last member so far — chain
//	order is time-monotonic by construction, so the last member's value
//	dominates. The names "state_id", "node_state", and "members" are
//	reserved for this bookkeeping and rejected in the attribute list.
//
// Complexity
//
//	Extraction is O(depth of chain) plus the induced copy; abstraction and
//	every metric are O(length of chain).
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrTaxonNotFound       if the starting taxon id does not exist.
//   - ErrNotAsexual          if any taxon has more than one ancestor.
//   - ErrNotAsexualLineage   if the graph is not one unbranched chain.
//   - ErrReservedAttribute   if the attribute list collides with state
//     bookkeeping names.
//   - ErrNonNumericAttribute if a mutation attribute is not numeric.
//   - ErrOptionViolation     if an invalid option is supplied.
//   - topology.ErrMissingAttribute (wrapped) if a required attribute is
//     absent from a taxon on the lineage.
package lineage
