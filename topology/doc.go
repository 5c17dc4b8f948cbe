// Package topology answers structural and temporal questions about a
// phylogeny held in a core.Graph: rootedness, leafness, connectivity,
// asexuality, and which taxa are extant at a reference time.
//
// What
//
//   - Attribute validation: AllHaveAttribute(s), ValidateOriginTime,
//     ValidateDestructionTime — used before any query dereferences a
//     conventional attribute.
//   - Rootedness: RootIDs, Roots, NumRoots, HasSingleRoot.
//   - Forest structure: NumIndependentPhylogenies, IndependentPhylogenies
//     (weakly-connected components as independent graph copies, largest
//     first).
//   - Leaves: LeafTaxaIDs, LeafTaxa.
//   - Asexuality: IsAsexual (in-degree ≤ 1 everywhere), IsAsexualLineage
//     (a single unbranched root-to-tip chain covering the whole graph).
//   - Extant filter: ExtantTaxaIDs, ExtantTaxa select taxa alive at a
//     reference time from their origin/destruction attributes.
//
// Why
//
//	Evolutionary simulations emit ancestry graphs that may be forests, may
//	record sexual merges, and may carry partial metadata. These queries are
//	the admission checks and subset extractors everything downstream (see
//	the lineage package) builds on.
//
// Results
//
//	Queries returning whole taxa produce Taxon value objects holding the id
//	and an independent copy of the attribute map; the source graph is never
//	annotated or aliased. All id slices are sorted ascending.
//
// Extant semantics
//
//	With no WithTime option the reference time is "the present": a taxon is
//	extant iff its destruction attribute equals the not-destroyed sentinel
//	(core.None() by default). With WithTime(t): extant iff
//	(destruction == sentinel OR destruction > t) AND origin < t.
//	The destruction attribute is validated on every call; the origin
//	attribute only when a time bound is set.
//
// Complexity
//
//	Every query is a bounded traversal: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrMissingAttribute if a required attribute is absent from a taxon.
//   - ErrOptionViolation  if an invalid extant option is supplied.
package topology
