// Package core provides the attributed directed graph that the rest of the
// phylo module queries: taxa keyed by opaque string ids, genealogy edges
// (ancestor → descendant), and a per-taxon attribute store of tagged values.
//
// What
//
//   - Taxa: added by id, each carrying an open attribute map (string key →
//     Value). Ids are caller-assigned and unique within one Graph.
//   - Genealogy edges: directed, no payload, no self-loops; adding the same
//     edge twice is a no-op.
//   - Values: a tagged variant (none / number / text) with well-defined
//     equality and a total order, so attribute comparison never depends on
//     dynamic typing. The none kind is the "not yet destroyed" sentinel and
//     renders as the literal "none".
//   - Capability surface for the query packages: enumerate taxa, walk
//     Parents/Children, read and write attributes, take an induced Subgraph
//     copy over a set of ids, decompose into weakly-connected components,
//     and test weak connectivity of the whole graph.
//
// Determinism
//
//	TaxonIDs, Parents, and Children return ids sorted ascending, and
//	WeaklyConnectedComponents discovers components in sorted-id order, so
//	every traversal built on core is reproducible.
//
// Concurrency
//
//	Mutators and readers are guarded by a pair of RWMutex locks (taxa and
//	adjacency), mirroring the locking model of the rest of the module's
//	history. Queries in the topology and lineage packages are pure reads;
//	callers must not mutate a graph while a query over it is in progress.
//
// Copies
//
//	Attrs(id), Subgraph, and Clone return independent copies: Value is a
//	value type, so copying an attribute map is a deep copy. Nothing returned
//	by core aliases the graph's internal storage.
//
// Complexity (V = taxa, E = edges)
//
//   - Add/Has/degree operations: O(1) amortized (plus sorting on accessors).
//   - TaxonIDs: O(V log V). Parents/Children: O(d log d).
//   - Subgraph/Clone: O(V + E). Components/connectivity: O(V + E).
//
// Errors
//
//   - ErrEmptyTaxonID  - taxon id is the empty string.
//   - ErrTaxonNotFound - referenced taxon does not exist.
//   - ErrSelfLoop      - genealogy edge from a taxon to itself.
package core
