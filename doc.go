// Package phylo analyzes phylogenies: directed graphs recording
// ancestor→descendant relationships among evolved entities ("taxa")
// produced by an evolutionary simulation or inference process.
//
// What is phylo?
//
//	A library for asking structural and temporal questions of an attributed
//	ancestry graph, and for compressing linear lineages into minimal
//	sequences of distinct states:
//		• Core primitives: taxa with open attribute maps of tagged values,
//		  genealogy edges, induced subgraph copies, component decomposition
//		• Topology queries: roots, leaves, connectivity, asexuality checks,
//		  extant-taxa filtering by time
//		• Lineages: ancestral-path extraction and state abstraction, plus
//		  count metrics (length, state changes, mutation accumulation)
//
// The library does not parse or persist phylogeny data and has no CLI or
// plotting surface: callers construct a core.Graph however they load their
// data, and every query here is a pure, deterministic read over it.
//
// Everything is organized under three subpackages:
//
//	core/     — attributed directed graph of taxa and tagged attribute values
//	topology/ — validation, rootedness, connectivity, asexuality, extant filter
//	lineage/  — ancestral lineage extraction, state abstraction, metrics
//
// Quick ASCII example:
//
//	    A → B → D
//	    ↓
//	    C → E
//
//	a rooted asexual phylogeny: A is the root, D and E are leaves, and the
//	lineage of E is the chain A → C → E.
package phylo
