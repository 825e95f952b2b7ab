// Package symarch computes automorphism groups of architecture graphs and
// uses them to canonicalise task mappings.
//
// What is symarch?
//
//	A permutation-group engine — base-and-strong-generating-set (BSGS)
//	construction, Schreier transversals, and random-element generation —
//	built to answer one domain question: given a labeled multiprocessor
//	topology, which task-to-processor mappings are equivalent under the
//	topology's symmetries?
//
// Under the hood, everything is organized into focused subpackages:
//
//	perm/        — dense permutations and permutation sets
//	orbit/       — BFS orbit computation and domain partitions
//	schreier/    — transversal data structures (explicit table, Schreier tree)
//	randomizer/  — product-replacement random group element generator
//	bsgs/        — base + strong generating set construction and queries
//	permgroup/   — the public group façade: order, membership, products
//	archgraph/   — composable architecture-graph systems (cluster, uniform
//	               super-graph, external graph-canonicaliser boundary)
//	taskmapping/ — task mappings, orbit representatives, the canonicaliser
//
// symarch never invokes a real graph-canonicalisation ("nauty-like") tool;
// the archgraph.GraphGenerator interface models that external boundary.
//
//	go get github.com/katalvlaran/symarch
package symarch
