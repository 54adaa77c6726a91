// Package lvtile decides whether floor plans can be covered exactly by
// 1×2 dominoes, by reducing the question to bipartite matching and
// answering it with maximum flow.
//
// Packages, leaf first:
//
//	core/      — vertex arena with integer handles, capacities, VertexSet, validation
//	bfs/       — breadth-first search with neighbor filters and hooks
//	flow/      — Edmonds–Karp max-flow and shortest augmenting paths
//	gridgraph/ — floor-plan parsing, 4-neighborhoods, connected components
//	tiling/    — checkerboard coloring, flow network, verdicts and rendering
//	cmd/lvtile — command-line checker
//
// Quick start:
//
//	tiling.CanTile("..\n..") // true
//	tiling.CanTile("# #")    // false
//
// Every package is synchronous and single-threaded; a *core.Graph must not
// be mutated concurrently, while a *tiling.Checker can be shared freely.
package lvtile
