// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Capacities are ignored by the walk itself. Callers that search a residual
// network pass a filter such as
//
//	bfs.WithFilterNeighbor(func(u, v core.VertexID) bool {
//	    c, _ := g.Capacity(u, v)
//	    return c > 0
//	})
//
// so that only edges with remaining capacity are traversed.
//
// Determinism
//
//	core.Graph keeps adjacency sets in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence and parent links are
//	fully reproducible for a given construction order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Errors
//
//   - ErrGraphNil            nil graph pointer
//   - ErrStartVertexNotFound start handle not in the graph
//   - ErrOptionViolation     invalid option (e.g. negative MaxDepth)
//   - ErrNeighbors           adjacency lookup failed mid-walk
//   - ErrNoPath              PathTo on an unreached vertex
//   - context errors and wrapped OnVisit errors abort the walk
package bfs
