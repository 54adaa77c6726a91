// Package flow implements maximum flow on graphs represented by *core.Graph
// using the Edmonds–Karp method: repeatedly find a shortest (fewest-edge)
// augmenting path in a residual network and push flow along it.
//
// # Model
//
// A flow problem is described by a graph, a source, a sink, and a
// core.VertexSet naming the vertices under analysis. The set must be closed:
// every neighbor of every member is itself a member. Capacities are
// non-negative int64 values stored on the graph's edges.
//
// # Algorithms
//
//   - AugmentingPath
//
//   - Method: breadth-first search from the source through edges with
//     capacity > 0, recording each vertex's predecessor on first discovery.
//
//   - Time:   O(V + E).
//
//   - Read-only with respect to the graph.
//
//   - EdmondsKarp / MaxFlow
//
//   - Method: AugmentingPath on a private residual copy; each path carries
//     exactly one unit (forward −1, reverse +1) until the sink is cut off.
//
//   - Time:   O(F · (V + E)) for flow value F; O(V · E²) worst case.
//
//   - Memory: O(V + E) for the residual graph, released on return.
//
// # Contracts
//
// Preconditions are checked once per exported call. Violations are
// programming errors and panic with *ContractError, whose Err wraps one of
// ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound or ErrInvalidVertex.
// Check reports the same conditions as an ordinary error.
// An unreachable sink is not an error: AugmentingPath returns (nil, false)
// and MaxFlow returns 0.
//
// # Usage
//
//	g := core.NewGraph()
//	s, a, t := g.AddVertex(), g.AddVertex(), g.AddVertex()
//	_ = g.AddEdge(s, a, 2)
//	_ = g.AddEdge(a, t, 1)
//
//	value := flow.MaxFlow(g, s, t, g.All())   // 1
//
//	res := flow.EdmondsKarp(g, s, t, g.All(),
//	    flow.WithLogger(logger),
//	    flow.WithOnAugment(func(path []core.VertexID) { augmentations.Inc() }),
//	)
//	_ = res.Flow(s, a) // 1
package flow
