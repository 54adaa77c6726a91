// File: methods_edges.go
// Role: Edge lifecycle, capacity queries and in-place capacity adjustment.
//
// Policy:
//   - At most one edge per ordered pair (from, to); AddEdge on an existing
//     pair overwrites its capacity.
//   - Capacities are never negative.
package core

import "fmt"

// AddEdge inserts the directed edge from→to with the given capacity, or
// overwrites the capacity if the edge already exists.
//
// Errors:
//   - ErrVertexNotFound:   from or to is not in g.
//   - ErrLoopNotAllowed:   from == to and WithLoops was not given.
//   - ErrNegativeCapacity: capacity < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, capacity int64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: edge %d→%d", ErrVertexNotFound, from, to)
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if capacity < 0 {
		return fmt.Errorf("%w: edge %d→%d: %d", ErrNegativeCapacity, from, to, capacity)
	}

	v := g.vertices[from]
	if _, exists := v.weights[to]; !exists {
		v.neighs = append(v.neighs, to)
		g.edgeCount++
	}
	v.weights[to] = capacity

	return nil
}

// HasEdge reports whether the directed edge from→to exists (any capacity, including 0).
func (g *Graph) HasEdge(from, to VertexID) bool {
	_, ok := g.Capacity(from, to)

	return ok
}

// Capacity returns the capacity of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Capacity(from, to VertexID) (int64, bool) {
	if !g.HasVertex(from) {
		return 0, false
	}

	return g.vertices[from].Weight(to)
}

// AdjustCapacity adds delta to the capacity of the existing edge from→to.
//
// Errors:
//   - ErrEdgeNotFound:     the edge does not exist.
//   - ErrNegativeCapacity: the result would be below zero; the edge is left unchanged.
func (g *Graph) AdjustCapacity(from, to VertexID, delta int64) error {
	c, ok := g.Capacity(from, to)
	if !ok {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	if c+delta < 0 {
		return fmt.Errorf("%w: %d→%d: %d%+d", ErrNegativeCapacity, from, to, c, delta)
	}
	g.vertices[from].weights[to] = c + delta

	return nil
}

// Neighbors returns the adjacency set of id in insertion order.
// Returns ErrVertexNotFound for unknown handles.
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return g.vertices[id].Neighbors(), nil
}

// EdgeCount returns the number of directed edges in g.
func (g *Graph) EdgeCount() int { return g.edgeCount }
