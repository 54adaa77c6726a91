// Package core defines the central Graph, Vertex and VertexSet types used by
// the flow engine and the tiling checker.
//
// This file declares VertexID, Vertex, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound    - handle does not name a vertex of this graph.
//	ErrNegativeCapacity  - edge capacity (or adjusted capacity) below zero.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrBrokenAdjacency   - adjacency set and capacity map disagree.
//	ErrOpenVertexSet     - a member has a neighbor outside the vertex set.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a handle that is not in the arena.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeCapacity indicates an edge capacity would drop below zero.
	ErrNegativeCapacity = errors.New("core: negative capacity")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBrokenAdjacency indicates a neighbor without a capacity entry.
	ErrBrokenAdjacency = errors.New("core: neighbor has no capacity entry")

	// ErrOpenVertexSet indicates a vertex set member points outside the set.
	ErrOpenVertexSet = errors.New("core: neighbor outside vertex set")
)

// VertexID is a stable handle into the vertex arena of one Graph.
// Handles are dense (0..VertexCount()-1) and never reused; a handle taken
// from one Graph means nothing to another.
type VertexID int

// NoVertex is the zero-identity handle. It never names a vertex.
const NoVertex VertexID = -1

// Vertex is one arena record: an identity, an ordered adjacency set and a
// capacity for every adjacent vertex.
//
// Metadata stores arbitrary caller data (coordinates, colors). It is shared
// shallowly by Clone and is never read by graph algorithms.
type Vertex struct {
	// ID is this vertex's handle in its owning Graph.
	ID VertexID

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}

	// neighs keeps the adjacency set in insertion order so traversals are reproducible.
	neighs []VertexID

	// weights[u] is the capacity of the edge ID→u.
	weights map[VertexID]int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacityHint preallocates room for n vertices.
func WithCapacityHint(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]*Vertex, 0, n)
		}
	}
}

// Graph is a directed, integer-capacity graph that owns its vertices.
//
// Vertices live in an arena indexed by VertexID; they are released together
// when the Graph is dropped. Graph is not safe for concurrent mutation.
type Graph struct {
	// Configuration flags
	allowLoops bool

	// Storage
	vertices  []*Vertex // VertexID → Vertex
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
