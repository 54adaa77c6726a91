// Package core provides the graph primitives shared by the flow engine and
// the tiling checker: a vertex arena addressed by stable integer handles.
//
// The Graph G = (V,E) is directed with non-negative int64 capacities:
//
//   - Vertices are arena records addressed by VertexID ("0", "1", …, dense).
//     Two vertices are distinct even when their Metadata is identical.
//   - Each Vertex owns an adjacency set (insertion ordered) and a capacity
//     map keyed by neighbor handle. Invariant: every neighbor has a
//     capacity entry (CheckVertex).
//   - At most one edge per ordered pair; AddEdge overwrites capacity.
//   - Self-loops only with WithLoops().
//
// A VertexSet names the subgraph under analysis. Validate(set) confirms the
// set is closed (no member points outside it) and that every member keeps
// the adjacency invariant; the flow package relies on this before running.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() VertexID                        // O(1)
//	HasVertex(id VertexID) bool                 // O(1)
//	Vertex(id VertexID) (*Vertex, error)        // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to VertexID, capacity int64) error   // O(1)
//	AdjustCapacity(from, to VertexID, delta int64) error
//	Capacity(from, to VertexID) (int64, bool)
//	Neighbors(id VertexID) ([]VertexID, error)
//
//	// Whole-graph
//	IDs() []VertexID, All() *VertexSet, Clone() *Graph, Validate(*VertexSet) error
//
// Graph is not safe for concurrent mutation. Independent graphs may be used
// from independent goroutines.
package core
