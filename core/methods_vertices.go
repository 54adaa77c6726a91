// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Handles are issued in creation order; IDs() returns them ascending.
package core

// AddVertex allocates a new vertex in the arena and returns its handle.
// Every call creates a distinct vertex; there is no deduplication by content.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, &Vertex{
		ID:       id,
		Metadata: make(map[string]interface{}),
		weights:  make(map[VertexID]int64),
	})

	return id
}

// HasVertex reports whether id names a vertex of g (NoVertex ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Vertex returns the arena record for id, or ErrVertexNotFound.
// The returned pointer stays owned by g.
func (g *Graph) Vertex(id VertexID) (*Vertex, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return g.vertices[id], nil
}

// VertexCount returns the number of vertices in the arena.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// IDs returns every handle of g in ascending order.
// Complexity: O(V).
func (g *Graph) IDs() []VertexID {
	ids := make([]VertexID, len(g.vertices))
	for i := range g.vertices {
		ids[i] = VertexID(i)
	}

	return ids
}

// All returns a VertexSet holding every vertex of g.
func (g *Graph) All() *VertexSet {
	return NewVertexSet(g.IDs()...)
}

// Neighbors returns a copy of v's adjacency set in insertion order.
func (v *Vertex) Neighbors() []VertexID {
	out := make([]VertexID, len(v.neighs))
	copy(out, v.neighs)

	return out
}

// Weight returns the capacity recorded for the edge v→u and whether it exists.
func (v *Vertex) Weight(u VertexID) (int64, bool) {
	w, ok := v.weights[u]

	return w, ok
}

// Degree returns the size of v's adjacency set.
func (v *Vertex) Degree() int { return len(v.neighs) }
