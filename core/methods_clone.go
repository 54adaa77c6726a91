// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone keeps handles identical: vertex i of the clone mirrors vertex i of the source.

package core

// Clone returns a deep copy of the Graph: configuration, vertices, adjacency
// order and capacities. Metadata maps are shared shallowly.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make([]*Vertex, len(g.vertices)),
		edgeCount:  g.edgeCount,
	}
	for i, v := range g.vertices {
		nv := &Vertex{
			ID:       v.ID,
			Metadata: v.Metadata,
			neighs:   make([]VertexID, len(v.neighs)),
			weights:  make(map[VertexID]int64, len(v.weights)),
		}
		copy(nv.neighs, v.neighs)
		for u, w := range v.weights {
			nv.weights[u] = w
		}
		clone.vertices[i] = nv
	}

	return clone
}
