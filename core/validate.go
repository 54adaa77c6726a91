package core

import "fmt"

// CheckVertex verifies the adjacency/capacity invariant of a single vertex:
// every member of its adjacency set has a capacity entry.
func (g *Graph) CheckVertex(id VertexID) error {
	v, err := g.Vertex(id)
	if err != nil {
		return fmt.Errorf("%w: %d", err, id)
	}
	for _, u := range v.neighs {
		if _, ok := v.weights[u]; !ok {
			return fmt.Errorf("%w: %d→%d", ErrBrokenAdjacency, id, u)
		}
	}

	return nil
}

// Validate checks that set describes a well-formed, closed subgraph of g:
// every member is a vertex of g, satisfies CheckVertex, and has all of its
// neighbors inside set.
//
// Complexity: O(V + E) over the members of set.
func (g *Graph) Validate(set *VertexSet) error {
	for _, id := range set.IDs() {
		if err := g.CheckVertex(id); err != nil {
			return err
		}
		for _, u := range g.vertices[id].neighs {
			if !set.Has(u) {
				return fmt.Errorf("%w: %d→%d", ErrOpenVertexSet, id, u)
			}
		}
	}

	return nil
}
