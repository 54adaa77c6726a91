package flow

import (
	"fmt"

	"github.com/katalvlaran/lvtile/core"
)

// residual is the private working network of one EdmondsKarp call.
// Vertex i of graph mirrors members[i] of the analyzed set.
type residual struct {
	graph   *core.Graph
	members []core.VertexID
	index   map[core.VertexID]core.VertexID // original handle → residual handle
}

// buildResidual copies the subgraph described by set into a fresh graph:
// for every original edge u→v with capacity c it holds u→v with c, and a
// reverse edge v→u with capacity 0 unless the original already has v→u.
//
// The caller must have validated set against g; any failure here is a
// broken invariant and panics.
//
// Complexity: O(V + E)
func buildResidual(op string, g *core.Graph, set *core.VertexSet) *residual {
	members := set.IDs()
	r := &residual{
		graph:   core.NewGraph(core.WithLoops(), core.WithCapacityHint(len(members))),
		members: members,
		index:   make(map[core.VertexID]core.VertexID, len(members)),
	}
	// 1) One residual vertex per member, sharing metadata
	for _, id := range members {
		rid := r.graph.AddVertex()
		r.index[id] = rid
		src, _ := g.Vertex(id)
		dst, _ := r.graph.Vertex(rid)
		dst.Metadata = src.Metadata
	}

	// 2) Forward edges carry the original capacity; reverse edges start empty
	for _, u := range members {
		v0, _ := g.Vertex(u)
		ru := r.index[u]
		for _, v := range v0.Neighbors() {
			c, _ := v0.Weight(v)
			rv := r.index[v]
			if err := r.graph.AddEdge(ru, rv, c); err != nil {
				panic(&ContractError{Op: op, Err: fmt.Errorf("%w: %w", ErrInvalidVertex, err)})
			}
			if !r.graph.HasEdge(rv, ru) {
				_ = r.graph.AddEdge(rv, ru, 0)
			}
		}
	}

	return r
}

// augment pushes one unit along path (residual handles): every forward
// residual capacity drops by one and every reverse capacity rises by one.
func (r *residual) augment(op string, path []core.VertexID) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if err := r.graph.AdjustCapacity(u, v, -1); err != nil {
			panic(&ContractError{Op: op, Err: fmt.Errorf("%w: %w", ErrInvalidVertex, err)})
		}
		if err := r.graph.AdjustCapacity(v, u, +1); err != nil {
			panic(&ContractError{Op: op, Err: fmt.Errorf("%w: %w", ErrInvalidVertex, err)})
		}
	}
}

// original maps a residual path back to the caller's handles.
func (r *residual) original(path []core.VertexID) []core.VertexID {
	out := make([]core.VertexID, len(path))
	for i, rid := range path {
		out[i] = r.members[rid]
	}

	return out
}

// flows reads the net flow of every original edge out of the residual:
// f(u,v) = max(0, c(u,v) − residual(u,v)). Idle edges are omitted.
func (r *residual) flows(g *core.Graph) map[edgeKey]int64 {
	out := make(map[edgeKey]int64)
	for _, u := range r.members {
		v0, _ := g.Vertex(u)
		for _, v := range v0.Neighbors() {
			c, _ := v0.Weight(v)
			rc, _ := r.graph.Capacity(r.index[u], r.index[v])
			if f := c - rc; f > 0 {
				out[edgeKey{u, v}] = f
			}
		}
	}

	return out
}
