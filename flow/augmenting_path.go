package flow

import (
	"errors"

	"github.com/katalvlaran/lvtile/bfs"
	"github.com/katalvlaran/lvtile/core"
)

// errSinkReached stops the walk as soon as the sink is visited.
var errSinkReached = errors.New("flow: sink reached")

// AugmentingPath searches g for a fewest-edge path from source to sink that
// uses only edges with capacity > 0.
//
// It returns the path source…sink inclusive and true, or (nil, false) when
// the sink is unreachable. g is not modified.
//
// Panics with *ContractError when Check(g, source, sink, set) fails.
//
// Complexity: O(V + E)
func AugmentingPath(g *core.Graph, source, sink core.VertexID, set *core.VertexSet) ([]core.VertexID, bool) {
	mustCheck("AugmentingPath", g, source, sink, set)

	return shortestPath(g, source, sink)
}

// shortestPath is the unchecked BFS core shared with EdmondsKarp.
// Breadth-first discovery order makes the recorded parent chain a
// minimum-edge path.
func shortestPath(g *core.Graph, source, sink core.VertexID) ([]core.VertexID, bool) {
	// 1) Walk only edges with remaining capacity, stopping at the sink
	res, err := bfs.BFS(g, source,
		bfs.WithFilterNeighbor(func(u, v core.VertexID) bool {
			c, _ := g.Capacity(u, v)
			return c > 0
		}),
		bfs.WithOnVisit(func(id core.VertexID, _ int) error {
			if id == sink {
				return errSinkReached
			}
			return nil
		}),
	)
	if err != nil && !errors.Is(err, errSinkReached) {
		return nil, false
	}

	// 2) Rebuild source…sink from parent links
	path, err := res.PathTo(sink)
	if err != nil {
		return nil, false
	}

	return path, true
}
