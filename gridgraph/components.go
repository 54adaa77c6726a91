package gridgraph

import (
	"github.com/katalvlaran/lvtile/bfs"
	"github.com/katalvlaran/lvtile/core"
)

// ConnectedComponents finds all 4-connected regions of open cells.
// Components are listed in row-major order of their first cell; cells
// inside a component appear in breadth-first discovery order.
//
// Time:   O(N) for N open cells.
// Memory: O(N) for the core graph, visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Coord {
	g := gg.ToCoreGraph()
	seen := make([]bool, len(gg.cells))
	var comps [][]Coord

	for i := range gg.cells {
		if seen[i] {
			continue
		}
		// BFS to collect component
		res, err := bfs.BFS(g, core.VertexID(i))
		if err != nil {
			continue
		}
		comp := make([]Coord, 0, len(res.Order))
		for _, id := range res.Order {
			seen[id] = true
			comp = append(comp, gg.cells[id])
		}
		comps = append(comps, comp)
	}
	return comps
}
