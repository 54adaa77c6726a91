package tiling

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/lvtile/core"
	"github.com/katalvlaran/lvtile/gridgraph"
)

// MetaColor is the vertex metadata key holding a cell's Color.
const MetaColor = "color"

// cellRef is the value stored in the coordinate index.
type cellRef struct {
	ID    core.VertexID
	Color Color
}

// Network is the bipartite flow network of a floor plan:
//
//	source → every black cell (capacity 1)
//	black  → each orthogonally adjacent red cell (capacity 1)
//	every red cell → sink (capacity 1)
//
// Cell vertices are created in row-major order, followed by Source and Sink.
type Network struct {
	Graph  *core.Graph
	Source core.VertexID
	Sink   core.VertexID
	Black  []core.VertexID
	Red    []core.VertexID

	grid   *gridgraph.GridGraph
	coords []gridgraph.Coord // cell handle → coordinate
	index  *redblacktree.Tree
}

// coordComparator orders gridgraph.Coord keys row-major.
func coordComparator(a, b interface{}) int {
	ca, cb := a.(gridgraph.Coord), b.(gridgraph.Coord)
	switch {
	case ca.Less(cb):
		return -1
	case cb.Less(ca):
		return 1
	default:
		return 0
	}
}

// startsEven reports the (row+column) parity of the first open cell.
// An empty grid counts as even.
func startsEven(grid *gridgraph.GridGraph) bool {
	cells := grid.Cells()
	if len(cells) == 0 {
		return true
	}
	return (cells[0].Row+cells[0].Col)%2 == 0
}

// colorOf two-colors c so that cells sharing the first open cell's parity
// are black.
func colorOf(c gridgraph.Coord, startsEven bool) Color {
	even := (c.Row+c.Col)%2 == 0
	if even == startsEven {
		return Black
	}
	return Red
}

// Build colors the open cells of grid and wires the bipartite network.
//
// Steps:
//  1. fix the parity of the first open cell once;
//  2. create one vertex per open cell, row-major, recording row/col/color;
//  3. create source and sink;
//  4. for every black cell look up the four orthogonal neighbors in the
//     coordinate index and add black→red edges for those present;
//  5. wire source→black and red→sink.
//
// Complexity: O(N log N) for N open cells.
func Build(grid *gridgraph.GridGraph) *Network {
	cells := grid.Cells()
	n := &Network{
		Graph:  core.NewGraph(core.WithCapacityHint(len(cells) + 2)),
		grid:   grid,
		coords: cells,
		index:  redblacktree.NewWith(coordComparator),
	}

	// 1) Parity of the first open cell, computed once
	even := startsEven(grid)

	// 2) Cell vertices in row-major order
	for _, c := range cells {
		id := n.Graph.AddVertex()
		color := colorOf(c, even)
		v, _ := n.Graph.Vertex(id)
		v.Metadata[gridgraph.MetaRow] = c.Row
		v.Metadata[gridgraph.MetaCol] = c.Col
		v.Metadata[MetaColor] = color
		n.index.Put(c, cellRef{ID: id, Color: color})
		if color == Black {
			n.Black = append(n.Black, id)
		} else {
			n.Red = append(n.Red, id)
		}
	}

	// 3) Terminals
	n.Source = n.Graph.AddVertex()
	n.Sink = n.Graph.AddVertex()

	// 4) Black → adjacent red, walking the index in row-major order
	it := n.index.Iterator()
	for it.Next() {
		ref := it.Value().(cellRef)
		if ref.Color != Black {
			continue
		}
		c := it.Key().(gridgraph.Coord)
		for _, d := range grid.NeighborOffsets() {
			nbr, ok := n.lookup(c.Add(d))
			if !ok || nbr.Color != Red {
				continue
			}
			_ = n.Graph.AddEdge(ref.ID, nbr.ID, 1)
		}
	}

	// 5) Source and sink wiring
	for _, b := range n.Black {
		_ = n.Graph.AddEdge(n.Source, b, 1)
	}
	for _, r := range n.Red {
		_ = n.Graph.AddEdge(r, n.Sink, 1)
	}

	return n
}

// lookup returns the index entry of the open cell at c.
// The boolean is false when c is blocked or outside the plan.
func (n *Network) lookup(c gridgraph.Coord) (cellRef, bool) {
	v, found := n.index.Get(c)
	if !found {
		return cellRef{}, false
	}
	return v.(cellRef), true
}

// VertexAt returns the handle of the open cell at c.
func (n *Network) VertexAt(c gridgraph.Coord) (core.VertexID, bool) {
	ref, ok := n.lookup(c)
	if !ok {
		return core.NoVertex, false
	}
	return ref.ID, true
}

// ColorAt returns the color of the open cell at c.
func (n *Network) ColorAt(c gridgraph.Coord) (Color, bool) {
	ref, ok := n.lookup(c)
	return ref.Color, ok
}

// Coord returns the cell coordinate of a cell vertex. Terminals and
// foreign handles report false.
func (n *Network) Coord(id core.VertexID) (gridgraph.Coord, bool) {
	if id < 0 || int(id) >= len(n.coords) {
		return gridgraph.Coord{}, false
	}
	return n.coords[id], true
}

// Grid returns the parsed floor plan the network was built from.
func (n *Network) Grid() *gridgraph.GridGraph { return n.grid }

// Balanced reports whether both color classes have the same size.
func (n *Network) Balanced() bool { return len(n.Black) == len(n.Red) }

// Set returns black ∪ red ∪ {source, sink}, the vertex set analyzed by flow.
func (n *Network) Set() *core.VertexSet {
	set := core.NewVertexSet(n.Black...)
	for _, r := range n.Red {
		set.Add(r)
	}
	set.Add(n.Source)
	set.Add(n.Sink)
	return set
}

// componentsBalanced reports whether every 4-connected region has as many
// black cells as red ones.
func (n *Network) componentsBalanced() bool {
	for _, comp := range n.grid.ConnectedComponents() {
		diff := 0
		for _, c := range comp {
			if color, _ := n.ColorAt(c); color == Black {
				diff++
			} else {
				diff--
			}
		}
		if diff != 0 {
			return false
		}
	}
	return true
}
