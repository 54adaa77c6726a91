// Package gridgraph reads a textual floor plan into a grid of open cells
// and treats it as a graph under 4-connectivity. It supports:
//
//   - Lenient row/column parsing of the plan string
//   - Orthogonal neighbor lookups (up, down, left, right)
//   - Conversion to a *core.Graph
//   - Identification of connected components of open cells
package gridgraph

import (
	"github.com/katalvlaran/lvtile/core"
)

// Metadata keys written by ToCoreGraph.
const (
	MetaRow = "row"
	MetaCol = "col"
)

// NewGrid scans plan rune by rune:
//
//   - RowTerminator advances the row and resets the column;
//   - Obstacle advances the column without creating a cell;
//   - any other rune creates an open cell at (row, column) and advances the column.
//
// Rows are not required to be of equal length. A trailing terminator does
// not open an extra row. Returns ErrInvalidOptions when the two marker
// runes coincide.
// Algorithmic complexity: O(len(plan)) time and memory.
func NewGrid(plan string, opts GridOptions) (*GridGraph, error) {
	if opts.Obstacle == opts.RowTerminator {
		return nil, ErrInvalidOptions
	}
	gg := &GridGraph{index: make(map[Coord]int)}
	row, col := 0, 0
	for _, r := range plan {
		switch r {
		case opts.RowTerminator:
			gg.widths = append(gg.widths, col)
			row++
			col = 0
		case opts.Obstacle:
			col++
		default:
			c := Coord{Row: row, Col: col}
			gg.index[c] = len(gg.cells)
			gg.cells = append(gg.cells, c)
			col++
		}
	}
	if col > 0 {
		gg.widths = append(gg.widths, col)
	}

	return gg, nil
}

// Parse reads plan with DefaultGridOptions. It never fails.
func Parse(plan string) *GridGraph {
	gg, _ := NewGrid(plan, DefaultGridOptions())

	return gg
}

// Len returns the number of open cells.
func (gg *GridGraph) Len() int { return len(gg.cells) }

// Rows returns the number of scanned rows.
func (gg *GridGraph) Rows() int { return len(gg.widths) }

// Width returns the number of columns scanned in row, or 0 outside the plan.
func (gg *GridGraph) Width(row int) int {
	if row < 0 || row >= len(gg.widths) {
		return 0
	}
	return gg.widths[row]
}

// Cells returns the open cells in row-major order.
func (gg *GridGraph) Cells() []Coord {
	out := make([]Coord, len(gg.cells))
	copy(out, gg.cells)
	return out
}

// IsOpen reports whether c is an open cell.
// Complexity: O(1).
func (gg *GridGraph) IsOpen(c Coord) bool {
	_, ok := gg.index[c]
	return ok
}

// NeighborOffsets returns the four orthogonal offsets {dRow, dCol}
// in the order up, down, left, right.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return neighborOffsets
}

// Neighbors returns the open cells orthogonally adjacent to c,
// in the order up, down, left, right.
func (gg *GridGraph) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if n := c.Add(d); gg.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// ToCoreGraph converts the open cells into a *core.Graph.
// Handle i is Cells()[i], with metadata {row, col}. Every pair of adjacent
// open cells is joined by two directed edges of capacity 1.
// Complexity: O(N) time and memory for N open cells.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(len(gg.cells)))
	// Add all vertices
	for _, c := range gg.cells {
		v, _ := g.Vertex(g.AddVertex())
		v.Metadata[MetaRow] = c.Row
		v.Metadata[MetaCol] = c.Col
	}
	// Add edges for each neighbor pair
	for i, c := range gg.cells {
		for _, n := range gg.Neighbors(c) {
			_ = g.AddEdge(core.VertexID(i), core.VertexID(gg.index[n]), 1)
		}
	}

	return g
}
