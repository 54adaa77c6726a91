// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvtile.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidOptions indicates the obstacle and row-terminator runes collide.
	ErrInvalidOptions = errors.New("gridgraph: obstacle and row terminator must differ")
)

// Default plan alphabet.
const (
	Obstacle      = '#'
	RowTerminator = '\n'
)

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Add returns c shifted by the offset {dRow, dCol}.
func (c Coord) Add(d [2]int) Coord {
	return Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
}

// GridOptions contains tunable parameters for plan parsing.
type GridOptions struct {
	// Obstacle marks a blocked cell; it still advances the column.
	Obstacle rune
	// RowTerminator ends the current row and resets the column.
	RowTerminator rune
}

// DefaultGridOptions returns a GridOptions with default settings:
// Obstacle='#', RowTerminator='\n'.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Obstacle:      Obstacle,
		RowTerminator: RowTerminator,
	}
}

// neighborOffsets lists the four orthogonal neighbors as {dRow, dCol}
// in the order up, down, left, right.
var neighborOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// GridGraph is a parsed floor plan: the set of open cells together with
// the shape of each scanned row. It is immutable once built.
//
// Rows need not share a length; the plan is read leniently.
type GridGraph struct {
	widths []int         // columns scanned per row, open or blocked
	cells  []Coord       // open cells, row-major
	index  map[Coord]int // open cell → position in cells
}
