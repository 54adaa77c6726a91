package tiling

import (
	"github.com/katalvlaran/lvtile/gridgraph"
)

// Color is a checkerboard class.
type Color int

const (
	// Black cells are wired from the source.
	Black Color = iota
	// Red cells are wired to the sink.
	Red
)

// String returns "black" or "red".
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// Reason explains a verdict.
type Reason string

const (
	// ReasonTiled: the flow saturated every black cell.
	ReasonTiled Reason = "perfect matching"
	// ReasonUnbalanced: black and red counts differ, no flow was run.
	ReasonUnbalanced Reason = "unbalanced colors"
	// ReasonComponentUnbalanced: some connected region has unequal colors,
	// no flow was run. Reported only with WithComponentPrecheck.
	ReasonComponentUnbalanced Reason = "unbalanced component"
	// ReasonNoMatching: colors balance but the maximum flow falls short.
	ReasonNoMatching Reason = "no perfect matching"
)

// Domino covers one black and one adjacent red cell.
type Domino struct {
	Black, Red gridgraph.Coord
}

// Result is the full outcome of a feasibility check.
//   - Tileable: the verdict returned by CanTile.
//   - Black, Red: color class sizes.
//   - Flow: maximum flow value (0 when a precheck decided).
//   - Dominoes: a maximum matching read from the flow; it covers every
//     open cell exactly once when Tileable.
type Result struct {
	Tileable bool
	Reason   Reason
	Black    int
	Red      int
	Flow     int64
	Dominoes []Domino
}
