package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvtile/gridgraph"
)

//----------------------------------------------------------------------------//
// Parse and NewGrid Tests
//----------------------------------------------------------------------------//

// TestParse_Cells checks row/column bookkeeping, including obstacles and a
// trailing terminator.
func TestParse_Cells(t *testing.T) {
	gg := gridgraph.Parse("#.\n..#.\n")
	want := []gridgraph.Coord{{0, 1}, {1, 0}, {1, 1}, {1, 3}}
	if got := gg.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("Cells() = %v; want %v", got, want)
	}
	if gg.Rows() != 2 {
		t.Errorf("Rows() = %d; want 2", gg.Rows())
	}
	if gg.Width(0) != 2 || gg.Width(1) != 4 || gg.Width(5) != 0 {
		t.Errorf("widths = %d,%d,%d; want 2,4,0", gg.Width(0), gg.Width(1), gg.Width(5))
	}
}

// TestParse_AnyRuneIsOpen treats every non-marker rune, multi-byte included,
// as one open cell.
func TestParse_AnyRuneIsOpen(t *testing.T) {
	gg := gridgraph.Parse("aé x")
	if gg.Len() != 4 {
		t.Fatalf("Len() = %d; want 4", gg.Len())
	}
	if !gg.IsOpen(gridgraph.Coord{Row: 0, Col: 3}) {
		t.Errorf("(0,3) should be open")
	}
}

// TestParse_Empty covers plans without open cells.
func TestParse_Empty(t *testing.T) {
	for _, plan := range []string{"", "#", "##\n#", "\n\n"} {
		if gg := gridgraph.Parse(plan); gg.Len() != 0 {
			t.Errorf("Parse(%q).Len() = %d; want 0", plan, gg.Len())
		}
	}
}

// TestNewGrid_Options verifies custom markers and the collision error.
func TestNewGrid_Options(t *testing.T) {
	if _, err := gridgraph.NewGrid("x", gridgraph.GridOptions{Obstacle: '|', RowTerminator: '|'}); !errors.Is(err, gridgraph.ErrInvalidOptions) {
		t.Errorf("want ErrInvalidOptions, got %v", err)
	}
	gg, err := gridgraph.NewGrid("X.;.X", gridgraph.GridOptions{Obstacle: 'X', RowTerminator: ';'})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	want := []gridgraph.Coord{{0, 1}, {1, 0}}
	if got := gg.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("Cells() = %v; want %v", got, want)
	}
}

// TestNeighbors_Order checks up, down, left, right ordering and obstacle skipping.
func TestNeighbors_Order(t *testing.T) {
	gg := gridgraph.Parse("...\n...\n.#.")
	got := gg.Neighbors(gridgraph.Coord{Row: 1, Col: 1})
	want := []gridgraph.Coord{{0, 1}, {1, 0}, {1, 2}} // (2,1) is blocked
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors = %v; want %v", got, want)
	}
}

// TestToCoreGraph checks handles, metadata and symmetric unit edges.
func TestToCoreGraph(t *testing.T) {
	gg := gridgraph.Parse("..\n#.")
	g := gg.ToCoreGraph()
	if g.VertexCount() != 3 {
		t.Fatalf("VertexCount = %d; want 3", g.VertexCount())
	}
	// (0,0)-(0,1) and (0,1)-(1,1), both directions
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount = %d; want 4", g.EdgeCount())
	}
	if c, ok := g.Capacity(2, 1); !ok || c != 1 {
		t.Errorf("Capacity(2,1) = %d,%v; want 1,true", c, ok)
	}
	v, _ := g.Vertex(2)
	if v.Metadata[gridgraph.MetaRow] != 1 || v.Metadata[gridgraph.MetaCol] != 1 {
		t.Errorf("metadata = %v; want row 1 col 1", v.Metadata)
	}
}
