package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvtile/bfs"
	"github.com/katalvlaran/lvtile/core"
)

// addVertices appends n vertices and returns their handles.
func addVertices(g *core.Graph, n int) []core.VertexID {
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	return ids
}

// mustEdge adds u→v with capacity c or fails the test.
func mustEdge(t *testing.T, g *core.Graph, u, v core.VertexID, c int64) {
	t.Helper()
	if err := g.AddEdge(u, v, c); err != nil {
		t.Fatalf("AddEdge(%d,%d): %v", u, v, err)
	}
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 0); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, core.NoVertex); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("NoVertex start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g.AddVertex()
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	res, err := bfs.BFS(g, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.VertexID{a}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[a]; d != 0 {
		t.Errorf("Depth[a] = %d; want 0", d)
	}
	if _, ok := res.Parent[a]; ok {
		t.Errorf("start vertex must have no parent")
	}
}

// TestBFS_DirectedLayers checks depths, parents and visit order on a small DAG:
//
//	0 → 1 → 3
//	0 → 2 → 3 → 4
func TestBFS_DirectedLayers(t *testing.T) {
	g := core.NewGraph()
	v := addVertices(g, 5)
	mustEdge(t, g, v[0], v[1], 1)
	mustEdge(t, g, v[0], v[2], 1)
	mustEdge(t, g, v[1], v[3], 1)
	mustEdge(t, g, v[2], v[3], 1)
	mustEdge(t, g, v[3], v[4], 1)

	res, err := bfs.BFS(g, v[0])
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []core.VertexID{0, 1, 2, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[core.VertexID]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 3}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	// 3 is discovered first through 1, the earlier neighbor of 0
	if p := res.Parent[v[3]]; p != v[1] {
		t.Errorf("Parent[3] = %d; want 1", p)
	}

	// edges are directed: nothing reaches back to 0 from 4
	back, err := bfs.BFS(g, v[4])
	if err != nil {
		t.Fatalf("BFS from 4: %v", err)
	}
	if back.Reached(v[0]) {
		t.Errorf("0 must not be reachable from 4")
	}
}

// TestBFS_PathTo verifies reconstruction and the unreachable case.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	v := addVertices(g, 4)
	mustEdge(t, g, v[0], v[1], 1)
	mustEdge(t, g, v[1], v[2], 1)

	res, err := bfs.BFS(g, v[0])
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	path, err := res.PathTo(v[2])
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []core.VertexID{0, 1, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(2) = %v; want %v", path, want)
	}
	start, err := res.PathTo(v[0])
	if err != nil || !reflect.DeepEqual(start, []core.VertexID{0}) {
		t.Errorf("PathTo(start) = %v, %v; want [0], nil", start, err)
	}
	if _, err := res.PathTo(v[3]); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(unreached): want ErrNoPath, got %v", err)
	}
}

// TestBFS_FilterNeighbor prunes zero-capacity edges the way residual searches do.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	v := addVertices(g, 3)
	mustEdge(t, g, v[0], v[1], 0)
	mustEdge(t, g, v[0], v[2], 1)
	mustEdge(t, g, v[2], v[1], 1)

	positive := func(u, w core.VertexID) bool {
		c, _ := g.Capacity(u, w)
		return c > 0
	}
	res, err := bfs.BFS(g, v[0], bfs.WithFilterNeighbor(positive))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	path, _ := res.PathTo(v[1])
	if want := []core.VertexID{0, 2, 1}; !reflect.DeepEqual(path, want) {
		t.Errorf("filtered path = %v; want %v", path, want)
	}
}

// TestBFS_MaxDepth stops expansion beyond the configured depth.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	v := addVertices(g, 4)
	for i := 0; i < 3; i++ {
		mustEdge(t, g, v[i], v[i+1], 1)
	}
	res, err := bfs.BFS(g, v[0], bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []core.VertexID{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	// explicit zero means no limit
	res, _ = bfs.BFS(g, v[0], bfs.WithMaxDepth(0))
	if len(res.Order) != 4 {
		t.Errorf("MaxDepth(0) visited %d; want 4", len(res.Order))
	}
}

// TestBFS_Hooks verifies hook ordering and OnVisit abort.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph()
	v := addVertices(g, 3)
	mustEdge(t, g, v[0], v[1], 1)
	mustEdge(t, g, v[1], v[2], 1)

	var enq, deq []core.VertexID
	_, err := bfs.BFS(g, v[0],
		bfs.WithOnEnqueue(func(id core.VertexID, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id core.VertexID, _ int) { deq = append(deq, id) }),
	)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if !reflect.DeepEqual(enq, deq) || len(enq) != 3 {
		t.Errorf("enqueue %v / dequeue %v mismatch", enq, deq)
	}

	stop := errors.New("stop")
	res, err := bfs.BFS(g, v[0], bfs.WithOnVisit(func(id core.VertexID, _ int) error {
		if id == v[1] {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if res.Reached(v[2]) {
		t.Errorf("vertex 2 must not be discovered after abort")
	}
}

// TestBFS_ContextCancel aborts before the first dequeue.
func TestBFS_ContextCancel(t *testing.T) {
	g := core.NewGraph()
	v := addVertices(g, 2)
	mustEdge(t, g, v[0], v[1], 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, v[0], bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
