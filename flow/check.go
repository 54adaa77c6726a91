package flow

import (
	"fmt"

	"github.com/katalvlaran/lvtile/core"
)

// Check reports, as an ordinary error, whether (g, source, sink, set) meets
// the preconditions of AugmentingPath and MaxFlow:
//
//  1. g is non-nil;
//  2. source and sink are real vertices of g and members of set;
//  3. every member satisfies the adjacency/capacity invariant;
//  4. every neighbor of every member is itself a member (set is closed).
//
// The returned error wraps one of ErrNilGraph, ErrSourceNotFound,
// ErrSinkNotFound or ErrInvalidVertex.
//
// Complexity: O(V + E) over the members of set.
func Check(g *core.Graph, source, sink core.VertexID, set *core.VertexSet) error {
	// 1) Graph presence
	if g == nil {
		return ErrNilGraph
	}
	// 2) Terminals
	if !g.HasVertex(source) || !set.Has(source) {
		return fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) || !set.Has(sink) {
		return fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	// 3-4) Per-member invariant and closure
	if err := g.Validate(set); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVertex, err)
	}

	return nil
}

// mustCheck panics with a *ContractError when Check fails.
func mustCheck(op string, g *core.Graph, source, sink core.VertexID, set *core.VertexSet) {
	if err := Check(g, source, sink, set); err != nil {
		panic(&ContractError{Op: op, Err: err})
	}
}
