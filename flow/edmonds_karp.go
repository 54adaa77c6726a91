package flow

import (
	"github.com/katalvlaran/lvtile/core"
)

// EdmondsKarp computes the maximum flow from source to sink over the
// subgraph described by set, using shortest augmenting paths.
//
// Every augmentation pushes exactly one unit, which is correct for any
// non-negative integer capacities and optimal for unit networks such as
// bipartite matchings.
//
// The caller's graph is never mutated: all work happens on a private
// residual copy that is discarded on return. Result.Flow exposes the net
// flow on original edges.
//
// If source == sink the flow is 0.
//
// Panics with *ContractError when Check(g, source, sink, set) fails.
//
// Complexity: O(F · (V + E)) where F is the flow value; O(V · E²) bound.
// Memory:     O(V + E)
func EdmondsKarp(g *core.Graph, source, sink core.VertexID, set *core.VertexSet, opts ...Option) *Result {
	const op = "EdmondsKarp"

	// 1) Preconditions, once up front
	mustCheck(op, g, source, sink, set)
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Private residual network
	r := buildResidual(op, g, set)
	rs, rt := r.index[source], r.index[sink]
	res := &Result{}
	if rs == rt {
		res.flows = map[edgeKey]int64{}
		return res
	}

	// 3) Augment one unit along each shortest path until none remain
	for {
		path, ok := shortestPath(r.graph, rs, rt)
		if !ok {
			break
		}
		r.augment(op, path)
		res.Value++
		res.Augmentations++

		orig := r.original(path)
		o.Logger.Debug("augmenting path",
			"path", orig,
			"length", len(orig)-1,
			"value", res.Value,
		)
		o.OnAugment(orig)
	}

	// 4) Snapshot per-edge flow before the residual is dropped
	res.flows = r.flows(g)

	return res
}

// MaxFlow returns the value of the maximum flow from source to sink.
// It is EdmondsKarp without the per-edge breakdown.
//
// Panics with *ContractError when Check(g, source, sink, set) fails.
func MaxFlow(g *core.Graph, source, sink core.VertexID, set *core.VertexSet, opts ...Option) int64 {
	return EdmondsKarp(g, source, sink, set, opts...).Value
}
