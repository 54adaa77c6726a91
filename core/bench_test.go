package core_test

import (
	"testing"

	"github.com/katalvlaran/lvtile/core"
)

// buildChain creates v0→v1→…→v(n-1) with unit capacities.
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(n))
	prev := g.AddVertex()
	for i := 1; i < n; i++ {
		cur := g.AddVertex()
		_ = g.AddEdge(prev, cur, 1)
		prev = cur
	}

	return g
}

// BenchmarkAddEdge measures edge insertion into a fresh arena.
func BenchmarkAddEdge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = buildChain(1000)
	}
}

// BenchmarkClone measures a deep copy of a 10k-vertex chain.
func BenchmarkClone(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

// BenchmarkValidate measures the closed-set check over the whole graph.
func BenchmarkValidate(b *testing.B) {
	g := buildChain(10000)
	set := g.All()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Validate(set)
	}
}
