package tiling

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/lvtile/core"
	"github.com/katalvlaran/lvtile/flow"
	"github.com/katalvlaran/lvtile/gridgraph"
)

// Observer receives check outcomes and flow progress.
// Implementations must be safe for concurrent use when a Checker is shared.
type Observer interface {
	ObserveCheck(res *Result, elapsed time.Duration)
	ObserveAugment()
}

type nopObserver struct{}

func (nopObserver) ObserveCheck(*Result, time.Duration) {}
func (nopObserver) ObserveAugment()                     {}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger for check summaries (debug) and flow
// augmentations. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver attaches o to every check. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(c *Checker) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithComponentPrecheck rejects plans with a color-unbalanced connected
// region before running flow. Verdicts are unchanged; only the Reason and
// the amount of work differ.
func WithComponentPrecheck() Option {
	return func(c *Checker) { c.componentPrecheck = true }
}

// Checker decides domino tileability. It holds no per-call state.
type Checker struct {
	logger            *slog.Logger
	observer          Observer
	componentPrecheck bool
}

// NewChecker returns a Checker configured by opts.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		logger:   slog.New(slog.DiscardHandler),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultChecker = NewChecker()

// CanTile reports whether plan can be covered exactly by 1×2 dominoes.
// A plan without open cells is tileable.
func CanTile(plan string) bool { return defaultChecker.CanTile(plan) }

// Solve runs the full check on plan with default options.
func Solve(plan string) *Result { return defaultChecker.Solve(plan) }

// CanTile reports whether plan can be covered exactly by 1×2 dominoes.
func (c *Checker) CanTile(plan string) bool { return c.Solve(plan).Tileable }

// Solve parses plan and runs SolveGrid.
func (c *Checker) Solve(plan string) *Result {
	return c.SolveGrid(gridgraph.Parse(plan))
}

// SolveGrid decides tileability of grid:
//
//  1. build the bipartite network;
//  2. unequal color counts → not tileable, no flow;
//  3. optionally, any unbalanced component → not tileable, no flow;
//  4. maximum flow over black ∪ red ∪ {source, sink};
//  5. tileable iff the flow equals the number of black cells.
func (c *Checker) SolveGrid(grid *gridgraph.GridGraph) *Result {
	start := time.Now()

	// 1) Network
	net := Build(grid)
	res := &Result{Black: len(net.Black), Red: len(net.Red)}

	switch {
	// 2) Global balance
	case !net.Balanced():
		res.Reason = ReasonUnbalanced

	// 3) Per-region balance
	case c.componentPrecheck && !net.componentsBalanced():
		res.Reason = ReasonComponentUnbalanced

	// 4-5) Flow
	default:
		fr := flow.EdmondsKarp(net.Graph, net.Source, net.Sink, net.Set(),
			flow.WithLogger(c.logger),
			flow.WithOnAugment(func([]core.VertexID) { c.observer.ObserveAugment() }),
		)
		res.Flow = fr.Value
		res.Dominoes = net.dominoes(fr)
		res.Tileable = fr.Value == int64(len(net.Black))
		if res.Tileable {
			res.Reason = ReasonTiled
		} else {
			res.Reason = ReasonNoMatching
		}
	}

	elapsed := time.Since(start)
	c.observer.ObserveCheck(res, elapsed)
	c.logger.Debug("tiling check",
		"cells", grid.Len(),
		"black", res.Black,
		"red", res.Red,
		"flow", res.Flow,
		"tileable", res.Tileable,
		"reason", string(res.Reason),
		"elapsed", elapsed,
	)

	return res
}

// dominoes reads the matching off saturated black→red edges, in row-major
// order of the black cell.
func (n *Network) dominoes(fr *flow.Result) []Domino {
	out := make([]Domino, 0, len(n.Black))
	for _, b := range n.Black {
		nbrs, _ := n.Graph.Neighbors(b)
		for _, r := range nbrs {
			if fr.Flow(b, r) == 0 {
				continue
			}
			bc, _ := n.Coord(b)
			rc, _ := n.Coord(r)
			out = append(out, Domino{Black: bc, Red: rc})
			break
		}
	}
	return out
}
