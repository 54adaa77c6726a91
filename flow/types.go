package flow

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtile/core"
)

// Contract sentinels. Every ContractError wraps exactly one of these.
var (
	// ErrNilGraph is reported when the graph pointer is nil.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is reported when the source is NoVertex, not in the
	// graph, or not a member of the vertex set.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is the sink counterpart of ErrSourceNotFound.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrInvalidVertex is reported when a member breaks the adjacency/capacity
	// invariant or points outside the vertex set. It wraps the core error.
	ErrInvalidVertex = errors.New("flow: invalid vertex")
)

// ContractError is the panic value raised when a caller breaks the
// preconditions of AugmentingPath, MaxFlow or EdmondsKarp.
// Recover it with errors.As on the recovered value.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("flow: %s: contract violation: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying sentinel chain.
func (e *ContractError) Unwrap() error { return e.Err }

// Option configures MaxFlow and EdmondsKarp.
type Option func(*Options)

// Options holds the tunables of a max-flow run.
//   - Logger:    receives one debug record per augmentation (default: discard).
//   - OnAugment: called with every augmenting path, in residual order
//     (default: no-op). The slice must not be retained.
type Options struct {
	Logger    *slog.Logger
	OnAugment func(path []core.VertexID)
}

// DefaultOptions returns silent options with a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.DiscardHandler),
		OnAugment: func([]core.VertexID) {},
	}
}

// WithLogger routes augmentation records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAugment registers fn to observe every augmenting path.
func WithOnAugment(fn func(path []core.VertexID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// edgeKey names an original edge u→v.
type edgeKey struct {
	from, to core.VertexID
}

// Result is the outcome of EdmondsKarp.
//   - Value:         total units pushed out of the source.
//   - Augmentations: number of augmenting paths (one unit each).
type Result struct {
	Value         int64
	Augmentations int

	flows map[edgeKey]int64
}

// Flow returns the net flow carried by the original edge u→v, or 0 when the
// edge is idle or absent.
func (r *Result) Flow(u, v core.VertexID) int64 {
	if r == nil {
		return 0
	}

	return r.flows[edgeKey{u, v}]
}
