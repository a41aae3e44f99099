package fixpoint

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/on-the-ground/fixpoint_go/fixpoint/internal/memo"
)

const (
	defaultTolerance     = 0.01
	defaultMaxIterations = 10_000
)

// System owns an arena of cells and evaluates expressions against them.
// All state touched during one evaluation pass is mutated only by that
// pass's own call stack; a System is not safe for concurrent use and
// callers introducing concurrency must serialize access themselves.
type System[T Real] struct {
	cells         []*cell[T]
	logger        *zap.Logger
	tolerance     T
	maxIterations int
	memoTable     *memo.Table[T]
}

// Option configures a System at construction time.
type Option[T Real] func(*System[T])

// WithLogger injects a structured logger. The default is a nop logger;
// the iteration loop logs each iterate at debug level and a convergence
// summary at info level.
func WithLogger[T Real](logger *zap.Logger) Option[T] {
	return func(s *System[T]) { s.logger = logger }
}

// WithTolerance overrides the convergence threshold δ below which two
// successive iterates are considered equal. The default is 0.01.
func WithTolerance[T Real](tol T) Option[T] {
	return func(s *System[T]) { s.tolerance = tol }
}

// WithMaxIterations overrides the bound on the fixed-point loop, after
// which an evaluation fails with ErrNonTerminatingIteration. The default
// is 10 000.
func WithMaxIterations[T Real](n int) Option[T] {
	return func(s *System[T]) { s.maxIterations = n }
}

// WithMemoTable enables memoization of constant subtrees across passes.
// A subtree free of cell reads, parameter slots, calls, and iteration
// always evaluates to the same value, so its result is kept in a bounded
// table keyed by structural fingerprint. maxSize bounds one generation of
// the table; eviction drops a whole generation at a time.
func WithMemoTable[T Real](maxSize int) Option[T] {
	return func(s *System[T]) { s.memoTable = memo.NewTable[T](maxSize) }
}

// NewSystem creates an empty system.
func NewSystem[T Real](opts ...Option[T]) *System[T] {
	s := &System[T]{
		logger:        zap.NewNop(),
		tolerance:     defaultTolerance,
		maxIterations: defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Declare creates a cell seeded with the given value and returns its
// handle. The name feeds logs and error text only; it carries no lookup
// semantics and need not be unique.
func (s *System[T]) Declare(name string, initial T) Handle {
	s.cells = append(s.cells, &cell[T]{
		name:    name,
		current: initial,
	})
	return Handle(len(s.cells) - 1)
}

// Value reads the cell's current value: its seed before any iteration,
// the last converged approximation after.
func (s *System[T]) Value(h Handle) (T, error) {
	c, err := s.cellAt(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.current, nil
}

// DefineEquation appends a (pattern, body) equation to the cell's list.
// Dispatch scans the list in insertion order, so constant patterns meant
// to take precedence over a wildcard fallback must be registered first.
func (s *System[T]) DefineEquation(h Handle, pattern Param[T], body Expr[T]) error {
	c, err := s.cellAt(h)
	if err != nil {
		return err
	}
	c.equations = append(c.equations, equation[T]{pattern: pattern, body: body})
	return nil
}

// SelfEquation attaches the self-referential definition of the cell: its
// value is body, iterated to convergence, where body reads the cell
// itself through Ref. The returned node is also what Iterate evaluates;
// attaching a second self equation replaces the first.
func (s *System[T]) SelfEquation(h Handle, body Expr[T]) (Expr[T], error) {
	c, err := s.cellAt(h)
	if err != nil {
		return nil, err
	}
	node := nextLayer[T]{
		cell: h,
		body: body,
		fp:   hashNode(tagNextLayer, uint64(h), body.fingerprint()),
	}
	c.self = node
	return node, nil
}

// Evaluate resolves an expression tree to a value with a fresh cache,
// discarded when the pass ends. Evaluation is all-or-nothing: any typed
// error aborts the pass with no partial result, while floating-point
// infinities and NaN propagate as ordinary values.
func (s *System[T]) Evaluate(e Expr[T]) (T, error) {
	return s.eval(e, newEvalCache[T]())
}

// Iterate resolves the cell's attached self equation to a fixed point and
// returns the converged value. The value persists on the cell, so a later
// Iterate re-converges from it instead of the initial seed.
func (s *System[T]) Iterate(h Handle) (T, error) {
	var zero T
	c, err := s.cellAt(h)
	if err != nil {
		return zero, err
	}
	if c.self == nil {
		return zero, fmt.Errorf("%w: cell %q", ErrNoSelfEquation, c.name)
	}
	return s.Evaluate(c.self)
}

func (s *System[T]) cellAt(h Handle) (*cell[T], error) {
	if h < 0 || int(h) >= len(s.cells) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCell, h)
	}
	return s.cells[h], nil
}
