// Package fixpoint is a small declarative engine for defining and
// evaluating fixpoint equations: numeric quantities that may be defined
// in terms of their own previous value, and recursive functions selected
// by matching an integer argument against piecewise equation bodies.
//
// # What is a fixpoint equation?
//
// A cell is a named numeric quantity. Its defining equation may read the
// cell itself, producing a one-step recurrence:
//
//	x := (x + 2/x) / 2
//
// Iterating that body from the cell's current value until two successive
// iterates agree within a tolerance resolves the definition to a fixed
// point (here, Newton iteration for √2). A cell may instead carry a list
// of parametrized equations dispatched on an integer argument, the way a
// recurrence relation is written case by case:
//
//	f(0) = 1
//	f(n) = n * f(n-1)
//
// # How does it work?
//
// Expressions are immutable trees built with explicit constructors (Lit,
// Add, Div, Ref, Call, ...). Cells live in an arena owned by a System and
// are referenced by stable handles, never by aliasing pointers, so
// self-referential definitions are cyclic by identity without owning
// cycles. Each evaluation pass carries a cache that snapshots a cell's
// value on first read; the fixed-point loop writes successive iterates
// into that cache, which is exactly what keeps a self-referential body
// from recursing forever.
//
// Evaluation is fully synchronous and single-threaded. The only state
// that survives a pass is each cell's current value, deliberately kept as
// the starting guess for the next convergence.
//
// # Errors
//
// Misuse surfaces as typed sentinel errors (ErrNoMatchingEquation,
// ErrUnboundParameter, ...), and the iteration loop is bounded,
// returning ErrNonTerminatingIteration instead of spinning on a body
// that is not a contraction. Floating-point edge cases (division by
// zero, overflow) are not trapped; IEEE infinities and NaN propagate as
// ordinary values.
package fixpoint
