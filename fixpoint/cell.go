package fixpoint

import "fmt"

// Handle identifies a cell within a System. Handles are stable for the
// lifetime of the system; expression trees store handles, never live
// pointers into cell memory, so a cell whose equation references itself
// is a cycle of identity, not of ownership.
type Handle int

// equation is one (pattern, body) pair registered on a cell. The
// insertion order of equations is the dispatch order.
type equation[T Real] struct {
	pattern Param[T]
	body    Expr[T]
}

// cell is a named mutable numeric quantity. Registration only appends to
// the equation list; the value itself is mutated solely by the
// fixed-point loop, and the converged value deliberately survives the
// pass as the next call's starting guess.
type cell[T Real] struct {
	name      string
	current   T
	equations []equation[T]
	self      Expr[T]
}

// matchEquation resolves which equation applies to the call argument v:
// the first equation, in insertion order, whose pattern matches. A
// correct piecewise definition therefore registers its wildcard fallback
// after every constant pattern meant to take precedence.
func (c *cell[T]) matchEquation(v T) (equation[T], error) {
	for _, eq := range c.equations {
		if eq.pattern.matches(float64(v)) {
			return eq, nil
		}
	}
	return equation[T]{}, fmt.Errorf("%w: cell %q, argument %v", ErrNoMatchingEquation, c.name, v)
}
