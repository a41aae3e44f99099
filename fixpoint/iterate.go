package fixpoint

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// iterate drives a self-referential definition to a fixed point. The body
// of the definition reads the cell through the pass cache, so each round
// sees the previous iterate rather than re-entering the definition; that
// is the whole cycle-breaking mechanism. Each new approximation is stored
// on both the cache and the cell, and the loop ends once two successive
// iterates agree within the tolerance.
//
// This is a Picard iteration: it converges when the body is a contraction
// near the fixed point. A body that is not iterates forever, so the loop
// is bounded and overrunning the bound fails the pass with
// ErrNonTerminatingIteration.
func (s *System[T]) iterate(n nextLayer[T], c *evalCache[T]) (T, error) {
	var zero T

	cl, err := s.cellAt(n.cell)
	if err != nil {
		return zero, err
	}

	old, err := c.get(n.cell)
	switch {
	case errors.Is(err, ErrCacheMiss):
		old = cl.current
		c.remember(n.cell, old)
	case err != nil:
		return zero, err
	}

	logger := s.logger.With(
		zap.String("pass_id", c.passID),
		zap.String("cell", cl.name),
	)

	for i := 0; i < s.maxIterations; i++ {
		next, err := s.eval(n.body, c)
		if err != nil {
			return zero, err
		}

		cl.current = next
		c.remember(n.cell, next)

		logger.Debug("fixpoint iteration",
			zap.Int("iteration", i+1),
			zap.Float64("old", float64(old)),
			zap.Float64("new", float64(next)),
		)

		if absOf(next-old) <= s.tolerance {
			logger.Info("converged",
				zap.Int("iterations", i+1),
				zap.Float64("value", float64(next)),
			)
			return next, nil
		}
		old = next
	}

	return zero, fmt.Errorf("%w: cell %q, %d iterations, tolerance %v",
		ErrNonTerminatingIteration, cl.name, s.maxIterations, s.tolerance)
}
