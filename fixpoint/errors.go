package fixpoint

import "fmt"

// Every failure mode of an evaluation pass is one of the sentinels below,
// wrapped with the offending cell or node at the failure site. Any of them
// aborts the pass; there are no partial results. Floating-point exceptions
// are deliberately not part of this taxonomy: division by zero and
// overflow follow IEEE semantics and propagate as values.
var (
	// ErrCacheMiss is a cache read for a cell that was never remembered
	// during the pass. Callers of the cache must remember before get.
	ErrCacheMiss = fmt.Errorf("cache read before remember")

	// ErrUnboundParameter is a read of the active parameter before any
	// call bound one.
	ErrUnboundParameter = fmt.Errorf("parameter read before bind")

	// ErrParameterRebound is a second parameter bind on the same cache.
	// The binding is write-once per pass.
	ErrParameterRebound = fmt.Errorf("parameter already bound")

	// ErrNoMatchingEquation means pattern dispatch scanned every equation
	// of the cell without a structural match.
	ErrNoMatchingEquation = fmt.Errorf("no matching equation")

	// ErrNonTerminatingIteration means the fixed-point loop hit its
	// iteration bound before two successive iterates agreed within the
	// tolerance.
	ErrNonTerminatingIteration = fmt.Errorf("iteration bound exceeded before convergence")

	// ErrUnknownCell is a handle that does not name a cell of the system.
	ErrUnknownCell = fmt.Errorf("unknown cell handle")

	// ErrNoSelfEquation is an Iterate on a cell that never had a self
	// equation attached.
	ErrNoSelfEquation = fmt.Errorf("cell has no self equation")
)
