package fixpoint

import (
	"fmt"

	"github.com/google/uuid"
)

// evalCache is the per-pass memo: cell values snapshotted on first read,
// plus the single write-once active parameter of the pass. A fresh cache
// is allocated for every top-level Evaluate and for every parametrized
// call, and discarded afterwards; the pass id only serves log
// correlation.
//
// The invariant the cache enforces is that a cell entry, once created
// within a pass, is never re-derived from the cell's live value during
// that pass. That is what keeps a self-referential body reading its own
// previous iterate instead of recursing forever.
type evalCache[T Real] struct {
	memo   map[Handle]T
	param  T
	bound  bool
	passID string
}

func newEvalCache[T Real]() *evalCache[T] {
	return &evalCache[T]{
		memo:   make(map[Handle]T),
		passID: uuid.New().String(),
	}
}

func (c *evalCache[T]) contains(h Handle) bool {
	_, ok := c.memo[h]
	return ok
}

// get returns the memoized value of h. Callers must remember before get;
// a miss is a programming error, not an empty result.
func (c *evalCache[T]) get(h Handle) (T, error) {
	v, ok := c.memo[h]
	if !ok {
		return v, fmt.Errorf("%w: handle %d", ErrCacheMiss, h)
	}
	return v, nil
}

// remember inserts or updates the memoized value of h.
func (c *evalCache[T]) remember(h Handle, v T) {
	c.memo[h] = v
}

// bindParameter sets the active parameter of the pass. The binding is
// write-once; each parametrized call gets its own cache rather than
// rebinding an existing one.
func (c *evalCache[T]) bindParameter(v T) error {
	if c.bound {
		return fmt.Errorf("%w: %v, rebinding %v", ErrParameterRebound, c.param, v)
	}
	c.param = v
	c.bound = true
	return nil
}

func (c *evalCache[T]) parameter() (T, error) {
	if !c.bound {
		var zero T
		return zero, ErrUnboundParameter
	}
	return c.param, nil
}
