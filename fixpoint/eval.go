package fixpoint

import "fmt"

// eval resolves one node against the pass cache. Constant subtrees are
// served from the cross-pass memo table when one is configured; their
// results cannot depend on cache or cell state, so the shortcut is
// invisible to callers.
func (s *System[T]) eval(e Expr[T], c *evalCache[T]) (T, error) {
	memoized := s.memoTable != nil && e.constant()
	if memoized {
		if v, ok := s.memoTable.Load(e.fingerprint()); ok {
			return v, nil
		}
	}

	v, err := s.evalNode(e, c)
	if err != nil {
		var zero T
		return zero, err
	}

	if memoized {
		s.memoTable.Store(e.fingerprint(), v)
	}
	return v, nil
}

func (s *System[T]) evalNode(e Expr[T], c *evalCache[T]) (T, error) {
	var zero T
	switch n := e.(type) {

	case literal[T]:
		return n.v, nil

	case Param[T]:
		return evalParam(n, c)

	case cellRef[T]:
		if c.contains(n.cell) {
			return c.get(n.cell)
		}
		cl, err := s.cellAt(n.cell)
		if err != nil {
			return zero, err
		}
		c.remember(n.cell, cl.current)
		return cl.current, nil

	case binaryExpr[T]:
		// Left before right: nested calls and iterations have effects on
		// cache and cell state, so operand order is observable.
		l, err := s.eval(n.l, c)
		if err != nil {
			return zero, err
		}
		r, err := s.eval(n.r, c)
		if err != nil {
			return zero, err
		}
		switch n.op {
		case opAdd:
			return l + r, nil
		case opSub:
			return l - r, nil
		case opMul:
			return l * r, nil
		case opDiv:
			return l / r, nil
		}
		panic(fmt.Sprintf("exhaustive match fallback, binary op: %d", n.op))

	case unaryExpr[T]:
		x, err := s.eval(n.x, c)
		if err != nil {
			return zero, err
		}
		if n.op == opCeil {
			return ceilOf(x), nil
		}
		return floorOf(x), nil

	case call[T]:
		arg, err := s.eval(n.arg, c)
		if err != nil {
			return zero, err
		}
		cl, err := s.cellAt(n.cell)
		if err != nil {
			return zero, err
		}
		eq, err := cl.matchEquation(arg)
		if err != nil {
			return zero, err
		}
		// Each invocation evaluates its body in a fresh cache with the
		// argument bound as the active parameter, so recursive calls
		// never observe each other's cell snapshots.
		nested := newEvalCache[T]()
		if err := nested.bindParameter(arg); err != nil {
			return zero, err
		}
		return s.eval(eq.body, nested)

	case nextLayer[T]:
		return s.iterate(n, c)

	default:
		panic(fmt.Sprintf("exhaustive match fallback, node type: %T", e))
	}
}

// evalParam resolves a parameter slot in the integer domain, cast into T:
// a constant is its value, the wildcard is the active parameter of the
// pass, and a composite applies its operator to the children evaluated
// left to right.
func evalParam[T Real](p Param[T], c *evalCache[T]) (T, error) {
	var zero T
	switch p.kind {

	case paramConst:
		return T(p.n), nil

	case paramVariable:
		return c.parameter()

	case paramComposite:
		l, err := evalParam(p.parts[0], c)
		if err != nil {
			return zero, err
		}
		r, err := evalParam(p.parts[1], c)
		if err != nil {
			return zero, err
		}
		switch p.op {
		case paramAdd:
			return l + r, nil
		case paramSub:
			return l - r, nil
		case paramMul:
			return l * r, nil
		}
		panic(fmt.Sprintf("exhaustive match fallback, param op: %d", p.op))

	default:
		panic(fmt.Sprintf("exhaustive match fallback, param kind: %d", p.kind))
	}
}
