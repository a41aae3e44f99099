package fixpoint

type paramKind uint8

const (
	paramConst paramKind = iota
	paramVariable
	paramComposite
)

type paramOp uint8

const (
	paramAdd paramOp = iota
	paramSub
	paramMul
)

func (op paramOp) tag() byte {
	switch op {
	case paramAdd:
		return tagParamAdd
	case paramSub:
		return tagParamSub
	case paramMul:
		return tagParamMul
	}
	panic("exhaustive match fallback, param op")
}

// Param is an integer-typed pattern slot: either a fixed constant to
// match a call argument against, the wildcard variable matching any
// argument, or integer arithmetic (Plus, Minus, Times) over nested slots.
//
// A Param doubles as an expression node, which is what makes recursive
// definitions expressible: the body of a wildcard equation reads its own
// argument through VarParam and recurses through a composite slot such as
// VarParam[float64]().Minus(ConstParam[float64](1)).
type Param[T Real] struct {
	kind  paramKind
	n     int
	op    paramOp
	parts []Param[T]
	fp    uint64
}

func (Param[T]) sealed(T) {}

func (p Param[T]) constant() bool {
	switch p.kind {
	case paramConst:
		return true
	case paramVariable:
		return false
	default:
		return p.parts[0].constant() && p.parts[1].constant()
	}
}

func (p Param[T]) fingerprint() uint64 { return p.fp }

// ConstParam builds a slot holding a fixed integer. As a pattern it
// matches only that argument; as an expression it evaluates to it.
func ConstParam[T Real](n int) Param[T] {
	return Param[T]{
		kind: paramConst,
		n:    n,
		fp:   hashNode(tagParamConst, uint64(int64(n))),
	}
}

// VarParam builds the wildcard slot. As a pattern it matches any
// argument; as an expression it evaluates to the active parameter of the
// pass.
func VarParam[T Real]() Param[T] {
	return Param[T]{
		kind: paramVariable,
		fp:   hashNode(tagParamVar),
	}
}

// Plus builds the slot p + q.
func (p Param[T]) Plus(q Param[T]) Param[T] { return newComposite(paramAdd, p, q) }

// Minus builds the slot p - q.
func (p Param[T]) Minus(q Param[T]) Param[T] { return newComposite(paramSub, p, q) }

// Times builds the slot p * q.
func (p Param[T]) Times(q Param[T]) Param[T] { return newComposite(paramMul, p, q) }

func newComposite[T Real](op paramOp, p, q Param[T]) Param[T] {
	return Param[T]{
		kind:  paramComposite,
		op:    op,
		parts: []Param[T]{p, q},
		fp:    hashNode(op.tag(), p.fp, q.fp),
	}
}

// matches reports whether the slot, used as a pattern, applies to the
// call argument v. Only a constant slot constrains the argument; both the
// wildcard and composite slots match structurally.
func (p Param[T]) matches(v float64) bool {
	if p.kind == paramConst {
		return float64(p.n) == v
	}
	return true
}
