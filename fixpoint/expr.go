package fixpoint

import "math"

// Expr is one node of an immutable arithmetic expression tree over the
// numeric domain T. Expressions are built with the package's constructor
// functions and never mutate a cell; evaluation happens separately via
// System.Evaluate.
//
// Expr is a sealed interface: only the variants defined in this package
// (literals, parameter slots, cell references, binary and unary
// operators, parametrized calls, self-referential definitions) implement
// it.
type Expr[T Real] interface {
	// sealed prevents outside implementations and ties every tree to
	// its numeric domain, so trees over different domains cannot mix.
	sealed(T)

	// constant reports whether the subtree is free of cell reads,
	// parameter slots, calls, and iteration, i.e. whether it always
	// evaluates to the same value.
	constant() bool

	// fingerprint is the structural hash of the subtree.
	fingerprint() uint64
}

type binOp uint8

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

func (op binOp) tag() byte {
	switch op {
	case opAdd:
		return tagAdd
	case opSub:
		return tagSub
	case opMul:
		return tagMul
	case opDiv:
		return tagDiv
	}
	panic("exhaustive match fallback, binary op")
}

type unOp uint8

const (
	opCeil unOp = iota
	opFloor
)

func (op unOp) tag() byte {
	if op == opCeil {
		return tagCeil
	}
	return tagFloor
}

type literal[T Real] struct {
	v  T
	fp uint64
}

func (literal[T]) sealed(T)              {}
func (literal[T]) constant() bool        { return true }
func (l literal[T]) fingerprint() uint64 { return l.fp }

type cellRef[T Real] struct {
	cell Handle
	fp   uint64
}

func (cellRef[T]) sealed(T)              {}
func (cellRef[T]) constant() bool        { return false }
func (r cellRef[T]) fingerprint() uint64 { return r.fp }

type binaryExpr[T Real] struct {
	op    binOp
	l, r  Expr[T]
	konst bool
	fp    uint64
}

func (binaryExpr[T]) sealed(T)              {}
func (b binaryExpr[T]) constant() bool      { return b.konst }
func (b binaryExpr[T]) fingerprint() uint64 { return b.fp }

type unaryExpr[T Real] struct {
	op    unOp
	x     Expr[T]
	konst bool
	fp    uint64
}

func (unaryExpr[T]) sealed(T)              {}
func (u unaryExpr[T]) constant() bool      { return u.konst }
func (u unaryExpr[T]) fingerprint() uint64 { return u.fp }

type call[T Real] struct {
	cell Handle
	arg  Expr[T]
	fp   uint64
}

func (call[T]) sealed(T)              {}
func (call[T]) constant() bool        { return false }
func (c call[T]) fingerprint() uint64 { return c.fp }

// nextLayer declares that a cell's value is defined by iterating body,
// which is expected to reference the cell itself, to convergence.
type nextLayer[T Real] struct {
	cell Handle
	body Expr[T]
	fp   uint64
}

func (nextLayer[T]) sealed(T)              {}
func (nextLayer[T]) constant() bool        { return false }
func (n nextLayer[T]) fingerprint() uint64 { return n.fp }

// Lit builds a constant node.
func Lit[T Real](v T) Expr[T] {
	return literal[T]{
		v:  v,
		fp: hashNode(tagLiteral, math.Float64bits(float64(v))),
	}
}

// Ref builds a non-owning reference to a cell. The first read of the cell
// within an evaluation pass snapshots its live value; later reads in the
// same pass return the snapshot.
func Ref[T Real](h Handle) Expr[T] {
	return cellRef[T]{
		cell: h,
		fp:   hashNode(tagCellRef, uint64(h)),
	}
}

// Add builds a + b. Operands evaluate left before right.
func Add[T Real](a, b Expr[T]) Expr[T] { return newBinary(opAdd, a, b) }

// Sub builds a - b. Operands evaluate left before right.
func Sub[T Real](a, b Expr[T]) Expr[T] { return newBinary(opSub, a, b) }

// Mul builds a * b. Operands evaluate left before right.
func Mul[T Real](a, b Expr[T]) Expr[T] { return newBinary(opMul, a, b) }

// Div builds a / b. There is no zero check: the numeric domain's native
// division semantics apply, so IEEE infinities and NaN propagate as
// values.
func Div[T Real](a, b Expr[T]) Expr[T] { return newBinary(opDiv, a, b) }

func newBinary[T Real](op binOp, a, b Expr[T]) Expr[T] {
	return binaryExpr[T]{
		op:    op,
		l:     a,
		r:     b,
		konst: a.constant() && b.constant(),
		fp:    hashNode(op.tag(), a.fingerprint(), b.fingerprint()),
	}
}

// Ceil builds the node rounding x toward +∞.
func Ceil[T Real](x Expr[T]) Expr[T] { return newUnary(opCeil, x) }

// Floor builds the node rounding x toward -∞.
func Floor[T Real](x Expr[T]) Expr[T] { return newUnary(opFloor, x) }

func newUnary[T Real](op unOp, x Expr[T]) Expr[T] {
	return unaryExpr[T]{
		op:    op,
		x:     x,
		konst: x.constant(),
		fp:    hashNode(op.tag(), x.fingerprint()),
	}
}

// Call builds a parametrized invocation of a cell: the argument is
// evaluated, the first equation of the cell whose pattern matches it is
// selected, and the equation body is evaluated with the argument bound as
// the active parameter in a fresh cache.
func Call[T Real](h Handle, arg Expr[T]) Expr[T] {
	return call[T]{
		cell: h,
		arg:  arg,
		fp:   hashNode(tagCall, uint64(h), arg.fingerprint()),
	}
}
