package fixpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/fixpoint_go/fixpoint"
)

func TestDispatch_ConstantBeforeWildcard(t *testing.T) {
	s := fixpoint.NewSystem[float64]()
	f := s.Declare("f", 0)

	require.NoError(t, s.DefineEquation(f, fixpoint.ConstParam[float64](0), fixpoint.Lit(10.0)))
	require.NoError(t, s.DefineEquation(f, fixpoint.VarParam[float64](), fixpoint.Lit(20.0)))

	got, err := s.Evaluate(fixpoint.Call(f, fixpoint.Lit(0.0)))
	require.NoError(t, err)
	assert.Equal(t, 10.0, got, "constant pattern should win for its own argument")

	got, err = s.Evaluate(fixpoint.Call(f, fixpoint.Lit(5.0)))
	require.NoError(t, err)
	assert.Equal(t, 20.0, got, "wildcard should catch everything else")
}

func TestDispatch_InsertionOrderWins(t *testing.T) {
	s := fixpoint.NewSystem[float64]()
	f := s.Declare("f", 0)

	// A wildcard registered first shadows every later equation.
	require.NoError(t, s.DefineEquation(f, fixpoint.VarParam[float64](), fixpoint.Lit(1.0)))
	require.NoError(t, s.DefineEquation(f, fixpoint.ConstParam[float64](3), fixpoint.Lit(2.0)))

	got, err := s.Evaluate(fixpoint.Call(f, fixpoint.Lit(3.0)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestDispatch_NoMatchingEquation(t *testing.T) {
	s := fixpoint.NewSystem[float64]()
	f := s.Declare("partial", 0)

	require.NoError(t, s.DefineEquation(f, fixpoint.ConstParam[float64](0), fixpoint.Lit(1.0)))

	_, err := s.Evaluate(fixpoint.Call(f, fixpoint.Lit(1.0)))
	require.ErrorIs(t, err, fixpoint.ErrNoMatchingEquation)
	assert.Contains(t, err.Error(), "partial")
}

func TestDispatch_NoEquationsAtAll(t *testing.T) {
	s := fixpoint.NewSystem[float64]()
	f := s.Declare("empty", 0)

	_, err := s.Evaluate(fixpoint.Call(f, fixpoint.Lit(0.0)))
	assert.ErrorIs(t, err, fixpoint.ErrNoMatchingEquation)
}

func TestDispatch_RecursiveFactorial(t *testing.T) {
	s := fixpoint.NewSystem[float64]()
	f := s.Declare("factorial", 0)

	// f(0) = 1
	// f(n) = n * f(n-1)
	require.NoError(t, s.DefineEquation(f, fixpoint.ConstParam[float64](0), fixpoint.Lit(1.0)))
	require.NoError(t, s.DefineEquation(f, fixpoint.VarParam[float64](),
		fixpoint.Mul[float64](
			fixpoint.VarParam[float64](),
			fixpoint.Call[float64](f, fixpoint.VarParam[float64]().Minus(fixpoint.ConstParam[float64](1))),
		),
	))

	got, err := s.Evaluate(fixpoint.Call(f, fixpoint.Lit(5.0)))
	require.NoError(t, err)
	assert.Equal(t, 120.0, got)

	got, err = s.Evaluate(fixpoint.Call(f, fixpoint.Lit(0.0)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestDispatch_RecursiveFibonacci(t *testing.T) {
	s := fixpoint.NewSystem[float64]()
	fib := s.Declare("fib", 0)

	require.NoError(t, s.DefineEquation(fib, fixpoint.ConstParam[float64](0), fixpoint.Lit(0.0)))
	require.NoError(t, s.DefineEquation(fib, fixpoint.ConstParam[float64](1), fixpoint.Lit(1.0)))
	require.NoError(t, s.DefineEquation(fib, fixpoint.VarParam[float64](),
		fixpoint.Add[float64](
			fixpoint.Call[float64](fib, fixpoint.VarParam[float64]().Minus(fixpoint.ConstParam[float64](1))),
			fixpoint.Call[float64](fib, fixpoint.VarParam[float64]().Minus(fixpoint.ConstParam[float64](2))),
		),
	))

	got, err := s.Evaluate(fixpoint.Call(fib, fixpoint.Lit(10.0)))
	require.NoError(t, err)
	assert.Equal(t, 55.0, got)
}

func TestDispatch_CompositeParameterArithmetic(t *testing.T) {
	s := fixpoint.NewSystem[float64]()
	g := s.Declare("g", 0)

	// g(n) = (n + 2) * 3
	body := fixpoint.VarParam[float64]().Plus(fixpoint.ConstParam[float64](2)).Times(fixpoint.ConstParam[float64](3))
	require.NoError(t, s.DefineEquation(g, fixpoint.VarParam[float64](), body))

	got, err := s.Evaluate(fixpoint.Call(g, fixpoint.Lit(4.0)))
	require.NoError(t, err)
	assert.Equal(t, 18.0, got)
}

func TestDefineEquation_UnknownCell(t *testing.T) {
	s := fixpoint.NewSystem[float64]()

	err := s.DefineEquation(fixpoint.Handle(7), fixpoint.VarParam[float64](), fixpoint.Lit(1.0))
	assert.ErrorIs(t, err, fixpoint.ErrUnknownCell)
}
