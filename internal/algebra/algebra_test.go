package algebra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyCollectsLikeTerms(t *testing.T) {
	x := S("x")
	e := AddOf(x, x, MulOf(N(3), x), N(2), N(-2))
	assert.Equal(t, "5*x", e.String())

	e = AddOf(MulOf(N(2), x), MulOf(N(-2), x))
	assert.Equal(t, "0", e.String())
}

func TestSimplifyMergesPowers(t *testing.T) {
	x := S("x")
	e := MulOf(PowOf(x, N(2)), PowOf(x, N(3)))
	assert.Equal(t, "x^5", e.String())

	eta := S("eta")
	e = MulOf(PowOf(x, eta), PowOf(x, N(-1)), x)
	assert.Equal(t, "x^eta", e.String())
}

func TestPowMergeGuardsEvenInnerExponent(t *testing.T) {
	x := S("x")
	// (x^2)^(1/2) must not collapse to x.
	e := PowOf(PowOf(x, N(2)), Frac(1, 2))
	assert.Equal(t, "(x^2)^(1/2)", e.String())

	// (x^3)^(1/3) may collapse under the non-negative base convention.
	e = PowOf(PowOf(x, N(3)), Frac(1, 3))
	assert.Equal(t, "x", e.String())

	// Integer outer exponents always merge.
	e = PowOf(PowOf(x, Frac(1, 2)), N(2))
	assert.Equal(t, "x", e.String())
}

func TestNumExactRoots(t *testing.T) {
	assert.Equal(t, "2", PowOf(N(4), Frac(1, 2)).String())
	assert.Equal(t, "8", PowOf(N(4), Frac(3, 2)).String())
	assert.Equal(t, "2^(1/2)", PowOf(N(2), Frac(1, 2)).String())
	assert.Equal(t, "3", Cbrt(N(27)).String())
	assert.Equal(t, "-3", Cbrt(N(-27)).String())
}

func TestDiff(t *testing.T) {
	x := S("x")
	e := PowOf(x, N(3)).Diff("x")
	assert.Equal(t, "3*x^2", e.Simplify().String())

	e = Sin(MulOf(N(2), x)).Diff("x").Simplify()
	assert.Equal(t, "2*cos(2*x)", e.String())

	// d/dx x^eta = eta*x^(eta-1)
	eta := S("eta")
	e = PowOf(x, eta).Diff("x").Simplify()
	v := EvalF(e, map[string]float64{"x": 2, "eta": 3})
	assert.InDelta(t, 12.0, v, 1e-12)
}

func TestExpand(t *testing.T) {
	x, y := S("x"), S("y")
	e := Expand(Square(AddOf(x, y)))
	assert.Equal(t, "2*x*y + x^2 + y^2", e.String())
}

func TestNumerDenomCommonDenominator(t *testing.T) {
	x := S("x")
	// 1/x + 1 -> (1 + x)/x
	num, den := NumerDenom(AddOf(PowOf(x, N(-1)), N(1)))
	assert.Equal(t, "1 + x", num.String())
	assert.Equal(t, "x", den.String())
}

func TestCancelSymbolicExponentDifference(t *testing.T) {
	x, eta := S("x"), S("eta")
	num := PowOf(x, eta)
	den := PowOf(x, SubE(eta, N(1)))
	n, d := Cancel(num, den)
	assert.Equal(t, "x", MulOf(n, PowOf(d, N(-1))).Simplify().String())
}

func TestPolyCoeffsLaurent(t *testing.T) {
	x, a := S("x"), S("a")
	e := AddOf(MulOf(a, PowOf(x, N(2))), MulOf(N(3), x), PowOf(x, N(-1)))
	coeffs, err := PolyCoeffs(e, "x")
	require.NoError(t, err)
	assert.Equal(t, "a", coeffs[2].String())
	assert.Equal(t, "3", coeffs[1].String())
	assert.Equal(t, "1", coeffs[-1].String())

	_, err = PolyCoeffs(Sin(x), "x")
	assert.Error(t, err)
}

func TestSolveLinear(t *testing.T) {
	x, a := S("x"), S("a")
	roots, err := SolveFor(AddOf(MulOf(N(2), x), Neg(a)), "x")
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "1/2*a", roots[0].String())
}

func TestSolveQuadraticBranchOrder(t *testing.T) {
	x := S("x")
	// x^2 - 5x + 6 = 0 -> roots 2, 3 in [minus, plus] order.
	roots, err := SolveFor(AddOf(Square(x), MulOf(N(-5), x), N(6)), "x")
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, 2.0, EvalF(roots[0], nil), 1e-12)
	assert.InDelta(t, 3.0, EvalF(roots[1], nil), 1e-12)
}

func TestSolveBiquadratic(t *testing.T) {
	x := S("x")
	// x^4 - 5x^2 + 4 = 0 -> x in {-1, 1, -2, 2}.
	roots, err := SolveFor(AddOf(PowOf(x, N(4)), MulOf(N(-5), Square(x)), N(4)), "x")
	require.NoError(t, err)
	require.Len(t, roots, 4)
	var got []float64
	for _, r := range roots {
		got = append(got, EvalF(r, nil))
	}
	assert.InDeltaSlice(t, []float64{-1, 1, -2, 2}, got, 1e-12)
}

func TestSolveCubicBothFamilies(t *testing.T) {
	x := S("x")
	// Three real roots: (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6. The
	// trigonometric family covers this regime.
	roots, err := SolveFor(AddOf(PowOf(x, N(3)), MulOf(N(-6), Square(x)), MulOf(N(11), x), N(-6)), "x")
	require.NoError(t, err)
	require.Len(t, roots, 4)
	real3 := 0
	for _, r := range roots[:3] {
		v := EvalF(r, nil)
		if !math.IsNaN(v) {
			real3++
			rounded := math.Round(v)
			assert.InDelta(t, rounded, v, 1e-9)
			assert.True(t, rounded >= 1 && rounded <= 3)
		}
	}
	assert.Equal(t, 3, real3)

	// One real root: x^3 + x - 2 = 0 has x = 1. The Cardano form covers
	// this regime; the trigonometric angles go complex (NaN here).
	roots, err = SolveFor(AddOf(PowOf(x, N(3)), x, N(-2)), "x")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, EvalF(roots[3], nil), 1e-9)
}

func TestSolveDegreeTooHigh(t *testing.T) {
	x := S("x")
	_, err := SolveFor(AddOf(PowOf(x, N(5)), N(-1)), "x")
	var unsolvable *ErrUnsolvable
	require.ErrorAs(t, err, &unsolvable)
	assert.Equal(t, int64(5), unsolvable.Degree)
}

func TestIntegrateRules(t *testing.T) {
	x := S("x")
	e, err := Integrate(Square(x), "x")
	require.NoError(t, err)
	assert.Equal(t, "1/3*x^3", e.String())

	e, err = Integrate(PowOf(x, N(-1)), "x")
	require.NoError(t, err)
	assert.Equal(t, "ln(x)", e.String())

	_, err = Integrate(Sin(Square(x)), "x")
	assert.Error(t, err)
}

func TestIntegrateLogistic(t *testing.T) {
	x := S("x")
	// d/dx of the antiderivative must give back the integrand.
	integrand := PowOf(AddOf(N(1), Exp(MulOf(N(2), x))), N(-1))
	anti, err := Integrate(integrand, "x")
	require.NoError(t, err)
	for _, at := range []float64{-1.3, 0.0, 0.7, 2.5} {
		h := 1e-6
		lo := EvalF(anti, map[string]float64{"x": at - h})
		hi := EvalF(anti, map[string]float64{"x": at + h})
		want := EvalF(integrand, map[string]float64{"x": at})
		assert.InDelta(t, want, (hi-lo)/(2*h), 1e-6)
	}
}

func TestEvalFNegativeBaseIntegerPower(t *testing.T) {
	x := S("x")
	v := EvalF(PowOf(x, N(3)), map[string]float64{"x": -2})
	assert.Equal(t, -8.0, v)

	// Fractional power of a negative base is NaN, and propagates.
	v = EvalF(AddOf(N(1), PowOf(x, Frac(1, 2))), map[string]float64{"x": -2})
	assert.True(t, math.IsNaN(v))
}

func TestLambdify(t *testing.T) {
	x, y := S("x"), S("y")
	f := Lambdify(AddOf(Square(x), y), []string{"x", "y"})
	assert.InDelta(t, 11.0, f(3, 2), 1e-12)
}

func TestMatrixInverse(t *testing.T) {
	a := MatrixOf(
		[]Expr{N(2), N(1)},
		[]Expr{N(1), N(1)},
	)
	inv, err := a.Inverse()
	require.NoError(t, err)
	id := a.MulMat(inv).Simplify()
	assert.Equal(t, "1", id.At(0, 0).String())
	assert.Equal(t, "0", id.At(0, 1).String())
	assert.Equal(t, "1", id.At(1, 1).String())
}

func TestHessian(t *testing.T) {
	x, y := S("x"), S("y")
	h := Hessian(MulOf(Square(x), y), []string{"x", "y"})
	assert.Equal(t, "2*y", h.At(0, 0).String())
	assert.Equal(t, "2*x", h.At(0, 1).String())
	assert.Equal(t, "2*x", h.At(1, 0).String())
	assert.Equal(t, "0", h.At(1, 1).String())
}

func TestEigen2(t *testing.T) {
	m := MatrixOf(
		[]Expr{N(2), N(1)},
		[]Expr{N(1), N(2)},
	)
	vals, vecs, err := m.Eigen2()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, EvalF(vals[0], nil), 1e-12)
	assert.InDelta(t, 3.0, EvalF(vals[1], nil), 1e-12)
	// (M - lambda I) v = 0 at each branch.
	for k := 0; k < 2; k++ {
		lam := EvalF(vals[k], nil)
		v0 := EvalF(vecs[k].At(0, 0), nil)
		v1 := EvalF(vecs[k].At(1, 0), nil)
		assert.InDelta(t, 0.0, 2*v0+v1-lam*v0, 1e-12)
	}
}

func TestReplaceEvenPow(t *testing.T) {
	b, c := S("b"), S("c")
	e := AddOf(PowOf(Cos(b), N(4)), Square(Cos(b)), N(1))
	out := ReplaceEvenPow(e, Cos(b), c)
	assert.Equal(t, "1 + c + c^2", out.Simplify().String())
}

func TestFactorTerms(t *testing.T) {
	x, y := S("x"), S("y")
	e := AddOf(MulOf(N(2), Square(x), y), MulOf(N(4), x))
	out := FactorTerms(e)
	// 2*x*(x*y + 2): evaluates identically and carries the common factor.
	for _, at := range []map[string]float64{
		{"x": 1.5, "y": -0.3},
		{"x": -2.0, "y": 4.0},
	} {
		assert.InDelta(t, EvalF(e, at), EvalF(out, at), 1e-12)
	}
	m, ok := out.(*Mul)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(m.factors), 2)
}

func TestSubMapSimultaneous(t *testing.T) {
	x, y := S("x"), S("y")
	// Swapping x and y must not cascade.
	e := SubMap(AddOf(x, MulOf(N(2), y)), map[string]Expr{"x": y, "y": x})
	assert.Equal(t, "2*x + y", e.String())
}
