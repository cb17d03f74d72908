package gme

import (
	"github.com/geomech/erode/internal/algebra"
	"github.com/geomech/erode/internal/vocab"
)

// The slowness covector points into the surface: px >= 0 and pz <= 0
// for an erosion front retreating rightward and upward. These helpers
// discharge the absolute values and square roots of squares that the
// substitution chains leave behind, under exactly that convention.

func orient(e algebra.Expr) algebra.Expr {
	e = algebra.Replace(e, algebra.Abs(vocab.Px), vocab.Px)
	e = algebra.Replace(e, algebra.Abs(vocab.Pz), algebra.Neg(vocab.Pz))
	e = algebra.ReplaceSquareRoot(e, vocab.Px, vocab.Px)
	e = algebra.ReplaceSquareRoot(e, vocab.Pz, algebra.Neg(vocab.Pz))
	return e.Simplify()
}

// ratioSimp cancels shared factors between numerator and denominator,
// factoring sums first so common monomials cancel too.
func ratioSimp(e algebra.Expr) algebra.Expr {
	n, d := algebra.NumerDenom(e)
	n, d = algebra.Cancel(algebra.FactorTerms(n), algebra.FactorTerms(d))
	return algebra.Div(n, d).Simplify()
}

// factorCollect factors common powers out of a sum and expands the
// residual polynomial factor, the normal form used for ray velocities.
func factorCollect(e algebra.Expr) algebra.Expr {
	factors := algebra.FactorsOf(algebra.FactorTerms(e))
	out := make([]algebra.Expr, len(factors))
	for i, x := range factors {
		if _, ok := x.(*algebra.Add); ok {
			out[i] = algebra.Expand(x)
		} else {
			out[i] = x
		}
	}
	return algebra.MulOf(out...)
}

// tanAsSinCos lets adjacent cosine factors cancel against a tangent.
var tanAsSinCos = algebra.Eq(
	algebra.Tan(vocab.Beta),
	algebra.Div(algebra.Sin(vocab.Beta), algebra.Cos(vocab.Beta)),
)

func mustIntegrate(e algebra.Expr, name string) algebra.Expr {
	out, err := algebra.Integrate(e, name)
	if err != nil {
		panic("gme: integrate: " + err.Error())
	}
	return out
}

// mustSolve inverts eq for a target that is linear in it. Call sites
// are structural inversions that always admit exactly one root.
func mustSolve(eq *algebra.Equation, target *algebra.Sym) *algebra.Equation {
	roots, err := algebra.SolveEq(eq, target.Name())
	if err != nil {
		panic("gme: inversion for " + target.Name() + ": " + err.Error())
	}
	return algebra.Eq(target, roots[0])
}
