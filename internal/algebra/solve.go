package algebra

import "fmt"

// ErrUnsolvable reports a polynomial degree the closed-form solver does
// not cover.
type ErrUnsolvable struct {
	Name   string
	Degree int64
}

func (e *ErrUnsolvable) Error() string {
	return fmt.Sprintf("algebra: no closed form for %s at degree %d", e.Name, e.Degree)
}

// SolveFor finds the roots of residual = 0 in the named symbol. The
// residual is first brought to rational normal form and its numerator
// treated as a Laurent polynomial. Closed forms cover degrees up to 4;
// cubics yield both the trigonometric and the Cardano root families as
// candidates, since which family evaluates real depends on the
// discriminant sign at the caller's parameter values, and general
// quartics yield one candidate set per resolvent branch.
//
// Quadratic roots are returned in [minus branch, plus branch] order.
func SolveFor(residual Expr, name string) ([]Expr, error) {
	num, _ := NumerDenom(residual)
	coeffs, err := PolyCoeffs(num, name)
	if err != nil {
		return nil, err
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("algebra: residual vanishes identically in %s", name)
	}
	// Shift a Laurent polynomial to ordinary form; a positive shift
	// factors out x^k whose root is 0.
	min, max := int64(0), int64(0)
	first := true
	for d := range coeffs {
		if first {
			min, max = d, d
			first = false
			continue
		}
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	if min != 0 {
		shifted := map[int64]Expr{}
		for d, c := range coeffs {
			shifted[d-min] = c
		}
		coeffs = shifted
		max -= min
	}
	var roots []Expr
	if min > 0 {
		roots = append(roots, N(0))
	}
	switch max {
	case 0:
		return nil, fmt.Errorf("algebra: residual does not involve %s", name)
	case 1:
		b, a := coeffOrZero(coeffs, 0), coeffOrZero(coeffs, 1)
		roots = append(roots, Neg(Div(b, a)).Simplify())
	case 2:
		roots = append(roots, solveQuadratic(coeffOrZero(coeffs, 2), coeffOrZero(coeffs, 1), coeffOrZero(coeffs, 0))...)
	case 3:
		roots = append(roots, solveCubic(coeffOrZero(coeffs, 3), coeffOrZero(coeffs, 2), coeffOrZero(coeffs, 1), coeffOrZero(coeffs, 0))...)
	case 4:
		if isZeroExpr(coeffOrZero(coeffs, 3)) && isZeroExpr(coeffOrZero(coeffs, 1)) {
			roots = append(roots, solveBiquadratic(coeffOrZero(coeffs, 4), coeffOrZero(coeffs, 2), coeffOrZero(coeffs, 0))...)
			break
		}
		roots = append(roots, solveQuartic(coeffOrZero(coeffs, 4), coeffOrZero(coeffs, 3), coeffOrZero(coeffs, 2), coeffOrZero(coeffs, 1), coeffOrZero(coeffs, 0))...)
	default:
		return nil, &ErrUnsolvable{Name: name, Degree: max}
	}
	return roots, nil
}

// SolveEq solves eq for the named symbol.
func SolveEq(eq *Equation, name string) ([]Expr, error) {
	return SolveFor(eq.Residual(), name)
}

func isZeroExpr(e Expr) bool {
	n, ok := e.Simplify().(*Num)
	return ok && n.IsZero()
}

// solveQuadratic returns [(-b - sqrt(D))/(2a), (-b + sqrt(D))/(2a)].
func solveQuadratic(a, b, c Expr) []Expr {
	disc := SubE(Square(b), MulOf(N(4), a, c))
	root := Sqrt(disc)
	inv2a := PowOf(MulOf(N(2), a), N(-1))
	return []Expr{
		MulOf(AddOf(Neg(b), Neg(root)), inv2a).Simplify(),
		MulOf(AddOf(Neg(b), root), inv2a).Simplify(),
	}
}

// solveBiquadratic solves a*x^4 + b*x^2 + c via w = x^2, returning the
// plus/minus square roots of both w branches.
func solveBiquadratic(a, b, c Expr) []Expr {
	var roots []Expr
	for _, w := range solveQuadratic(a, b, c) {
		s := Sqrt(w)
		roots = append(roots, Neg(s).Simplify(), s)
	}
	return roots
}

// solveQuartic applies Ferrari's factorization to
// a*x^4 + b*x^3 + c*x^2 + d*x + e. The depressed quartic splits into two
// quadratics for every root m of the resolvent cubic; each of the four
// resolvent candidates contributes its four quadratic roots, and callers
// select among the candidates numerically. A degenerate resolvent root
// (m = 0) leaves NaN candidates, which the selection discards.
func solveQuartic(a, b, c, d, e Expr) []Expr {
	ba := Div(b, a)
	// Depress: x = t - b/(4a), t^4 + p t^2 + q t + r = 0.
	shift := MulOf(Frac(1, 4), ba)
	p := SubE(Div(c, a), MulOf(Frac(3, 8), Square(ba))).Simplify()
	q := AddOf(
		MulOf(Frac(1, 8), PowOf(ba, N(3))),
		Neg(MulOf(Frac(1, 2), ba, Div(c, a))),
		Div(d, a),
	).Simplify()
	r := AddOf(
		Neg(MulOf(Frac(3, 256), PowOf(ba, N(4)))),
		MulOf(Frac(1, 16), Square(ba), Div(c, a)),
		Neg(MulOf(Frac(1, 4), ba, Div(d, a))),
		Div(e, a),
	).Simplify()

	// Resolvent: 8m^3 + 8p m^2 + (2p^2 - 8r) m - q^2 = 0.
	resolvent := solveCubic(
		N(8),
		MulOf(N(8), p),
		SubE(MulOf(N(2), Square(p)), MulOf(N(8), r)),
		Neg(Square(q)),
	)
	var roots []Expr
	for _, m := range resolvent {
		s := Sqrt(MulOf(N(2), m))
		shiftQ := Div(q, MulOf(N(2), s))
		lead := AddOf(MulOf(Frac(1, 2), p), m)
		roots = append(roots,
			solveQuadratic(N(1), Neg(s), AddOf(lead, shiftQ))...)
		roots = append(roots,
			solveQuadratic(N(1), s, SubE(lead, shiftQ))...)
	}
	for i, root := range roots {
		roots[i] = SubE(root, shift).Simplify()
	}
	return roots
}

// solveCubic returns the three trigonometric roots followed by the
// Cardano form for a*x^3 + b*x^2 + c*x + d. Roots outside the parameter
// regime evaluate to NaN under EvalF, which is how callers select among
// them.
func solveCubic(a, b, c, d Expr) []Expr {
	// Depress: x = t - b/(3a), t^3 + p t + q = 0.
	shift := Div(b, MulOf(N(3), a))
	p := SubE(Div(c, a), MulOf(Frac(1, 3), Square(Div(b, a))))
	q := AddOf(
		MulOf(Frac(2, 27), PowOf(Div(b, a), N(3))),
		Neg(MulOf(Frac(1, 3), Div(b, a), Div(c, a))),
		Div(d, a),
	)
	p = p.Simplify()
	q = q.Simplify()

	// Trigonometric family, real when the discriminant is negative.
	m := MulOf(N(2), Sqrt(Div(Neg(p), N(3))))
	theta := Acos(MulOf(Frac(3, 2), Div(q, p), Sqrt(Div(N(-3), p))))
	var roots []Expr
	for k := int64(0); k < 3; k++ {
		angle := SubE(MulOf(Frac(1, 3), theta), MulOf(Frac(2, 3), N(k), Pi))
		roots = append(roots, SubE(MulOf(m, Cos(angle)), shift).Simplify())
	}

	// Cardano family, real when the discriminant is positive.
	delta := AddOf(MulOf(Frac(1, 4), Square(q)), MulOf(Frac(1, 27), PowOf(p, N(3))))
	sq := Sqrt(delta)
	u := Cbrt(AddOf(Neg(MulOf(Frac(1, 2), q)), sq))
	v := Cbrt(SubE(Neg(MulOf(Frac(1, 2), q)), sq))
	roots = append(roots, SubE(AddOf(u, v), shift).Simplify())
	return roots
}
