package algebra

import "fmt"

// Integrate antidifferentiates e with respect to the named symbol using a
// small rule table: powers, sums, constant factors, linear exponentials,
// and the logistic quotient 1/(1+exp(a*x+b)). Anything beyond the table
// is an error; there is no constant of integration.
func Integrate(e Expr, name string) (Expr, error) {
	e = e.Simplify()
	if _, hit := FreeSymbols(e)[name]; !hit {
		return MulOf(e, S(name)), nil
	}
	switch v := e.(type) {
	case *Sym:
		return MulOf(Frac(1, 2), Square(v)), nil
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			it, err := Integrate(t, name)
			if err != nil {
				return nil, err
			}
			terms[i] = it
		}
		return AddOf(terms...), nil
	case *Mul:
		var consts, varying []Expr
		for _, f := range v.factors {
			if _, hit := FreeSymbols(f)[name]; hit {
				varying = append(varying, f)
			} else {
				consts = append(consts, f)
			}
		}
		if len(varying) == 1 {
			inner, err := Integrate(varying[0], name)
			if err != nil {
				return nil, err
			}
			return MulOf(append(consts, inner)...), nil
		}
		return nil, fmt.Errorf("algebra: no integration rule for product %s", e)
	case *Pow:
		if s, ok := v.base.(*Sym); ok && s.name == name {
			if n, ok := v.exp.(*Num); ok {
				if n.val.Cmp(ratNegOne) == 0 {
					return Ln(s), nil
				}
				up := numAdd(n, N(1))
				return MulOf(numInv(up), PowOf(s, up)), nil
			}
		}
		// 1/(1+exp(a*x+b)) integrates to x - ln(1+exp(a*x+b))/a.
		if n, ok := v.exp.(*Num); ok && n.val.Cmp(ratNegOne) == 0 {
			if a, ok := logisticSlope(v.base, name); ok {
				return SubE(S(name), MulOf(PowOf(a, N(-1)), Ln(v.base))), nil
			}
		}
	case *Func:
		if v.name == "exp" {
			if a, _, ok := linearIn(v.arg, name); ok {
				return MulOf(PowOf(a, N(-1)), Exp(v.arg)), nil
			}
		}
	}
	return nil, fmt.Errorf("algebra: no integration rule for %s", e)
}

// logisticSlope matches base = 1 + exp(a*x + b) and returns a.
func logisticSlope(base Expr, name string) (Expr, bool) {
	sum, ok := base.Simplify().(*Add)
	if !ok {
		return nil, false
	}
	var expArg Expr
	sawOne := false
	for _, t := range sum.terms {
		if n, ok := t.(*Num); ok && n.IsOne() {
			sawOne = true
			continue
		}
		if f, ok := t.(*Func); ok && f.name == "exp" {
			expArg = f.arg
			continue
		}
		return nil, false
	}
	if !sawOne || expArg == nil {
		return nil, false
	}
	a, _, ok := linearIn(expArg, name)
	return a, ok
}

// linearIn decomposes e as a*x + b in the named symbol.
func linearIn(e Expr, name string) (a, b Expr, ok bool) {
	coeffs, err := PolyCoeffs(e, name)
	if err != nil {
		return nil, nil, false
	}
	for d := range coeffs {
		if d != 0 && d != 1 {
			return nil, nil, false
		}
	}
	a = coeffOrZero(coeffs, 1)
	if isZeroExpr(a) {
		return nil, nil, false
	}
	return a, coeffOrZero(coeffs, 0), true
}
