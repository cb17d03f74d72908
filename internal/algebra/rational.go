package algebra

import "math/big"

// Expand distributes products over sums and expands positive integer
// powers of sums.
func Expand(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Expand(t)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = Expand(f)
		}
		out := []Expr{N(1)}
		for _, f := range factors {
			var next []Expr
			for _, t := range TermsOf(f) {
				for _, o := range out {
					next = append(next, MulOf(o, t))
				}
			}
			out = next
		}
		return AddOf(out...)
	case *Pow:
		base := Expand(v.base)
		if n, ok := v.exp.(*Num); ok && n.IsInteger() {
			k := n.Int64()
			if k >= 2 {
				if _, isAdd := base.(*Add); isAdd {
					acc := base
					for i := int64(1); i < k; i++ {
						acc = Expand(MulOf(acc, base))
					}
					return acc
				}
			}
		}
		return PowOf(base, v.exp)
	}
	return e.Simplify()
}

// NumerDenom splits e into a numerator and denominator pair with sums
// brought over a common denominator and the numerator expanded. This is
// the rational normal form used before polynomial extraction.
func NumerDenom(e Expr) (Expr, Expr) {
	switch v := e.Simplify().(type) {
	case *Num:
		return NumOf(new(big.Rat).SetInt(v.val.Num())), NumOf(new(big.Rat).SetInt(v.val.Denom()))
	case *Pow:
		if n, ok := v.exp.(*Num); ok && n.Sign() < 0 {
			bn, bd := NumerDenom(v.base)
			// (bn/bd)^(-k) = bd^k / bn^k
			k := numNeg(n)
			return PowOf(bd, k), PowOf(bn, k)
		}
		bn, bd := NumerDenom(v.base)
		if one, ok := bd.(*Num); ok && one.IsOne() {
			return v, N(1)
		}
		return PowOf(bn, v.exp), PowOf(bd, v.exp)
	case *Mul:
		num, den := Expr(N(1)), Expr(N(1))
		for _, f := range v.factors {
			fn, fd := NumerDenom(f)
			num = MulOf(num, fn)
			den = MulOf(den, fd)
		}
		return Cancel(num, den)
	case *Add:
		num, den := Expr(N(0)), Expr(N(1))
		for _, t := range v.terms {
			tn, td := NumerDenom(t)
			if den.Equal(td) {
				num = AddOf(num, tn)
				continue
			}
			num = AddOf(MulOf(num, td), MulOf(tn, den))
			den = MulOf(den, td)
		}
		return Cancel(Expand(num), den)
	default:
		return v, N(1)
	}
}

// Together rebuilds a single quotient from the rational normal form.
func Together(e Expr) Expr {
	num, den := NumerDenom(e)
	return Div(num, den).Simplify()
}

// Cancel removes factors common to num and den. Exponent comparison works
// for rational exponents, and for symbolic exponents whose difference
// folds to a rational (so x^eta / x^(eta-1) cancels to x).
func Cancel(num, den Expr) (Expr, Expr) {
	nf := FactorsOf(num.Simplify())
	df := FactorsOf(den.Simplify())

	type entry struct {
		base Expr
		exp  Expr
	}
	build := func(fs []Expr) (coeff *Num, entries []*entry) {
		coeff = N(1)
		for _, f := range fs {
			if n, ok := f.(*Num); ok {
				coeff = numMul(coeff, n)
				continue
			}
			b, e := baseExp(f)
			entries = append(entries, &entry{base: b, exp: e})
		}
		return
	}
	nc, ne := build(nf)
	dc, de := build(df)

	for _, n := range ne {
		for _, d := range de {
			if !n.base.Equal(d.base) {
				continue
			}
			diff := SubE(n.exp, d.exp).Simplify()
			if nd, ok := diff.(*Num); ok {
				// Shared base: keep the exponent difference on one side.
				if nd.Sign() >= 0 {
					n.exp = nd
					d.exp = N(0)
				} else {
					n.exp = N(0)
					d.exp = numNeg(nd)
				}
			}
		}
	}
	rebuild := func(coeff *Num, entries []*entry) Expr {
		factors := []Expr{coeff}
		for _, en := range entries {
			factors = append(factors, PowOf(en.base, en.exp))
		}
		return MulOf(factors...)
	}
	outN, outD := rebuild(nc, ne), rebuild(dc, de)
	// Normalize the rational coefficient onto the numerator.
	if n, ok := outD.(*Num); ok && !n.IsOne() && !n.IsZero() {
		return MulOf(numInv(n), outN), N(1)
	}
	cN, restN := splitCoeff(outN)
	cD, restD := splitCoeff(outD)
	if !cD.IsOne() && !cD.IsZero() {
		return MulOf(numMul(cN, numInv(cD)), restN), restD
	}
	return outN, outD
}

// FactorTerms pulls factors common to every term out of a sum, including
// the rational gcd of the coefficients. Symbolic exponents participate
// when pairwise differences fold to rationals.
func FactorTerms(e Expr) Expr {
	sum, ok := e.Simplify().(*Add)
	if !ok {
		return e.Simplify()
	}
	type fac struct {
		base Expr
		exp  Expr
	}
	// Factor decomposition per term.
	decomp := make([][]*fac, len(sum.terms))
	coeffs := make([]*Num, len(sum.terms))
	for i, t := range sum.terms {
		c, rest := splitCoeff(t)
		coeffs[i] = c
		for _, f := range FactorsOf(rest) {
			if n, ok := f.(*Num); ok {
				coeffs[i] = numMul(coeffs[i], n)
				continue
			}
			b, ex := baseExp(f)
			decomp[i] = append(decomp[i], &fac{base: b, exp: ex})
		}
	}
	// Common bases: walk the first term's factors, find the minimal
	// exponent present in every term.
	var common []*fac
	for _, f0 := range decomp[0] {
		minExp := f0.exp
		present := true
		for i := 1; i < len(decomp); i++ {
			found := false
			for _, fi := range decomp[i] {
				if !fi.base.Equal(f0.base) {
					continue
				}
				found = true
				diff := SubE(fi.exp, minExp).Simplify()
				if nd, ok := diff.(*Num); ok {
					if nd.Sign() < 0 {
						minExp = fi.exp
					}
				} else {
					found = false
				}
				break
			}
			if !found {
				present = false
				break
			}
		}
		if present {
			common = append(common, &fac{base: f0.base, exp: minExp})
		}
	}
	gcd := ratGCD(coeffs)
	if len(common) == 0 && gcd.IsOne() {
		return sum
	}
	outer := []Expr{Expr(gcd)}
	for _, c := range common {
		outer = append(outer, PowOf(c.base, c.exp))
	}
	inner := make([]Expr, len(sum.terms))
	for i, t := range sum.terms {
		inv := []Expr{t, PowOf(gcd, N(-1))}
		for _, c := range common {
			inv = append(inv, PowOf(c.base, Neg(c.exp)))
		}
		inner[i] = MulOf(inv...)
	}
	return MulOf(append(outer, AddOf(inner...))...)
}

func ratGCD(nums []*Num) *Num {
	if len(nums) == 0 {
		return N(1)
	}
	g := new(big.Int).Set(nums[0].val.Num())
	g.Abs(g)
	l := new(big.Int).Set(nums[0].val.Denom())
	for _, n := range nums[1:] {
		g.GCD(nil, nil, g, new(big.Int).Abs(n.val.Num()))
		l.Mul(l, new(big.Int).Div(n.val.Denom(), new(big.Int).GCD(nil, nil, l, n.val.Denom())))
	}
	if g.Sign() == 0 {
		return N(1)
	}
	return NumOf(new(big.Rat).SetFrac(g, l))
}
