// Package algebra is a small exact-rational symbolic kernel: expression
// trees over big.Rat coefficients with differentiation, substitution,
// rational normal forms, polynomial extraction, and closed-form solving of
// low-degree polynomial equations. It exists to drive staged symbolic
// derivations; it is not a general CAS.
//
// Fractional powers are simplified under the convention that their bases
// are non-negative reals. Callers owning a sign convention (e.g. p_z <= 0)
// are expected to substitute absolute values away before powering.
package algebra

import "sort"

// Expr is an immutable symbolic expression node. All mutating-looking
// operations return new expressions.
type Expr interface {
	// Simplify returns a canonicalized form: flattened sums/products,
	// collected like terms, merged same-base powers, folded numerics.
	Simplify() Expr
	// Sub replaces every occurrence of the named symbol.
	Sub(name string, value Expr) Expr
	// Diff differentiates with respect to the named symbol.
	Diff(name string) Expr
	String() string
	LaTeX() string
	// Equal is structural equality on canonical forms.
	Equal(other Expr) bool
}

// Sym is a named symbolic variable or parameter.
type Sym struct{ name string }

func S(name string) *Sym { return &Sym{name: name} }

// Pi is the circle constant; EvalF resolves it to math.Pi.
var Pi = S("pi")

func (s *Sym) Simplify() Expr { return s }
func (s *Sym) String() string { return s.name }
func (s *Sym) LaTeX() string { return s.name }
func (s *Sym) Name() string { return s.name }
func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}

func (s *Sym) Sub(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s *Sym) Diff(name string) Expr {
	if s.name == name {
		return N(1)
	}
	return N(0)
}

// SubMap applies a set of symbol substitutions simultaneously.
func SubMap(e Expr, subs map[string]Expr) Expr {
	names := make([]string, 0, len(subs))
	for n := range subs {
		names = append(names, n)
	}
	sort.Strings(names)
	// Simultaneity: route through placeholders so one value does not get
	// rewritten by a later binding.
	for i, n := range names {
		e = e.Sub(n, S("__tmp"+itoa(i)))
	}
	for i, n := range names {
		e = e.Sub("__tmp"+itoa(i), subs[n])
	}
	return e.Simplify()
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [8]byte
	n := len(buf)
	for i > 0 {
		n--
		buf[n] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[n:])
}

// Replace substitutes every subtree structurally equal to target.
func Replace(e, target, repl Expr) Expr {
	if e.Equal(target) {
		return repl
	}
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Replace(t, target, repl)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = Replace(f, target, repl)
		}
		return MulOf(factors...)
	case *Pow:
		return PowOf(Replace(v.base, target, repl), Replace(v.exp, target, repl))
	case *Func:
		return fnOf(v.name, Replace(v.arg, target, repl)).Simplify()
	}
	return e
}

// ReplaceEvenPow rewrites base^(2k) as repl^k for every even integer power
// of base, including the bare square. Used to change variables such as
// cos(beta)^2 -> c before polynomial extraction.
func ReplaceEvenPow(e, base, repl Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = ReplaceEvenPow(t, base, repl)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = ReplaceEvenPow(f, base, repl)
		}
		return MulOf(factors...)
	case *Pow:
		if v.base.Equal(base) {
			if n, ok := v.exp.(*Num); ok && n.IsInteger() {
				k := n.Int64()
				if k%2 == 0 {
					return PowOf(repl, N(k/2))
				}
			}
		}
		return PowOf(ReplaceEvenPow(v.base, base, repl), v.exp)
	case *Func:
		return fnOf(v.name, ReplaceEvenPow(v.arg, base, repl)).Simplify()
	}
	return e
}

// ReplaceSquareRoot rewrites (s^2)^k, for any half-odd-integer k, as
// signed^(2k). It discharges square roots of squares once the caller
// knows the sign of s, e.g. sqrt(pz^2) -> -pz for downward slowness.
func ReplaceSquareRoot(e Expr, s *Sym, signed Expr) Expr {
	sq := PowOf(s, N(2))
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = ReplaceSquareRoot(t, s, signed)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = ReplaceSquareRoot(f, s, signed)
		}
		return MulOf(factors...)
	case *Pow:
		if v.base.Equal(sq) {
			if n, ok := v.exp.(*Num); ok && !n.IsInteger() {
				double := numMul(n, N(2))
				if double.IsInteger() {
					return PowOf(signed, double)
				}
			}
		}
		return PowOf(ReplaceSquareRoot(v.base, s, signed), ReplaceSquareRoot(v.exp, s, signed))
	case *Func:
		return fnOf(v.name, ReplaceSquareRoot(v.arg, s, signed)).Simplify()
	}
	return e
}

// FreeSymbols reports the names of all symbols appearing in e.
func FreeSymbols(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	collectSymbols(e, out)
	return out
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	}
}

// Equation is an ordered pair of expressions, read "LHS = RHS".
// Equations are immutable once built.
type Equation struct{ LHS, RHS Expr }

func Eq(lhs, rhs Expr) *Equation { return &Equation{LHS: lhs, RHS: rhs} }

func (e *Equation) String() string { return e.LHS.String() + " = " + e.RHS.String() }
func (e *Equation) LaTeX() string { return e.LHS.LaTeX() + " = " + e.RHS.LaTeX() }

// Residual is LHS - RHS.
func (e *Equation) Residual() Expr {
	return AddOf(e.LHS, MulOf(N(-1), e.RHS))
}

// Apply rewrites e by replacing each rule's LHS with its RHS, in order.
// This is the substitution-by-equation idiom used throughout a staged
// derivation: later equations are expressed via earlier ones.
func Apply(e Expr, rules ...*Equation) Expr {
	for _, r := range rules {
		e = Replace(e, r.LHS, r.RHS)
	}
	return e.Simplify()
}

// ApplyEq rewrites both sides of an equation.
func ApplyEq(eq *Equation, rules ...*Equation) *Equation {
	return Eq(Apply(eq.LHS, rules...), Apply(eq.RHS, rules...))
}
