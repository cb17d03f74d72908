package algebra

import (
	"sort"
	"strings"
)

// Add is an n-ary sum.
type Add struct{ terms []Expr }

// Mul is an n-ary product.
type Mul struct{ factors []Expr }

// Pow is base raised to exp.
type Pow struct{ base, exp Expr }

// AddOf builds a canonicalized sum.
func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// MulOf builds a canonicalized product.
func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// PowOf builds a canonicalized power.
func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// Convenience combinators.
func Neg(e Expr) Expr { return MulOf(N(-1), e) }
func SubE(a, b Expr) Expr { return AddOf(a, Neg(b)) }
func Div(a, b Expr) Expr { return MulOf(a, PowOf(b, N(-1))) }
func Sqrt(e Expr) Expr { return PowOf(e, Frac(1, 2)) }
func Square(e Expr) Expr { return PowOf(e, N(2)) }

func (a *Add) Terms() []Expr { return append([]Expr(nil), a.terms...) }

// TermsOf views e as a sum: the terms of an Add, or [e] otherwise.
func TermsOf(e Expr) []Expr {
	if a, ok := e.(*Add); ok {
		return a.Terms()
	}
	return []Expr{e}
}

// FactorsOf views e as a product: the factors of a Mul, or [e] otherwise.
func FactorsOf(e Expr) []Expr {
	if m, ok := e.(*Mul); ok {
		return append([]Expr(nil), m.factors...)
	}
	return []Expr{e}
}

// splitCoeff separates a term into its rational coefficient and the rest.
func splitCoeff(e Expr) (*Num, Expr) {
	switch v := e.(type) {
	case *Num:
		return v, N(1)
	case *Mul:
		if len(v.factors) > 0 {
			if n, ok := v.factors[0].(*Num); ok {
				rest := v.factors[1:]
				if len(rest) == 1 {
					return n, rest[0]
				}
				return n, &Mul{factors: append([]Expr(nil), rest...)}
			}
		}
	}
	return N(1), e
}

func (a *Add) Simplify() Expr {
	var flat []Expr
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}
	constant := N(0)
	type bucket struct {
		coeff *Num
		rest  Expr
	}
	order := []string{}
	buckets := map[string]*bucket{}
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			constant = numAdd(constant, n)
			continue
		}
		c, rest := splitCoeff(t)
		key := rest.String()
		if b, ok := buckets[key]; ok {
			b.coeff = numAdd(b.coeff, c)
		} else {
			buckets[key] = &bucket{coeff: c, rest: rest}
			order = append(order, key)
		}
	}
	sort.Strings(order)
	out := make([]Expr, 0, len(order)+1)
	if !constant.IsZero() {
		out = append(out, constant)
	}
	for _, key := range order {
		b := buckets[key]
		if b.coeff.IsZero() {
			continue
		}
		if b.coeff.IsOne() {
			out = append(out, b.rest)
		} else {
			out = append(out, (&Mul{factors: []Expr{b.coeff, b.rest}}).Simplify())
		}
	}
	switch len(out) {
	case 0:
		return N(0)
	case 1:
		return out[0]
	}
	return &Add{terms: out}
}

func (a *Add) Sub(name string, value Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Sub(name, value)
	}
	return AddOf(terms...)
}

func (a *Add) Diff(name string) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Diff(name)
	}
	return AddOf(terms...)
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) String() string {
	var sb strings.Builder
	for i, t := range a.terms {
		s := t.String()
		if i > 0 {
			if strings.HasPrefix(s, "-") {
				sb.WriteString(" - ")
				s = s[1:]
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func (a *Add) LaTeX() string {
	var sb strings.Builder
	for i, t := range a.terms {
		s := t.LaTeX()
		if i > 0 {
			if strings.HasPrefix(s, "-") {
				sb.WriteString(" - ")
				s = s[1:]
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// baseExp views a factor as a base/exponent pair for power merging.
func baseExp(e Expr) (Expr, Expr) {
	if p, ok := e.(*Pow); ok {
		return p.base, p.exp
	}
	return e, N(1)
}

func (m *Mul) Simplify() Expr {
	var flat []Expr
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}
	coeff := N(1)
	type bucket struct {
		base Expr
		exp  Expr
	}
	order := []string{}
	buckets := map[string]*bucket{}
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			if n.IsZero() {
				return N(0)
			}
			coeff = numMul(coeff, n)
			continue
		}
		base, exp := baseExp(f)
		key := base.String()
		if b, ok := buckets[key]; ok {
			b.exp = AddOf(b.exp, exp)
		} else {
			buckets[key] = &bucket{base: base, exp: exp}
			order = append(order, key)
		}
	}
	sort.Strings(order)
	out := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		b := buckets[key]
		p := PowOf(b.base, b.exp.Simplify())
		if n, ok := p.(*Num); ok {
			if n.IsZero() {
				return N(0)
			}
			coeff = numMul(coeff, n)
			continue
		}
		out = append(out, p)
	}
	if coeff.IsZero() {
		return N(0)
	}
	// A lone sum with a rational coefficient distributes, keeping sums at
	// the top of the tree where term collection can see them.
	if len(out) == 1 {
		if sum, ok := out[0].(*Add); ok && !coeff.IsOne() {
			terms := make([]Expr, len(sum.terms))
			for i, t := range sum.terms {
				terms[i] = (&Mul{factors: []Expr{coeff, t}}).Simplify()
			}
			return AddOf(terms...)
		}
	}
	if len(out) == 0 {
		return coeff
	}
	if coeff.IsOne() && len(out) == 1 {
		return out[0]
	}
	if !coeff.IsOne() {
		out = append([]Expr{coeff}, out...)
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Mul{factors: out}
}

func (m *Mul) Sub(name string, value Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Sub(name, value)
	}
	return MulOf(factors...)
}

func (m *Mul) Diff(name string) Expr {
	// Generalized product rule: sum over factors of (df) * rest.
	terms := make([]Expr, 0, len(m.factors))
	for i := range m.factors {
		fs := make([]Expr, len(m.factors))
		copy(fs, m.factors)
		fs[i] = m.factors[i].Diff(name)
		terms = append(terms, MulOf(fs...))
	}
	return AddOf(terms...)
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func needsParens(e Expr) bool {
	switch e.(type) {
	case *Add:
		return true
	}
	return false
}

func (m *Mul) String() string {
	var sb strings.Builder
	for i, f := range m.factors {
		if i > 0 {
			sb.WriteString("*")
		}
		s := f.String()
		if needsParens(f) || (i > 0 && strings.HasPrefix(s, "-")) {
			sb.WriteString("(" + s + ")")
		} else {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func (m *Mul) LaTeX() string {
	var sb strings.Builder
	for i, f := range m.factors {
		if i > 0 {
			sb.WriteString(` \, `)
		}
		s := f.LaTeX()
		if needsParens(f) {
			sb.WriteString(`\left(` + s + `\right)`)
		} else {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func (p *Pow) Base() Expr { return p.base }
func (p *Pow) Exp() Expr { return p.exp }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()
	if n, ok := exp.(*Num); ok {
		if n.IsZero() {
			return N(1)
		}
		if n.IsOne() {
			return base
		}
		if bn, ok := base.(*Num); ok {
			if n.IsInteger() {
				return numPowInt(bn, n.Int64())
			}
			// Exact rational roots fold; otherwise leave symbolic.
			num := n.Rat().Num().Int64()
			den := n.Rat().Denom().Int64()
			if root, ok := ratRootExact(bn.val, den); ok {
				return numPowInt(NumOf(root), num)
			}
			if bn.IsOne() {
				return N(1)
			}
			return &Pow{base: base, exp: exp}
		}
		// Integer powers distribute over products.
		if m, ok := base.(*Mul); ok && n.IsInteger() {
			factors := make([]Expr, len(m.factors))
			for i, f := range m.factors {
				factors[i] = PowOf(f, n)
			}
			return MulOf(factors...)
		}
	}
	// Any exponent distributes over a product without a negative
	// coefficient; fractional powers assume non-negative bases, so the
	// remaining factors carry no sign. A negative coefficient keeps the
	// product together to avoid (-1)^exp.
	if m, ok := base.(*Mul); ok {
		if c, ok := m.factors[0].(*Num); !ok || c.Sign() > 0 {
			factors := make([]Expr, len(m.factors))
			for i, f := range m.factors {
				factors[i] = PowOf(f, exp)
			}
			return MulOf(factors...)
		}
	}
	if inner, ok := base.(*Pow); ok {
		if mergeablePow(inner.exp, exp) {
			return PowOf(inner.base, MulOf(inner.exp, exp))
		}
	}
	if bn, ok := base.(*Num); ok && bn.IsOne() {
		return N(1)
	}
	return &Pow{base: base, exp: exp}
}

// mergeablePow reports whether (b^a)^c may be rewritten b^(a*c). Safe when
// c is an integer, or when a is not an even integer (so b^a determines the
// sign of b under the non-negative-base convention for fractional powers).
func mergeablePow(a, c Expr) bool {
	if n, ok := c.(*Num); ok && n.IsInteger() {
		return true
	}
	if n, ok := a.(*Num); ok {
		if n.IsInteger() && n.Int64()%2 == 0 {
			return false
		}
		return true
	}
	return false
}

func (p *Pow) Sub(name string, value Expr) Expr {
	return PowOf(p.base.Sub(name, value), p.exp.Sub(name, value))
}

func (p *Pow) Diff(name string) Expr {
	db := p.base.Diff(name)
	de := p.exp.Diff(name)
	if n, ok := de.(*Num); ok && n.IsZero() {
		// d(b^e) = e * b^(e-1) * db for constant exponent e.
		return MulOf(p.exp, PowOf(p.base, AddOf(p.exp, N(-1))), db)
	}
	// General case: b^e * (de*ln b + e*db/b).
	return MulOf(
		PowOf(p.base, p.exp),
		AddOf(
			MulOf(de, Ln(p.base)),
			MulOf(p.exp, db, PowOf(p.base, N(-1))),
		),
	)
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) String() string {
	bs := p.base.String()
	switch p.base.(type) {
	case *Add, *Mul, *Pow:
		bs = "(" + bs + ")"
	default:
		if strings.HasPrefix(bs, "-") || strings.Contains(bs, "/") {
			bs = "(" + bs + ")"
		}
	}
	es := p.exp.String()
	switch p.exp.(type) {
	case *Add, *Mul, *Pow:
		es = "(" + es + ")"
	default:
		if strings.HasPrefix(es, "-") || strings.Contains(es, "/") {
			es = "(" + es + ")"
		}
	}
	return bs + "^" + es
}

func (p *Pow) LaTeX() string {
	bs := p.base.LaTeX()
	switch p.base.(type) {
	case *Add, *Mul, *Pow, *Num:
		bs = `\left(` + bs + `\right)`
	}
	return bs + "^{" + p.exp.LaTeX() + "}"
}
