package algebra

// Func is a named unary function application.
type Func struct {
	name string
	arg  Expr
}

func fnOf(name string, arg Expr) *Func { return &Func{name: name, arg: arg} }

func Sin(e Expr) Expr { return fnOf("sin", e).Simplify() }
func Cos(e Expr) Expr { return fnOf("cos", e).Simplify() }
func Tan(e Expr) Expr { return fnOf("tan", e).Simplify() }
func Sinh(e Expr) Expr { return fnOf("sinh", e).Simplify() }
func Cosh(e Expr) Expr { return fnOf("cosh", e).Simplify() }
func Tanh(e Expr) Expr { return fnOf("tanh", e).Simplify() }
func Exp(e Expr) Expr { return fnOf("exp", e).Simplify() }
func Ln(e Expr) Expr { return fnOf("ln", e).Simplify() }
func Abs(e Expr) Expr { return fnOf("abs", e).Simplify() }
func Sign(e Expr) Expr { return fnOf("sign", e).Simplify() }
func Atan(e Expr) Expr { return fnOf("atan", e).Simplify() }
func Asin(e Expr) Expr { return fnOf("asin", e).Simplify() }
func Acos(e Expr) Expr { return fnOf("acos", e).Simplify() }
func Cbrt(e Expr) Expr { return fnOf("cbrt", e).Simplify() }

func (f *Func) Name() string { return f.name }
func (f *Func) Arg() Expr { return f.arg }

// oddFns change sign with their argument; evenFns ignore it.
var oddFns = map[string]bool{
	"sin": true, "tan": true, "sinh": true, "tanh": true,
	"atan": true, "asin": true, "sign": true, "cbrt": true,
}
var evenFns = map[string]bool{"cos": true, "cosh": true, "abs": true}

func (f *Func) Simplify() Expr {
	arg := f.arg.Simplify()
	if n, ok := arg.(*Num); ok {
		if out, ok := foldNumFunc(f.name, n); ok {
			return out
		}
	}
	// Pull a negative rational coefficient through odd/even functions.
	if c, rest := splitCoeff(arg); c.Sign() < 0 {
		if oddFns[f.name] {
			return MulOf(N(-1), fnOf(f.name, MulOf(numNeg(c), rest)).simplified())
		}
		if evenFns[f.name] {
			return fnOf(f.name, MulOf(numNeg(c), rest)).simplified()
		}
	}
	// abs distributes over products, drops on even powers, and drops on
	// fractional powers (whose principal value is non-negative).
	if f.name == "abs" {
		if m, ok := arg.(*Mul); ok {
			factors := make([]Expr, len(m.factors))
			for i, x := range m.factors {
				factors[i] = Abs(x)
			}
			return MulOf(factors...)
		}
		if p, ok := arg.(*Pow); ok {
			if n, ok := p.exp.(*Num); ok {
				if !n.IsInteger() {
					return arg
				}
				if n.Int64()%2 == 0 {
					return arg
				}
				// Odd integer power: |b^k| = |b|^k.
				return PowOf(Abs(p.base), p.exp)
			}
		}
	}
	if f.name == "ln" {
		if e2, ok := arg.(*Func); ok && e2.name == "exp" {
			return e2.arg
		}
	}
	if f.name == "exp" {
		if l, ok := arg.(*Func); ok && l.name == "ln" {
			return l.arg
		}
	}
	return &Func{name: f.name, arg: arg}
}

// simplified reattaches the node without re-running negative-coefficient
// extraction, which would loop.
func (f *Func) simplified() Expr {
	arg := f.arg.Simplify()
	if n, ok := arg.(*Num); ok {
		if out, ok := foldNumFunc(f.name, n); ok {
			return out
		}
	}
	return &Func{name: f.name, arg: arg}
}

func foldNumFunc(name string, n *Num) (Expr, bool) {
	switch name {
	case "sin", "tan", "sinh", "tanh", "atan", "asin":
		if n.IsZero() {
			return N(0), true
		}
	case "cos", "cosh":
		if n.IsZero() {
			return N(1), true
		}
	case "exp":
		if n.IsZero() {
			return N(1), true
		}
	case "ln":
		if n.IsOne() {
			return N(0), true
		}
	case "abs":
		if n.Sign() < 0 {
			return numNeg(n), true
		}
		return n, true
	case "sign":
		return N(int64(n.Sign())), true
	case "acos":
		if n.IsOne() {
			return N(0), true
		}
	case "cbrt":
		if root, ok := ratRootExact(n.Rat(), 3); ok {
			return NumOf(root), true
		}
		if n.Sign() < 0 {
			neg := numNeg(n)
			if root, ok := ratRootExact(neg.Rat(), 3); ok {
				return numNeg(NumOf(root)), true
			}
		}
	}
	return nil, false
}

func (f *Func) Sub(name string, value Expr) Expr {
	return fnOf(f.name, f.arg.Sub(name, value)).Simplify()
}

func (f *Func) Diff(name string) Expr {
	da := f.arg.Diff(name)
	if n, ok := da.(*Num); ok && n.IsZero() {
		return N(0)
	}
	var outer Expr
	switch f.name {
	case "sin":
		outer = Cos(f.arg)
	case "cos":
		outer = Neg(Sin(f.arg))
	case "tan":
		outer = AddOf(N(1), Square(Tan(f.arg)))
	case "sinh":
		outer = Cosh(f.arg)
	case "cosh":
		outer = Sinh(f.arg)
	case "tanh":
		outer = SubE(N(1), Square(Tanh(f.arg)))
	case "exp":
		outer = Exp(f.arg)
	case "ln":
		outer = PowOf(f.arg, N(-1))
	case "abs":
		outer = Sign(f.arg)
	case "sign":
		outer = N(0)
	case "atan":
		outer = PowOf(AddOf(N(1), Square(f.arg)), N(-1))
	case "asin":
		outer = PowOf(SubE(N(1), Square(f.arg)), Frac(-1, 2))
	case "acos":
		outer = Neg(PowOf(SubE(N(1), Square(f.arg)), Frac(-1, 2)))
	case "cbrt":
		outer = MulOf(Frac(1, 3), PowOf(fnOf("cbrt", f.arg), N(-2)))
	default:
		outer = fnOf(f.name+"'", f.arg)
	}
	return MulOf(outer, da)
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	return ok && f.name == o.name && f.arg.Equal(o.arg)
}

func (f *Func) String() string {
	return f.name + "(" + f.arg.String() + ")"
}

var latexFns = map[string]string{
	"sin": `\sin`, "cos": `\cos`, "tan": `\tan`,
	"sinh": `\sinh`, "cosh": `\cosh`, "tanh": `\tanh`,
	"exp": `\exp`, "ln": `\ln`, "atan": `\arctan`,
	"asin": `\arcsin`, "acos": `\arccos`,
}

func (f *Func) LaTeX() string {
	if f.name == "abs" {
		return `\left|` + f.arg.LaTeX() + `\right|`
	}
	if f.name == "cbrt" {
		return `\sqrt[3]{` + f.arg.LaTeX() + `}`
	}
	if l, ok := latexFns[f.name]; ok {
		return l + `\left(` + f.arg.LaTeX() + `\right)`
	}
	return `\operatorname{` + f.name + `}\left(` + f.arg.LaTeX() + `\right)`
}
