package algebra

import "math"

// EvalF evaluates e numerically under the given bindings. Unbound symbols
// and out-of-domain operations yield NaN, which propagates; callers use
// this to probe which symbolic root branch is real at given parameters.
// "pi" is always bound.
func EvalF(e Expr, env map[string]float64) float64 {
	switch v := e.(type) {
	case *Num:
		return v.Float()
	case *Sym:
		if v.name == "pi" {
			return math.Pi
		}
		if x, ok := env[v.name]; ok {
			return x
		}
		return math.NaN()
	case *Add:
		sum := 0.0
		for _, t := range v.terms {
			sum += EvalF(t, env)
		}
		return sum
	case *Mul:
		prod := 1.0
		for _, f := range v.factors {
			prod *= EvalF(f, env)
		}
		return prod
	case *Pow:
		b := EvalF(v.base, env)
		// Integer exponents go through repeated multiplication so that
		// negative bases stay real.
		if n, ok := v.exp.(*Num); ok && n.IsInteger() {
			return powInt(b, n.Int64())
		}
		x := EvalF(v.exp, env)
		return math.Pow(b, x)
	case *Func:
		a := EvalF(v.arg, env)
		switch v.name {
		case "sin":
			return math.Sin(a)
		case "cos":
			return math.Cos(a)
		case "tan":
			return math.Tan(a)
		case "sinh":
			return math.Sinh(a)
		case "cosh":
			return math.Cosh(a)
		case "tanh":
			return math.Tanh(a)
		case "exp":
			return math.Exp(a)
		case "ln":
			return math.Log(a)
		case "abs":
			return math.Abs(a)
		case "sign":
			if math.IsNaN(a) {
				return a
			}
			if a > 0 {
				return 1
			}
			if a < 0 {
				return -1
			}
			return 0
		case "atan":
			return math.Atan(a)
		case "asin":
			return math.Asin(a)
		case "acos":
			return math.Acos(a)
		case "cbrt":
			return math.Cbrt(a)
		}
	}
	return math.NaN()
}

func powInt(b float64, k int64) float64 {
	if k == 0 {
		return 1
	}
	neg := k < 0
	if neg {
		k = -k
	}
	out := 1.0
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			out *= b
		}
		b *= b
	}
	if neg {
		return 1 / out
	}
	return out
}

// IsRealAt reports whether e evaluates to a finite real at the bindings.
func IsRealAt(e Expr, env map[string]float64) bool {
	x := EvalF(e, env)
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Lambdify compiles e into a positional numeric function over the named
// parameters. Symbols outside params must already be bound to numbers in
// the expression; stragglers evaluate to NaN.
func Lambdify(e Expr, params []string) func(args ...float64) float64 {
	e = e.Simplify()
	names := append([]string(nil), params...)
	return func(args ...float64) float64 {
		env := make(map[string]float64, len(names))
		for i, n := range names {
			if i < len(args) {
				env[n] = args[i]
			}
		}
		return EvalF(e, env)
	}
}
