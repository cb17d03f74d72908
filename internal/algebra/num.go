package algebra

import (
	"math"
	"math/big"
	"strings"
)

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

func N(i int64) *Num { return &Num{val: big.NewRat(i, 1)} }
func Frac(p, q int64) *Num { return &Num{val: big.NewRat(p, q)} }
func NumOf(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }
func (n *Num) Float() float64 { f, _ := n.val.Float64(); return f }
func (n *Num) IsInteger() bool { return n.val.IsInt() }
func (n *Num) Int64() int64 { return n.val.Num().Int64() }
func (n *Num) Sign() int { return n.val.Sign() }
func (n *Num) IsZero() bool { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool { return n.val.Cmp(ratOne) == 0 }
func (n *Num) Simplify() Expr { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Diff(string) Expr { return N(0) }

var (
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

func (n *Num) String() string { return n.val.RatString() }

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.RatString()
	}
	s := n.val.RatString()
	parts := strings.SplitN(s, "/", 2)
	neg := ""
	if strings.HasPrefix(parts[0], "-") {
		neg = "-"
		parts[0] = parts[0][1:]
	}
	return neg + `\frac{` + parts[0] + `}{` + parts[1] + `}`
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num { return &Num{val: new(big.Rat).Neg(a.val)} }

func numInv(a *Num) *Num {
	return &Num{val: new(big.Rat).Inv(a.val)}
}

// numPowInt raises an exact rational to an integer power.
func numPowInt(a *Num, k int64) *Num {
	if k == 0 {
		return N(1)
	}
	neg := k < 0
	if neg {
		k = -k
	}
	num := new(big.Int).Exp(a.val.Num(), big.NewInt(k), nil)
	den := new(big.Int).Exp(a.val.Denom(), big.NewInt(k), nil)
	r := new(big.Rat).SetFrac(num, den)
	if neg {
		r.Inv(r)
	}
	return &Num{val: r}
}

// ratRootExact returns r^(1/k) when the result is exactly rational.
func ratRootExact(r *big.Rat, k int64) (*big.Rat, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	num, okN := intRootExact(r.Num(), k)
	den, okD := intRootExact(r.Denom(), k)
	if !okN || !okD {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

func intRootExact(x *big.Int, k int64) (*big.Int, bool) {
	if x.Sign() == 0 {
		return big.NewInt(0), true
	}
	root := new(big.Int)
	if k == 2 {
		root.Sqrt(x)
	} else {
		// Newton from a float seed, then adjust.
		f, _ := new(big.Float).SetInt(x).Float64()
		guess := int64(math.Pow(f, 1.0/float64(k)))
		root.SetInt64(guess)
		for i := 0; i < 4; i++ {
			for new(big.Int).Exp(root, big.NewInt(k), nil).Cmp(x) > 0 {
				root.Sub(root, big.NewInt(1))
			}
			for new(big.Int).Exp(new(big.Int).Add(root, big.NewInt(1)), big.NewInt(k), nil).Cmp(x) <= 0 {
				root.Add(root, big.NewInt(1))
			}
		}
	}
	if new(big.Int).Exp(root, big.NewInt(k), nil).Cmp(x) == 0 {
		return root, true
	}
	return nil, false
}
