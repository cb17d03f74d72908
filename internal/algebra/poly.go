package algebra

import "fmt"

// PolyCoeffs extracts e as a Laurent polynomial in the named symbol:
// a map from (possibly negative) integer degree to coefficient. It fails
// when the symbol appears inside a function argument or under a
// non-integer power.
func PolyCoeffs(e Expr, name string) (map[int64]Expr, error) {
	coeffs := map[int64]Expr{}
	for _, term := range TermsOf(Expand(e)) {
		deg := int64(0)
		var rest []Expr
		for _, f := range FactorsOf(term) {
			b, ex := baseExp(f)
			if s, ok := b.(*Sym); ok && s.name == name {
				n, ok := ex.(*Num)
				if !ok || !n.IsInteger() {
					return nil, fmt.Errorf("algebra: %s carries non-integer power %s", name, ex)
				}
				deg += n.Int64()
				continue
			}
			if _, hit := FreeSymbols(f)[name]; hit {
				return nil, fmt.Errorf("algebra: %s appears inside %s", name, f)
			}
			rest = append(rest, f)
		}
		c := MulOf(rest...)
		if len(rest) == 0 {
			c = N(1)
		}
		if prev, ok := coeffs[deg]; ok {
			coeffs[deg] = AddOf(prev, c)
		} else {
			coeffs[deg] = c
		}
	}
	for d, c := range coeffs {
		if n, ok := c.(*Num); ok && n.IsZero() {
			delete(coeffs, d)
		}
	}
	return coeffs, nil
}

// Degree is the maximal power of the named symbol, or an error when e is
// not a Laurent polynomial in it.
func Degree(e Expr, name string) (int64, error) {
	coeffs, err := PolyCoeffs(e, name)
	if err != nil {
		return 0, err
	}
	max := int64(0)
	first := true
	for d := range coeffs {
		if first || d > max {
			max = d
			first = false
		}
	}
	return max, nil
}

// coeffOrZero looks up a degree with 0 for missing entries.
func coeffOrZero(coeffs map[int64]Expr, d int64) Expr {
	if c, ok := coeffs[d]; ok {
		return c
	}
	return N(0)
}
