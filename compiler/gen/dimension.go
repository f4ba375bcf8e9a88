package gen

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseSymbols are the base dimension symbols, in canonical order.
var BaseSymbols = [...]string{"kg", "m", "s", "A", "K", "mol", "cd", "rad", "sr"}

// Dimension is a vector of exponents over BaseSymbols.
type Dimension [len(BaseSymbols)]int8

// ParseDimension parses an SI dimension string such as "kg.m^2/A.s^3".
// Factors are joined with '.', powers are written sym^n, the denominator
// follows a single '/' and "1" stands for an empty numerator.
func ParseDimension(s string) (Dimension, error) {
	var d Dimension
	num, den, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	if strings.Contains(den, "/") {
		return d, fmt.Errorf("dimension %q: more than one '/'", s)
	}
	if err := d.add(num, 1); err != nil {
		return d, fmt.Errorf("dimension %q: %w", s, err)
	}
	if hasDen {
		if strings.TrimSpace(den) == "" {
			return d, fmt.Errorf("dimension %q: empty denominator", s)
		}
		if err := d.add(den, -1); err != nil {
			return d, fmt.Errorf("dimension %q: %w", s, err)
		}
	}
	return d, nil
}

// MustParseDimension is like ParseDimension but panics on error.
func MustParseDimension(s string) Dimension {
	d, err := ParseDimension(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Dimension) add(factors string, sign int8) error {
	factors = strings.TrimSpace(factors)
	if factors == "" || factors == "1" {
		return nil
	}
	for _, f := range strings.Split(factors, ".") {
		sym, pow, hasPow := strings.Cut(strings.TrimSpace(f), "^")
		exp := int8(1)
		if hasPow {
			n, err := strconv.ParseInt(pow, 10, 8)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid power %q", f)
			}
			exp = int8(n)
		}
		i := baseIndex(sym)
		if i < 0 {
			return fmt.Errorf("unknown base symbol %q", sym)
		}
		d[i] += sign * exp
	}
	return nil
}

func baseIndex(sym string) int {
	for i, s := range BaseSymbols {
		if s == sym {
			return i
		}
	}
	return -1
}

// Mul returns the dimension of a product.
func (d Dimension) Mul(o Dimension) Dimension {
	for i := range d {
		d[i] += o[i]
	}
	return d
}

// Div returns the dimension of a quotient.
func (d Dimension) Div(o Dimension) Dimension {
	for i := range d {
		d[i] -= o[i]
	}
	return d
}

// Inverse returns the dimension of 1/d.
func (d Dimension) Inverse() Dimension {
	for i := range d {
		d[i] = -d[i]
	}
	return d
}

// IsZero reports whether d is dimensionless.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// String formats d in canonical form, for example "kg.m^2/s^3.A".
func (d Dimension) String() string {
	var num, den []string
	for i, e := range d {
		switch {
		case e > 0:
			num = append(num, factor(BaseSymbols[i], e))
		case e < 0:
			den = append(den, factor(BaseSymbols[i], -e))
		}
	}
	s := "1"
	if len(num) > 0 {
		s = strings.Join(num, ".")
	}
	if len(den) > 0 {
		s += "/" + strings.Join(den, ".")
	}
	return s
}

func factor(sym string, e int8) string {
	if e == 1 {
		return sym
	}
	return sym + "^" + strconv.Itoa(int(e))
}
