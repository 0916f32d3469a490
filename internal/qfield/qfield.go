// Package qfield wraps math/big.Rat as the exact field Q used as the
// coefficient domain throughout vFGB. It is the Go analogue of GMP's
// mpq_class in the original implementation: arbitrary-precision, exact,
// value-typed, and safe to copy and compare by value.
package qfield

import (
	"fmt"
	"math/big"
)

// Elem is an element of Q. The zero value is 0.
type Elem struct {
	r big.Rat
}

// Zero is the additive identity.
func Zero() Elem { return Elem{} }

// One is the multiplicative identity.
func One() Elem {
	var e Elem
	e.r.SetInt64(1)
	return e
}

// FromInt64 builds the element n/1.
func FromInt64(n int64) Elem {
	var e Elem
	e.r.SetInt64(n)
	return e
}

// FromFrac builds the element num/den. It panics if den is zero, matching
// math/big.Rat.SetFrac's own contract.
func FromFrac(num, den int64) Elem {
	var e Elem
	e.r.SetFrac64(num, den)
	return e
}

// FromRat adopts an existing big.Rat by value.
func FromRat(r *big.Rat) Elem {
	var e Elem
	e.r.Set(r)
	return e
}

// Add returns a + b.
func Add(a, b Elem) Elem {
	var e Elem
	e.r.Add(&a.r, &b.r)
	return e
}

// Sub returns a - b.
func Sub(a, b Elem) Elem {
	var e Elem
	e.r.Sub(&a.r, &b.r)
	return e
}

// Mul returns a * b.
func Mul(a, b Elem) Elem {
	var e Elem
	e.r.Mul(&a.r, &b.r)
	return e
}

// Neg returns -a.
func Neg(a Elem) Elem {
	var e Elem
	e.r.Neg(&a.r)
	return e
}

// Inv returns 1/a. It panics if a is zero: dividing by the additive
// identity of a field is a programming-contract violation, not a
// recoverable error.
func Inv(a Elem) Elem {
	if a.IsZero() {
		panic("qfield: inverse of zero")
	}
	var e Elem
	e.r.Inv(&a.r)
	return e
}

// Quo returns a / b. It panics if b is zero.
func Quo(a, b Elem) Elem {
	return Mul(a, Inv(b))
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool {
	return e.r.Sign() == 0
}

// IsOne reports whether e is the multiplicative identity.
func (e Elem) IsOne() bool {
	return e.r.Cmp(big.NewRat(1, 1)) == 0
}

// Sign returns -1, 0 or 1 depending on the sign of e.
func (e Elem) Sign() int {
	return e.r.Sign()
}

// Cmp compares e and o as rationals, returning -1, 0, or 1.
func (e Elem) Cmp(o Elem) int {
	return e.r.Cmp(&o.r)
}

// Equal reports whether e and o denote the same rational number.
func (e Elem) Equal(o Elem) bool {
	return e.Cmp(o) == 0
}

// Num and Den expose the reduced numerator/denominator, matching
// big.Rat's own guarantee that Rat values are always kept in lowest terms.
func (e Elem) Num() *big.Int { return e.r.Num() }
func (e Elem) Den() *big.Int { return e.r.Denom() }

// String renders e as an integer when the denominator is 1, else "a/b".
func (e Elem) String() string {
	if e.r.IsInt() {
		return e.r.Num().String()
	}
	return e.r.RatString()
}

// Parse reads a signed integer or a/b rational literal, the same grammar
// the command-language expression parser accepts for coefficients.
func Parse(s string) (Elem, error) {
	var e Elem
	if _, ok := e.r.SetString(s); !ok {
		return Elem{}, fmt.Errorf("qfield: invalid literal %q", s)
	}
	return e, nil
}
