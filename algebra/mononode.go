package algebra

import "strings"

// monoFactor is one (Node, exponent) entry of a Mononode, exponent always
// strictly positive (I2).
type monoFactor struct {
	node *Node
	exp  int
}

// Mononode is a power-product of Nodes: a finite multiset represented as
// factors sorted ascending by nodeLess, Fun factors before Var factors
// (since nodeLess puts every Fun node before every Var node).
type Mononode struct {
	factors []monoFactor
	hash    MononodeHash
	funDeg  int
	varDeg  int
	Stats   Stats
}

// funFactors and varFactors split the (already Fun-before-Var sorted)
// factor list at the Fun/Var boundary, for the grevlex walk.
func (m *Mononode) funFactors() []monoFactor {
	i := 0
	for i < len(m.factors) && m.factors[i].node.Kind == NodeFun {
		i++
	}
	return m.factors[:i]
}

func (m *Mononode) varFactors() []monoFactor {
	i := 0
	for i < len(m.factors) && m.factors[i].node.Kind == NodeFun {
		i++
	}
	return m.factors[i:]
}

// Hash returns the Mononode's 64-bit content hash. It is a genuine
// multiplicative homomorphism: Hash(m1*m2) == Hash(m1)*Hash(m2) (wrapping
// uint64 arithmetic), which is what lets Mul pre-check the arena for an
// already-interned product before doing a full factor merge.
func (m *Mononode) Hash() MononodeHash { return m.hash }

// Degree returns the total exponent sum (Fun degree plus Var degree).
func (m *Mononode) Degree() int { return m.funDeg + m.varDeg }

// VarDegree and PolDegree expose the two block degrees spec.md §3 names
// as derived Mononode fields (PolDegree counts Fun-factor exponents, the
// "f(·) degree").
func (m *Mononode) VarDegree() int { return m.varDeg }
func (m *Mononode) PolDegree() int { return m.funDeg }

// IsOne reports whether m is the empty product (the multiplicative
// identity, printed as "").
func (m *Mononode) IsOne() bool { return len(m.factors) == 0 }

// DivisibleBy reports whether every factor of d appears in m with
// exponent at least as large (spec.md §4.2 "m1 divisible_by m2").
func (m *Mononode) DivisibleBy(d *Mononode) bool {
	for _, df := range d.factors {
		if exponentOf(m.factors, df.node) < df.exp {
			return false
		}
	}
	return true
}

func exponentOf(factors []monoFactor, n *Node) int {
	for _, f := range factors {
		if f.node == n {
			return f.exp
		}
	}
	return 0
}

// String joins the factors by a space, one token per factor repeated
// `exp` times, matching the original's raw-multiset join (spec.md §4.2
// edge cases: the empty Mononode prints as "").
func (m *Mononode) String() string {
	if len(m.factors) == 0 {
		return ""
	}
	var b strings.Builder
	first := true
	for _, f := range m.factors {
		s := f.node.String()
		for k := 0; k < f.exp; k++ {
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString(s)
			first = false
		}
	}
	return b.String()
}

// FactorTokens expands m into one string token per unit of exponent, in
// canonical (Fun-before-Var, nodeLess) order — the same expansion
// String joins with spaces, exposed separately so a caller (the
// scrambled pretty-printer) can reorder the tokens before joining.
func (m *Mononode) FactorTokens() []string {
	tokens := make([]string, 0, m.funDeg+m.varDeg)
	for _, f := range m.factors {
		s := f.node.String()
		for k := 0; k < f.exp; k++ {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// buildMononode normalizes a raw (possibly repeated, possibly
// zero-exponent) factor multiset into the canonical sorted, positive-
// exponent-only representation (I2), and computes its hash/degrees/stats.
// It does not intern; callers go through Arena.internMononode.
func buildMononode(raw map[*Node]int) *Mononode {
	factors := make([]monoFactor, 0, len(raw))
	for n, e := range raw {
		if e == 0 {
			continue
		}
		factors = append(factors, monoFactor{node: n, exp: e})
	}
	sortFactors(factors)

	h := uint64(1)
	funDeg, varDeg := 0, 0
	for _, f := range factors {
		h *= powHash(f.node.hash, f.exp)
		if f.node.Kind == NodeFun {
			funDeg += f.exp
		} else {
			varDeg += f.exp
		}
	}
	return &Mononode{
		factors: factors,
		hash:    h,
		funDeg:  funDeg,
		varDeg:  varDeg,
		Stats:   monoStats(factors),
	}
}

func sortFactors(factors []monoFactor) {
	// Small N in practice (one entry per distinct Node); insertion sort
	// keeps this allocation-free and is plenty fast.
	for i := 1; i < len(factors); i++ {
		for j := i; j > 0 && nodeLess(factors[j].node, factors[j-1].node); j-- {
			factors[j], factors[j-1] = factors[j-1], factors[j]
		}
	}
}

func factorsToMap(factors []monoFactor) map[*Node]int {
	m := make(map[*Node]int, len(factors))
	for _, f := range factors {
		m[f.node] += f.exp
	}
	return m
}
