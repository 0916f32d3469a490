package algebra

import "vFGB/internal/qfield"

// MulMono returns the arena-canonical product a*b: the union of their
// factor multisets (exponents add). It checks the exact multiplicative
// fast path first (spec.md §4.1's Hashing paragraph): Hash(a)*Hash(b) is
// always the true product hash, so if a Mononode is already interned under
// that hash it must already be a*b and is returned without re-merging the
// factor lists.
func (ar *Arena) MulMono(a, b *Mononode) *Mononode {
	if a.IsOne() {
		return b
	}
	if b.IsOne() {
		return a
	}
	candidate := a.hash * b.hash
	if cached, ok := ar.mononodes[candidate]; ok {
		return cached
	}
	merged := factorsToMap(a.factors)
	for n, e := range factorsToMap(b.factors) {
		merged[n] += e
	}
	return ar.internMononode(merged)
}

// LcmMono returns the least common multiple of a and b: for each factor,
// the max of its two exponents.
func (ar *Arena) LcmMono(a, b *Mononode) *Mononode {
	out := factorsToMap(a.factors)
	for n, e := range factorsToMap(b.factors) {
		if e > out[n] {
			out[n] = e
		}
	}
	return ar.internMononode(out)
}

// QuoExactMono returns a/b. b must divide a (DivisibleBy(a,b)); violating
// that is a programming-contract bug and panics, the same way the
// original's implicit unsigned-exponent subtraction would underflow.
func (ar *Arena) QuoExactMono(a, b *Mononode) *Mononode {
	out := factorsToMap(a.factors)
	for n, e := range factorsToMap(b.factors) {
		if out[n] < e {
			panic("algebra: QuoExactMono: divisor does not divide dividend")
		}
		out[n] -= e
	}
	return ar.internMononode(out)
}

// SymmetricQuotient returns (lcm(a,b)/a, lcm(a,b)/b) (spec.md §4.2).
func (ar *Arena) SymmetricQuotient(a, b *Mononode) (*Mononode, *Mononode) {
	l := ar.LcmMono(a, b)
	return ar.QuoExactMono(l, a), ar.QuoExactMono(l, b)
}

// Neg returns -p: every coefficient negated, summand order preserved
// (order in a Polynode depends only on the Mononode, never the sign of the
// coefficient).
func (ar *Arena) Neg(p *Polynode) *Polynode {
	if p.IsZero() {
		return p
	}
	raw := make([]summand, len(p.summands))
	for i, s := range p.summands {
		raw[i] = summand{mono: s.mono, coeff: qfield.Neg(s.coeff)}
	}
	return ar.internPolynode(raw)
}

// Add returns p+q by concatenating the two summand lists and letting the
// canonicalizing constructor combine equal monomials, drop zeros and re-sort
// (summand count of the result is at most |p|+|q|). Zero-identity is an
// exact O(1) shortcut: p+0 and 0+q return the other operand directly
// without touching the arena.
func (ar *Arena) Add(p, q *Polynode) *Polynode {
	if p.IsZero() {
		return q
	}
	if q.IsZero() {
		return p
	}
	raw := make([]summand, 0, len(p.summands)+len(q.summands))
	raw = append(raw, p.summands...)
	raw = append(raw, q.summands...)
	return ar.internPolynode(raw)
}

// Sub returns p-q = p + (-q). p-p (by pointer identity, which hash-consing
// guarantees coincides with structural equality, I1) is fast-pathed to the
// arena's zero Polynode without negating or merging anything — this is the
// "−" fast path spec.md's Hashing paragraph calls out: the XOR-combine
// Polynode hash cancels a value against itself exactly.
func (ar *Arena) Sub(p, q *Polynode) *Polynode {
	if p == q {
		return ar.zero
	}
	return ar.Add(p, ar.Neg(q))
}

// Mul returns p*q: the Cartesian product of summands, with monomial
// products computed via MulMono's exact fast path and coefficients
// accumulated per resulting monomial.
func (ar *Arena) Mul(p, q *Polynode) *Polynode {
	if p.IsZero() || q.IsZero() {
		return ar.zero
	}
	if len(p.summands) == 1 && p.summands[0].mono.IsOne() && p.summands[0].coeff.IsOne() {
		return q
	}
	if len(q.summands) == 1 && q.summands[0].mono.IsOne() && q.summands[0].coeff.IsOne() {
		return p
	}
	raw := make([]summand, 0, len(p.summands)*len(q.summands))
	for _, sp := range p.summands {
		for _, sq := range q.summands {
			raw = append(raw, summand{
				mono:  ar.MulMono(sp.mono, sq.mono),
				coeff: qfield.Mul(sp.coeff, sq.coeff),
			})
		}
	}
	return ar.internPolynode(raw)
}

// Scale returns c*m*p: p with every monomial multiplied by m and every
// coefficient scaled by c. Multiplying every monomial of p by the same m
// is a monotone shift under compareMono (m*mono_i compares the same way
// mono_i does, for a fixed m, since compareMono's degree/grevlex walk only
// ever looks at factors the two sides don't share at the same exponent —
// m contributes identically to every summand). Scale still funnels through
// the general canonicalizing constructor for simplicity; the monotone
// shift means that pass degenerates to a no-op resort in practice.
func (ar *Arena) Scale(p *Polynode, m *Mononode, c qfield.Elem) *Polynode {
	if c.IsZero() || p.IsZero() {
		return ar.zero
	}
	raw := make([]summand, len(p.summands))
	for i, s := range p.summands {
		raw[i] = summand{mono: ar.MulMono(m, s.mono), coeff: qfield.Mul(c, s.coeff)}
	}
	return ar.internPolynode(raw)
}
