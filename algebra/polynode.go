package algebra

import (
	"strings"

	"vFGB/internal/qfield"
)

// summand is one (Mononode, coefficient) pair of a Polynode, coefficient
// always non-zero (I3).
type summand struct {
	mono  *Mononode
	coeff qfield.Elem
}

// Polynode is a finite ℚ-linear combination of Mononodes: a ring element.
// Summands are sorted strictly descending by compareMono, so index 0 is
// always the leading term (I3, I4).
type Polynode struct {
	summands []summand
	hash     PolynodeHash
	Stats    Stats
}

// Hash returns the Polynode's 64-bit content hash: an order-independent
// (additive-commutative) XOR-combine of a finalized per-summand digest, so
// P's hash does not depend on the order summands happened to be supplied
// in before canonicalization.
func (p *Polynode) Hash() PolynodeHash { return p.hash }

// IsZero reports whether p is the empty sum.
func (p *Polynode) IsZero() bool { return len(p.summands) == 0 }

// Len returns the number of non-zero summands.
func (p *Polynode) Len() int { return len(p.summands) }

// LeadingMono returns the Mononode at index 0. Panics on the zero
// Polynode: callers (the Buchberger engine) only ever call this on
// generators already known non-zero, and a zero leading term is an
// algebra invariant violation (spec.md §7's "fatal" error kind).
func (p *Polynode) LeadingMono() *Mononode {
	if p.IsZero() {
		panic("algebra: LeadingMono of zero Polynode")
	}
	return p.summands[0].mono
}

// LeadingCoeff returns the coefficient at index 0. See LeadingMono.
func (p *Polynode) LeadingCoeff() qfield.Elem {
	if p.IsZero() {
		panic("algebra: LeadingCoeff of zero Polynode")
	}
	return p.summands[0].coeff
}

// CoeffOf returns the coefficient of m in p, or the zero element if m does
// not occur.
func (p *Polynode) CoeffOf(m *Mononode) qfield.Elem {
	for _, s := range p.summands {
		if s.mono == m {
			return s.coeff
		}
	}
	return qfield.Zero()
}

// Terms returns the (Mononode, coefficient) pairs in leading-first order.
// The returned slice must not be mutated.
func (p *Polynode) Terms() []struct {
	Mono  *Mononode
	Coeff qfield.Elem
} {
	out := make([]struct {
		Mono  *Mononode
		Coeff qfield.Elem
	}, len(p.summands))
	for i, s := range p.summands {
		out[i] = struct {
			Mono  *Mononode
			Coeff qfield.Elem
		}{s.mono, s.coeff}
	}
	return out
}

// String reproduces the original's to_string exactly: coefficient 1 is
// elided, -1 is printed as a bare "-", and the sign of every later summand
// is folded into its " + "/" - " separator rather than the coefficient
// itself. Combined with the command-language parser, parse(p.String())
// round-trips to p (spec.md §8's round-trip law).
func (p *Polynode) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, s := range p.summands {
		monoStr := s.mono.String()
		if i == 0 {
			writeLeadTerm(&b, s.coeff, monoStr)
			continue
		}
		writeTrailingTerm(&b, s.coeff, monoStr)
	}
	return b.String()
}

func writeLeadTerm(b *strings.Builder, c qfield.Elem, monoStr string) {
	switch {
	case c.IsOne():
	case qfield.Neg(c).IsOne():
		b.WriteByte('-')
	default:
		b.WriteString(c.String())
		if monoStr != "" {
			b.WriteByte(' ')
		}
	}
	b.WriteString(monoStr)
}

func writeTrailingTerm(b *strings.Builder, c qfield.Elem, monoStr string) {
	if c.Sign() > 0 {
		b.WriteString(" + ")
		if !c.IsOne() {
			b.WriteString(c.String())
			if monoStr != "" {
				b.WriteByte(' ')
			}
		}
	} else {
		b.WriteString(" - ")
		abs := qfield.Neg(c)
		if !abs.IsOne() {
			b.WriteString(abs.String())
			if monoStr != "" {
				b.WriteByte(' ')
			}
		}
	}
	b.WriteString(monoStr)
}

// buildPolynode normalizes a raw summand list (possibly with duplicate
// Mononodes or zero coefficients) into the canonical sorted, non-zero-only
// representation, and computes its hash/stats. It does not intern;
// callers go through Arena.internPolynode.
func buildPolynode(raw []summand) *Polynode {
	byMono := make(map[*Mononode]qfield.Elem, len(raw))
	order := make([]*Mononode, 0, len(raw))
	for _, s := range raw {
		if existing, ok := byMono[s.mono]; ok {
			byMono[s.mono] = qfield.Add(existing, s.coeff)
		} else {
			byMono[s.mono] = s.coeff
			order = append(order, s.mono)
		}
	}
	summands := make([]summand, 0, len(order))
	for _, m := range order {
		c := byMono[m]
		if c.IsZero() {
			continue
		}
		summands = append(summands, summand{mono: m, coeff: c})
	}
	sortSummands(summands)

	h := uint64(0)
	for _, s := range summands {
		h ^= combineSummand(s.mono.hash, s.coeff.Num(), s.coeff.Den())
	}
	return &Polynode{summands: summands, hash: h, Stats: polyStats(summands)}
}

func sortSummands(s []summand) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && compareMono(s[j].mono, s[j-1].mono) > 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
