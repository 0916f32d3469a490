package algebra

import "vFGB/internal/qfield"

// Arena is the single owner of every Node, Mononode and Polynode created
// during one computation session. It hash-conses all three: constructing
// the "same" entity twice (by content) always returns the same pointer
// (I1). An Arena must not be used from more than one goroutine at a time —
// parallelism in vFGB is achieved by giving each concurrent unit of work
// (spec.md §5's "id") its own Arena, never by sharing one.
type Arena struct {
	nodes     map[NodeHash]*Node
	mononodes map[MononodeHash]*Mononode
	polynodes map[PolynodeHash]*Polynode

	oneM *Mononode
	zero *Polynode
	one  *Polynode
}

// NewArena returns an empty arena, pre-seeded with the constants 1 (as a
// Mononode), 0 and 1 (as Polynodes).
func NewArena() *Arena {
	a := &Arena{
		nodes:     make(map[NodeHash]*Node),
		mononodes: make(map[MononodeHash]*Mononode),
		polynodes: make(map[PolynodeHash]*Polynode),
	}
	a.oneM = a.internMononode(nil)
	a.zero = a.internPolynode(nil)
	a.one = a.internPolynode([]summand{{mono: a.oneM, coeff: qfield.One()}})
	return a
}

// VarNode returns the arena-unique Node for x_i, i >= 1.
func (a *Arena) VarNode(i int) *Node {
	if i < 1 {
		panic("algebra: variable index must be >= 1")
	}
	n := newVarNode(i)
	if cached, ok := a.nodes[n.hash]; ok {
		return cached
	}
	a.nodes[n.hash] = n
	return n
}

// FunNode returns the arena-unique Node for f(p). p must already belong to
// this arena (spec.md §4.1's error condition: calling this with a foreign
// Polynode is a programming-contract violation and is not checked here,
// matching the original's undefined-behaviour treatment of the same
// mistake).
func (a *Arena) FunNode(p *Polynode) *Node {
	n := newFunNode(p)
	if cached, ok := a.nodes[n.hash]; ok {
		return cached
	}
	a.nodes[n.hash] = n
	return n
}

// OneM returns the identity Mononode (the empty product).
func (a *Arena) OneM() *Mononode { return a.oneM }

// ZeroP returns the zero Polynode (the empty sum).
func (a *Arena) ZeroP() *Polynode { return a.zero }

// OneP returns the Polynode 1.
func (a *Arena) OneP() *Polynode { return a.one }

// internMononode normalizes, hash-conses and returns the canonical
// Mononode for the given factor multiset (nil/empty means the identity).
func (a *Arena) internMononode(raw map[*Node]int) *Mononode {
	m := buildMononode(raw)
	if cached, ok := a.mononodes[m.hash]; ok {
		return cached
	}
	a.mononodes[m.hash] = m
	return m
}

// MononodeOf builds the canonical Mononode for an explicit multiset of
// (Node, positive exponent) factors. A zero exponent drops that factor
// (I2); passing a negative exponent is a contract violation and panics,
// matching "construction must not
// silently accept duplicated factors with conflicting exponents" from
// spec.md §4.1 — the same discipline the original enforces by construction
// (its factor vector is always exponent-expanded, never signed).
func (a *Arena) MononodeOf(factors map[*Node]int) *Mononode {
	for n, e := range factors {
		if e < 0 {
			panic("algebra: negative exponent for factor " + n.String())
		}
	}
	return a.internMononode(factors)
}

// internPolynode normalizes, hash-conses and returns the canonical
// Polynode for the given summand list (nil/empty means zero). Summands
// sharing a Mononode are combined, zero-coefficient summands are dropped
// (I3), and the result is sorted descending by compareMono so index 0 is
// the leading term (I4 modulo minimization).
func (a *Arena) internPolynode(raw []summand) *Polynode {
	p := buildPolynode(raw)
	if cached, ok := a.polynodes[p.hash]; ok {
		return cached
	}
	a.polynodes[p.hash] = p
	return p
}
