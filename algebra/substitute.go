package algebra

import (
	"sort"

	"vFGB/internal/qfield"
)

// Pow returns p^e via repeated multiplication. e must be >= 0.
func (ar *Arena) Pow(p *Polynode, e int) *Polynode {
	if e < 0 {
		panic("algebra: Pow: negative exponent")
	}
	result := ar.one
	base := p
	for e > 0 {
		if e&1 == 1 {
			result = ar.Mul(result, base)
		}
		base = ar.Mul(base, base)
		e >>= 1
	}
	return result
}

// singleMonoPolynode wraps one (Node, exponent) factor as a monic
// single-term Polynode.
func (ar *Arena) singleMonoPolynode(n *Node, exp int) *Polynode {
	m := ar.internMononode(map[*Node]int{n: exp})
	return ar.internPolynode([]summand{{mono: m, coeff: qfield.One()}})
}

// ScaleCoeff returns c*p, a pure scalar multiple (m = 1).
func (ar *Arena) ScaleCoeff(p *Polynode, c qfield.Elem) *Polynode {
	return ar.Scale(p, ar.oneM, c)
}

// SubstituteVar substitutes x_k by v throughout p, hereditarily through
// every nested f(·) (spec.md §4.2's "P.sub(x_k, V)"). Each summand's
// Mononode factors partition into the substituted variable (multiplied in
// as v^e), other variables (retained unchanged) and Fun factors
// (recursively substituted inside their bodies, then rewrapped).
func (ar *Arena) SubstituteVar(p *Polynode, k int, v *Polynode) *Polynode {
	if p.IsZero() {
		return p
	}
	result := ar.zero
	for _, s := range p.summands {
		term := ar.one
		for _, f := range s.mono.factors {
			var factorPoly *Polynode
			switch {
			case f.node.Kind == NodeVar && f.node.Var == k:
				factorPoly = ar.Pow(v, f.exp)
			case f.node.Kind == NodeVar:
				factorPoly = ar.singleMonoPolynode(f.node, f.exp)
			default:
				qSub := ar.SubstituteVar(f.node.Fun, k, v)
				factorPoly = ar.singleMonoPolynode(ar.FunNode(qSub), f.exp)
			}
			term = ar.Mul(term, factorPoly)
		}
		term = ar.ScaleCoeff(term, s.coeff)
		result = ar.Add(result, term)
	}
	return result
}

// SubstituteZero sets every x_i, i in vars, to 0 throughout p, hereditarily
// through every nested f(·) (spec.md §4.2's "P.subs_zero(S)" and §4.5/§9's
// resolution of the hereditary-application open question). A summand whose
// Mononode contains any zeroed variable drops entirely; surviving summands
// keep their other Var factors and recurse into Fun factors.
func (ar *Arena) SubstituteZero(p *Polynode, vars map[int]bool) *Polynode {
	if p.IsZero() {
		return p
	}
	raw := make([]summand, 0, len(p.summands))
	for _, s := range p.summands {
		drop := false
		for _, f := range s.mono.varFactors() {
			if vars[f.node.Var] {
				drop = true
				break
			}
		}
		if drop {
			continue
		}
		newFactors := make(map[*Node]int, len(s.mono.factors))
		for _, f := range s.mono.factors {
			if f.node.Kind == NodeFun {
				qSub := ar.SubstituteZero(f.node.Fun, vars)
				newFactors[ar.FunNode(qSub)] += f.exp
			} else {
				newFactors[f.node] += f.exp
			}
		}
		raw = append(raw, summand{mono: ar.internMononode(newFactors), coeff: s.coeff})
	}
	return ar.internPolynode(raw)
}

// SubstituteVars renames x_i to x_{remap[i]} throughout p (x_i is left
// alone when i has no entry in remap), hereditarily through every nested
// f(·) (spec.md §4.2's "P.subs_var(R)"). Two original variables colliding
// into the same target have their exponents combined automatically by the
// per-summand factor map.
func (ar *Arena) SubstituteVars(p *Polynode, remap map[int]int) *Polynode {
	if p.IsZero() {
		return p
	}
	raw := make([]summand, 0, len(p.summands))
	for _, s := range p.summands {
		newFactors := make(map[*Node]int, len(s.mono.factors))
		for _, f := range s.mono.factors {
			if f.node.Kind == NodeVar {
				j := f.node.Var
				if mapped, ok := remap[j]; ok {
					j = mapped
				}
				newFactors[ar.VarNode(j)] += f.exp
			} else {
				qSub := ar.SubstituteVars(f.node.Fun, remap)
				newFactors[ar.FunNode(qSub)] += f.exp
			}
		}
		raw = append(raw, summand{mono: ar.internMononode(newFactors), coeff: s.coeff})
	}
	return ar.internPolynode(raw)
}

// ApplyFunc implements "if P = 0 then f(P + Q) = f(Q)" as a new
// hypothesis: f(p+q) - f(q) (spec.md §4.2's "P.apply_func(Q)").
func (ar *Arena) ApplyFunc(p, q *Polynode) *Polynode {
	sum := ar.Add(p, q)
	lhs := ar.singleMonoPolynode(ar.FunNode(sum), 1)
	rhs := ar.singleMonoPolynode(ar.FunNode(q), 1)
	return ar.Sub(lhs, rhs)
}

// OccurringVars returns the sorted, deduplicated set of variable indices
// appearing anywhere in p, including inside nested f(·) bodies — the
// "variables occurring (recursively, including those inside f(·))" that
// spec.md §4.5's preprocessing levels iterate subsets/permutations of.
func (ar *Arena) OccurringVars(p *Polynode) []int {
	seen := make(map[int]bool)
	var walk func(*Polynode)
	walk = func(q *Polynode) {
		for _, s := range q.summands {
			for _, f := range s.mono.factors {
				if f.node.Kind == NodeVar {
					seen[f.node.Var] = true
				} else {
					walk(f.node.Fun)
				}
			}
		}
	}
	walk(p)
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
