package groebner

import (
	"container/heap"
	"sort"

	"vFGB/algebra"
	"vFGB/internal/qfield"
)

// Snapshot is one iteration's telemetry sample: basis size and pair-queue
// length right before a pair is processed. The report package's HTML
// visualizer plots these over the run.
type Snapshot struct {
	Iteration int
	BasisSize int
	QueueLen  int
}

// Result is the outcome of one Buchberger run: the reduced basis (or the
// best partial basis accumulated before the deadline hit), whether the run
// finished before its deadline, and the per-iteration telemetry trail.
type Result struct {
	Basis     []*algebra.Polynode
	Finished  bool
	Snapshots []Snapshot
}

// Engine runs Buchberger's algorithm against one Arena. An Engine, like the
// Arena it wraps, must not be shared across goroutines.
type Engine struct {
	Arena    *algebra.Arena
	Deadline *Deadline
}

// New returns an Engine over ar with the given deadline (nil or a
// non-expiring Deadline means unbounded).
func New(ar *algebra.Arena, deadline *Deadline) *Engine {
	return &Engine{Arena: ar, Deadline: deadline}
}

// Run computes the reduced Gröbner basis of the ideal generated by gens, or
// as much of it as fits before the deadline (spec.md §4.4). Post-processing
// (minimal then reduced basis) always runs, even on a deadline exit, so
// callers always receive a valid monic reduced partial basis.
func (e *Engine) Run(gens []*algebra.Polynode) *Result {
	ar := e.Arena
	var basis []*algebra.Polynode
	pq := &pairQueue{}
	heap.Init(pq)
	seq := 0

	addGenerator := func(p *algebra.Polynode) {
		if p.IsZero() {
			return
		}
		p = monic(ar, p)
		idx := len(basis)
		basis = append(basis, p)
		for k := 0; k < idx; k++ {
			lcm := ar.LcmMono(basis[k].LeadingMono(), p.LeadingMono())
			seq++
			heap.Push(pq, pairItem{i: idx, j: k, lcm: lcm, seq: seq})
		}
	}

	for _, g := range gens {
		addGenerator(e.leadReduce(g, basis))
	}

	processed := make(map[[2]int]bool)
	var snapshots []Snapshot
	finished := true
	iter := 0

	for pq.Len() > 0 {
		if e.Deadline.Expired() {
			finished = false
			break
		}
		iter++
		snapshots = append(snapshots, Snapshot{Iteration: iter, BasisSize: len(basis), QueueLen: pq.Len()})

		item := heap.Pop(pq).(pairItem)
		i, j := item.i, item.j
		pi, pj := basis[i], basis[j]

		// Criterion 1 (coprime): LM(p_i)*LM(p_j) == lcm means the two
		// leading monomials share no common factor; their S-polynomial is
		// guaranteed to reduce to zero and can be skipped outright.
		if ar.MulMono(pi.LeadingMono(), pj.LeadingMono()) == item.lcm {
			processed[pairKey(i, j)] = true
			continue
		}

		// Criterion 2 (chain): some earlier-processed k already connects i
		// and j through a pair whose LM divides the current LCM.
		if e.chainCriterionApplies(basis, i, j, item.lcm, processed) {
			processed[pairKey(i, j)] = true
			continue
		}

		s := e.sPoly(pi, pj)
		r := e.leadReduce(s, basis)
		addGenerator(r)
		processed[pairKey(i, j)] = true

		if e.Deadline.Expired() {
			finished = false
			break
		}
	}

	minimal := minimalBasis(basis)
	reduced := reducedBasis(ar, minimal)
	sort.Slice(reduced, func(i, j int) bool {
		return reduced[i].Stats.Weight.Cmp(reduced[j].Stats.Weight) < 0
	})

	return &Result{Basis: reduced, Finished: finished, Snapshots: snapshots}
}

func pairKey(i, j int) [2]int {
	if i < j {
		i, j = j, i
	}
	return [2]int{i, j}
}

func (e *Engine) chainCriterionApplies(basis []*algebra.Polynode, i, j int, lcm *algebra.Mononode, processed map[[2]int]bool) bool {
	for k := range basis {
		if k == i || k == j {
			continue
		}
		if !processed[pairKey(i, k)] || !processed[pairKey(j, k)] {
			continue
		}
		if lcm.DivisibleBy(basis[k].LeadingMono()) {
			return true
		}
	}
	return false
}

// sPoly computes S(p,q) = (lcm/LM(p))·p/LC(p) − (lcm/LM(q))·q/LC(q)
// (spec.md §9's glossary entry).
func (e *Engine) sPoly(p, q *algebra.Polynode) *algebra.Polynode {
	ar := e.Arena
	lcm := ar.LcmMono(p.LeadingMono(), q.LeadingMono())
	mp := ar.QuoExactMono(lcm, p.LeadingMono())
	mq := ar.QuoExactMono(lcm, q.LeadingMono())
	t1 := ar.Scale(p, mp, qfield.Inv(p.LeadingCoeff()))
	t2 := ar.Scale(q, mq, qfield.Inv(q.LeadingCoeff()))
	return ar.Sub(t1, t2)
}

// leadReduce repeatedly replaces p by p − (LC(p)/LC(b))·(LM(p)/LM(b))·b for
// whichever b ∈ basis has LM(b) dividing LM(p), until none does. Terminates
// because the leading monomial strictly decreases under the arena's order.
func (e *Engine) leadReduce(p *algebra.Polynode, basis []*algebra.Polynode) *algebra.Polynode {
	ar := e.Arena
	for !p.IsZero() {
		reducedAny := false
		for _, b := range basis {
			if e.Deadline.Expired() {
				return p
			}
			if p.LeadingMono().DivisibleBy(b.LeadingMono()) {
				quo := ar.QuoExactMono(p.LeadingMono(), b.LeadingMono())
				c := qfield.Quo(p.LeadingCoeff(), b.LeadingCoeff())
				p = ar.Sub(p, ar.Scale(b, quo, c))
				reducedAny = true
				break
			}
		}
		if !reducedAny {
			return p
		}
	}
	return p
}

// reduceOneTerm performs at most one full_reduce step: it finds the first
// (mono, b) pair across p's terms and the given basis sets where LM(b)
// divides mono, and subtracts the matching multiple. ok is false once no
// term of p is divisible by any basis element's leading monomial.
func reduceOneTerm(ar *algebra.Arena, p *algebra.Polynode, sets ...[]*algebra.Polynode) (*algebra.Polynode, bool) {
	for _, t := range p.Terms() {
		for _, set := range sets {
			for _, b := range set {
				if b.IsZero() {
					continue
				}
				if t.Mono.DivisibleBy(b.LeadingMono()) {
					quo := ar.QuoExactMono(t.Mono, b.LeadingMono())
					c := qfield.Quo(t.Coeff, b.LeadingCoeff())
					return ar.Sub(p, ar.Scale(b, quo, c)), true
				}
			}
		}
	}
	return p, false
}

// fullReduce repeatedly reduces ANY monomial of p (not just the leading
// one) against basis1 then basis2, until no monomial of p remains divisible
// by any of their leading monomials (spec.md §4.4's full_reduce).
func fullReduce(ar *algebra.Arena, p *algebra.Polynode, sets ...[]*algebra.Polynode) *algebra.Polynode {
	for {
		next, ok := reduceOneTerm(ar, p, sets...)
		if !ok {
			return p
		}
		p = next
	}
}

// monic scales p so its leading coefficient becomes 1.
func monic(ar *algebra.Arena, p *algebra.Polynode) *algebra.Polynode {
	if p.IsZero() {
		return p
	}
	c := p.LeadingCoeff()
	if c.IsOne() {
		return p
	}
	return ar.ScaleCoeff(p, qfield.Inv(c))
}

// minimalBasis drops any generator whose leading monomial is a multiple
// of another surviving generator's leading monomial (spec.md §4.4's
// "minimal basis" post-processing step). On a tie (equal leading
// monomials) the later generator is the one dropped, per spec.md §4.4.
func minimalBasis(basis []*algebra.Polynode) []*algebra.Polynode {
	keep := make([]bool, len(basis))
	for i, p := range basis {
		keep[i] = !p.IsZero()
	}
	for i, p := range basis {
		if !keep[i] {
			continue
		}
		pl := p.LeadingMono()
		for j, q := range basis {
			if i == j || !keep[j] {
				continue
			}
			ql := q.LeadingMono()
			if !pl.DivisibleBy(ql) {
				continue
			}
			if pl == ql && i < j {
				continue // tie: keep the earlier generator, drop the later
			}
			keep[i] = false
			break
		}
	}
	out := make([]*algebra.Polynode, 0, len(basis))
	for i, p := range basis {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// reducedBasis replaces each minimal-basis element, in order, by its
// full_reduce against the remaining minimal elements and the already-
// reduced accumulator, then makes it monic again (spec.md §4.4's "reduced
// basis" post-processing step).
func reducedBasis(ar *algebra.Arena, minimal []*algebra.Polynode) []*algebra.Polynode {
	out := make([]*algebra.Polynode, 0, len(minimal))
	for i, p := range minimal {
		r := fullReduce(ar, p, minimal[i+1:], out)
		out = append(out, monic(ar, r))
	}
	return out
}
