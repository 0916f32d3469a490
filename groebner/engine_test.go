package groebner

import (
	"testing"

	"vFGB/algebra"
	"vFGB/internal/qfield"
)

func TestBasisGeneratesSameIdealAsInput(t *testing.T) {
	// x1^2 - x2, x1*x2 - 1: a simple system with a finite Gröbner basis.
	ar := algebra.NewArena()
	x1 := ar.VarNode(1)
	x2 := ar.VarNode(2)

	m1 := ar.MononodeOf(map[*algebra.Node]int{x1: 2})
	m2 := ar.MononodeOf(map[*algebra.Node]int{x2: 1})
	g1 := ar.Sub(
		ar.Scale(ar.OneP(), m1, qfield.One()),
		ar.Scale(ar.OneP(), m2, qfield.One()),
	)

	m3 := ar.MononodeOf(map[*algebra.Node]int{x1: 1, x2: 1})
	g2 := ar.Sub(
		ar.Scale(ar.OneP(), m3, qfield.One()),
		ar.OneP(),
	)

	eng := New(ar, NewDeadline(0))
	res := eng.Run([]*algebra.Polynode{g1, g2})

	if !res.Finished {
		t.Fatalf("unbounded run should always finish")
	}
	if len(res.Basis) == 0 {
		t.Fatalf("basis should not be empty for a non-trivial ideal")
	}
	for _, b := range res.Basis {
		if !b.LeadingCoeff().IsOne() {
			t.Fatalf("every basis element must be monic, got leading coeff %s", b.LeadingCoeff().String())
		}
	}
	for i := 1; i < len(res.Basis); i++ {
		if res.Basis[i-1].Stats.Weight.Cmp(res.Basis[i].Stats.Weight) > 0 {
			t.Fatalf("basis not sorted by ascending stats.weight")
		}
	}
	// Every basis element is built from the inputs, so the inputs reducing
	// to 0 modulo the basis completes the equality of the two ideals.
	for _, g := range []*algebra.Polynode{g1, g2} {
		if r := fullReduce(ar, g, res.Basis); !r.IsZero() {
			t.Fatalf("input %q does not reduce to 0 modulo the basis (remainder %q)", g.String(), r.String())
		}
	}
}

func TestMinimalBasisDropsRedundantLeadingMonomials(t *testing.T) {
	ar := algebra.NewArena()
	x1 := ar.VarNode(1)
	x2 := ar.VarNode(2)

	// x1 and x1*x2: the second's LM is a multiple of the first's.
	p := ar.Scale(ar.OneP(), ar.MononodeOf(map[*algebra.Node]int{x1: 1}), qfield.One())
	q := ar.Scale(ar.OneP(), ar.MononodeOf(map[*algebra.Node]int{x1: 1, x2: 1}), qfield.One())

	out := minimalBasis([]*algebra.Polynode{p, q})
	if len(out) != 1 || out[0] != p {
		t.Fatalf("minimalBasis should drop the generator with the redundant LM")
	}
}

func TestMinimalBasisTiesDropTheLaterGenerator(t *testing.T) {
	ar := algebra.NewArena()
	x1 := ar.VarNode(1)
	m := ar.MononodeOf(map[*algebra.Node]int{x1: 1})

	// Two generators sharing the same leading monomial x1, differing only
	// in a trailing constant term: the tie must drop the later one.
	p := ar.Scale(ar.OneP(), m, qfield.One())
	q := ar.Add(ar.Scale(ar.OneP(), m, qfield.One()), ar.Scale(ar.OneP(), ar.OneM(), qfield.FromInt64(5)))

	out := minimalBasis([]*algebra.Polynode{p, q})
	if len(out) != 1 || out[0] != p {
		t.Fatalf("minimalBasis should keep the earlier generator and drop the later one on a leading-monomial tie")
	}

	out = minimalBasis([]*algebra.Polynode{q, p})
	if len(out) != 1 || out[0] != q {
		t.Fatalf("minimalBasis should keep whichever tied generator comes first, got %v", out)
	}
}

func TestDeadlineZeroMeansUnbounded(t *testing.T) {
	d := NewDeadline(0)
	if d.Expired() {
		t.Fatalf("a zero-millisecond deadline means unbounded, should never expire")
	}
}

func TestDeadlineStopForcesExpired(t *testing.T) {
	d := NewDeadline(0)
	d.Stop()
	if !d.Expired() {
		t.Fatalf("Stop() should force Expired() to report true")
	}
}

func TestRunOnAlreadyGroebnerBasisIsStable(t *testing.T) {
	// A single generator is trivially its own (monic) reduced basis.
	ar := algebra.NewArena()
	x1 := ar.VarNode(1)
	g := ar.Scale(ar.OneP(), ar.MononodeOf(map[*algebra.Node]int{x1: 1}), qfield.FromInt64(2))

	eng := New(ar, NewDeadline(0))
	res := eng.Run([]*algebra.Polynode{g})
	if len(res.Basis) != 1 {
		t.Fatalf("expected a single-element basis, got %d", len(res.Basis))
	}
	if !res.Basis[0].LeadingCoeff().IsOne() {
		t.Fatalf("result must be monic")
	}
}

func TestZeroGeneratorsYieldEmptyBasis(t *testing.T) {
	ar := algebra.NewArena()
	eng := New(ar, NewDeadline(0))
	res := eng.Run(nil)
	if len(res.Basis) != 0 {
		t.Fatalf("no generators should yield an empty basis")
	}
	if !res.Finished {
		t.Fatalf("an empty run should report finished")
	}
}
