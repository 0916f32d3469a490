package algebra

import "testing"

func TestFunBeatsVarForLeading(t *testing.T) {
	ar := NewArena()
	x1 := ar.VarNode(1)
	fx1 := ar.FunNode(ar.singleMonoPolynode(x1, 1))

	varMono := ar.MononodeOf(map[*Node]int{x1: 5})
	funMono := ar.MononodeOf(map[*Node]int{fx1: 1})

	if compareMono(funMono, varMono) <= 0 {
		t.Fatalf("a Mononode containing f(.) must outrank any pure-Var Mononode")
	}
}

func TestGrevlexOnPureVarDegree2(t *testing.T) {
	// Standard grevlex with x1 > x2: x1^2 > x1 x2 > x2^2.
	ar := NewArena()
	x1 := ar.VarNode(1)
	x2 := ar.VarNode(2)

	x1sq := ar.MononodeOf(map[*Node]int{x1: 2})
	x1x2 := ar.MononodeOf(map[*Node]int{x1: 1, x2: 1})
	x2sq := ar.MononodeOf(map[*Node]int{x2: 2})

	if compareMono(x1sq, x1x2) <= 0 {
		t.Fatalf("x1^2 should outrank x1 x2")
	}
	if compareMono(x1x2, x2sq) <= 0 {
		t.Fatalf("x1 x2 should outrank x2^2")
	}
}

func TestHigherDegreeOutranksLowerDegree(t *testing.T) {
	ar := NewArena()
	x1 := ar.VarNode(1)
	lo := ar.MononodeOf(map[*Node]int{x1: 1})
	hi := ar.MononodeOf(map[*Node]int{x1: 2})
	if compareMono(hi, lo) <= 0 {
		t.Fatalf("higher total degree should outrank lower total degree")
	}
}

func TestEmptyMononodeIsSmallest(t *testing.T) {
	ar := NewArena()
	x1 := ar.VarNode(1)
	m := ar.MononodeOf(map[*Node]int{x1: 1})
	if compareMono(ar.OneM(), m) >= 0 {
		t.Fatalf("the empty Mononode must be the smallest under the leading order")
	}
}

func TestPolynodeSummandsSortedDescending(t *testing.T) {
	ar := NewArena()
	x1 := ar.VarNode(1)
	x2 := ar.VarNode(2)
	m1 := ar.MononodeOf(map[*Node]int{x1: 1})
	m2 := ar.MononodeOf(map[*Node]int{x2: 1})
	m3 := ar.MononodeOf(map[*Node]int{x1: 1, x2: 1})

	// Intentionally supplied out of order.
	p := ar.internPolynode([]summand{
		{mono: m1, coeff: mustElem(1)},
		{mono: m3, coeff: mustElem(1)},
		{mono: m2, coeff: mustElem(1)},
	})
	if p.LeadingMono() != m3 {
		t.Fatalf("leading monomial should be the degree-2 term x1 x2")
	}
	for i := 1; i < len(p.summands); i++ {
		if compareMono(p.summands[i-1].mono, p.summands[i].mono) <= 0 {
			t.Fatalf("summands not strictly descending at index %d", i)
		}
	}
}
