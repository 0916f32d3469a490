package algebra

import "math/big"

// Stats records the weight/nested_weight/depth/approx_length attributes
// spec.md §3 defines for Nodes, Mononodes and Polynodes. They feed the
// monomial order's Fun-node tie-break, the reduced basis's display order
// (sorted by Weight ascending), and nothing else — they are never used for
// correctness of the ideal-theoretic operations, only for ordering and
// pretty output.
//
// Weight and NestedWeight are big.Int because Fun nesting squares the
// weight at every level (weight(f(P)) = weight(P)^2): even x1 (weight 2)
// nested six times reaches 2^64 and overflows a machine word, so this has to be
// arbitrary-precision the same way ntru/poly.go keeps ring coefficients in
// *big.Int instead of int64.
type Stats struct {
	Weight       *big.Int
	NestedWeight *big.Int
	Depth        int
	Length       int
}

func zeroStats() Stats {
	return Stats{Weight: big.NewInt(0), NestedWeight: big.NewInt(0)}
}

func varStats() Stats {
	return Stats{Weight: big.NewInt(2), NestedWeight: big.NewInt(0), Depth: 0, Length: 2}
}

func funStats(inner Stats) Stats {
	w := new(big.Int).Mul(inner.Weight, inner.Weight)
	return Stats{
		Weight:       w,
		NestedWeight: new(big.Int).Set(inner.Weight),
		Depth:        inner.Depth + 1,
		Length:       inner.Length + 3,
	}
}

// monoStats sums per-factor stats times their exponent, taking the max
// depth across factors.
func monoStats(factors []monoFactor) Stats {
	s := zeroStats()
	for _, f := range factors {
		n := big.NewInt(int64(f.exp))
		s.Weight.Add(s.Weight, new(big.Int).Mul(f.node.Stats.Weight, n))
		s.NestedWeight.Add(s.NestedWeight, new(big.Int).Mul(f.node.Stats.NestedWeight, n))
		s.Length += f.node.Stats.Length * f.exp
		if f.node.Stats.Depth > s.Depth {
			s.Depth = f.node.Stats.Depth
		}
	}
	return s
}

// polyStats sums per-summand Mononode stats, with +2 length per summand
// (the "+ n" / "- n" operator plus the coefficient token in the printed
// form), taking the max depth across summands.
func polyStats(summands []summand) Stats {
	s := zeroStats()
	for _, t := range summands {
		s.Weight.Add(s.Weight, t.mono.Stats.Weight)
		s.NestedWeight.Add(s.NestedWeight, t.mono.Stats.NestedWeight)
		s.Length += t.mono.Stats.Length + 2
		if t.mono.Stats.Depth > s.Depth {
			s.Depth = t.mono.Stats.Depth
		}
	}
	return s
}
