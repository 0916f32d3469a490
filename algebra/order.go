package algebra

// nodeLess is the total order on Nodes from spec.md §4.3: Fun nodes sort
// before Var nodes ("Fun before Var"); among Fun nodes, higher weight
// sorts first, ties broken by raw hash; among Var nodes, smaller index
// sorts first.
//
// spec.md leaves the direction of the Fun-node hash tie-break unspecified
// ("ties broken by raw hash" without saying ascending or descending) — we
// resolve it as ascending hash, recorded as an open-question decision in
// DESIGN.md.
func nodeLess(a, b *Node) bool {
	if a == b {
		return false
	}
	if a.Kind != b.Kind {
		return a.Kind == NodeFun
	}
	if a.Kind == NodeVar {
		return a.Var < b.Var
	}
	// Both Fun: higher weight sorts first (is "less" in this forward order).
	if c := a.Stats.Weight.Cmp(b.Stats.Weight); c != 0 {
		return c > 0
	}
	return a.hash < b.hash
}

// grevlexCompare compares two same-kind factor blocks (already sorted
// ascending by nodeLess) by walking them from the last (greatest) factor
// backward. At the first node where the two sides' exponents differ, the
// side with the SMALLER exponent is the greater monomial — the textbook
// grevlex tie-break, applied here in "leading order" (positive return
// means af is the more-leading/larger side), restricted to factor blocks
// that spec.md's degree comparisons have already established tie on total
// degree.
func grevlexCompare(af, bf []monoFactor) int {
	i, j := len(af)-1, len(bf)-1
	for i >= 0 || j >= 0 {
		var ea, eb int
		switch {
		case i < 0:
			eb = bf[j].exp
			j--
		case j < 0:
			ea = af[i].exp
			i--
		case af[i].node == bf[j].node:
			ea, eb = af[i].exp, bf[j].exp
			i--
			j--
		case nodeLess(af[i].node, bf[j].node):
			// bf[j].node sorts later in forward order, i.e. it is the
			// "next" node in the backward walk.
			eb = bf[j].exp
			j--
		default:
			ea = af[i].exp
			i--
		}
		if ea != eb {
			if ea < eb {
				return 1
			}
			return -1
		}
	}
	return 0
}

// compareMono implements spec.md §4.3's Mononode order, realized directly
// in "leading order": positive means a is the more-leading (larger)
// monomial, i.e. the one that should end up earlier in a Polynode's
// summand list. This already incorporates the "reversal convention" the
// spec calls out (§4.3's last line): spec.md's literal compare_mono says
// higher Fun degree is "smaller" and the empty Mononode is "strictly the
// largest", but also says Polynode summands are sorted so the leading
// (elimination-favoring, highest Fun degree) monomial lands at index 0 —
// those two statements are only consistent if Polynode sorts in the
// reverse of compare_mono's raw sense. Rather than carry two order
// functions (raw compare_mono and its reversal), compareMono here directly
// returns comparisons in the already-reversed "leading order" sense, so
// every caller (Polynode construction, Buchberger) can sort descending by
// compareMono and get the leading monomial at index 0 with no further
// inversion.
func compareMono(a, b *Mononode) int {
	if a == b {
		return 0
	}
	if c := cmpInt(a.funDeg, b.funDeg); c != 0 {
		return c
	}
	if c := grevlexCompare(a.funFactors(), b.funFactors()); c != 0 {
		return c
	}
	if c := cmpInt(a.varDeg, b.varDeg); c != 0 {
		return c
	}
	return grevlexCompare(a.varFactors(), b.varFactors())
}

// CompareMono exposes compareMono to other packages (the Buchberger
// engine's critical-pair priority queue): positive means a is the more
// leading (larger) Mononode under the arena's order.
func CompareMono(a, b *Mononode) int { return compareMono(a, b) }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
