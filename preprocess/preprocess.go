// Package preprocess implements the three progressive hypothesis-expansion
// levels (C6): deduplication, zero-subset substitution, and variable
// permutation. Each level is idempotent given its predecessors, and the
// expansion is exponential/factorial by design — the caller controls the
// blow-up via the level setting.
package preprocess

import "vFGB/algebra"

// Expand runs hypothesis preprocessing up to the given level (0, 1 or 2)
// and returns the resulting deduplicated, zero-free hypothesis set.
func Expand(ar *algebra.Arena, hyps []*algebra.Polynode, level int) []*algebra.Polynode {
	cur := dedupDropZero(hyps)
	if level < 1 {
		return cur
	}
	cur = dedupDropZero(expandZeroSubsets(ar, cur))
	if level < 2 {
		return cur
	}
	return dedupDropZero(expandPermutations(ar, cur))
}

// dedupDropZero implements level 0: drop hypotheses equal to 0, and collapse
// duplicates. Hash-consing (I1) means two hypotheses denoting the same
// polynomial are the same pointer, so pointer identity is the exact
// equality test.
func dedupDropZero(hyps []*algebra.Polynode) []*algebra.Polynode {
	seen := make(map[*algebra.Polynode]bool, len(hyps))
	out := make([]*algebra.Polynode, 0, len(hyps))
	for _, h := range hyps {
		if h.IsZero() || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}

// expandZeroSubsets implements level 1: for each hypothesis h, for every
// non-empty subset S of h's occurring variables, add h.subs_zero(S).
func expandZeroSubsets(ar *algebra.Arena, hyps []*algebra.Polynode) []*algebra.Polynode {
	out := append([]*algebra.Polynode{}, hyps...)
	for _, h := range hyps {
		vars := ar.OccurringVars(h)
		for _, subset := range nonEmptySubsets(vars) {
			set := make(map[int]bool, len(subset))
			for _, v := range subset {
				set[v] = true
			}
			out = append(out, ar.SubstituteZero(h, set))
		}
	}
	return out
}

// expandPermutations implements level 2: for each (post-level-1) hypothesis
// h, collect its occurring variables as a sorted set V, and for every
// permutation π of {1,…,|V|} add h.subs_var(v_k → V[π(k)]).
func expandPermutations(ar *algebra.Arena, hyps []*algebra.Polynode) []*algebra.Polynode {
	out := append([]*algebra.Polynode{}, hyps...)
	for _, h := range hyps {
		vars := ar.OccurringVars(h)
		if len(vars) < 2 {
			continue
		}
		for _, perm := range permutations(len(vars)) {
			remap := make(map[int]int, len(vars))
			for k, v := range vars {
				remap[v] = vars[perm[k]]
			}
			out = append(out, ar.SubstituteVars(h, remap))
		}
	}
	return out
}

// nonEmptySubsets enumerates every non-empty subset of vars via bitmask, in
// no particular order (the caller deduplicates the results downstream).
func nonEmptySubsets(vars []int) [][]int {
	n := len(vars)
	out := make([][]int, 0, (1<<n)-1)
	for mask := 1; mask < (1 << n); mask++ {
		var s []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				s = append(s, vars[i])
			}
		}
		out = append(out, s)
	}
	return out
}

// permutations returns every permutation of {0,…,n-1} (recursive
// swap-and-swap-back generation, n! results).
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			cp := append([]int(nil), idx...)
			out = append(out, cp)
			return
		}
		for i := k; i < n; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			rec(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	rec(0)
	return out
}
