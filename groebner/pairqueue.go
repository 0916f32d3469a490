package groebner

import "vFGB/algebra"

// pairItem is one not-yet-processed critical pair (i, j), i > j, carrying
// the precomputed LCM of the two generators' leading monomials (the key the
// queue orders on).
type pairItem struct {
	i, j int
	lcm  *algebra.Mononode
	seq  int // insertion order, the tie-break spec.md §5 requires
}

// pairQueue is a container/heap min-heap over pairItem, "smallest LCM first"
// under the arena's monomial order (the normal-strategy, sugar-free
// Buchberger selection rule), ties broken by insertion order.
type pairQueue struct {
	items []pairItem
}

func (q *pairQueue) Len() int { return len(q.items) }

func (q *pairQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if c := algebra.CompareMono(a.lcm, b.lcm); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (q *pairQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *pairQueue) Push(x any) { q.items = append(q.items, x.(pairItem)) }

func (q *pairQueue) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	return it
}
