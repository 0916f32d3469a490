package algebra

import "strconv"

// NodeKind distinguishes the two Node variants.
type NodeKind int

const (
	// NodeVar is x_i for some integer i >= 1.
	NodeVar NodeKind = iota
	// NodeFun is f(P) for some arena Polynode P.
	NodeFun
)

// Node is a ring indeterminate: either a variable x_i or a formal f(P).
// The Fun variant carries a *Polynode handle into the same arena rather
// than owning it — spec.md's design notes call this out explicitly: a
// sum-type with a handle, not an owning reference, is what keeps the
// Node/Polynode mutual recursion from needing weak references or a cycle
// collector. A Fun node can only ever reference a Polynode constructed
// strictly before it, so no cycle is reachable.
type Node struct {
	Kind  NodeKind
	Var   int       // valid when Kind == NodeVar
	Fun   *Polynode // valid when Kind == NodeFun
	hash  NodeHash
	Stats Stats
}

func newVarNode(i int) *Node {
	return &Node{
		Kind:  NodeVar,
		Var:   i,
		hash:  finalize(uint64(i)),
		Stats: varStats(),
	}
}

func newFunNode(p *Polynode) *Node {
	return &Node{
		Kind:  NodeFun,
		Fun:   p,
		hash:  finalize(p.hash),
		Stats: funStats(p.Stats),
	}
}

// Hash returns the Node's 64-bit content hash.
func (n *Node) Hash() NodeHash { return n.hash }

// String renders "x<i>" for variables and "f(<P>)" for function nodes.
func (n *Node) String() string {
	switch n.Kind {
	case NodeVar:
		return "x" + strconv.Itoa(n.Var)
	case NodeFun:
		return "f(" + n.Fun.String() + ")"
	}
	return ""
}
