// Package algebra implements the hash-consed term arena for vFGB: Nodes
// (variables and formal f(·) applications), Mononodes (power-products of
// Nodes), and Polynodes (ℚ-linear combinations of Mononodes), together with
// the elimination-plus-grevlex monomial order used to pick a leading term.
//
// Every entity is immutable once constructed and is owned by exactly one
// Arena; no two structurally equal entities ever coexist in the same arena
// (hash-consing), so equality of two pointers returned by the same Arena is
// always safe to test with ==. An Arena is not safe for concurrent use —
// callers that want parallelism own one Arena per goroutine (see
// cmd/vfgb's batch fan-out).
package algebra
