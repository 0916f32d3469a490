// Package groebner implements the Buchberger engine (C5): given a vector of
// generators it computes the reduced Gröbner basis of the ideal they
// generate, over the elimination/grevlex order algebra.Arena already
// canonicalizes every Mononode under.
//
// The engine is single-threaded and cooperative: a Deadline is polled once
// per pair extraction and once per inner reduction step, never preempted.
// Parallelism, as in the rest of vFGB, is achieved only by giving each
// concurrent unit of work its own Arena and its own Engine.
package groebner
