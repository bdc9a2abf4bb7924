/*
Package cfpq implements Context-Free Path Querying: given a WCNF
grammar and a labeled graph, find every triple (A, u, v) such that A
derives a word spelling a path from u to v (spec.md §4.8/§4.9).

Two independent fixed-point algorithms are provided, required to agree
on every input (spec.md §8 invariant 3): Hellings' worklist algorithm
over an explicit triple set, and a boolean-matrix fixed point, one
matrix per variable. Both panic with an InvariantViolation-class error
if handed a grammar that isn't WCNF-shaped, since neither algorithm's
case analysis is meaningful outside that shape.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package cfpq

import (
	"fmt"

	"github.com/npillmayer/pathql/grammar"
	"github.com/npillmayer/pathql/graph"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pathql.cfpq'.
func tracer() tracing.Trace {
	return tracing.Select("pathql.cfpq")
}

// Triple is a single CFPQ result: variable A derives a path from From
// to To.
type Triple struct {
	Var        grammar.Symbol
	From, To   graph.NodeID
}

// TripleSet is the deduplicated result of a CFPQ run.
type TripleSet map[Triple]struct{}

// Add inserts t, returning true if it was not already present.
func (ts TripleSet) Add(t Triple) bool {
	if _, ok := ts[t]; ok {
		return false
	}
	ts[t] = struct{}{}
	return true
}

// Has reports whether t is present.
func (ts TripleSet) Has(t Triple) bool {
	_, ok := ts[t]
	return ok
}

// Matches returns every (From, To) pair for which variable accepts
// (spec.md §4.8's stated output shape: the caller asks "which pairs
// does S connect" and gets exactly that).
func (ts TripleSet) Matches(variable grammar.Symbol) [][2]graph.NodeID {
	var out [][2]graph.NodeID
	for t := range ts {
		if t.Var == variable {
			out = append(out, [2]graph.NodeID{t.From, t.To})
		}
	}
	return out
}

// requireWCNF panics with an InvariantViolationError if cfg contains a
// production outside the ε | terminal | two-variable WCNF shape,
// mirroring the sibling module's own defensive shape checks ahead of a
// case-switch that assumes a normal form (see lr/earley/earley.go's
// predict/scan/complete dispatch, which likewise assumes a fixed item
// shape going in).
func requireWCNF(cfg *grammar.CFG) {
	for _, p := range cfg.Productions {
		if !p.IsWCNFShape() {
			panic(&InvariantViolationError{Msg: fmt.Sprintf("production %s is not in Weak Chomsky Normal Form", p)})
		}
	}
}

// InvariantViolationError reports a caller bug: a non-WCNF grammar
// handed to Hellings or Matrix, per spec.md §7's InvariantViolation
// error kind.
type InvariantViolationError struct {
	Msg string
}

func (e *InvariantViolationError) Error() string {
	return "cfpq: invariant violation: " + e.Msg
}
