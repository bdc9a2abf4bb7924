/*
Package rpq implements regular path querying: transitive-closure
reachability over a product automaton (spec.md §4.6) and multi-source
BFS reachability, which steps a front matrix over the same product
automaton's adjacency.

The fixed-point shape of both algorithms (repeated squaring in Query,
front stepping in the BFS variants) follows the same "iterate a
frontier, check a size/nonzero delta for termination" idiom the sibling module's Earley parser uses for its own
per-position set construction (lr/earley/earley.go's Parse loop).

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package rpq

import (
	"github.com/npillmayer/pathql/automaton"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pathql.rpq'.
func tracer() tracing.Trace {
	return tracing.Select("pathql.rpq")
}

// Pair is a (u,v) node-pair result, indexed in the db automaton's own
// state numbering.
type Pair struct {
	U, V automaton.StateID
}

// Query implements spec.md §4.6: intersect db with q, take the
// label-agnostic adjacency of the product, compute its transitive
// closure by repeated squaring, and project accepting (start,final)
// product pairs back to db-state pairs.
func Query(db, q *automaton.NFA) []Pair {
	product := automaton.Intersect(db, q)
	bm := automaton.BuildBoolMatrixFA(product)
	r := bm.Adjacency()
	before := r.NNZ()
	r.TransitiveClosure()
	tracer().Debugf("rpq: closure grew from %d to %d nonzeros", before, r.NNZ())

	qN := automaton.BuildBoolMatrixFA(q).N
	seen := make(map[Pair]bool)
	var out []Pair
	for i := range bm.Start {
		for j := range bm.Final {
			if i == j || r.Get(i, j) {
				dbU, _ := automaton.ProductIndex(automaton.StateID(i), qN)
				dbV, _ := automaton.ProductIndex(automaton.StateID(j), qN)
				p := Pair{U: automaton.StateID(dbU), V: automaton.StateID(dbV)}
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
	}
	return out
}
