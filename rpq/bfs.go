package rpq

import (
	"github.com/npillmayer/pathql/automaton"
	"github.com/npillmayer/pathql/matrix"
)

// ReachableFromAny returns every db state reachable by SOME accepted
// path from ANY db start state. It builds the full product automaton
// Intersect(db, q), seeds a single front row with every product start
// state, multiplies that row by the product's label-agnostic adjacency
// until it stops growing, and reads off the db state of every final
// product state the row reaches. The product automaton is materialized
// in full; no block-diagonal front matrix over separate db and query
// blocks is built.
func ReachableFromAny(db, q *automaton.NFA) map[automaton.StateID]bool {
	product := automaton.Intersect(db, q)
	bm := automaton.BuildBoolMatrixFA(product)
	adj := bm.Adjacency()

	qN := automaton.BuildBoolMatrixFA(q).N
	front := matrix.New(1, bm.N)
	for i := range bm.Start {
		front.Set(0, i)
	}
	for {
		next := front.Mul(adj)
		grew := front.Or(next)
		if !grew {
			break
		}
	}

	out := make(map[automaton.StateID]bool)
	for j := range bm.Final {
		if front.Get(0, j) {
			dbV, _ := automaton.ProductIndex(automaton.StateID(j), qN)
			out[automaton.StateID(dbV)] = true
		}
	}
	return out
}

// ReachableFromEach implements the per-source variant of spec.md §4.7:
// rather than merging all db starts into a single frontier row (which
// loses provenance), it seeds one front row per product-start state so
// the eventual result can be attributed back to the db start state that
// reached it. The row-to-db-start correspondence is carried in the
// returned map's key, not recovered after the fact from a merged row.
func ReachableFromEach(db, q *automaton.NFA) map[automaton.StateID]map[automaton.StateID]bool {
	product := automaton.Intersect(db, q)
	bm := automaton.BuildBoolMatrixFA(product)
	adj := bm.Adjacency()

	qN := automaton.BuildBoolMatrixFA(q).N

	// one front row per product-start index, each seeded at its own
	// column so rows never need to be told apart by anything but their
	// own index.
	starts := make([]int, 0, len(bm.Start))
	for i := range bm.Start {
		starts = append(starts, i)
	}
	front := matrix.New(len(starts), bm.N)
	for row, i := range starts {
		front.Set(row, i)
	}
	for {
		next := front.Mul(adj)
		grew := front.Or(next)
		if !grew {
			break
		}
	}

	out := make(map[automaton.StateID]map[automaton.StateID]bool)
	for row, i := range starts {
		dbU, _ := automaton.ProductIndex(automaton.StateID(i), qN)
		srcDB := automaton.StateID(dbU)
		for j := range bm.Final {
			if front.Get(row, j) {
				dbV, _ := automaton.ProductIndex(automaton.StateID(j), qN)
				if out[srcDB] == nil {
					out[srcDB] = make(map[automaton.StateID]bool)
				}
				out[srcDB][automaton.StateID(dbV)] = true
			}
		}
	}
	return out
}
