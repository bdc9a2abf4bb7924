package cfpq

import (
	"github.com/npillmayer/pathql/automaton/iteratable"
	"github.com/npillmayer/pathql/grammar"
	"github.com/npillmayer/pathql/graph"
)

// queued wraps a Triple with its worklist insertion sequence number.
// iteratable.Set keeps its elements in comparator order, so ordering
// the worklist by seq (rather than by the triple's own fields) makes
// growth strictly append-only in that order — newly emitted triples
// always sort after every triple already taken off the worklist, so
// IterateOnce/Next's growing-snapshot re-take (see
// automaton/iteratable/set.go) can never reorder an already-visited
// prefix out from under the cursor.
type queued struct {
	seq int
	t   Triple
}

func compareQueued(a, b interface{}) int {
	return a.(queued).seq - b.(queued).seq
}

// Hellings computes CFPQ(cfg, g) via Hellings' worklist fixed point
// (spec.md §4.8). cfg must already be in Weak Chomsky Normal Form
// (ToWCNF); Hellings panics with an *InvariantViolationError otherwise.
//
// The worklist is an automaton/iteratable.Set, walked via
// IterateOnce/Next so triples discovered mid-pass (via emit below) are
// folded into the very same traversal rather than requiring a second
// sweep — the worklist-fixed-point idiom spec.md §9 asks for. Index
// structures grouping triples by endpoint are plain maps: their values
// are appended to and later scanned in full, never iterated while
// growing, so they need none of iteratable.Set's destructive-growth
// contract.
func Hellings(cfg *grammar.CFG, g *graph.LabeledGraph) TripleSet {
	requireWCNF(cfg)
	tracer().Debugf("hellings: %s over graph with %d nodes", cfg.Name, g.N())

	result := make(TripleSet)
	worklist := iteratable.New(compareQueued)
	seq := 0

	// endingAt[v][M] = from-nodes of every discovered triple (M, from, v)
	// startingAt[u][M] = to-nodes of every discovered triple (M, u, to)
	endingAt := make(map[graph.NodeID]map[grammar.Symbol][]graph.NodeID)
	startingAt := make(map[graph.NodeID]map[grammar.Symbol][]graph.NodeID)

	index := func(t Triple) {
		if endingAt[t.To] == nil {
			endingAt[t.To] = make(map[grammar.Symbol][]graph.NodeID)
		}
		endingAt[t.To][t.Var] = append(endingAt[t.To][t.Var], t.From)
		if startingAt[t.From] == nil {
			startingAt[t.From] = make(map[grammar.Symbol][]graph.NodeID)
		}
		startingAt[t.From][t.Var] = append(startingAt[t.From][t.Var], t.To)
	}

	emit := func(t Triple) {
		if result.Add(t) {
			index(t)
			worklist.Add(queued{seq: seq, t: t})
			seq++
		}
	}

	// unit bases: A -> ε seeds (A, v, v) for every node; A -> a seeds
	// (A, u, v) for every edge u --a--> v.
	for _, p := range cfg.Productions {
		switch len(p.Body) {
		case 0:
			for _, v := range g.Nodes() {
				emit(Triple{Var: p.Head, From: v, To: v})
			}
		case 1:
			for _, e := range g.AllEdges() {
				if e.Label == p.Body[0].Name() {
					emit(Triple{Var: p.Head, From: e.From, To: e.To})
				}
			}
		}
	}

	// group binary productions P -> M N by left symbol and by right
	// symbol, for the two neighbor-extension cases below.
	byFirst := make(map[grammar.Symbol][]grammar.Production)  // keyed by M in "P -> M N"
	bySecond := make(map[grammar.Symbol][]grammar.Production) // keyed by N in "P -> M N"
	for _, p := range cfg.Productions {
		if len(p.Body) == 2 {
			byFirst[p.Body[0]] = append(byFirst[p.Body[0]], p)
			bySecond[p.Body[1]] = append(bySecond[p.Body[1]], p)
		}
	}

	worklist.IterateOnce()
	for worklist.Next() {
		n := worklist.Item().(queued).t

		// n = (N, v, u). Left extension: for every (M, v', v) already
		// known and every production P -> M N, emit (P, v', u).
		for m, froms := range endingAt[n.From] {
			for _, p := range bySecond[n.Var] {
				if p.Body[0] != m {
					continue
				}
				for _, vPrime := range froms {
					emit(Triple{Var: p.Head, From: vPrime, To: n.To})
				}
			}
		}
		// Right extension: for every (M, u, u') already known and every
		// production P -> N M, emit (P, v, u').
		for m, tos := range startingAt[n.To] {
			for _, p := range byFirst[n.Var] {
				if p.Body[1] != m {
					continue
				}
				for _, uPrime := range tos {
					emit(Triple{Var: p.Head, From: n.From, To: uPrime})
				}
			}
		}
	}

	tracer().Debugf("hellings: found %d triples", len(result))
	return result
}
