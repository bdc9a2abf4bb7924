package cfpq

import (
	"github.com/npillmayer/pathql/grammar"
	"github.com/npillmayer/pathql/graph"
	"github.com/npillmayer/pathql/matrix"
)

// Matrix computes CFPQ(cfg, g) via the boolean-matrix fixed point of
// spec.md §4.9: one n×n matrix per variable, seeded from unit
// productions, then closed under M[P] |= M[M1]·M[M2] for every binary
// production P -> M1 M2 until no matrix grows. cfg must already be in
// Weak Chomsky Normal Form; Matrix panics with an *InvariantViolationError
// otherwise.
//
// Hellings's worklist and Matrix's whole-matrix repeated multiplication
// are required to produce the same TripleSet (spec.md §8 invariant 3)
// even though their iteration orders differ completely. This is the
// same kind of two-independent-implementations cross-check the sibling
// module applies to its own parser families (compare lr/glr and
// lr/earley against the same grammar).
func Matrix(cfg *grammar.CFG, g *graph.LabeledGraph) TripleSet {
	requireWCNF(cfg)
	tracer().Debugf("cfpq-matrix: %s over graph with %d nodes", cfg.Name, g.N())

	n := g.N()
	mats := make(map[grammar.Symbol]*matrix.Bool, len(cfg.Variables()))
	for _, v := range cfg.Variables() {
		mats[v] = matrix.New(n, n)
	}

	for _, p := range cfg.Productions {
		switch len(p.Body) {
		case 0:
			for i := 0; i < n; i++ {
				mats[p.Head].Set(i, i)
			}
		case 1:
			label := p.Body[0].Name()
			for _, e := range g.AllEdges() {
				if e.Label == label {
					mats[p.Head].Set(int(e.From), int(e.To))
				}
			}
		}
	}

	var binary []grammar.Production
	for _, p := range cfg.Productions {
		if len(p.Body) == 2 {
			binary = append(binary, p)
		}
	}

	for {
		grew := false
		for _, p := range binary {
			// mats[p.Body[0]]/mats[p.Body[1]] are non-nil only because
			// cfg is ToWCNF's output: useless-symbol removal guarantees
			// every body variable is generating, hence a production
			// head, hence present in cfg.Variables() and seeded above.
			// requireWCNF checks production shape only, not that body
			// variables are generating.
			prod := mats[p.Body[0]].Mul(mats[p.Body[1]])
			if mats[p.Head].Or(prod) {
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	result := make(TripleSet)
	for v, m := range mats {
		for _, cell := range m.Cells() {
			result.Add(Triple{Var: v, From: graph.NodeID(cell[0]), To: graph.NodeID(cell[1])})
		}
	}
	tracer().Debugf("cfpq-matrix: found %d triples", len(result))
	return result
}
