package pathql

import (
	"fmt"

	"github.com/npillmayer/pathql/automaton"
	"github.com/npillmayer/pathql/automaton/regexsyn"
	"github.com/npillmayer/pathql/cfpq"
	"github.com/npillmayer/pathql/filter"
	"github.com/npillmayer/pathql/grammar"
	"github.com/npillmayer/pathql/graph"
)

// Hellings runs context-free path querying over g with cfg (normalized
// to WCNF first) via Hellings' worklist algorithm, filtered by opts.
func Hellings(g *graph.LabeledGraph, cfg *grammar.CFG, opts ...filter.Option) cfpq.TripleSet {
	wcnf := grammar.ToWCNF(cfg)
	return filter.Apply(cfpq.Hellings(wcnf, g), opts...)
}

// Matrix runs context-free path querying over g with cfg (normalized
// to WCNF first) via the boolean-matrix fixed point, filtered by opts.
func Matrix(g *graph.LabeledGraph, cfg *grammar.CFG, opts ...filter.Option) cfpq.TripleSet {
	wcnf := grammar.ToWCNF(cfg)
	return filter.Apply(cfpq.Matrix(wcnf, g), opts...)
}

// RPQ runs regular path querying: every (u,v) node pair of g connected
// by a path whose label word matches the regex source re, per spec.md
// §4.6.
func RPQ(g *graph.LabeledGraph, re string, start, final []graph.NodeID) ([][2]graph.NodeID, error) {
	q, err := automaton.RegexToMinDFA(re)
	if err != nil {
		return nil, fmt.Errorf("pathql: RPQ: %w", err)
	}
	db := automaton.FromGraph(g, start, final)
	pairs := rpqQuery(db, q)
	return pairs, nil
}

// ReachableFromAny returns every node reachable from any of sources via
// a path matching regex re, ending in one of finals (nil means every
// node is an acceptable final, per automaton.FromGraph's default).
func ReachableFromAny(g *graph.LabeledGraph, re string, sources, finals []graph.NodeID) ([]graph.NodeID, error) {
	q, err := automaton.RegexToMinDFA(re)
	if err != nil {
		return nil, fmt.Errorf("pathql: ReachableFromAny: %w", err)
	}
	db := automaton.FromGraph(g, sources, finals)
	return reachableFromAny(db, q), nil
}

// ReachableFromEach returns, for each source node, the set of nodes it
// reaches via a path matching regex re, ending in one of finals (nil
// means every node is an acceptable final).
func ReachableFromEach(g *graph.LabeledGraph, re string, sources, finals []graph.NodeID) (map[graph.NodeID][]graph.NodeID, error) {
	q, err := automaton.RegexToMinDFA(re)
	if err != nil {
		return nil, fmt.Errorf("pathql: ReachableFromEach: %w", err)
	}
	db := automaton.FromGraph(g, sources, finals)
	return reachableFromEach(db, q), nil
}

// --- re-exported operations, per spec.md §6 --------------------------

// Intersect is automaton.Intersect.
func Intersect(a, b *automaton.NFA) *automaton.NFA { return automaton.Intersect(a, b) }

// Union is automaton.Union.
func Union(a, b *automaton.NFA) *automaton.NFA { return automaton.Union(a, b) }

// Concat is automaton.Concat.
func Concat(a, b *automaton.NFA) *automaton.NFA { return automaton.Concat(a, b) }

// KleeneStar is automaton.KleeneStar.
func KleeneStar(a *automaton.NFA) *automaton.NFA { return automaton.KleeneStar(a) }

// Minimize is automaton.Minimize.
func Minimize(a *automaton.NFA) *automaton.NFA { return automaton.Minimize(a) }

// RegexToMinDFA is automaton.RegexToMinDFA.
func RegexToMinDFA(src string) (*automaton.NFA, error) { return automaton.RegexToMinDFA(src) }

// WCNF is grammar.ToWCNF.
func WCNF(cfg *grammar.CFG) *grammar.CFG { return grammar.ToWCNF(cfg) }

// ECFGFromText is grammar.ECFGFromText.
func ECFGFromText(text string) (*grammar.ECFG, error) { return grammar.ECFGFromText(text) }

// RSMFromECFG is grammar.RSMFromECFG.
func RSMFromECFG(e *grammar.ECFG) *grammar.RSM { return grammar.RSMFromECFG(e) }

// RSMFromFA is grammar.RSMFromFA.
func RSMFromFA(fa *automaton.NFA) *grammar.RSM { return grammar.RSMFromFA(fa) }

// regexsynParse wraps automaton/regexsyn.Parse. It is unexported, so it
// is not part of this package's API; callers building a Regex AST
// directly use regexsyn.Parse.
func regexsynParse(src string) (regexsyn.Regex, error) { return regexsyn.Parse(src) }
