/*
Package automaton implements finite automata over symbol.Symbol
alphabets: construction from regexes and from labeled graphs, the
Thompson/subset/Moore family of algebraic operations (union,
concat, Kleene star, intersection via Kronecker product,
determinization, minimization), and a boolean-matrix representation
(BoolMatrixFA) used by intersection and RPQ.

State-set bookkeeping (building a frontier, interning newly discovered
sets as states, iterating to a fixed point) follows the shape of the
sibling module's CFSM construction in lr/tables.go (closure/gotoSet/
addState), generalized from LR items to automaton states.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package automaton

import (
	"fmt"
	"sort"

	"github.com/npillmayer/pathql/automaton/iteratable"
	"github.com/npillmayer/pathql/graph"
	"github.com/npillmayer/pathql/symbol"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pathql.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("pathql.automaton")
}

// StateID is a dense state identifier in [0, n).
type StateID int

// NFA is an ε-NFA (Q, Σ, δ, S, F) as defined in spec.md §3. DFAs are
// represented by the same type with the invariant that, for every
// state q and non-ε symbol σ, |δ(q,σ)| ≤ 1 and δ has no ε-transitions.
type NFA struct {
	n     int // number of states; states are StateID(0)..StateID(n-1)
	trans map[StateID]map[symbol.Symbol][]StateID
	start map[StateID]struct{}
	final map[StateID]struct{}
	alpha map[symbol.Symbol]struct{} // non-epsilon alphabet
}

// New creates an automaton with n states and no transitions.
func New(n int) *NFA {
	return &NFA{
		n:     n,
		trans: make(map[StateID]map[symbol.Symbol][]StateID),
		start: make(map[StateID]struct{}),
		final: make(map[StateID]struct{}),
		alpha: make(map[symbol.Symbol]struct{}),
	}
}

// N returns the number of states.
func (a *NFA) N() int { return a.n }

// AddState appends a fresh state and returns its ID.
func (a *NFA) AddState() StateID {
	id := StateID(a.n)
	a.n++
	return id
}

// AddTransition adds q --sym--> to. sym == symbol.Eps denotes an
// ε-transition.
func (a *NFA) AddTransition(q StateID, sym symbol.Symbol, to StateID) {
	if a.trans[q] == nil {
		a.trans[q] = make(map[symbol.Symbol][]StateID)
	}
	for _, existing := range a.trans[q][sym] {
		if existing == to {
			return
		}
	}
	a.trans[q][sym] = append(a.trans[q][sym], to)
	if !sym.IsEpsilon() {
		a.alpha[sym] = struct{}{}
	}
}

// SetStart marks q as a start state.
func (a *NFA) SetStart(q StateID) { a.start[q] = struct{}{} }

// SetFinal marks q as a final (accepting) state.
func (a *NFA) SetFinal(q StateID) { a.final[q] = struct{}{} }

// IsStart reports whether q is a start state.
func (a *NFA) IsStart(q StateID) bool { _, ok := a.start[q]; return ok }

// IsFinal reports whether q is a final state.
func (a *NFA) IsFinal(q StateID) bool { _, ok := a.final[q]; return ok }

// Starts returns the start states in ascending order.
func (a *NFA) Starts() []StateID { return sortedKeys(a.start) }

// Finals returns the final states in ascending order.
func (a *NFA) Finals() []StateID { return sortedKeys(a.final) }

// Alphabet returns the non-ε symbols observed in transitions, sorted.
func (a *NFA) Alphabet() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(a.alpha))
	for s := range a.alpha {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return symbol.Compare(out[i], out[j]) < 0 })
	return out
}

// Delta returns the states reachable from q via sym (sym ==
// symbol.Eps for ε-transitions).
func (a *NFA) Delta(q StateID, sym symbol.Symbol) []StateID {
	if row, ok := a.trans[q]; ok {
		return row[sym]
	}
	return nil
}

// Transitions returns every (from, symbol, to) triple.
func (a *NFA) Transitions() []Transition {
	var out []Transition
	froms := make([]int, 0, len(a.trans))
	for q := range a.trans {
		froms = append(froms, int(q))
	}
	sort.Ints(froms)
	for _, qi := range froms {
		q := StateID(qi)
		syms := make([]symbol.Symbol, 0, len(a.trans[q]))
		for s := range a.trans[q] {
			syms = append(syms, s)
		}
		sort.Slice(syms, func(i, j int) bool { return symbol.Compare(syms[i], syms[j]) < 0 })
		for _, s := range syms {
			for _, to := range a.trans[q][s] {
				out = append(out, Transition{From: q, Symbol: s, To: to})
			}
		}
	}
	return out
}

// Transition is a single (from, symbol, to) triple.
type Transition struct {
	From   StateID
	Symbol symbol.Symbol
	To     StateID
}

func (t Transition) String() string {
	return fmt.Sprintf("%d --%s--> %d", t.From, t.Symbol, t.To)
}

// stateIDCompare orders StateIDs numerically; it is the comparator the
// automaton package hands to iteratable.New wherever a growing
// state-set needs deterministic iteration.
func stateIDCompare(a, b interface{}) int {
	return int(a.(StateID)) - int(b.(StateID))
}

// EpsilonClosure returns the set of states reachable from qs via zero
// or more ε-transitions. seen is an iteratable.Set (spec.md §9's
// closure-construction idiom: a destructively-growing membership set
// walked alongside an explicit work stack) rather than a plain map, so
// closure membership and the final ordered dump share one structure.
func (a *NFA) EpsilonClosure(qs []StateID) map[StateID]struct{} {
	seen := iteratable.New(stateIDCompare)
	for _, q := range qs {
		seen.Add(q)
	}
	work := append([]StateID(nil), qs...)
	for len(work) > 0 {
		q := work[len(work)-1]
		work = work[:len(work)-1]
		for _, to := range a.Delta(q, symbol.Eps) {
			if !seen.Contains(to) {
				seen.Add(to)
				work = append(work, to)
			}
		}
	}
	closure := make(map[StateID]struct{}, seen.Size())
	for _, v := range seen.Values() {
		closure[v.(StateID)] = struct{}{}
	}
	return closure
}

// FromGraph builds an NFA whose states are the nodes of g, whose
// transitions mirror g's edges (edge labels become symbols), and
// whose start/final sets default to every node when start/final are
// nil, per spec.md §4.3.
func FromGraph(g *graph.LabeledGraph, start, final []graph.NodeID) *NFA {
	a := New(g.N())
	for _, e := range g.AllEdges() {
		a.AddTransition(StateID(e.From), symbol.Of(e.Label), StateID(e.To))
	}
	if start == nil {
		for _, id := range g.Nodes() {
			a.SetStart(StateID(id))
		}
	} else {
		for _, id := range start {
			a.SetStart(StateID(id))
		}
	}
	if final == nil {
		for _, id := range g.Nodes() {
			a.SetFinal(StateID(id))
		}
	} else {
		for _, id := range final {
			a.SetFinal(StateID(id))
		}
	}
	return a
}

func sortedKeys(m map[StateID]struct{}) []StateID {
	out := make([]StateID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
