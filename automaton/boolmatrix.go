package automaton

import (
	"github.com/npillmayer/pathql/matrix"
	"github.com/npillmayer/pathql/symbol"
)

// BoolMatrixFA is the boolean-matrix representation of an NFA (spec.md
// §3/§4.4): a state→row index, one sparse boolean matrix per symbol,
// and the start/final index sets.
type BoolMatrixFA struct {
	N       int
	Index   map[StateID]int // state -> row/col index, by insertion order
	States  []StateID        // inverse of Index
	Symbols []symbol.Symbol
	M       map[symbol.Symbol]*matrix.Bool
	Start   map[int]struct{}
	Final   map[int]struct{}
}

// BuildBoolMatrixFA builds the per-symbol adjacency matrices of a, per
// spec.md §4.4. State indices are assigned in ascending StateID order,
// making the mapping deterministic and independent of map iteration.
func BuildBoolMatrixFA(a *NFA) *BoolMatrixFA {
	n := a.N()
	b := &BoolMatrixFA{
		N:      n,
		Index:  make(map[StateID]int, n),
		States: make([]StateID, n),
		M:      make(map[symbol.Symbol]*matrix.Bool),
		Start:  make(map[int]struct{}),
		Final:  make(map[int]struct{}),
	}
	for i := 0; i < n; i++ {
		b.Index[StateID(i)] = i
		b.States[i] = StateID(i)
	}
	b.Symbols = a.Alphabet()
	for _, sym := range b.Symbols {
		b.M[sym] = matrix.New(n, n)
	}
	for _, t := range a.Transitions() {
		if t.Symbol.IsEpsilon() {
			continue
		}
		b.M[t.Symbol].Set(b.Index[t.From], b.Index[t.To])
	}
	for _, s := range a.Starts() {
		b.Start[b.Index[s]] = struct{}{}
	}
	for _, f := range a.Finals() {
		b.Final[b.Index[f]] = struct{}{}
	}
	return b
}

// Adjacency returns M̄ = ⋁_σ M[σ], the label-agnostic reachability
// relation of one transition step, per spec.md §4.4.
func (b *BoolMatrixFA) Adjacency() *matrix.Bool {
	adj := matrix.New(b.N, b.N)
	for _, m := range b.M {
		adj.Or(m)
	}
	return adj
}

// Intersect computes the product automaton of a and b via the
// Kronecker product on shared-alphabet symbols, per spec.md §4.5:
// states are (i,j) row-major indexed as i*|Q_b|+j, and L(Intersect(a,b))
// = L(a) ∩ L(b). Symbols present in only one operand's alphabet
// contribute no transitions (the EmptyAlphabetIntersection case of
// spec.md §7 falls naturally out of this: if a and b share no symbol,
// the returned product FA is just a reachability-free state space).
func Intersect(a, b *NFA) *NFA {
	ba := BuildBoolMatrixFA(a)
	bb := BuildBoolMatrixFA(b)
	n := ba.N * bb.N
	p := New(n)

	shared := make(map[symbol.Symbol]bool)
	for _, s := range ba.Symbols {
		if _, ok := bb.M[s]; ok {
			shared[s] = true
		}
	}
	for sym := range shared {
		prod := ba.M[sym].Kron(bb.M[sym])
		for _, cell := range prod.Cells() {
			p.AddTransition(StateID(cell[0]), sym, StateID(cell[1]))
		}
	}
	for i := range ba.Start {
		for j := range bb.Start {
			p.SetStart(StateID(i*bb.N + j))
		}
	}
	for i := range ba.Final {
		for j := range bb.Final {
			p.SetFinal(StateID(i*bb.N + j))
		}
	}
	return p
}

// ProductIndex decomposes a row-major product-automaton state id back
// into its (a-state, b-state) pair, given the column count of b
// (bb.N).
func ProductIndex(id StateID, bN int) (a, b int) {
	return int(id) / bN, int(id) % bN
}
