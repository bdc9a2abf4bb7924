package filter

import (
	"testing"

	"github.com/npillmayer/pathql/cfpq"
	"github.com/npillmayer/pathql/graph"
	"github.com/npillmayer/pathql/symbol"
)

func sampleTriples() cfpq.TripleSet {
	ts := make(cfpq.TripleSet)
	ts.Add(cfpq.Triple{Var: symbol.Var("A"), From: 0, To: 1})
	ts.Add(cfpq.Triple{Var: symbol.Var("B"), From: 1, To: 2})
	ts.Add(cfpq.Triple{Var: symbol.Var("C"), From: 2, To: 3})
	ts.Add(cfpq.Triple{Var: symbol.Var("S"), From: 0, To: 3})
	return ts
}

// TestApplyScenarioS2 traces spec.md §8 scenario S2: start={0},
// final={3}, variable=S over four of the five S1 triples (the
// (1,S1,3) triple is left out) restricts to exactly {(0,S,3)}.
func TestApplyScenarioS2(t *testing.T) {
	ts := sampleTriples()
	got := Apply(ts, Start(0), Final(3), Variable(symbol.Var("S")))
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 triple, got %d: %v", len(got), got)
	}
	want := cfpq.Triple{Var: symbol.Var("S"), From: 0, To: 3}
	if !got.Has(want) {
		t.Fatalf("expected %v in filtered result, got %v", want, got)
	}
}

// TestApplyNoOptionsReturnsFullSet is spec.md §8 invariant 4: with no
// options, Apply recovers the unfiltered set.
func TestApplyNoOptionsReturnsFullSet(t *testing.T) {
	ts := sampleTriples()
	got := Apply(ts)
	if len(got) != len(ts) {
		t.Fatalf("expected %d triples unchanged, got %d", len(ts), len(got))
	}
	for tr := range ts {
		if !got.Has(tr) {
			t.Fatalf("expected %v preserved in unfiltered Apply", tr)
		}
	}
}

// TestApplyMonotone checks that adding constraints only ever shrinks
// the result (spec.md §8 invariant 4).
func TestApplyMonotone(t *testing.T) {
	ts := sampleTriples()
	broad := Apply(ts, Start(0))
	narrow := Apply(ts, Start(0), Variable(symbol.Var("S")))
	if len(narrow) > len(broad) {
		t.Fatalf("expected narrower filter to be a subset: broad=%v narrow=%v", broad, narrow)
	}
	for tr := range narrow {
		if !broad.Has(tr) {
			t.Fatalf("expected narrow result %v to be a subset of broad result %v", tr, broad)
		}
	}
}

func TestApplyFinalOnly(t *testing.T) {
	ts := sampleTriples()
	got := Apply(ts, Final(graph.NodeID(3)))
	want := map[cfpq.Triple]bool{
		{Var: symbol.Var("C"), From: 2, To: 3}: true,
		{Var: symbol.Var("S"), From: 0, To: 3}: true,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d triples, got %d: %v", len(want), len(got), got)
	}
	for tr := range got {
		if !want[tr] {
			t.Fatalf("unexpected triple %v in result", tr)
		}
	}
}
