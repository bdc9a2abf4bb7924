package rpq

import (
	"testing"

	"github.com/npillmayer/pathql/automaton"
	"github.com/npillmayer/pathql/graph"
)

// TestQueryScenarioS3 traces spec.md §8 scenario S3: a graph with
// self-loops, regex abbb|cddd, start={0}, final={1,2,3}. Node 3 is
// unreferenced by any edge but listed as a candidate final state;
// only (0,1) and (0,2) are reachable by an accepted word.
func TestQueryScenarioS3(t *testing.T) {
	g := graph.New()
	g.AddEdge(0, "a", 1)
	g.AddEdge(1, "b", 1)
	g.AddEdge(0, "c", 2)
	g.AddEdge(2, "d", 2)
	g.AddNode(3) // present as a final candidate, unreachable by any word
	g.Freeze()

	start := idsOf(g, 0)
	final := idsOf(g, 1, 2, 3)
	db := automaton.FromGraph(g, start, final)

	q, err := automaton.RegexToMinDFA("abbb|cddd")
	if err != nil {
		t.Fatalf("unexpected regex parse error: %v", err)
	}

	got := Query(db, q)
	want := map[[2]int]bool{{0, 1}: true, {0, 2}: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d pairs, got %d: %v", len(want), len(got), got)
	}
	for _, p := range got {
		key := [2]int{int(p.U), int(p.V)}
		if !want[key] {
			t.Fatalf("unexpected pair %v in result %v", key, got)
		}
	}
}

// TestReachableFromAnyScenarioS4 traces spec.md §8 scenario S4: two
// disjoint ab-chains rooted at 1 and 4; regex ab; sources={1,4}.
func TestReachableFromAnyScenarioS4(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, "a", 2)
	g.AddEdge(2, "b", 3)
	g.AddEdge(4, "a", 5)
	g.AddEdge(5, "b", 6)
	g.Freeze()

	sources := idsOf(g, 1, 4)
	db := automaton.FromGraph(g, sources, nil)
	q, err := automaton.RegexToMinDFA("ab")
	if err != nil {
		t.Fatalf("unexpected regex parse error: %v", err)
	}

	got := ReachableFromAny(db, q)
	want := idsOf(g, 3, 6)
	if len(got) != len(want) {
		t.Fatalf("expected %d reachable states, got %d: %v", len(want), len(got), got)
	}
	for _, w := range want {
		if !got[automaton.StateID(w)] {
			t.Fatalf("expected state %v reachable, got %v", w, got)
		}
	}
}

// TestReachableFromEachAttributesPerSource checks that, unlike
// ReachableFromAny's merged result, ReachableFromEach keeps each
// source's reachable set distinct (spec.md §4.7).
func TestReachableFromEachAttributesPerSource(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, "a", 2)
	g.AddEdge(2, "b", 3)
	g.AddEdge(4, "a", 5)
	g.AddEdge(5, "b", 6)
	g.Freeze()

	sources := idsOf(g, 1, 4)
	db := automaton.FromGraph(g, sources, nil)
	q, err := automaton.RegexToMinDFA("ab")
	if err != nil {
		t.Fatalf("unexpected regex parse error: %v", err)
	}

	got := ReachableFromEach(db, q)
	n1, _ := g.NodeID(1)
	n4, _ := g.NodeID(4)
	n3, _ := g.NodeID(3)
	n6, _ := g.NodeID(6)
	if !got[automaton.StateID(n1)][automaton.StateID(n3)] {
		t.Fatalf("expected source 1 to reach 3, got %v", got)
	}
	if !got[automaton.StateID(n4)][automaton.StateID(n6)] {
		t.Fatalf("expected source 4 to reach 6, got %v", got)
	}
	if got[automaton.StateID(n1)][automaton.StateID(n6)] {
		t.Fatalf("source 1 must not be attributed node 6's reachability")
	}
}

func idsOf(g *graph.LabeledGraph, vals ...int) []graph.NodeID {
	out := make([]graph.NodeID, len(vals))
	for i, v := range vals {
		id, ok := g.NodeID(v)
		if !ok {
			panic("rpq_test: idsOf: node not present in graph")
		}
		out[i] = id
	}
	return out
}
