package pathql

import (
	"testing"

	"github.com/npillmayer/pathql/filter"
	"github.com/npillmayer/pathql/grammar"
	"github.com/npillmayer/pathql/graph"
	"github.com/npillmayer/pathql/symbol"
)

func buildLinearGraph(t *testing.T) *graph.LabeledGraph {
	t.Helper()
	g := graph.New()
	g.AddEdge(0, "a", 1)
	g.AddEdge(1, "b", 2)
	g.AddEdge(2, "c", 3)
	return g.Freeze()
}

func buildS1Grammar(t *testing.T) *grammar.CFG {
	t.Helper()
	b := grammar.NewBuilder("S1")
	b.LHS("S").N("A").N("S1").End()
	b.LHS("S1").N("B").N("C").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").End()
	b.LHS("C").T("c").End()
	cfg, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected builder error: %v", err)
	}
	return cfg
}

// TestHellingsAndMatrixAgreeAtOrchestrationLayer exercises Hellings
// and Matrix through the public entry points (which apply WCNF
// normalization themselves, spec.md §6) and checks they agree, per
// spec.md §8 invariant 3.
func TestHellingsAndMatrixAgreeAtOrchestrationLayer(t *testing.T) {
	g := buildLinearGraph(t)
	cfg := buildS1Grammar(t)
	h := Hellings(g, cfg)
	m := Matrix(g, cfg)
	if len(h) != len(m) {
		t.Fatalf("expected Hellings and Matrix to agree: %d vs %d triples", len(h), len(m))
	}
	for tr := range h {
		if !m.Has(tr) {
			t.Fatalf("triple %v present in Hellings result but not Matrix", tr)
		}
	}
}

// TestHellingsWithFilterScenarioS2 traces spec.md §8 scenario S2.
func TestHellingsWithFilterScenarioS2(t *testing.T) {
	g := buildLinearGraph(t)
	cfg := buildS1Grammar(t)
	n0, _ := g.NodeID(0)
	n3, _ := g.NodeID(3)
	got := Hellings(g, cfg, filter.Start(n0), filter.Final(n3), filter.Variable(symbol.Var("S")))
	if len(got) != 1 {
		t.Fatalf("expected exactly one filtered triple, got %d: %v", len(got), got)
	}
}

// TestRPQScenarioS3 traces spec.md §8 scenario S3 through the RPQ
// entry point.
func TestRPQScenarioS3(t *testing.T) {
	g := graph.New()
	g.AddEdge(0, "a", 1)
	g.AddEdge(1, "b", 1)
	g.AddEdge(0, "c", 2)
	g.AddEdge(2, "d", 2)
	g.AddNode(3)
	g.Freeze()

	n0, _ := g.NodeID(0)
	n1, _ := g.NodeID(1)
	n2, _ := g.NodeID(2)
	n3, _ := g.NodeID(3)

	pairs, err := RPQ(g, "abbb|cddd", []graph.NodeID{n0}, []graph.NodeID{n1, n2, n3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d: %v", len(pairs), pairs)
	}
	want := map[[2]graph.NodeID]bool{{n0, n1}: true, {n0, n2}: true}
	for _, p := range pairs {
		if !want[p] {
			t.Fatalf("unexpected pair %v", p)
		}
	}
}

// TestReachableFromAnyScenarioS4 traces spec.md §8 scenario S4 through
// the ReachableFromAny entry point.
func TestReachableFromAnyScenarioS4(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, "a", 2)
	g.AddEdge(2, "b", 3)
	g.AddEdge(4, "a", 5)
	g.AddEdge(5, "b", 6)
	g.Freeze()

	n1, _ := g.NodeID(1)
	n3, _ := g.NodeID(3)
	n4, _ := g.NodeID(4)
	n6, _ := g.NodeID(6)

	got, err := ReachableFromAny(g, "ab", []graph.NodeID{n1, n4}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[graph.NodeID]bool{n3: true, n6: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d reachable nodes, got %d: %v", len(want), len(got), got)
	}
	for _, n := range got {
		if !want[n] {
			t.Fatalf("unexpected reachable node %v", n)
		}
	}
}

func TestRegexToMinDFAInvalidRegexReturnsError(t *testing.T) {
	if _, err := RegexToMinDFA("(ab"); err == nil {
		t.Fatalf("expected an error for an unbalanced paren")
	}
}

// TestRoundTripECFGFromCFG builds an RSM from a grammar's own ECFG (the
// round trip of spec.md §8 invariant 7) and checks that it carries a
// machine for the CFG variable A; it does not compare languages.
func TestRoundTripECFGFromCFG(t *testing.T) {
	cfg := buildS1Grammar(t)
	ecfg, err := grammar.ECFGFromCFG(cfg)
	if err != nil {
		t.Fatalf("unexpected error building ECFG: %v", err)
	}
	rsm := RSMFromECFG(ecfg)
	mA := rsm.Machines[symbol.Var("A")]
	if mA == nil {
		t.Fatalf("expected RSM to carry a machine for variable A")
	}
}
