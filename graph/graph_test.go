package graph

import "testing"

func TestAddEdgeInternsNodes(t *testing.T) {
	g := New()
	g.AddEdge("a", "x", "b")
	g.AddEdge("b", "y", "c")
	if g.N() != 3 {
		t.Fatalf("expected 3 interned nodes, got %d", g.N())
	}
	a, ok := g.NodeID("a")
	if !ok {
		t.Fatalf("expected node 'a' to be interned")
	}
	if len(g.EdgesFrom(a)) != 1 {
		t.Fatalf("expected exactly one outgoing edge from 'a'")
	}
}

func TestAddEdgeIdempotentParallel(t *testing.T) {
	g := New()
	g.AddEdge("a", "x", "b")
	g.AddEdge("a", "x", "b")
	a, _ := g.NodeID("a")
	if len(g.EdgesFrom(a)) != 1 {
		t.Fatalf("expected duplicate (from,label,to) triple to be a no-op, got %d edges", len(g.EdgesFrom(a)))
	}
	g.AddEdge("a", "z", "b")
	if len(g.EdgesFrom(a)) != 2 {
		t.Fatalf("expected a distinct label to add a new parallel edge")
	}
}

func TestFreezePanicsOnMutation(t *testing.T) {
	g := New()
	g.AddEdge("a", "x", "b")
	g.Freeze()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected AddEdge on a frozen graph to panic")
		}
	}()
	g.AddEdge("b", "x", "c")
}

type fakeSource struct{ triples []Triple }

func (f fakeSource) Edges() []Triple { return f.triples }

func TestFromSource(t *testing.T) {
	src := fakeSource{triples: []Triple{
		{From: "a", Label: "x", To: "b"},
		{From: "b", Label: "y", To: "c"},
	}}
	g := FromSource(src)
	if g.N() != 3 {
		t.Fatalf("expected 3 nodes, got %d", g.N())
	}
	a, _ := g.NodeID("a")
	b, _ := g.NodeID("b")
	if !g.HasEdge(a, "x", b) {
		t.Fatalf("expected edge a--x-->b")
	}
}
