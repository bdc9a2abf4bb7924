package grammar

import (
	"testing"

	"github.com/npillmayer/pathql/symbol"
)

// TestToWCNFUnitAndBinarize traces scenario S5 of the query-language
// test suite: S -> A B C, A -> a, B -> C, C -> b. Unit elimination
// should fold B -> C / C -> b into B -> b, and the length-3 body
// S -> A B C should binarize into S -> A X / X -> B C for a fresh X.
func TestToWCNFUnitAndBinarize(t *testing.T) {
	b := NewBuilder("S5")
	b.LHS("S").N("A").N("B").N("C").End()
	b.LHS("A").T("a").End()
	b.LHS("B").N("C").End()
	b.LHS("C").T("b").End()
	cfg, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected builder error: %v", err)
	}
	w := ToWCNF(cfg)
	for _, p := range w.Productions {
		if !p.IsWCNFShape() {
			t.Fatalf("production %s is not WCNF-shaped", p)
		}
	}
	var foundBtoB bool
	for _, p := range w.ProductionsOf(symbol.Var("B")) {
		if len(p.Body) == 1 && p.Body[0].IsTerminal() && p.Body[0].Name() == "b" {
			foundBtoB = true
		}
	}
	if !foundBtoB {
		t.Fatalf("expected unit elimination to produce B -> b, got %s", w.ProductionsOf(symbol.Var("B")))
	}
	var sawBinarized bool
	for _, p := range w.ProductionsOf(cfg.Start) {
		if len(p.Body) == 2 {
			sawBinarized = true
		}
	}
	if !sawBinarized {
		t.Fatalf("expected S's length-3 body to binarize into a 2-symbol body")
	}
}

// TestToWCNFAlreadyShaped checks that a grammar already in WCNF shape
// (S -> A B, A -> a, B -> b) passes through with the same production
// count: useless-symbol removal finds nothing to remove here.
func TestToWCNFAlreadyShaped(t *testing.T) {
	b := NewBuilder("S1")
	b.LHS("S").N("A").N("B").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").End()
	cfg, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected builder error: %v", err)
	}
	w := ToWCNF(cfg)
	if len(w.Productions) != len(cfg.Productions) {
		t.Fatalf("expected an already-WCNF grammar to pass through unchanged in production count, got %d vs %d", len(w.Productions), len(cfg.Productions))
	}
}

func TestRemoveUselessDropsUnreachable(t *testing.T) {
	b := NewBuilder("unreachable")
	b.LHS("S").T("a").End()
	b.LHS("Dead").T("z").End() // unreachable from S
	cfg, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected builder error: %v", err)
	}
	w := ToWCNF(cfg)
	for _, v := range w.Variables() {
		if v == symbol.Var("Dead") {
			t.Fatalf("expected unreachable variable Dead to be removed")
		}
	}
}
