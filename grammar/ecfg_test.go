package grammar

import "testing"

func TestECFGFromTextRoundTrip(t *testing.T) {
	text := "S -> a S b | ε\n"
	e, err := ECFGFromText(text)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, ok := e.Rules[e.Start]; !ok {
		t.Fatalf("expected a rule for the start symbol")
	}
}

func TestECFGFromTextMalformed(t *testing.T) {
	if _, err := ECFGFromText("not a rule at all\n"); err == nil {
		t.Fatalf("expected a MalformedGrammarTextError")
	} else if _, ok := err.(*MalformedGrammarTextError); !ok {
		t.Fatalf("expected *MalformedGrammarTextError, got %T", err)
	}
}

func TestECFGFromCFGTextualizesAndReparses(t *testing.T) {
	b := NewBuilder("g")
	b.LHS("S").N("A").N("B").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").End()
	cfg, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected builder error: %v", err)
	}
	e, err := ECFGFromCFG(cfg)
	if err != nil {
		t.Fatalf("unexpected ECFGFromCFG error: %v", err)
	}
	if e.Start != cfg.Start {
		t.Fatalf("expected ECFG start symbol to match the source CFG's")
	}
	if len(e.Rules) != len(cfg.Variables()) {
		t.Fatalf("expected one ECFG rule per CFG variable, got %d vs %d", len(e.Rules), len(cfg.Variables()))
	}
}
