package grammar

import "testing"

func TestRSMFromECFGOneMachinePerVariable(t *testing.T) {
	e, err := ECFGFromText("S -> a S b | ε\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	r := RSMFromECFG(e)
	if len(r.Machines) != len(e.Rules) {
		t.Fatalf("expected one machine per ECFG rule, got %d vs %d", len(r.Machines), len(e.Rules))
	}
	if r.Start != e.Start {
		t.Fatalf("expected RSM start symbol to match the ECFG's")
	}
}

func TestRSMMinimizePreservesMachineCount(t *testing.T) {
	e, err := ECFGFromText("S -> a b | a c\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	r := RSMFromECFG(e)
	m := r.Minimize()
	if len(m.Machines) != len(r.Machines) {
		t.Fatalf("expected Minimize to preserve the variable set")
	}
}
