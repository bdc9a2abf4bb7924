package regexsyn

import "testing"

func TestParseLiteral(t *testing.T) {
	r, err := Parse("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lit, ok := r.(Lit)
	if !ok {
		t.Fatalf("expected a Lit node, got %T", r)
	}
	if lit.Sym.Name() != "a" {
		t.Fatalf("expected symbol 'a', got %q", lit.Sym.Name())
	}
}

func TestParseConcat(t *testing.T) {
	r, err := Parse("ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := r.(Concat); !ok {
		t.Fatalf("expected a Concat node, got %T", r)
	}
}

func TestParseUnion(t *testing.T) {
	r, err := Parse("abbb|cddd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, ok := r.(Union)
	if !ok {
		t.Fatalf("expected a Union node, got %T", r)
	}
	if len(u.Alts) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(u.Alts))
	}
}

func TestParseOptional(t *testing.T) {
	r, err := Parse("abc?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := r.(Concat)
	if !ok {
		t.Fatalf("expected a Concat node, got %T", r)
	}
	last := c.Parts[len(c.Parts)-1]
	if _, ok := last.(Opt); !ok {
		t.Fatalf("expected the trailing 'c?' to parse as Opt, got %T", last)
	}
}

func TestParseStarAndGrouping(t *testing.T) {
	r, err := Parse("(ab)*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := r.(Star); !ok {
		t.Fatalf("expected a Star node, got %T", r)
	}
}

func TestParseUnbalancedParenIsError(t *testing.T) {
	if _, err := Parse("(ab"); err == nil {
		t.Fatalf("expected an error for an unbalanced paren")
	}
}
