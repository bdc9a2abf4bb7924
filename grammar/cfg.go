/*
Package grammar implements context-free grammars, Weak Chomsky Normal
Form normalization (spec.md §4.1), the grammar shape CFPQ consumes, and
two further grammar representations: ECFG (one regex per variable) and
RSM (one finite automaton per variable), per spec.md §4.2.

The fluent grammar builder mirrors the sibling module's
lr.NewGrammarBuilder API (terex/terexlang/trepl/repl.go's
makeExprGrammar: `b.LHS("Sum").N("Sum").T("+", tok).N("Product").End()`),
minus the LR token values CFPQ has no use for.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/pathql/symbol"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pathql.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("pathql.grammar")
}

// Symbol re-exports symbol.Symbol so callers of this package rarely
// need to import the symbol package directly.
type Symbol = symbol.Symbol

// Production is a single CFG rule head -> body.
type Production struct {
	Head Symbol
	Body []Symbol
}

func (p Production) String() string {
	parts := make([]string, len(p.Body))
	for i, s := range p.Body {
		parts[i] = s.String()
	}
	body := strings.Join(parts, " ")
	if body == "" {
		body = "ε"
	}
	return fmt.Sprintf("%s -> %s", p.Head, body)
}

// IsEpsilon reports whether p's body is the empty word.
func (p Production) IsEpsilon() bool { return len(p.Body) == 0 }

// IsWCNFShape reports whether p's body is ε, a single terminal, or
// exactly two variables — the shape spec.md §3 requires of every WCNF
// production.
func (p Production) IsWCNFShape() bool {
	switch len(p.Body) {
	case 0:
		return true
	case 1:
		return p.Body[0].IsTerminal()
	case 2:
		return p.Body[0].IsVariable() && p.Body[1].IsVariable()
	default:
		return false
	}
}

// CFG is a context-free grammar: variables, terminals, a start
// variable and a set of productions (spec.md §3).
type CFG struct {
	Name        string
	Start       Symbol
	Productions []Production
	// AcceptsEmpty tracks ε ∈ L(cfg) out-of-band from the production
	// set, per spec.md §9 Open Question 4: the source does not
	// preserve this flag through WCNF conversion, but pathql's ToWCNF
	// does (see wcnf.go).
	AcceptsEmpty bool
}

// Variables returns the set of variables appearing as a production
// head, in symbol.Compare order. Built on an ordered newSymbolSet
// rather than a first-seen map+slice, so repeated calls and the
// String()/ECFGFromCFG round trip see the same deterministic order
// regardless of production order.
func (g *CFG) Variables() []Symbol {
	set := newSymbolSet()
	for _, p := range g.Productions {
		set.Add(p.Head)
	}
	return symbolValues(set)
}

// Terminals returns the set of terminals appearing in any production
// body, in symbol.Compare order.
func (g *CFG) Terminals() []Symbol {
	set := newSymbolSet()
	for _, p := range g.Productions {
		for _, s := range p.Body {
			if s.IsTerminal() {
				set.Add(s)
			}
		}
	}
	return symbolValues(set)
}

// symbolValues drains an ordered newSymbolSet into a []Symbol.
func symbolValues(set *treeset.Set) []Symbol {
	vals := set.Values()
	out := make([]Symbol, len(vals))
	for i, v := range vals {
		out[i] = v.(Symbol)
	}
	return out
}

// ProductionsOf returns every production headed by v.
func (g *CFG) ProductionsOf(v Symbol) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Head == v {
			out = append(out, p)
		}
	}
	return out
}

// String renders g in the grammar text format of spec.md §6, one
// `head -> body [| body]*` line per variable — the "textualize and
// re-parse" contract ECFGFromCFG relies on.
func (g *CFG) String() string {
	var b strings.Builder
	for _, v := range g.Variables() {
		fmt.Fprintf(&b, "%s ->", v)
		for i, p := range g.ProductionsOf(v) {
			if i > 0 {
				b.WriteString(" |")
			}
			b.WriteString(" ")
			if p.IsEpsilon() {
				b.WriteString("ε")
				continue
			}
			parts := make([]string, len(p.Body))
			for j, s := range p.Body {
				parts[j] = s.Name()
			}
			b.WriteString(strings.Join(parts, " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// --- Builder ---------------------------------------------------------

// Builder constructs a CFG via a fluent API, mirroring the sibling
// module's lr.GrammarBuilder.
type Builder struct {
	name  string
	start string
	prods []Production
	err   error
}

// NewBuilder creates a grammar builder named name. The start variable
// defaults to "S" (spec.md §6) unless overridden with Builder.StartSymbol.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, start: "S"}
}

// StartSymbol overrides the default start variable "S".
func (b *Builder) StartSymbol(name string) *Builder {
	b.start = name
	return b
}

// LHS begins a new production headed by head.
func (b *Builder) LHS(head string) *RHS {
	return &RHS{b: b, head: symbol.Var(head)}
}

// Grammar finalizes the builder into a CFG, or returns an error if no
// production has been added. A name used both as a terminal and as a
// variable is not an error, since each symbol's kind comes from the N
// or T call that added it.
func (b *Builder) Grammar() (*CFG, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.prods) == 0 {
		return nil, fmt.Errorf("grammar: %s has no productions", b.name)
	}
	return &CFG{Name: b.name, Start: symbol.Var(b.start), Productions: b.prods}, nil
}

// RHS accumulates one production's body.
type RHS struct {
	b    *Builder
	head Symbol
	body []Symbol
}

// N appends a variable (nonterminal) named name to the body.
func (r *RHS) N(name string) *RHS {
	r.body = append(r.body, symbol.Var(name))
	return r
}

// T appends a terminal named name to the body.
func (r *RHS) T(name string) *RHS {
	r.body = append(r.body, symbol.Term(name))
	return r
}

// Eps marks this production's body as the empty word. Must be the
// only call on this RHS before End.
func (r *RHS) Eps() *RHS {
	r.body = nil
	return r
}

// End finalizes this production and appends it to the builder.
func (r *RHS) End() *Builder {
	r.b.prods = append(r.b.prods, Production{Head: r.head, Body: r.body})
	return r.b
}

// newSymbolSet constructs an ordered set of symbols for internal
// bookkeeping (variable/terminal alphabets during WCNF construction),
// matching the sibling module's choice of gods/sets/treeset for its
// own CFSM.states (lr/tables.go).
func newSymbolSet() *treeset.Set {
	return treeset.NewWith(symbol.Compare)
}
