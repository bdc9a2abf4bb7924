/*
Package regexsyn implements a small regular-expression AST over
symbol.Symbol alphabets and a parser producing it from regex text; the
Thompson construction turning that AST into an ε-NFA is
automaton.FromRegex. It backs both RPQEngine's regex-shaped queries (spec.md
§4.6/§4.7) and ECFG's per-variable regex bodies (spec.md §4.2).

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package regexsyn

import (
	"strings"

	"github.com/npillmayer/pathql/symbol"
)

// Regex is a regular expression over a symbol alphabet.
type Regex interface {
	regexNode()
	String() string
}

// Eps matches the empty word.
type Eps struct{}

// Lit matches a single symbol.
type Lit struct{ Sym symbol.Symbol }

// Concat matches its operands in sequence.
type Concat struct{ Parts []Regex }

// Union matches any one of its operands.
type Union struct{ Alts []Regex }

// Star matches zero or more repetitions of its operand (Kleene star).
type Star struct{ Operand Regex }

// Opt matches zero or one occurrence of its operand — a REDESIGN
// addition beyond the bare grammar of spec.md §6, needed for scenario
// S6 (`abc?`).
type Opt struct{ Operand Regex }

func (Eps) regexNode()    {}
func (Lit) regexNode()    {}
func (Concat) regexNode() {}
func (Union) regexNode()  {}
func (Star) regexNode()   {}
func (Opt) regexNode()    {}

func (Eps) String() string { return "ε" }
func (l Lit) String() string {
	return l.Sym.String()
}
func (c Concat) String() string {
	parts := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, "")
}
func (u Union) String() string {
	parts := make([]string, len(u.Alts))
	for i, p := range u.Alts {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, "|") + ")"
}
func (s Star) String() string { return "(" + s.Operand.String() + ")*" }
func (o Opt) String() string  { return "(" + o.Operand.String() + ")?" }

// NewConcat builds a Concat node, flattening a zero/one-element list
// into Eps/the single operand for a tidier tree.
func NewConcat(parts ...Regex) Regex {
	switch len(parts) {
	case 0:
		return Eps{}
	case 1:
		return parts[0]
	default:
		return Concat{Parts: parts}
	}
}

// NewUnion builds a Union node, collapsing a single alternative.
func NewUnion(alts ...Regex) Regex {
	if len(alts) == 1 {
		return alts[0]
	}
	return Union{Alts: alts}
}
