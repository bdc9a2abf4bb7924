package automaton

import (
	"github.com/npillmayer/pathql/automaton/regexsyn"
)

// FromRegex compiles a regexsyn.Regex into an ε-NFA via the standard
// Thompson construction, reusing the same Union/Concat/KleeneStar
// algebra operations FAAlgebra exposes for two already-built automata
// (spec.md §4.3's from_regex).
func FromRegex(r regexsyn.Regex) *NFA {
	switch n := r.(type) {
	case regexsyn.Eps:
		a := New(1)
		a.SetStart(0)
		a.SetFinal(0)
		return a
	case regexsyn.Lit:
		a := New(2)
		a.SetStart(0)
		a.SetFinal(1)
		a.AddTransition(0, n.Sym, 1)
		return a
	case regexsyn.Concat:
		if len(n.Parts) == 0 {
			return FromRegex(regexsyn.Eps{})
		}
		acc := FromRegex(n.Parts[0])
		for _, p := range n.Parts[1:] {
			acc = Concat(acc, FromRegex(p))
		}
		return acc
	case regexsyn.Union:
		if len(n.Alts) == 0 {
			return FromRegex(regexsyn.Eps{})
		}
		acc := FromRegex(n.Alts[0])
		for _, a := range n.Alts[1:] {
			acc = Union(acc, FromRegex(a))
		}
		return acc
	case regexsyn.Star:
		return KleeneStar(FromRegex(n.Operand))
	case regexsyn.Opt:
		return Union(FromRegex(n.Operand), FromRegex(regexsyn.Eps{}))
	default:
		panic("automaton: FromRegex: unknown regexsyn.Regex node")
	}
}

// RegexToMinDFA compiles src (a character-level regex, see
// regexsyn.Parse) into its minimal DFA, per spec.md §4.3's
// from_regex and §6's regex_to_min_dfa.
func RegexToMinDFA(src string) (*NFA, error) {
	r, err := regexsyn.Parse(src)
	if err != nil {
		return nil, err
	}
	return Minimize(FromRegex(r)), nil
}
