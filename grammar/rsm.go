package grammar

import (
	"github.com/npillmayer/pathql/automaton"
	"github.com/npillmayer/pathql/symbol"
)

// RSM (Recursive State Machine) maps each variable to an ε-NFA
// accepting the language of its ECFG regex, per spec.md §4.2.
type RSM struct {
	Start Symbol
	Machines map[Symbol]*automaton.NFA
}

// RSMFromECFG builds Mₐ = regex-to-ε-NFA(Rₐ) for every variable A of e.
func RSMFromECFG(e *ECFG) *RSM {
	r := &RSM{Start: e.Start, Machines: make(map[Symbol]*automaton.NFA, len(e.Rules))}
	for v, re := range e.Rules {
		r.Machines[v] = automaton.FromRegex(re)
	}
	return r
}

// RSMFromFA is the single-FA shortcut of spec.md §4.2: it wraps fa as the
// sole machine of an RSM with start variable "S".
func RSMFromFA(fa *automaton.NFA) *RSM {
	s := symbol.Var("S")
	return &RSM{Start: s, Machines: map[Symbol]*automaton.NFA{s: fa}}
}

// Minimize replaces every machine in r with its minimal DFA,
// language-preserving per variable.
func (r *RSM) Minimize() *RSM {
	out := &RSM{Start: r.Start, Machines: make(map[Symbol]*automaton.NFA, len(r.Machines))}
	for v, m := range r.Machines {
		out.Machines[v] = automaton.Minimize(m)
	}
	return out
}
