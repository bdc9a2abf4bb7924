package automaton

import "github.com/npillmayer/pathql/symbol"

// copyShifted copies every state/transition of src into dst, with every
// state ID shifted by delta. It does not copy start/final markers;
// callers wire those up per the operation's semantics.
func copyShifted(dst, src *NFA, delta StateID) {
	for _, t := range src.Transitions() {
		dst.AddTransition(t.From+delta, t.Symbol, t.To+delta)
	}
}

// Union builds the disjoint-state union of a and b: L(Union(a,b)) =
// L(a) ∪ L(b), per spec.md §4.3.
func Union(a, b *NFA) *NFA {
	u := New(a.n + b.n)
	copyShifted(u, a, 0)
	copyShifted(u, b, StateID(a.n))
	for _, s := range a.Starts() {
		u.SetStart(s)
	}
	for _, s := range b.Starts() {
		u.SetStart(s + StateID(a.n))
	}
	for _, f := range a.Finals() {
		u.SetFinal(f)
	}
	for _, f := range b.Finals() {
		u.SetFinal(f + StateID(a.n))
	}
	return u
}

// Concat builds the concatenation of a and b: L(Concat(a,b)) =
// L(a)·L(b). It wires an ε-transition from every final state of a to
// every start state of b — the standard convention. This is a
// deliberate divergence from the source implementation's
// starts-of-A→finals-of-B wiring, which spec.md §9 Open Question 1
// flags as likely a bug; see DESIGN.md.
func Concat(a, b *NFA) *NFA {
	c := New(a.n + b.n)
	copyShifted(c, a, 0)
	copyShifted(c, b, StateID(a.n))
	for _, s := range a.Starts() {
		c.SetStart(s)
	}
	for _, f := range b.Finals() {
		c.SetFinal(f + StateID(a.n))
	}
	for _, af := range a.Finals() {
		for _, bs := range b.Starts() {
			c.AddTransition(af, symbol.Eps, bs+StateID(a.n))
		}
	}
	return c
}

// KleeneStar builds the Kleene closure of a: L(KleeneStar(a)) =
// L(a)*, per spec.md §4.3. A fresh start/final state accepts ε and
// loops epsilon-transitions from every old final back to every old
// start.
func KleeneStar(a *NFA) *NFA {
	s := New(a.n + 1)
	copyShifted(s, a, 0)
	newState := StateID(a.n)
	s.SetStart(newState)
	s.SetFinal(newState)
	for _, st := range a.Starts() {
		s.AddTransition(newState, symbol.Eps, st)
	}
	for _, f := range a.Finals() {
		s.SetFinal(f)
		for _, st := range a.Starts() {
			s.AddTransition(f, symbol.Eps, st)
		}
	}
	return s
}
