package grammar

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/pathql/symbol"
)

// freshNamer mints deterministic, grammar-disjoint fresh variable
// names "X#CNF#N", per spec.md §9's naming-scheme guidance (the
// literal name is implementation-defined; tests check structural
// equivalence instead of the exact string, also per §9).
type freshNamer struct {
	n int
}

func (f *freshNamer) next() Symbol {
	f.n++
	return symbol.Var(fmt.Sprintf("X#CNF#%d", f.n))
}

// prodKey hashes a production for use as a dedup-set key, mirroring
// the sibling module's own hash(i lr.Item, stateno uint64) helper in
// lr/earley/earley.go, here applied to (head, body) pairs instead of
// (item, state) pairs.
func prodKey(p Production) string {
	h, err := structhash.Hash(struct {
		Head string
		Body []string
	}{
		Head: p.Head.String(),
		Body: symbolNames(p.Body),
	}, 1)
	if err != nil {
		panic(err) // structhash's own API contract: never fails on this shape
	}
	return h
}

func symbolNames(syms []Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.String()
	}
	return out
}

// ToWCNF converts cfg to Weak Chomsky Normal Form, per spec.md §4.1's
// four ordered steps: eliminate unit productions, remove useless
// symbols, isolate terminals in long bodies, binarize. L(ToWCNF(cfg))
// == L(cfg) for every non-ε word (spec.md §8 invariant 2); cfg itself
// is untouched.
func ToWCNF(cfg *CFG) *CFG {
	tracer().Debugf("wcnf: normalizing %s (%d productions)", cfg.Name, len(cfg.Productions))
	g := eliminateUnits(cfg)
	g = removeUseless(g)
	namer := &freshNamer{}
	g = isolateTerminals(g, namer)
	g = binarize(g, namer)
	g.AcceptsEmpty = cfg.AcceptsEmpty
	tracer().Debugf("wcnf: normalized to %d productions", len(g.Productions))
	return g
}

// --- Step 1: unit-production elimination -----------------------------

func isUnit(p Production) bool {
	return len(p.Body) == 1 && p.Body[0].IsVariable()
}

func eliminateUnits(cfg *CFG) *CFG {
	// unitReaches[A] = { B | A =>* B via a chain of unit productions },
	// including A itself.
	unitReaches := make(map[Symbol]map[Symbol]bool)
	for _, v := range cfg.Variables() {
		unitReaches[v] = map[Symbol]bool{v: true}
	}
	changed := true
	for changed {
		changed = false
		for _, p := range cfg.Productions {
			if !isUnit(p) {
				continue
			}
			for b := range unitReaches[p.Body[0]] {
				if !unitReaches[p.Head][b] {
					unitReaches[p.Head][b] = true
					changed = true
				}
			}
		}
	}

	seen := make(map[string]bool)
	out := &CFG{Name: cfg.Name, Start: cfg.Start}
	for _, v := range cfg.Variables() {
		for b := range unitReaches[v] {
			for _, p := range cfg.Productions {
				if p.Head != b || isUnit(p) {
					continue
				}
				np := Production{Head: v, Body: p.Body}
				key := prodKey(np)
				if !seen[key] {
					seen[key] = true
					out.Productions = append(out.Productions, np)
				}
			}
		}
	}
	return out
}

// --- Step 2: useless-symbol removal -----------------------------------

func removeUseless(cfg *CFG) *CFG {
	generating := computeGenerating(cfg)
	g1 := keepGenerating(cfg, generating)
	reachable := computeReachable(g1)
	return keepReachable(g1, reachable)
}

func computeGenerating(cfg *CFG) map[Symbol]bool {
	generating := make(map[Symbol]bool)
	changed := true
	for changed {
		changed = false
		for _, p := range cfg.Productions {
			if generating[p.Head] {
				continue
			}
			ok := true
			for _, s := range p.Body {
				if s.IsVariable() && !generating[s] {
					ok = false
					break
				}
			}
			if ok {
				generating[p.Head] = true
				changed = true
			}
		}
	}
	return generating
}

func keepGenerating(cfg *CFG, generating map[Symbol]bool) *CFG {
	out := &CFG{Name: cfg.Name, Start: cfg.Start}
	for _, p := range cfg.Productions {
		if !generating[p.Head] {
			continue
		}
		ok := true
		for _, s := range p.Body {
			if s.IsVariable() && !generating[s] {
				ok = false
				break
			}
		}
		if ok {
			out.Productions = append(out.Productions, p)
		}
	}
	return out
}

func computeReachable(cfg *CFG) map[Symbol]bool {
	reachable := map[Symbol]bool{cfg.Start: true}
	work := []Symbol{cfg.Start}
	for len(work) > 0 {
		v := work[len(work)-1]
		work = work[:len(work)-1]
		for _, p := range cfg.Productions {
			if p.Head != v {
				continue
			}
			for _, s := range p.Body {
				if s.IsVariable() && !reachable[s] {
					reachable[s] = true
					work = append(work, s)
				}
			}
		}
	}
	return reachable
}

func keepReachable(cfg *CFG, reachable map[Symbol]bool) *CFG {
	out := &CFG{Name: cfg.Name, Start: cfg.Start}
	for _, p := range cfg.Productions {
		if reachable[p.Head] {
			out.Productions = append(out.Productions, p)
		}
	}
	return out
}

// --- Step 3: isolate terminals in bodies of length >= 2 ---------------

func isolateTerminals(cfg *CFG, namer *freshNamer) *CFG {
	out := &CFG{Name: cfg.Name, Start: cfg.Start}
	termVar := make(map[Symbol]Symbol) // terminal -> its fresh variable
	for _, p := range cfg.Productions {
		if len(p.Body) < 2 {
			out.Productions = append(out.Productions, p)
			continue
		}
		newBody := make([]Symbol, len(p.Body))
		for i, s := range p.Body {
			if s.IsTerminal() {
				v, ok := termVar[s]
				if !ok {
					v = namer.next()
					termVar[s] = v
					out.Productions = append(out.Productions, Production{Head: v, Body: []Symbol{s}})
				}
				newBody[i] = v
			} else {
				newBody[i] = s
			}
		}
		out.Productions = append(out.Productions, Production{Head: p.Head, Body: newBody})
	}
	return out
}

// --- Step 4: binarize bodies of length >= 3 ---------------------------

func binarize(cfg *CFG, namer *freshNamer) *CFG {
	out := &CFG{Name: cfg.Name, Start: cfg.Start}
	for _, p := range cfg.Productions {
		if len(p.Body) <= 2 {
			out.Productions = append(out.Productions, p)
			continue
		}
		head := p.Head
		body := p.Body
		for len(body) > 2 {
			fresh := namer.next()
			out.Productions = append(out.Productions, Production{Head: head, Body: []Symbol{body[0], fresh}})
			head = fresh
			body = body[1:]
		}
		out.Productions = append(out.Productions, Production{Head: head, Body: body})
	}
	return out
}
