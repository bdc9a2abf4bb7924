package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// subsetKey canonicalizes a set of NFA states into a stable map key.
func subsetKey(qs map[StateID]struct{}) string {
	ids := make([]int, 0, len(qs))
	for q := range qs {
		ids = append(ids, int(q))
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Determinize performs the subset construction, producing a DFA (no
// ε-transitions, at most one transition per (state, symbol)) with
// L(Determinize(a)) = L(a).
//
// Frontier bookkeeping (build a subset, intern it as a state if new,
// iterate until no new subset is discovered) mirrors the
// closure/gotoSet/addState shape of the sibling module's CFSM
// construction in lr/tables.go, applied to NFA subsets instead of LR
// item sets.
func Determinize(a *NFA) *NFA {
	alphabet := a.Alphabet()
	d := New(0)

	startSet := a.EpsilonClosure(a.Starts())
	key := subsetKey(startSet)
	ids := map[string]StateID{key: d.AddState()}
	order := []string{key}
	sets := map[string]map[StateID]struct{}{key: startSet}
	d.SetStart(ids[key])
	if containsFinal(a, startSet) {
		d.SetFinal(ids[key])
	}

	for i := 0; i < len(order); i++ {
		curKey := order[i]
		curSet := sets[curKey]
		curID := ids[curKey]
		for _, sym := range alphabet {
			next := make(map[StateID]struct{})
			for q := range curSet {
				for _, to := range a.Delta(q, sym) {
					next[to] = struct{}{}
				}
			}
			moved := a.EpsilonClosure(keysOf(next))
			if len(moved) == 0 {
				continue
			}
			nk := subsetKey(moved)
			nid, known := ids[nk]
			if !known {
				nid = d.AddState()
				ids[nk] = nid
				sets[nk] = moved
				order = append(order, nk)
				if containsFinal(a, moved) {
					d.SetFinal(nid)
				}
			}
			d.AddTransition(curID, sym, nid)
		}
	}
	return d
}

func containsFinal(a *NFA, qs map[StateID]struct{}) bool {
	for q := range qs {
		if a.IsFinal(q) {
			return true
		}
	}
	return false
}

func keysOf(m map[StateID]struct{}) []StateID {
	out := make([]StateID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Minimize reduces a DFA to its minimal equivalent via Moore's
// partition-refinement algorithm: start with {final, non-final}, and
// repeatedly split blocks whose members transition to different
// blocks on some symbol, until the partition stabilizes.
//
// a need not already be deterministic; Minimize determinizes first.
func Minimize(a *NFA) *NFA {
	d := Determinize(a)
	alphabet := d.Alphabet()

	// complete the transition function with a dead state so every
	// (state, symbol) pair is defined; required for Moore refinement
	// to treat "no transition" consistently across states.
	dead := d.AddState()
	for q := StateID(0); q < StateID(d.n); q++ {
		for _, sym := range alphabet {
			if len(d.Delta(q, sym)) == 0 {
				d.AddTransition(q, sym, dead)
			}
		}
	}

	block := make([]int, d.n)
	for q := 0; q < d.n; q++ {
		if d.IsFinal(StateID(q)) {
			block[q] = 1
		}
	}
	for {
		sig := make([]string, d.n)
		for q := 0; q < d.n; q++ {
			parts := make([]string, 0, len(alphabet)+1)
			parts = append(parts, strconv.Itoa(block[q]))
			for _, sym := range alphabet {
				to := d.Delta(StateID(q), sym)
				parts = append(parts, strconv.Itoa(block[int(to[0])]))
			}
			sig[q] = strings.Join(parts, "|")
		}
		newBlockOf := map[string]int{}
		newBlock := make([]int, d.n)
		for q := 0; q < d.n; q++ {
			id, ok := newBlockOf[sig[q]]
			if !ok {
				id = len(newBlockOf)
				newBlockOf[sig[q]] = id
			}
			newBlock[q] = id
		}
		changed := false
		for q := range newBlock {
			if newBlock[q] != block[q] {
				changed = true
				break
			}
		}
		block = newBlock
		if !changed {
			break
		}
	}

	nBlocks := 0
	for _, b := range block {
		if b+1 > nBlocks {
			nBlocks = b + 1
		}
	}
	deadBlock := block[dead]
	m := New(0)
	blockToState := make(map[int]StateID)
	for b := 0; b < nBlocks; b++ {
		if b == deadBlock {
			continue // drop the dead/trap state and its block from the result
		}
		blockToState[b] = m.AddState()
	}
	startBlock := block[int(d.Starts()[0])]
	m.SetStart(blockToState[startBlock])
	seen := make(map[StateID]bool)
	for q := 0; q < d.n; q++ {
		b := block[q]
		if b == deadBlock {
			continue
		}
		ms := blockToState[b]
		if seen[ms] {
			continue
		}
		seen[ms] = true
		if d.IsFinal(StateID(q)) {
			m.SetFinal(ms)
		}
		for _, sym := range alphabet {
			to := d.Delta(StateID(q), sym)
			tb := block[int(to[0])]
			if tb == deadBlock {
				continue
			}
			m.AddTransition(ms, sym, blockToState[tb])
		}
	}
	return m
}
