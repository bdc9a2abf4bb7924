package pathql

import (
	"github.com/npillmayer/pathql/automaton"
	"github.com/npillmayer/pathql/graph"
	"github.com/npillmayer/pathql/rpq"
)

// rpqQuery adapts rpq.Query's automaton.StateID pairs to graph.NodeID
// pairs; FromGraph builds db so that StateID(n) == NodeID(n) for every
// graph node, making the conversion a plain re-cast.
func rpqQuery(db, q *automaton.NFA) [][2]graph.NodeID {
	pairs := rpq.Query(db, q)
	out := make([][2]graph.NodeID, len(pairs))
	for i, p := range pairs {
		out[i] = [2]graph.NodeID{graph.NodeID(p.U), graph.NodeID(p.V)}
	}
	return out
}

func reachableFromAny(db, q *automaton.NFA) []graph.NodeID {
	set := rpq.ReachableFromAny(db, q)
	out := make([]graph.NodeID, 0, len(set))
	for s := range set {
		out = append(out, graph.NodeID(s))
	}
	return out
}

func reachableFromEach(db, q *automaton.NFA) map[graph.NodeID][]graph.NodeID {
	byStart := rpq.ReachableFromEach(db, q)
	out := make(map[graph.NodeID][]graph.NodeID, len(byStart))
	for src, reached := range byStart {
		list := make([]graph.NodeID, 0, len(reached))
		for s := range reached {
			list = append(list, graph.NodeID(s))
		}
		out[graph.NodeID(src)] = list
	}
	return out
}
