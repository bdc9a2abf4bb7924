/*
Package graph implements an edge-labeled directed multigraph, the base
data structure path queries (RPQ and CFPQ) run over.

Nodes may carry arbitrary comparable identity (a string, an int, a
struct value, anything usable as a Go map key). Internally every node
is interned into a dense NodeID in [0, n) at construction time, the
way parser grammars intern symbols into serial IDs (see
runtime/symtable.go in the sibling module for the pattern this
follows). Graphs are immutable once Freeze is called; query
operations never mutate them.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package graph

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pathql.graph'.
func tracer() tracing.Trace {
	return tracing.Select("pathql.graph")
}

// NodeID is a dense, interned identifier for a graph node.
type NodeID int

// Edge is a directed, labeled edge between two interned nodes.
type Edge struct {
	From  NodeID
	Label string
	To    NodeID
}

// LabeledGraph is an immutable edge-labeled directed multigraph.
//
// Parallel edges with identical (From, Label, To) are idempotent: adding
// the same triple twice has no effect. Parallel edges with distinct
// labels between the same pair of nodes are both retained.
type LabeledGraph struct {
	values  []interface{}       // NodeID -> original value
	index   map[interface{}]NodeID
	out     [][]Edge            // NodeID -> outgoing edges
	in      [][]Edge            // NodeID -> incoming edges
	labels  map[string]struct{} // observed alphabet
	frozen  bool
}

// New creates an empty, mutable LabeledGraph builder. Call Freeze when
// done adding nodes and edges to obtain the immutable value used by
// every query operation.
func New() *LabeledGraph {
	return &LabeledGraph{
		index:  make(map[interface{}]NodeID),
		labels: make(map[string]struct{}),
	}
}

// AddNode interns v, returning its NodeID. Calling AddNode twice with an
// equal value returns the same ID.
func (g *LabeledGraph) AddNode(v interface{}) NodeID {
	if g.frozen {
		panic("graph: AddNode on a frozen LabeledGraph")
	}
	if id, ok := g.index[v]; ok {
		return id
	}
	id := NodeID(len(g.values))
	g.values = append(g.values, v)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	g.index[v] = id
	return id
}

// AddEdge adds a directed edge u --label--> v, interning u and v as
// needed. Re-adding an identical (u, label, v) triple is a no-op.
func (g *LabeledGraph) AddEdge(u interface{}, label string, v interface{}) {
	if g.frozen {
		panic("graph: AddEdge on a frozen LabeledGraph")
	}
	from := g.AddNode(u)
	to := g.AddNode(v)
	for _, e := range g.out[from] {
		if e.Label == label && e.To == to {
			return // idempotent parallel edge
		}
	}
	e := Edge{From: from, Label: label, To: to}
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
	g.labels[label] = struct{}{}
	tracer().Debugf("graph: added edge %v", e)
}

// Freeze marks the graph immutable and returns it. Freeze is idempotent.
func (g *LabeledGraph) Freeze() *LabeledGraph {
	g.frozen = true
	return g
}

// N returns the number of nodes.
func (g *LabeledGraph) N() int {
	return len(g.values)
}

// Nodes returns every interned NodeID, in interning order.
func (g *LabeledGraph) Nodes() []NodeID {
	ids := make([]NodeID, len(g.values))
	for i := range g.values {
		ids[i] = NodeID(i)
	}
	return ids
}

// Node returns the original value a NodeID was interned from.
func (g *LabeledGraph) Node(id NodeID) interface{} {
	return g.values[id]
}

// NodeID returns the interned ID for v, and whether it is known to g.
func (g *LabeledGraph) NodeID(v interface{}) (NodeID, bool) {
	id, ok := g.index[v]
	return id, ok
}

// EdgesFrom returns the outgoing edges of id.
func (g *LabeledGraph) EdgesFrom(id NodeID) []Edge {
	return g.out[id]
}

// EdgesTo returns the incoming edges of id.
func (g *LabeledGraph) EdgesTo(id NodeID) []Edge {
	return g.in[id]
}

// HasEdge reports whether u --label--> v is present.
func (g *LabeledGraph) HasEdge(u NodeID, label string, v NodeID) bool {
	for _, e := range g.out[u] {
		if e.Label == label && e.To == v {
			return true
		}
	}
	return false
}

// Alphabet returns the set of distinct edge labels observed in g.
func (g *LabeledGraph) Alphabet() []string {
	out := make([]string, 0, len(g.labels))
	for l := range g.labels {
		out = append(out, l)
	}
	return out
}

// AllEdges returns every edge in the graph, in node-interning then
// insertion order.
func (g *LabeledGraph) AllEdges() []Edge {
	var all []Edge
	for _, es := range g.out {
		all = append(all, es...)
	}
	return all
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d -%s-> %d)", e.From, e.Label, e.To)
}

// Source is the external-adapter seam for graph I/O (DOT files, CSV
// catalog downloads, ...). Producing a LabeledGraph from a concrete
// file format is explicitly out of scope for this module (see
// spec.md §1); any adapter living outside this module need only
// satisfy Source for FromSource to consume it.
type Source interface {
	// Edges yields every (from, label, to) triple describing the graph.
	// Implementations may stream from a file or return a precomputed
	// slice; FromSource drains Edges exactly once.
	Edges() []Triple
}

// Triple is a single (from, label, to) edge as produced by a Source.
type Triple struct {
	From, Label, To string
}

// FromSource builds a frozen LabeledGraph from any Source.
func FromSource(src Source) *LabeledGraph {
	g := New()
	for _, t := range src.Edges() {
		g.AddEdge(t.From, t.Label, t.To)
	}
	return g.Freeze()
}
