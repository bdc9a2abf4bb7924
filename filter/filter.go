/*
Package filter applies post-hoc constraints to a CFPQ result set:
restrict to triples starting at a chosen set of nodes, ending at a
chosen set, or headed by a chosen grammar variable (spec.md §4.10).

The functional-options shape follows the sibling module's own
earley.NewParser(ga, opts ...Option) convention.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package filter

import (
	"github.com/npillmayer/pathql/cfpq"
	"github.com/npillmayer/pathql/grammar"
	"github.com/npillmayer/pathql/graph"
)

// config accumulates the constraints Apply tests each triple against.
// A nil set for a given dimension means "no constraint".
type config struct {
	starts    map[graph.NodeID]bool
	finals    map[graph.NodeID]bool
	variables map[grammar.Symbol]bool
}

// Option configures a filter.Apply call.
type Option func(*config)

// Start restricts results to triples whose From node is one of ids.
func Start(ids ...graph.NodeID) Option {
	return func(c *config) {
		if c.starts == nil {
			c.starts = make(map[graph.NodeID]bool)
		}
		for _, id := range ids {
			c.starts[id] = true
		}
	}
}

// Final restricts results to triples whose To node is one of ids.
func Final(ids ...graph.NodeID) Option {
	return func(c *config) {
		if c.finals == nil {
			c.finals = make(map[graph.NodeID]bool)
		}
		for _, id := range ids {
			c.finals[id] = true
		}
	}
}

// Variable restricts results to triples headed by v.
func Variable(v grammar.Symbol) Option {
	return func(c *config) {
		if c.variables == nil {
			c.variables = make(map[grammar.Symbol]bool)
		}
		c.variables[v] = true
	}
}

// Apply returns the subset of ts satisfying every supplied constraint.
// With no options, Apply returns a copy of ts unchanged (monotonicity,
// spec.md §8 invariant: adding constraints only ever shrinks the
// result).
func Apply(ts cfpq.TripleSet, opts ...Option) cfpq.TripleSet {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	out := make(cfpq.TripleSet, len(ts))
	for t := range ts {
		if c.starts != nil && !c.starts[t.From] {
			continue
		}
		if c.finals != nil && !c.finals[t.To] {
			continue
		}
		if c.variables != nil && !c.variables[t.Var] {
			continue
		}
		out.Add(t)
	}
	return out
}
