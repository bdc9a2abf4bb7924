/*
Package pathql is a context-free and regular path querying toolbox.

pathql answers two questions over an edge-labeled directed multigraph:
which pairs of nodes are connected by a path whose label sequence
matches a regular expression (RPQ), and which pairs are connected by a
path whose label sequence belongs to the language of a context-free
grammar (CFPQ). Package structure is as follows:

■ graph: an interned, edge-labeled directed multigraph, the data
structure every query runs over.

■ automaton: finite automata — Thompson/subset/Moore construction,
algebraic operations, and a boolean-matrix representation used by
intersection and RPQ.

■ matrix: sparse boolean matrices: product, Kronecker product,
transitive closure.

■ grammar: context-free grammars, Weak Chomsky Normal Form
normalization (the grammar shape CFPQ's two algorithms consume), and
the ECFG/RSM representations.

■ rpq: regular path querying via product-automaton transitive closure
and multi-source BFS.

■ cfpq: context-free path querying via Hellings' worklist algorithm and
a boolean-matrix fixed point.

■ filter: post-hoc constraints (start/final/variable) over a CFPQ
result set.

The root package re-exports the consumer-facing operations of the
packages above as a single entry surface.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pathql
