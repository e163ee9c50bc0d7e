/*
Package tree selects and walks parse trees over annotation charts.

Chart resolution (package chart) accumulates, for every synthesized span,
all candidate derivations that produced it. This package turns such a
chart into a single parse tree: Select picks the heaviest chart node
carrying the grammar's start symbol and expands it breadth-first,
preferring at every nonterminal the candidate derivation of maximum rule
weight. The result is a proper tree with disjoint, ordered children
spans.

Selected trees are either navigated manually, moving a Cursor between
adjacent nodes, or walked with a Listener, which may propagate
user-defined values upwards from the leaves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strata.tree'.
func tracer() tracing.Trace {
	return tracing.Select("strata.tree")
}
