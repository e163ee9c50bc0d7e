/*
Package chart resolves grammar rules over interval graphs.

Resolution proceeds bottom-up along the grammar's nonterminal application
order: for every rule of a nonterminal, the resolver searches the current
graph snapshot for chains of adjacent nodes whose labels spell the rule's
right-hand side. Every hit synthesizes a nonterminal node covering the
chain's total span, splices it into the graph next to the chain, and
records the (rule, chain) pair as one candidate derivation. Nonterminals
within one dependency level read a frozen snapshot and may search
concurrently; their discoveries are merged serially into the next
snapshot. The accumulated candidate map is the chart, from which package
tree extracts a parse tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strata.chart'.
func tracer() tracing.Trace {
	return tracing.Select("strata.chart")
}
