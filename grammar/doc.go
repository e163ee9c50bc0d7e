/*
Package grammar holds concrete rules and grammars for span-layer parsing.

A rule is a plain (LHS, RHS, weight) record; its right-hand side is a fixed
sequence of symbol names. Symbols appearing as some rule's left-hand side are
the nonterminals of a grammar, everything else occurring in a right-hand side
is a terminal. Terminals name annotation layers of a document (plus the
blank label for gap fillers).

Building a Grammar

Rules are usually compiled from the textual notation (see sub-package
notation), but may be assembled directly:

    rules := []*grammar.Rule{
        grammar.NewRule("S", "NP", "VP"),
        grammar.NewRule("NP", "DET", "NOUN").WithWeight(4),
        grammar.NewRule("VP", "VERB"),
    }
    g, err := grammar.New("G", "S", rules)

Grammar analysis derives the alphabets and the nonterminal application
order: a sequence of levels such that every nonterminal's dependencies are
resolved in an earlier level. A cyclic dependency among nonterminals admits
no such order and is rejected with a ConfigurationError before any graph
work begins.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strata.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("strata.grammar")
}
