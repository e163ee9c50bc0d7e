/*
Package strepl/main provides an interactive command line tool for
stratified-annotation parsing. Users load a grammar and an annotated
document, parse, and inspect the results: concrete rules, application
order, interval graphs as GraphViz dot, parse trees on the terminal,
rendered markup and XPath queries over it. It serves as a sandbox for
developing layer grammars against real documents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strata.cli'
func tracer() tracing.Trace {
	return tracing.Select("strata.cli")
}
