/*
Package strata/main provides a batch command line tool for
stratified-annotation parsing. It compiles layer grammars from rule
notation files and parses annotated documents into trees, rendered as
XML markup, as a complete HTML page, or as a GraphViz dot script of the
resolved interval graph. For interactive experiments use strepl instead.

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
