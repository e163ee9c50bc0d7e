/*
Package document models annotated documents.

A document is a (possibly absent) text together with named annotation
layers, each covering the text with labeled spans. Layers may overlap
and nest freely; relating them to each other is the job of the other
packages of this module, which consume documents as plain span maps.

Documents are either assembled programmatically or loaded from one of
two formats: a JSON form for interop and a compact textual form for
humans, e.g.

   text "John loves Mary."
   layer NOUN: 0..4, 11..15
   layer VERB: 5..10

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package document

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strata.document'.
func tracer() tracing.Trace {
	return tracing.Select("strata.document")
}
