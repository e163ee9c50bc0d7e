/*
Package render turns parse trees into markup.

Trees render to nested span elements carrying their label as a CSS
class and their document offsets as attributes. When the document text
is given, leaves carry the text they cover and uncovered single-position
gaps between siblings reappear as intermediate text, so the rendered
markup reads exactly like the input document. XPath queries over the
rendered markup select spans by label, offset or nesting.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strata.render'.
func tracer() tracing.Trace {
	return tracing.Select("strata.render")
}
