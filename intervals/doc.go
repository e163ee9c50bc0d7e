/*
Package intervals builds directed acyclic graphs over document spans.

Annotation layers cover a document with labeled, possibly overlapping
spans. The graph builder turns them into an interval graph: one node per
span occurrence, with an edge A → B whenever B's span may immediately
follow A's in a valid reading of the document. Sentinel nodes bound the
graph on both sides, synthesized blank nodes fill uncovered gaps, and
transitive reduction removes every edge already implied by a longer path.

Graphs grow in snapshots: the base graph is mutable until frozen, then
extensions add nodes and edges without touching their parent. Readers of
a snapshot never observe changes made to its extensions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package intervals

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strata.intervals'.
func tracer() tracing.Trace {
	return tracing.Select("strata.intervals")
}
